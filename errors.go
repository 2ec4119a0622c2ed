package finview

import (
	"errors"
	"fmt"
)

// ErrUnauthorized reports that the service rejected the session, either
// because no session exists or because it has expired. Callers must send the
// user back to login; there is no point retrying with the same session.
var ErrUnauthorized = errors.New("unauthorized: session is missing or expired")

// IsUnauthorized reports whether err is, or wraps, ErrUnauthorized.
func IsUnauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }

// TransportError reports a connectivity or protocol failure while talking to
// the service: the request never completed, or completed with a status that
// is not part of the contract. It is never retried automatically.
type TransportError struct {
	Op  string // the operation that failed, e.g. "list tabs"
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsTransport reports whether err is, or wraps, a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
