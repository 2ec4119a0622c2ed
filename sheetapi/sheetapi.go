// Package sheetapi is the HTTP client for the statement service. The
// service authenticates with a JWT session cookie obtained from a login
// form, lists the spreadsheet's tabs, and serves one year-keyed record set
// per tab.
package sheetapi

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/etnz/finview"
)

// SessionCookie is the cookie the service sets on login and expects on
// every data request.
const SessionCookie = "finance_access_token"

// Client talks to one statement service. The session token survives across
// runs in a session file, so a logged-in user stays logged in until the
// token expires.
type Client struct {
	base  *url.URL
	http  *http.Client
	token string

	// Force asks the service to bypass its own cache on data requests.
	Force bool
}

// New returns a client for the service at base, picking up any session
// saved by an earlier login.
func New(base string) (*Client, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid service address %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid service address %q: need scheme and host", base)
	}
	c := &Client{
		base: u,
		http: &http.Client{Timeout: 30 * time.Second},
	}
	// no session yet is fine, only Login needs to have run before data calls
	c.token, _ = loadSession()
	return c, nil
}

var _ finview.Source = (*Client)(nil)
