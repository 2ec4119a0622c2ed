package sheetapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/etnz/finview"
)

// Login exchanges credentials for a session: a POST of the login form, the
// way the service's own login page does it. On success the session cookie
// is kept in memory and saved for later runs.
func (c *Client) Login(ctx context.Context, username, password string) error {
	addr := c.base.JoinPath("/api/token").String()
	form := url.Values{
		"username": {username},
		"password": {password},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, addr, strings.NewReader(form.Encode()))
	if err != nil {
		return &finview.TransportError{Op: "login", URL: addr, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return &finview.TransportError{Op: "login", URL: addr, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("login rejected for %q: %w", username, finview.ErrUnauthorized)
	case resp.StatusCode != http.StatusOK:
		return &finview.TransportError{Op: "login", URL: addr, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == SessionCookie {
			c.token = cookie.Value
			return saveSession(c.token)
		}
	}
	return &finview.TransportError{Op: "login", URL: addr, Err: fmt.Errorf("response carries no %s cookie", SessionCookie)}
}

// Logout tells the service to drop the session and forgets the saved one.
// The local session is cleared even when the service cannot be reached:
// the token would be useless anyway once the user wants out.
func (c *Client) Logout(ctx context.Context) error {
	addr := c.base.JoinPath("/api/logout").String()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, addr, nil)
	if err == nil {
		if c.token != "" {
			req.AddCookie(&http.Cookie{Name: SessionCookie, Value: c.token})
		}
		if resp, doErr := c.http.Do(req); doErr == nil {
			resp.Body.Close()
		}
	}
	c.token = ""
	return clearSession()
}

// LoggedIn reports whether the client holds a session token. The token may
// still be expired, only the service can tell.
func (c *Client) LoggedIn() bool { return c.token != "" }
