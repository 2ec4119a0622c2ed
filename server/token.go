package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/etnz/finview/sheetapi"
)

// issueToken signs a session token for the given user, valid for the server's
// session duration.
func (s *Server) issueToken(username string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// verifyToken checks signature and expiry and returns the subject username.
func (s *Server) verifyToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("session token carries no subject")
	}
	return claims.Subject, nil
}

// sessionCookie wraps a signed token into the cookie the clients expect.
func (s *Server) sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     sheetapi.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// expiredCookie overwrites the session cookie so browsers drop it.
func expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sheetapi.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
