// Package server exposes a workbook as the HTTP API the fv client consumes.
//
// The surface is deliberately small: a form-based login that sets a signed
// session cookie, a logout that drops it, and two authenticated read
// endpoints listing tabs and streaming statement records. Responses reuse
// the wire messages of the service this API mirrors, so either backend can
// sit behind the same client.
package server

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/etnz/finview"
	"github.com/etnz/finview/sheetapi"
)

const (
	loginOKMessage     = "Login bem-sucedido"
	logoutOKMessage    = "Logout bem-sucedido"
	badLoginDetail     = "Nome de usuário ou senha incorretos"
	credentialsDetail  = "Não foi possível validar as credenciais"
	noDataMessage      = "Nenhum dado encontrado na aba ou intervalo especificado."
	defaultSessionTTL  = 30 * time.Minute
	sessionSecretBytes = 32
)

// Config gathers what a Server needs to run.
type Config struct {
	// Source provides tab names and statement records.
	Source finview.Source
	// Users maps usernames to clear-text passwords. They are hashed on
	// construction and only the derived keys are retained.
	Users map[string]string
	// Secret signs session tokens. Leave empty for a random per-process
	// secret, which invalidates sessions on restart.
	Secret []byte
	// SessionTTL bounds how long a login stays valid. Zero means 30 minutes.
	SessionTTL time.Duration
}

// Server answers the sheets API over a Source.
type Server struct {
	src    finview.Source
	users  map[string]credential
	secret []byte
	ttl    time.Duration
}

// New builds a Server from the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("a record source is required")
	}
	if len(cfg.Users) == 0 {
		return nil, fmt.Errorf("at least one user is required")
	}
	users := make(map[string]credential, len(cfg.Users))
	for name, password := range cfg.Users {
		if name == "" {
			return nil, fmt.Errorf("empty username")
		}
		cred, err := hashPassword(password)
		if err != nil {
			return nil, err
		}
		users[name] = cred
	}
	secret := cfg.Secret
	if len(secret) == 0 {
		secret = make([]byte, sessionSecretBytes)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generating session secret: %w", err)
		}
	}
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &Server{src: cfg.Source, users: users, secret: secret, ttl: ttl}, nil
}

// Handler returns the routed API surface.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/token", s.handleToken).Methods(http.MethodPost)
	r.HandleFunc("/api/logout", s.handleLogout).Methods(http.MethodPost)

	sheets := r.PathPrefix("/api/sheets").Subrouter()
	sheets.Use(s.requireSession)
	sheets.HandleFunc("/tabs", s.handleTabs).Methods(http.MethodGet)
	sheets.HandleFunc("/data", s.handleData).Methods(http.MethodGet)
	return r
}

// ListenAndServe runs the API on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("serving sheets API on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// requireSession rejects requests lacking a valid session cookie.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sheetapi.SessionCookie)
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, credentialsDetail)
			return
		}
		if _, err := s.verifyToken(cookie.Value); err != nil {
			writeDetail(w, http.StatusUnauthorized, credentialsDetail)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusBadRequest, "malformed login form")
		return
	}
	username := r.PostFormValue("username")
	cred, ok := s.users[username]
	if !ok || !cred.verify(r.PostFormValue("password")) {
		writeDetail(w, http.StatusUnauthorized, badLoginDetail)
		return
	}
	token, err := s.issueToken(username, time.Now())
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	http.SetCookie(w, s.sessionCookie(token))
	writeMessage(w, loginOKMessage)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, expiredCookie())
	writeMessage(w, logoutOKMessage)
}

func (s *Server) handleTabs(w http.ResponseWriter, r *http.Request) {
	tabs, err := s.src.Tabs(r.Context())
	if err != nil {
		log.Printf("listing tabs: %v", err)
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Tabs []string `json:"tabs"`
	}{Tabs: tabs})
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("sheet_name")
	if name == "" {
		writeDetail(w, http.StatusBadRequest, "sheet_name is required")
		return
	}
	// force_refresh is accepted for wire compatibility; there is no cache
	// in front of the source, so every request reads fresh data anyway.
	records, err := s.src.Records(r.Context(), name)
	if err != nil {
		log.Printf("reading records of %q: %v", name, err)
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(records) == 0 {
		writeMessage(w, noDataMessage)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := finview.EncodeRecords(w, records); err != nil {
		// Headers are gone at this point, only the log can tell.
		log.Printf("encoding records of %q: %v", name, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{Message: message})
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, struct {
		Detail string `json:"detail"`
	}{Detail: detail})
}
