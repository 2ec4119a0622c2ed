package sheetapi

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const sessionFile = "fv-session"

func sessionPath() string { return filepath.Join(os.TempDir(), sessionFile) }

// loadSession reads the session token a previous login saved.
func loadSession() (string, error) {
	data, err := os.ReadFile(sessionPath())
	if err != nil {
		return "", fmt.Errorf("session not found. Please run 'fv login' first: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// saveSession persists the session token for later runs. The file is
// readable by the user only, it holds a live credential.
func saveSession(token string) error {
	if err := os.WriteFile(sessionPath(), []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("cannot save session: %w", err)
	}
	return nil
}

// clearSession forgets any saved session. A session that never existed is
// not an error.
func clearSession() error {
	err := os.Remove(sessionPath())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot clear session: %w", err)
	}
	return nil
}
