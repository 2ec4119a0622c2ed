package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
)

func TestServeCommandFlagValidation(t *testing.T) {
	tests := []struct {
		name  string
		flags map[string]string
	}{
		{name: "missing workbook", flags: map[string]string{"user": "ana:s3cret"}},
		{name: "missing user", flags: map[string]string{"workbook": "statements.xlsx"}},
		{name: "malformed user", flags: map[string]string{"workbook": "statements.xlsx", "user": "no-colon"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := &serveCmd{}
			f := flag.NewFlagSet("test", flag.ContinueOnError)
			cmd.SetFlags(f)
			for name, value := range tc.flags {
				f.Set(name, value)
			}
			if status := cmd.Execute(context.Background(), f); status != subcommands.ExitUsageError {
				t.Errorf("Execute() = %v, want ExitUsageError", status)
			}
		})
	}
}

func TestParseUsers(t *testing.T) {
	users, err := parseUsers([]string{"ana:s3cret", "rui:pass:word"})
	if err != nil {
		t.Fatalf("parseUsers() error: %v", err)
	}
	if users["ana"] != "s3cret" {
		t.Errorf("users[ana] = %q, want s3cret", users["ana"])
	}
	// Only the first colon splits, passwords may contain colons.
	if users["rui"] != "pass:word" {
		t.Errorf("users[rui] = %q, want pass:word", users["rui"])
	}

	for _, bad := range []string{"no-colon", ":empty-name"} {
		if _, err := parseUsers([]string{bad}); err == nil {
			t.Errorf("parseUsers(%q) accepted a malformed pair", bad)
		}
	}
}
