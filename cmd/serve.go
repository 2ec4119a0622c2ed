package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/finview/server"
	"github.com/etnz/finview/sheet"
	"github.com/google/subcommands"
)

type userFlags []string

func (u *userFlags) String() string {
	return strings.Join(*u, ", ")
}

func (u *userFlags) Set(value string) error {
	*u = append(*u, value)
	return nil
}

type serveCmd struct {
	workbook string
	addr     string
	users    userFlags
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve a local workbook through the sheets API" }
func (*serveCmd) Usage() string {
	return `fv serve -workbook <file.xlsx> -user <name:password> [-addr <addr>]

  Exposes a local workbook through the same sheets API fv consumes.
  Every -user flag declares one accepted name:password pair; passwords
  are hashed in memory on startup and never written anywhere. Sessions
  are signed with a random per-process secret, so restarting the server
  signs everybody out.

Usage Examples:
# Serve statements.xlsx on :8040 for one user.
$ fv serve -workbook statements.xlsx -user ana:s3cret -addr :8040

`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.workbook, "workbook", "", "Path to the .xlsx workbook to serve")
	f.StringVar(&c.addr, "addr", ":8040", "Address to listen on")
	f.Var(&c.users, "user", "Accepted name:password pair (can be specified multiple times)")
}

func (c *serveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.workbook == "" {
		fmt.Fprintln(os.Stderr, "Error: the -workbook flag is required.")
		return subcommands.ExitUsageError
	}
	if len(c.users) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one -user flag is required.")
		return subcommands.ExitUsageError
	}
	users, err := parseUsers(c.users)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	wb, err := sheet.Open(c.workbook)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer wb.Close()

	srv, err := server.New(server.Config{Source: wb, Users: users})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := srv.ListenAndServe(c.addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// parseUsers splits every name:password pair.
func parseUsers(pairs []string) (map[string]string, error) {
	users := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, password, ok := strings.Cut(pair, ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid user %q: want name:password", pair)
		}
		users[name] = password
	}
	return users, nil
}
