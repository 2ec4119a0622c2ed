package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finview"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

type loginCmd struct {
	username string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "sign in to the sheets API and store the session" }
func (*loginCmd) Usage() string {
	return `fv login -u <username>

  Signs in to the sheets API. The password is read from the terminal, and
  the session is stored in a file under the system temporary directory so
  that subsequent commands reuse it.

Usage Examples:
# Sign in as ana, the password is prompted.
$ fv login -u ana

`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "Username to sign in with")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" {
		fmt.Fprintln(os.Stderr, "Error: the -u flag is required.")
		return subcommands.ExitUsageError
	}

	client, err := newClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Password for %s: ", c.username)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading the password: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := client.Login(ctx, c.username, string(password)); err != nil {
		if finview.IsUnauthorized(err) {
			fmt.Fprintln(os.Stderr, "Error: the service rejected these credentials.")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return subcommands.ExitFailure
	}

	fmt.Println("✅ Session successfully stored.")
	return subcommands.ExitSuccess
}
