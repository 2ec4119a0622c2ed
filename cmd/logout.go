package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "sign out and drop the stored session" }
func (*logoutCmd) Usage() string {
	return `fv logout

  Tells the service to drop the session and removes the stored session
  file. The file is removed even when the service cannot be reached.
`
}

func (*logoutCmd) SetFlags(_ *flag.FlagSet) {}

func (c *logoutCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, err := newClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := client.Logout(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("✅ Session cleared.")
	return subcommands.ExitSuccess
}
