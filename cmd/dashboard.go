package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finview/tui"
	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "open the interactive statement dashboard" }
func (*dashboardCmd) Usage() string {
	return `fv dashboard

  Opens the interactive dashboard on the first statement tab with every
  year selected. See 'fv topic dashboard' for the keys and the mouse
  gestures.

Usage Examples:
# Browse the sheets API (sign in first).
$ fv dashboard

# Browse a local workbook, no session needed.
$ fv -workbook statements.xlsx dashboard

`
}

func (*dashboardCmd) SetFlags(_ *flag.FlagSet) {}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	src, err := newSource(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := tui.Run(src); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
