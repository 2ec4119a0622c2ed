package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finview/renderer"
	"github.com/google/subcommands"
)

type tabsCmd struct{}

func (*tabsCmd) Name() string     { return "tabs" }
func (*tabsCmd) Synopsis() string { return "list the statement tabs" }
func (*tabsCmd) Usage() string {
	return `fv tabs

  Lists the statement tabs of the workbook, in workbook order.
`
}

func (*tabsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *tabsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	src, err := newSource(false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	tabs, err := src.Tabs(ctx)
	if err != nil {
		return reportErr(err)
	}
	printMarkdown(renderer.TabsMarkdown(tabs))
	return subcommands.ExitSuccess
}
