package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/finview"
	"github.com/etnz/finview/renderer"
	"github.com/google/subcommands"
)

type tableCmd struct {
	tab   string
	years string
	force bool
}

func (*tableCmd) Name() string     { return "table" }
func (*tableCmd) Synopsis() string { return "render one statement tab as a table" }
func (*tableCmd) Usage() string {
	return `fv table -tab <name> [-years <list>] [-force]

  Renders one statement tab as an indicator-by-year table, oldest year
  first. By default every reporting year is shown; -years keeps only the
  listed ones.

Usage Examples:
# The whole DRE tab.
$ fv table -tab DRE

# Only two years of it.
$ fv table -tab DRE -years 2022,2023

`
}

func (c *tableCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tab, "tab", "", "Statement tab to render")
	f.StringVar(&c.years, "years", "", "Comma-separated years to keep (defaults to all)")
	f.BoolVar(&c.force, "force", false, "Ask the service to bypass its cache")
}

func (c *tableCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.tab == "" {
		fmt.Fprintln(os.Stderr, "Error: the -tab flag is required.")
		return subcommands.ExitUsageError
	}

	src, err := newSource(c.force)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	records, err := src.Records(ctx, c.tab)
	if err != nil {
		return reportErr(err)
	}

	ds := finview.NewDataset(records)
	years := ds.Years()
	if c.years != "" {
		years, err = parseYears(c.years)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	printMarkdown(renderer.StatementMarkdown(c.tab, ds.Shape(years)))
	return subcommands.ExitSuccess
}

// parseYears parses a comma-separated list of years, like "2022,2023".
func parseYears(s string) ([]int, error) {
	var years []int
	for _, part := range strings.Split(s, ",") {
		year, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("-years must be comma-separated years, got %q", s)
		}
		years = append(years, year)
	}
	return years, nil
}
