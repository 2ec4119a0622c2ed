// Package cmd implements the CLI application to browse financial statements.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/finview"
	"github.com/etnz/finview/sheet"
	"github.com/etnz/finview/sheetapi"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&loginCmd{}, "session")
	c.Register(&logoutCmd{}, "session")

	c.Register(&tabsCmd{}, "statements")
	c.Register(&tableCmd{}, "statements")
	c.Register(&dashboardCmd{}, "statements")

	c.Register(&serveCmd{}, "service")

	c.Register(&assistCmd{}, "assistant")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// apiEnv overrides the default service address without a flag.
const apiEnv = "FINVIEW_API"

var (
	apiAddr  = flag.String("api", defaultAPI(), "Address of the sheets API (also $"+apiEnv+")")
	workbook = flag.String("workbook", "", "Read statements from a local .xlsx file instead of the API")
)

func defaultAPI() string {
	if addr := os.Getenv(apiEnv); addr != "" {
		return addr
	}
	return "http://localhost:8000"
}

// newClient returns the sheets API client for the configured address, with
// any saved session loaded.
func newClient() (*sheetapi.Client, error) {
	return sheetapi.New(*apiAddr)
}

// newSource returns the statement source the browsing commands read from:
// the local workbook when -workbook is set, the sheets API otherwise. A
// workbook needs no session. force asks the service to bypass its cache; a
// workbook read is always fresh.
func newSource(force bool) (finview.Source, error) {
	if *workbook != "" {
		return sheet.Open(*workbook)
	}
	client, err := newClient()
	if err != nil {
		return nil, err
	}
	client.Force = force
	return client, nil
}

// reportErr prints err the way the user can act on it.
func reportErr(err error) subcommands.ExitStatus {
	if finview.IsUnauthorized(err) {
		fmt.Fprintln(os.Stderr, "Error:", finview.LoginInstruction)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return subcommands.ExitFailure
}
