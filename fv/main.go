package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/finview/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	cmd.Complete()
	flag.Parse()

	// Unknown subcommands may be provided by fv-<name> binaries on PATH.
	if args := flag.Args(); len(args) > 0 && !registered(commander, args[0]) {
		if found, code := cmd.RunExtension(args[0], args[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is a built-in subcommand.
func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}
