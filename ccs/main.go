package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/credit/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Complete("ccs")

	commander := subcommands.NewCommander(flag.CommandLine, "ccs")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogging()

	ctx := context.Background()

	if flag.NArg() == 0 {
		os.Exit(int(cmd.Run(ctx, os.Stdout, os.Stdin)))
	}

	// Unknown subcommands are looked up as ccs-<subcommand> binaries.
	name := flag.Arg(0)
	known := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			known = true
		}
	})
	if !known {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(ctx)))
}
