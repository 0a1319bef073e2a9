package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/etnz/credit"
	"github.com/google/subcommands"
)

type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "start an interactive session (default)" }
func (*runCmd) Usage() string {
	return `ccs run

  Starts the interactive menu with the startup people and catalog:

    Alice with $500.00, Bob with $1000.00
    Laptop for $800.00, Phone for $500.00

  Nothing is saved when the session ends.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {}

func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return Run(ctx, os.Stdout, os.Stdin)
}

// Run plays an interactive session on the startup state.
func Run(ctx context.Context, w io.Writer, r io.Reader) subcommands.ExitStatus {
	s := credit.NewSession(w, r, credit.DefaultPeople(), credit.DefaultCatalog(), slog.Default())
	if err := s.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
