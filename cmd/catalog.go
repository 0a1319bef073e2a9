package cmd

import (
	"context"
	"flag"

	"github.com/etnz/credit"
	"github.com/etnz/credit/renderer"
	"github.com/google/subcommands"
)

type catalogCmd struct{}

func (*catalogCmd) Name() string     { return "catalog" }
func (*catalogCmd) Synopsis() string { return "list the products on sale" }
func (*catalogCmd) Usage() string {
	return `ccs catalog

  Lists the products on sale with the number used to select them in a session.
`
}

func (c *catalogCmd) SetFlags(f *flag.FlagSet) {}

func (c *catalogCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.RenderCatalog(renderer.NewCatalog(credit.DefaultCatalog())))
	return subcommands.ExitSuccess
}
