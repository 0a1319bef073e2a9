package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/credit"
	"github.com/etnz/credit/renderer"
	"github.com/google/subcommands"
)

type quoteCmd struct {
	product  string
	rate     string
	duration string
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "compute the cost of buying a product on credit" }
func (*quoteCmd) Usage() string {
	return `ccs quote -p <product> -r <rate> -t <years>

  Computes the simple interest and the total due of a credit purchase,
  without recording anything.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.product, "p", "", "Product name or number in the catalog")
	f.StringVar(&c.rate, "r", "", "Yearly interest rate in percent (e.g. 10)")
	f.StringVar(&c.duration, "t", "1", "Duration of the credit in years")
}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.product == "" || c.rate == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	q, name, err := c.quote(credit.DefaultCatalog())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing quote: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.RenderQuote(renderer.NewQuote(name, q)))
	return subcommands.ExitSuccess
}

// quote validates the flags against the catalog, with the same rules as a session.
func (c *quoteCmd) quote(catalog *credit.Catalog) (credit.Quote, string, error) {
	product, ok := catalog.Lookup(c.product)
	if !ok {
		var err error
		if product, err = catalog.Select(c.product); err != nil {
			return credit.Quote{}, "", err
		}
	}
	rate, err := credit.ParsePercent(c.rate)
	if err != nil {
		return credit.Quote{}, "", fmt.Errorf("%w: %w", credit.ErrInvalidRate, err)
	}
	duration, err := credit.ParseYears(c.duration)
	if err != nil {
		return credit.Quote{}, "", fmt.Errorf("%w: %w", credit.ErrInvalidDuration, err)
	}
	if err := credit.Credit(rate, duration).Validate(); err != nil {
		return credit.Quote{}, "", err
	}
	return credit.NewQuote(product.Price(), rate, duration), product.Name(), nil
}
