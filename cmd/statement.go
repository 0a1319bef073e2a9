package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/etnz/credit"
	"github.com/etnz/credit/renderer"
	"github.com/google/subcommands"
)

type statementCmd struct {
	query    string
	markdown bool
	echo     bool
}

func (*statementCmd) Name() string { return "statement" }
func (*statementCmd) Synopsis() string {
	return "replay a scripted session and print the resulting balances and dues"
}
func (*statementCmd) Usage() string {
	return `ccs statement [-q <jsonpath>] [-md] [-echo] [<script>]

  Replays a session from a script, one console input per line, read from
  <script> or from stdin. The script does not need to end with the exit option.

  Then prints the statement of every account as JSON, or the result of the
  JSONPath query, e.g. -q '$.people[?(@.due > 0)].name'.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "JSONPath query to run on the statement")
	f.BoolVar(&c.markdown, "md", false, "Print the statement as a markdown table")
	f.BoolVar(&c.echo, "echo", false, "Print the session transcript on stderr")
}

func (c *statementCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var script io.Reader = os.Stdin
	switch f.NArg() {
	case 0:
	case 1:
		file, err := os.Open(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script %q: %v\n", f.Arg(0), err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		script = file
	default:
		f.Usage()
		return subcommands.ExitUsageError
	}

	transcript := io.Discard
	if c.echo {
		transcript = os.Stderr
	}
	st, err := Replay(ctx, transcript, script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying session: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := c.print(os.Stdout, st); err != nil {
		fmt.Fprintf(os.Stderr, "Error printing statement: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *statementCmd) print(w io.Writer, st *credit.Statement) error {
	switch {
	case c.query != "":
		res, err := st.Query(c.query)
		if err != nil {
			return err
		}
		b, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case c.markdown:
		_, err := fmt.Fprint(w, renderMarkdown(renderer.StatementMarkdown(st)))
		return err
	default:
		return credit.EncodeStatement(w, st)
	}
}

// Replay runs a session on the startup state with the script as input and returns
// the final statement. A script that ends without exiting is accepted.
func Replay(ctx context.Context, transcript io.Writer, script io.Reader) (*credit.Statement, error) {
	s := credit.NewSession(transcript, script, credit.DefaultPeople(), credit.DefaultCatalog(), slog.Default())
	if err := s.Run(ctx); err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return credit.NewStatement(s.ID, s.People), nil
}
