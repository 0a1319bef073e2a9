// Package cmd implements the CLI application to simulate a retail credit ledger.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/lmittmann/tint"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&runCmd{}, "session")
	c.Register(&statementCmd{}, "session")

	c.Register(&catalogCmd{}, "catalog")
	c.Register(&quoteCmd{}, "catalog")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var Verbose = flag.Bool("v", false, "Print debug logs on stderr")
var plain = flag.Bool("plain", false, "Print raw markdown instead of styling it for the terminal")

// SetupLogging configures the default slog logger, to be called once flags are parsed.
func SetupLogging() {
	SetupLoggingTo(os.Stderr)
}

// SetupLoggingTo configures the default slog logger to write colored logs to w.
func SetupLoggingTo(w io.Writer) {
	level := slog.LevelWarn
	if *Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

// printMarkdown prints md on stdout, styled for the terminal unless -plain is set.
func printMarkdown(md string) {
	fmt.Print(renderMarkdown(md))
}

// renderMarkdown styles md with glamour. Raw markdown is returned on failure, or if -plain is set.
func renderMarkdown(md string) string {
	if *plain {
		return md
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		slog.Warn("cannot create markdown renderer", "error", err)
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		slog.Warn("cannot render markdown", "error", err)
		return md
	}
	return out
}
