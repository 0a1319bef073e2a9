package credit

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console is the line-oriented channel between a session and its user.
type Console struct {
	w io.Writer
	r *bufio.Reader
}

// NewConsole creates a Console writing to w and reading lines from r.
func NewConsole(w io.Writer, r io.Reader) *Console {
	return &Console{w: w, r: bufio.NewReader(r)}
}

func (c *Console) Println(a ...any)               { fmt.Fprintln(c.w, a...) }
func (c *Console) Printf(format string, a ...any) { fmt.Fprintf(c.w, format, a...) }

// Ask prints the prompt on its own line and returns the next input line, trimmed.
//
// The last line of the input does not need a trailing newline. Once the input is
// exhausted, Ask returns an error wrapping io.ErrUnexpectedEOF.
func (c *Console) Ask(prompt string) (string, error) {
	fmt.Fprintln(c.w, prompt)
	return c.ReadLine()
}

// ReadLine returns the next input line, trimmed.
func (c *Console) ReadLine() (string, error) {
	line, err := c.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		if err == io.EOF {
			return "", fmt.Errorf("end of input: %w", io.ErrUnexpectedEOF)
		}
		return "", fmt.Errorf("cannot read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
