package credit

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// play runs a whole session on the startup state with the given input lines, and
// returns the session and everything it printed.
func play(t *testing.T, lines ...string) (*Session, string) {
	t.Helper()
	var out bytes.Buffer
	s := NewSession(&out, strings.NewReader(strings.Join(lines, "\n")+"\n"), DefaultPeople(), DefaultCatalog(), nil)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v\noutput:\n%s", err, out.String())
	}
	return s, out.String()
}

// mustGet returns a person of the collection or fails the test.
func mustGet(t *testing.T, people *People, name string) *Person {
	t.Helper()
	p, err := people.Get(name)
	if err != nil {
		t.Fatalf("Get(%q) error = %v", name, err)
	}
	return p
}
