package credit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
	"github.com/google/uuid"
)

// Account is one line of a Statement.
type Account struct {
	Name    string
	Balance Money
	Due     Money
}

// MarshalJSON writes the account fields in a stable order: name, balance, due.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", a.Name)
	w.Append("balance", a.Balance)
	w.Append("due", a.Due)
	return w.MarshalJSON()
}

// Statement is a snapshot of every account at some point of a session.
type Statement struct {
	Session  uuid.UUID
	Accounts []Account
}

// NewStatement takes a snapshot of people.
func NewStatement(session uuid.UUID, people *People) *Statement {
	s := &Statement{Session: session}
	for p := range people.All() {
		s.Accounts = append(s.Accounts, Account{Name: p.Name(), Balance: p.Balance(), Due: p.Due()})
	}
	return s
}

// TotalDue is the sum of all dues.
func (s *Statement) TotalDue() Money {
	var total Money
	for _, a := range s.Accounts {
		total = total.Add(a.Due)
	}
	return total
}

func (s *Statement) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("session", s.Session)
	accounts := s.Accounts
	if accounts == nil {
		accounts = []Account{}
	}
	w.Append("people", accounts)
	return w.MarshalJSON()
}

// EncodeStatement writes the statement as indented JSON.
func EncodeStatement(w io.Writer, s *Statement) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode statement: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(b)); err != nil {
		return fmt.Errorf("cannot write statement: %w", err)
	}
	return nil
}

// DecodeStatement reads back a statement as generic JSON, ready to be queried.
func DecodeStatement(r io.Reader) (any, error) {
	var v any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("cannot decode statement: %w", err)
	}
	return v, nil
}

// queryLanguage is JSONPath with gval expressions in filters, like comparisons.
var queryLanguage = gval.Full(jsonpath.PlaceholderExtension())

// Query evaluates a JSONPath expression against the JSON form of the statement,
// e.g. "$.people[?(@.due > 0)].name".
func (s *Statement) Query(path string) (any, error) {
	var b strings.Builder
	if err := EncodeStatement(&b, s); err != nil {
		return nil, err
	}
	v, err := DecodeStatement(strings.NewReader(b.String()))
	if err != nil {
		return nil, err
	}
	eval, err := queryLanguage.NewEvaluable(path)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", path, err)
	}
	res, err := eval(context.Background(), v)
	if err != nil {
		return nil, fmt.Errorf("cannot run query %q: %w", path, err)
	}
	return res, nil
}
