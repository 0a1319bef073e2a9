package credit

import (
	"fmt"
	"iter"
	"slices"
)

// People is the collection of persons of a session, keyed by their unique name.
//
// Iteration follows insertion order.
type People struct {
	byName map[string]*Person
	names  []string
}

// NewPeople creates a collection from persons. Names must be unique.
func NewPeople(persons ...*Person) (*People, error) {
	ps := &People{byName: make(map[string]*Person)}
	for _, p := range persons {
		if err := ps.Add(p); err != nil {
			return nil, err
		}
	}
	return ps, nil
}

// DefaultPeople returns the persons available at startup.
func DefaultPeople() *People {
	ps, err := NewPeople(
		NewPerson("Alice", M(500)),
		NewPerson("Bob", M(1000)),
	)
	if err != nil {
		panic(err)
	}
	return ps
}

// Add inserts a new person.
func (ps *People) Add(p *Person) error {
	if _, exists := ps.byName[p.name]; exists {
		return fmt.Errorf("%q: %w", p.name, ErrDuplicatePerson)
	}
	ps.byName[p.name] = p
	ps.names = append(ps.names, p.name)
	return nil
}

// Len returns the number of persons.
func (ps *People) Len() int { return len(ps.names) }

// Get returns the person with exactly that name.
func (ps *People) Get(name string) (*Person, error) {
	p, ok := ps.byName[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrPersonNotFound)
	}
	return p, nil
}

// Names returns all names in iteration order.
func (ps *People) Names() []string { return slices.Clone(ps.names) }

// All iterates over every person.
func (ps *People) All() iter.Seq[*Person] {
	return func(yield func(*Person) bool) {
		for _, name := range ps.names {
			if !yield(ps.byName[name]) {
				return
			}
		}
	}
}

// WithDues iterates over persons that owe something.
func (ps *People) WithDues() iter.Seq[*Person] {
	return func(yield func(*Person) bool) {
		for p := range ps.All() {
			if p.HasDue() && !yield(p) {
				return
			}
		}
	}
}
