package credit

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// fraction is the number of fraction digits used to display money.
const fraction = 2

// formatter renders minor units as "$1234.56". There is no thousand separator
// so that amounts can be typed back as they are printed.
var formatter = money.NewFormatter(fraction, ".", "", "$", "$1")

// Money represents a monetary value in the single implicit currency of the ledger.
//
// The value is kept exact: it is only rounded when displayed.
type Money struct {
	value decimal.Decimal // as major unit value
}

// M creates a Money from a numeric constant.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a decimal string as typed on the console, e.g. "880" or "12.5".
func ParseMoney(s string) (Money, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return Money{}, fmt.Errorf("cannot parse amount %q: %w", s, err)
	}
	return Money{value: d}, nil
}

// String returns the amount with exactly two fraction digits, e.g. "$880.00".
func (m Money) String() string {
	cents := m.value.Round(fraction).Shift(fraction)
	if cents.BigInt().IsInt64() {
		return formatter.Format(cents.IntPart())
	}
	// Too large for go-money minor units.
	if m.value.IsNegative() {
		return "-$" + m.value.Abs().StringFixed(fraction)
	}
	return "$" + m.value.StringFixed(fraction)
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }

// Rounded returns the amount rounded to cents, as it is displayed.
func (m Money) Rounded() decimal.Decimal { return m.value.Round(fraction) }

// MarshalJSON writes the amount as a JSON number rounded to cents.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.StringFixed(fraction)), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	return m.value.UnmarshalJSON(b)
}
