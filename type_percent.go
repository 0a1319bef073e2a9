package credit

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a yearly interest rate expressed in percent: P(10) is 10% per year.
type Percent struct {
	value decimal.Decimal
}

// P creates a Percent from a numeric constant.
func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

// ParsePercent parses a rate typed on the console, e.g. "10" or "2.5".
func ParsePercent(s string) (Percent, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return Percent{}, fmt.Errorf("cannot parse rate %q: %w", s, err)
	}
	return Percent{value: d}, nil
}

func (p Percent) Equal(q Percent) bool { return p.value.Equal(q.value) }
func (p Percent) IsPositive() bool     { return p.value.IsPositive() }

// Ratio returns the rate as a plain factor: 10% is 0.1.
func (p Percent) Ratio() decimal.Decimal { return p.value.Shift(-2) }

func (p Percent) String() string {
	return p.value.StringFixed(2) + "%"
}

func (p Percent) MarshalJSON() ([]byte, error) { return p.value.MarshalJSON() }
