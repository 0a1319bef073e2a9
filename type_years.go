package credit

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// maxExponent bounds the decimal exponent of numbers typed on the console.
const maxExponent = 18

// parseDecimal parses a decimal typed on the console. Exponent notation is accepted
// as long as the exponent stays within maxExponent, e.g. "1e3" but not "1e-999999999".
func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, err
	}
	if e := d.Exponent(); e > maxExponent || e < -maxExponent {
		return decimal.Decimal{}, fmt.Errorf("exponent %d is out of [-%d, %d]", e, maxExponent, maxExponent)
	}
	return d, nil
}

// Years is the duration of a credit, in years. Fractions are allowed: Y(0.5) is six months.
type Years struct {
	value decimal.Decimal
}

// Y creates Years from a numeric constant.
func Y[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Years {
	return Years{value: newDecimal(value)}
}

// ParseYears parses a duration typed on the console.
func ParseYears(s string) (Years, error) {
	d, err := parseDecimal(s)
	if err != nil {
		return Years{}, fmt.Errorf("cannot parse duration %q: %w", s, err)
	}
	return Years{value: d}, nil
}

func (y Years) Equal(z Years) bool { return y.value.Equal(z.value) }
func (y Years) IsPositive() bool   { return y.value.IsPositive() }
func (y Years) String() string     { return y.value.String() }

func (y Years) MarshalJSON() ([]byte, error) { return y.value.MarshalJSON() }
