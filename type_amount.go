package budget

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents a non-negative monetary quantity, without a currency.
// It is persisted as a bare JSON number and displayed with two decimal
// places. The currency is a display concern only, see Display.
type Amount struct {
	value decimal.Decimal
}

// A is a convenient factory for Amount.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Amount{value: v}
	case float32:
		return Amount{value: decimal.NewFromFloat32(v)}
	case float64:
		return Amount{value: decimal.NewFromFloat(v)}
	case int:
		return Amount{value: decimal.NewFromInt(int64(v))}
	case int32:
		return Amount{value: decimal.NewFromInt32(v)}
	case int64:
		return Amount{value: decimal.NewFromInt(v)}
	case uint:
		return Amount{value: decimal.NewFromUint64(uint64(v))}
	case uint32:
		return Amount{value: decimal.NewFromUint64(uint64(v))}
	case uint64:
		return Amount{value: decimal.NewFromUint64(v)}
	default:
		panic("unsupported amount type")
	}
}

// ParseAmount parses a decimal string like "12.50" into an Amount.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{value: d}, nil
}

func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool        { return a.value.IsZero() }
func (a Amount) IsNegative() bool    { return a.value.IsNegative() }

// String returns the amount with two decimal places, the display precision.
func (a Amount) String() string { return a.value.StringFixed(2) }

// Display formats the amount in the given ISO currency code, e.g. "€12.50".
func (a Amount) Display(currency string) string {
	// the Money constructor is the only way to get a never-nil currency.
	cur := money.New(0, currency).Currency()
	minor := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.Round(0).IntPart())
}

// MarshalJSON encodes the amount as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) { return a.value.MarshalJSON() }

// UnmarshalJSON decodes a JSON number (or numeric string) into the amount.
func (a *Amount) UnmarshalJSON(b []byte) error { return a.value.UnmarshalJSON(b) }

var _ json.Marshaler = (*Amount)(nil)
var _ json.Unmarshaler = (*Amount)(nil)
