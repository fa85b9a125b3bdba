package money

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary value with arbitrary precision. Catalog feeds deliver
// prices as JSON numbers or as strings ("249.99", sometimes with currency
// noise); Amount decodes both and coerces anything unparseable to zero so a
// single malformed price never breaks an entire menu payload.
type Amount struct {
	decimal.Decimal
}

// Zero returns a zero amount.
func Zero() Amount {
	return Amount{decimal.Zero}
}

// FromDecimal wraps a decimal as an Amount.
func FromDecimal(d decimal.Decimal) Amount {
	return Amount{d}
}

// FromFloat creates an Amount from a float64.
func FromFloat(f float64) Amount {
	return Amount{decimal.NewFromFloat(f)}
}

// FromInt creates an Amount from whole currency units.
func FromInt(n int64) Amount {
	return Amount{decimal.NewFromInt(n)}
}

// Parse converts a price string to an Amount. Unparseable input yields zero.
func Parse(s string) Amount {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Zero()
	}
	return Amount{d}
}

// Cents returns the amount in the smallest currency unit, rounded half-up.
func (a Amount) Cents() int64 {
	return a.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.Decimal.IsZero()
}

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
// Malformed values decode as zero rather than failing the document.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		a.Decimal = decimal.Zero
		return nil
	}
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			a.Decimal = decimal.Zero
			return nil
		}
		*a = Parse(str)
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// MarshalJSON renders the amount as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}
