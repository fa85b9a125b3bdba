package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Discount is a percentage reduction attached to a menu item or deal.
// Catalog feeds deliver it either as a bare number (the percentage) or as a
// structured record; both decode into the same type.
type Discount struct {
	ID      string          `json:"id,omitempty"`
	Name    string          `json:"name,omitempty"`
	Value   decimal.Decimal `json:"value"`
	EndDate *time.Time      `json:"endDate,omitempty"`
}

// Percent returns the discount percentage, zero for a nil discount.
func (d *Discount) Percent() decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return d.Value
}

// UnmarshalJSON accepts either a bare percentage number or a structured
// discount object.
func (d *Discount) UnmarshalJSON(data []byte) error {
	var pct decimal.Decimal
	if err := json.Unmarshal(data, &pct); err == nil {
		*d = Discount{Value: pct}
		return nil
	}

	type alias Discount
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*d = Discount(obj)
	return nil
}
