package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TaxAppliedType selects the base amount tax is computed on.
type TaxAppliedType int

const (
	// TaxOnTotal applies tax to the full subtotal, before any discount.
	TaxOnTotal TaxAppliedType = 0
	// TaxOnDiscountedTotal applies tax to the subtotal net of the applied discount.
	TaxOnDiscountedTotal TaxAppliedType = 1
)

func (t TaxAppliedType) String() string {
	names := [...]string{"OnTotal", "OnDiscountedTotal"}
	if int(t) < 0 || int(t) >= len(names) {
		return "OnTotal"
	}
	return names[t]
}

func (t TaxAppliedType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TaxAppliedType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = TaxAppliedType(i)
		return nil
	}
	switch str {
	case "OnTotal":
		*t = TaxOnTotal
	case "OnDiscountedTotal":
		*t = TaxOnDiscountedTotal
	}
	return nil
}

func (t TaxAppliedType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TaxAppliedType) Scan(value interface{}) error {
	if value == nil {
		*t = TaxOnTotal
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = TaxAppliedType(v)
	case int:
		*t = TaxAppliedType(v)
	}
	return nil
}
