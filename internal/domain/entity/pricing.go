package entity

import (
	"github.com/shopspring/decimal"
)

// PriceLine is the priced view of a single cart line, kept for line-by-line
// display. Amounts are exact decimals; presentation layers round.
type PriceLine struct {
	Key       string          `json:"key"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitTotal decimal.Decimal `json:"unit_total"`
	LineTotal decimal.Decimal `json:"line_total"`
	// Discount is this line's contribution to the order discount, after the
	// per-item cap but before the branch-level cap.
	Discount decimal.Decimal `json:"discount"`
}

// PriceBreakdown is the full monetary derivation of a branch-scoped cart.
// CalculatedDiscount is the sum of per-item discounts; AppliedDiscount is the
// amount actually subtracted after the branch-level cap. Both are reported so
// the pre-cap value stays visible to the customer.
type PriceBreakdown struct {
	Currency           string          `json:"currency"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	CalculatedDiscount decimal.Decimal `json:"calculated_discount"`
	AppliedDiscount    decimal.Decimal `json:"applied_discount"`
	ServiceCharge      decimal.Decimal `json:"service_charge"`
	DeliveryCharge     decimal.Decimal `json:"delivery_charge"`
	Tax                decimal.Decimal `json:"tax"`
	GrandTotal         decimal.Decimal `json:"grand_total"`
	Lines              []PriceLine     `json:"lines"`
}
