package request

import "github.com/google/uuid"

// SubmitOrderRequest places the order for one branch's share of the cart.
type SubmitOrderRequest struct {
	BranchID uuid.UUID `json:"branch_id" binding:"required"`
}

// BranchRequest creates or updates a branch fee configuration.
type BranchRequest struct {
	Name                 string  `json:"name" binding:"required"`
	Currency             string  `json:"currency"`
	DeliveryCharge       float64 `json:"delivery_charge"`
	ServiceChargePercent float64 `json:"service_charge_percent"`
	TaxPercent           float64 `json:"tax_percent"`
	TaxAppliedType       int     `json:"tax_applied_type"`
	MaxDiscountAmount    float64 `json:"max_discount_amount"`
}
