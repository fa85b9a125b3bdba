package service

import (
	"github.com/shopspring/decimal"

	"github.com/forkpoint/ordering-api/internal/domain/entity"
	"github.com/forkpoint/ordering-api/internal/domain/enum"
	"github.com/forkpoint/ordering-api/pkg/apperror"
)

var hundred = decimal.NewFromInt(100)

// PricingService derives the monetary breakdown of a branch-scoped cart.
// Quote is a pure computation over already-resolved inputs: the caller fetches
// the branch fee configuration up front and the engine never reaches out for
// data. No intermediate value is rounded; presentation layers round.
type PricingService struct{}

// NewPricingService creates a new pricing service
func NewPricingService() *PricingService {
	return &PricingService{}
}

// Quote prices the given lines under the branch's fee configuration and the
// session's service type. A nil branch is a hard error, distinct from a zero
// quote.
//
// The discount is capped in two stages: each line's discount is limited by
// its per-unit cap times quantity, and the summed discount is then limited by
// the branch's order-level cap. The pre-cap sum is reported alongside the
// applied amount.
func (s *PricingService) Quote(items []entity.CartItem, branch *entity.Branch, serviceType enum.ServiceType) (*entity.PriceBreakdown, error) {
	if branch == nil {
		return nil, apperror.ErrBranchConfigRequired
	}

	breakdown := &entity.PriceBreakdown{
		Currency:           branch.Currency,
		Subtotal:           decimal.Zero,
		CalculatedDiscount: decimal.Zero,
		AppliedDiscount:    decimal.Zero,
		ServiceCharge:      decimal.Zero,
		DeliveryCharge:     decimal.Zero,
		Tax:                decimal.Zero,
		Lines:              make([]entity.PriceLine, 0, len(items)),
	}

	for i := range items {
		item := &items[i]
		lineTotal := item.LineTotal()
		breakdown.Subtotal = breakdown.Subtotal.Add(lineTotal)

		lineDiscount := lineTotal.Mul(item.Discount.Percent()).Div(hundred)
		if !item.MaxAllowedDiscount.IsZero() {
			lineCap := item.MaxAllowedDiscount.Mul(decimal.NewFromInt(int64(item.Quantity)))
			if lineDiscount.GreaterThan(lineCap) {
				lineDiscount = lineCap
			}
		}
		breakdown.CalculatedDiscount = breakdown.CalculatedDiscount.Add(lineDiscount)

		breakdown.Lines = append(breakdown.Lines, entity.PriceLine{
			Key:       item.Key(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitTotal: item.UnitTotal(),
			LineTotal: lineTotal,
			Discount:  lineDiscount,
		})
	}

	// Branch-level cap. The capped amount is not redistributed across lines;
	// line discounts keep their pre-cap values for display.
	breakdown.AppliedDiscount = breakdown.CalculatedDiscount
	if branch.MaxDiscountAmount.IsPositive() && breakdown.AppliedDiscount.GreaterThan(branch.MaxDiscountAmount) {
		breakdown.AppliedDiscount = branch.MaxDiscountAmount
	}

	discounted := breakdown.Subtotal.Sub(breakdown.AppliedDiscount)

	if serviceType == enum.ServiceTypeDineIn {
		breakdown.ServiceCharge = discounted.Mul(branch.ServiceChargePercent).Div(hundred)
	}

	if serviceType == enum.ServiceTypeDelivery {
		breakdown.DeliveryCharge = branch.DeliveryCharge
	}

	if branch.TaxPercent.IsPositive() {
		base := breakdown.Subtotal
		if branch.TaxAppliedType == enum.TaxOnDiscountedTotal {
			base = discounted
		}
		breakdown.Tax = base.Mul(branch.TaxPercent).Div(hundred)
	}

	breakdown.GrandTotal = breakdown.Subtotal.
		Add(breakdown.ServiceCharge).
		Add(breakdown.DeliveryCharge).
		Add(breakdown.Tax).
		Sub(breakdown.AppliedDiscount)

	return breakdown, nil
}
