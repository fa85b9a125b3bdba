package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkpoint/ordering-api/internal/domain/entity"
	"github.com/forkpoint/ordering-api/internal/domain/enum"
	"github.com/forkpoint/ordering-api/pkg/apperror"
	"github.com/forkpoint/ordering-api/pkg/money"
)

func pricingBranch() *entity.Branch {
	return &entity.Branch{
		ID:       uuid.New(),
		Name:     "Downtown",
		Currency: "USD",
	}
}

func lineItem(id string, price float64, qty int) entity.CartItem {
	return entity.CartItem{
		CatalogID: id,
		Name:      id,
		UnitPrice: money.FromFloat(price),
		Quantity:  qty,
		BranchID:  uuid.New(),
	}
}

func discounted(item entity.CartItem, percent float64, perUnitCap float64) entity.CartItem {
	item.Discount = &entity.Discount{Value: decimal.NewFromFloat(percent)}
	item.MaxAllowedDiscount = money.FromFloat(perUnitCap)
	return item
}

func TestQuoteNilBranch(t *testing.T) {
	engine := NewPricingService()

	_, err := engine.Quote([]entity.CartItem{lineItem("a", 10, 1)}, nil, enum.ServiceTypeDineIn)

	assert.ErrorIs(t, err, apperror.ErrBranchConfigRequired)
}

func TestQuoteEmptyCart(t *testing.T) {
	engine := NewPricingService()

	quote, err := engine.Quote(nil, pricingBranch(), enum.ServiceTypeDineIn)

	require.NoError(t, err)
	assert.True(t, quote.Subtotal.IsZero())
	assert.True(t, quote.GrandTotal.IsZero())
	assert.Empty(t, quote.Lines)
}

func TestQuotePerItemDiscountCap(t *testing.T) {
	engine := NewPricingService()
	// 50% of 1000 would be 500; the per-unit cap of 300 wins.
	items := []entity.CartItem{discounted(lineItem("a", 1000, 1), 50, 300)}

	quote, err := engine.Quote(items, pricingBranch(), enum.ServiceTypeTakeaway)

	require.NoError(t, err)
	assert.Equal(t, "300", quote.CalculatedDiscount.String())
	assert.Equal(t, "300", quote.AppliedDiscount.String())
	assert.Equal(t, "700", quote.GrandTotal.String())
}

func TestQuotePerItemCapScalesWithQuantity(t *testing.T) {
	engine := NewPricingService()
	// 50% of 2000 is 1000; cap 300 per unit, times quantity 2, is 600.
	items := []entity.CartItem{discounted(lineItem("a", 1000, 2), 50, 300)}

	quote, err := engine.Quote(items, pricingBranch(), enum.ServiceTypeTakeaway)

	require.NoError(t, err)
	assert.Equal(t, "600", quote.CalculatedDiscount.String())
}

func TestQuoteBranchDiscountCap(t *testing.T) {
	engine := NewPricingService()
	branch := pricingBranch()
	branch.MaxDiscountAmount = decimal.NewFromInt(400)
	items := []entity.CartItem{
		discounted(lineItem("a", 1000, 1), 50, 300),
		discounted(lineItem("b", 1000, 1), 50, 300),
	}

	quote, err := engine.Quote(items, branch, enum.ServiceTypeTakeaway)

	require.NoError(t, err)
	assert.Equal(t, "600", quote.CalculatedDiscount.String())
	assert.Equal(t, "400", quote.AppliedDiscount.String())
	// Line discounts keep their pre-cap values; the cap only narrows the
	// order-level applied amount.
	assert.Equal(t, "300", quote.Lines[0].Discount.String())
	assert.Equal(t, "300", quote.Lines[1].Discount.String())
	assert.Equal(t, "1600", quote.GrandTotal.String())
}

func TestQuoteZeroBranchCapMeansUncapped(t *testing.T) {
	engine := NewPricingService()
	items := []entity.CartItem{discounted(lineItem("a", 1000, 1), 50, 0)}

	quote, err := engine.Quote(items, pricingBranch(), enum.ServiceTypeTakeaway)

	require.NoError(t, err)
	assert.Equal(t, "500", quote.AppliedDiscount.String())
}

func TestQuoteServiceChargeDineInOnly(t *testing.T) {
	engine := NewPricingService()
	branch := pricingBranch()
	branch.ServiceChargePercent = decimal.NewFromInt(10)
	items := []entity.CartItem{discounted(lineItem("a", 1000, 1), 10, 0)}

	for _, st := range []enum.ServiceType{enum.ServiceTypeDelivery, enum.ServiceTypeTakeaway, enum.ServiceTypeReservation} {
		quote, err := engine.Quote(items, branch, st)
		require.NoError(t, err)
		assert.True(t, quote.ServiceCharge.IsZero(), "service charge for %s", st)
	}

	quote, err := engine.Quote(items, branch, enum.ServiceTypeDineIn)
	require.NoError(t, err)
	// 10% of the discounted subtotal (1000 - 100).
	assert.Equal(t, "90", quote.ServiceCharge.String())
}

func TestQuoteDeliveryChargeDeliveryOnly(t *testing.T) {
	engine := NewPricingService()
	branch := pricingBranch()
	branch.DeliveryCharge = decimal.NewFromInt(50)
	items := []entity.CartItem{lineItem("a", 1000, 1)}

	for _, st := range []enum.ServiceType{enum.ServiceTypeDineIn, enum.ServiceTypeTakeaway, enum.ServiceTypeReservation} {
		quote, err := engine.Quote(items, branch, st)
		require.NoError(t, err)
		assert.True(t, quote.DeliveryCharge.IsZero(), "delivery charge for %s", st)
	}

	quote, err := engine.Quote(items, branch, enum.ServiceTypeDelivery)
	require.NoError(t, err)
	assert.Equal(t, "50", quote.DeliveryCharge.String())
	assert.Equal(t, "1050", quote.GrandTotal.String())
}

func TestQuoteTaxBasis(t *testing.T) {
	engine := NewPricingService()
	items := []entity.CartItem{discounted(lineItem("a", 1000, 1), 10, 0)}

	onTotal := pricingBranch()
	onTotal.TaxPercent = decimal.NewFromInt(10)
	onTotal.TaxAppliedType = enum.TaxOnTotal

	quote, err := engine.Quote(items, onTotal, enum.ServiceTypeTakeaway)
	require.NoError(t, err)
	assert.Equal(t, "100", quote.Tax.String())
	assert.Equal(t, "1000", quote.GrandTotal.String())

	onDiscounted := pricingBranch()
	onDiscounted.TaxPercent = decimal.NewFromInt(10)
	onDiscounted.TaxAppliedType = enum.TaxOnDiscountedTotal

	quote, err = engine.Quote(items, onDiscounted, enum.ServiceTypeTakeaway)
	require.NoError(t, err)
	assert.Equal(t, "90", quote.Tax.String())
	assert.Equal(t, "990", quote.GrandTotal.String())
}

func TestQuoteZeroTaxPercentSkipsTax(t *testing.T) {
	engine := NewPricingService()
	branch := pricingBranch()
	branch.TaxAppliedType = enum.TaxOnTotal

	quote, err := engine.Quote([]entity.CartItem{lineItem("a", 1000, 1)}, branch, enum.ServiceTypeTakeaway)

	require.NoError(t, err)
	assert.True(t, quote.Tax.IsZero())
}

func TestQuoteLinesSumToTopLine(t *testing.T) {
	engine := NewPricingService()
	items := []entity.CartItem{
		discounted(lineItem("a", 12.5, 3), 20, 0),
		discounted(lineItem("b", 7.25, 2), 15, 1),
		lineItem("c", 4.99, 5),
	}

	quote, err := engine.Quote(items, pricingBranch(), enum.ServiceTypeTakeaway)
	require.NoError(t, err)

	subtotal := decimal.Zero
	calc := decimal.Zero
	for _, line := range quote.Lines {
		subtotal = subtotal.Add(line.LineTotal)
		calc = calc.Add(line.Discount)
	}
	assert.True(t, subtotal.Equal(quote.Subtotal))
	assert.True(t, calc.Equal(quote.CalculatedDiscount))
}

func TestQuoteModifiersEnterSubtotal(t *testing.T) {
	engine := NewPricingService()
	item := lineItem("a", 8, 3)
	item.Modifiers = []entity.ModifierSelection{
		{ID: "cheese", UnitPrice: money.FromFloat(1.5), Quantity: 2},
	}
	item.Customizations = []entity.CustomizationSelection{
		{GroupID: "size", OptionPrice: money.FromFloat(0.5)},
	}

	quote, err := engine.Quote([]entity.CartItem{item}, pricingBranch(), enum.ServiceTypeTakeaway)

	require.NoError(t, err)
	// (8 + 1.5*2 + 0.5) * 3
	assert.Equal(t, "34.5", quote.Subtotal.String())
}
