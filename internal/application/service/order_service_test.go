package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkpoint/ordering-api/internal/domain/entity"
	"github.com/forkpoint/ordering-api/internal/domain/enum"
	"github.com/forkpoint/ordering-api/pkg/apperror"
	"github.com/forkpoint/ordering-api/pkg/money"
)

type mockOrderGateway struct {
	lastPayload *entity.OrderPayload
	ref         string
	err         error
}

func (m *mockOrderGateway) Submit(_ context.Context, payload *entity.OrderPayload) (string, error) {
	m.lastPayload = payload
	if m.err != nil {
		return "", m.err
	}
	return m.ref, nil
}

func orderFixture(t *testing.T) (*OrderService, *mockOrderGateway, *CartService, *entity.Branch) {
	t.Helper()
	gateway := &mockOrderGateway{ref: "ORD-test"}
	orders := NewOrderService(gateway, NewPricingService(), NewSplitBillService())

	branch := pricingBranch()
	branch.TaxPercent = decimal.NewFromInt(10)
	branch.TaxAppliedType = enum.TaxOnDiscountedTotal
	branch.DeliveryCharge = decimal.NewFromInt(3)

	cart := NewCartService("s1", nil)
	cart.SetActiveBranch(context.Background(), branch)
	return orders, gateway, cart, branch
}

func TestBuildPayloadNilBranch(t *testing.T) {
	orders, _, cart, _ := orderFixture(t)

	_, err := orders.BuildPayload(cart, nil)

	assert.ErrorIs(t, err, apperror.ErrBranchConfigRequired)
}

func TestBuildPayloadEmptyBranch(t *testing.T) {
	orders, _, cart, branch := orderFixture(t)

	_, err := orders.BuildPayload(cart, branch)

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestBuildPayloadTotals(t *testing.T) {
	orders, _, cart, branch := orderFixture(t)
	ctx := context.Background()

	cart.AddItem(ctx, menuItemEntry("pizza-7", 10), nil)
	cart.AddItem(ctx, menuItemEntry("pizza-7", 10), nil)
	cart.SetServiceType(ctx, enum.ServiceTypeDelivery)
	cart.SetDeliveryDetails(ctx, &entity.DeliveryDetails{Address: "12 River St"})
	cart.SetInstructions(ctx, "ring twice")

	payload, err := orders.BuildPayload(cart, branch)

	require.NoError(t, err)
	assert.Equal(t, branch.ID, payload.BranchID)
	assert.Equal(t, enum.ServiceTypeDelivery, payload.ServiceType)
	require.Len(t, payload.Items, 1)
	assert.Equal(t, "pizza-7", payload.Items[0].MenuItemID)
	assert.Equal(t, 2, payload.Items[0].Quantity)

	// subtotal 20, tax 10% of 20 = 2, delivery 3
	assert.Equal(t, int64(2000), payload.SubtotalCents)
	assert.Equal(t, int64(200), payload.TaxCents)
	assert.Equal(t, int64(300), payload.DeliveryChargeCents)
	assert.Equal(t, int64(2500), payload.TotalCents)
	assert.Equal(t, "USD", payload.Currency)

	require.NotNil(t, payload.Delivery)
	assert.Equal(t, "12 River St", payload.Delivery.Address)
	assert.Nil(t, payload.Takeaway)
	assert.Equal(t, "ring twice", payload.SpecialInstructions)

	require.Len(t, payload.SplitBills, 1)
	assert.Equal(t, int64(2000), payload.SplitBills[0].AmountCents)
}

func TestBuildPayloadScopedToBranch(t *testing.T) {
	orders, _, cart, branch := orderFixture(t)
	ctx := context.Background()

	cart.AddItem(ctx, menuItemEntry("pizza-7", 10), nil)
	other := testBranch("Riverside")
	cart.SetActiveBranch(ctx, other)
	cart.AddItem(ctx, menuItemEntry("salad-2", 6), nil)

	payload, err := orders.BuildPayload(cart, branch)

	require.NoError(t, err)
	require.Len(t, payload.Items, 1)
	assert.Equal(t, "pizza-7", payload.Items[0].MenuItemID)
	assert.Equal(t, int64(1000), payload.SubtotalCents)
}

func TestSubmitClearsOnlySubmittedBranch(t *testing.T) {
	orders, gateway, cart, branch := orderFixture(t)
	ctx := context.Background()

	cart.AddItem(ctx, menuItemEntry("pizza-7", 10), nil)
	other := testBranch("Riverside")
	cart.SetActiveBranch(ctx, other)
	cart.AddItem(ctx, menuItemEntry("salad-2", 6), nil)

	ref, err := orders.Submit(ctx, cart, branch)

	require.NoError(t, err)
	assert.Equal(t, "ORD-test", ref)
	require.NotNil(t, gateway.lastPayload)
	assert.Empty(t, cart.ItemsForBranch(branch.ID))
	assert.Len(t, cart.ItemsForBranch(other.ID), 1)
}

func TestSubmitKeepsCartOnGatewayFailure(t *testing.T) {
	orders, gateway, cart, branch := orderFixture(t)
	gateway.err = assert.AnError
	ctx := context.Background()

	cart.AddItem(ctx, menuItemEntry("pizza-7", 10), nil)

	_, err := orders.Submit(ctx, cart, branch)

	assert.Error(t, err)
	assert.Len(t, cart.ItemsForBranch(branch.ID), 1)
}

func TestBuildPayloadItemsSplitMode(t *testing.T) {
	orders, _, cart, branch := orderFixture(t)
	ctx := context.Background()

	cart.AddItem(ctx, menuItemEntry("pizza-7", 10), nil)
	cart.AddItem(ctx, menuItemEntry("salad-2", 6), nil)
	cart.SetSplitType(ctx, enum.SplitTypeItems)

	payload, err := orders.BuildPayload(cart, branch)

	require.NoError(t, err)
	require.Len(t, payload.SplitBills, 2)
	assert.Equal(t, int64(1000), payload.SplitBills[0].AmountCents)
	assert.Equal(t, int64(600), payload.SplitBills[1].AmountCents)
}

func TestBuildPayloadTranslatesSelections(t *testing.T) {
	orders, _, cart, branch := orderFixture(t)
	ctx := context.Background()

	item := entity.MenuItem{
		ID:    "pizza-7",
		Name:  "Margherita",
		Price: money.FromFloat(10),
		Variations: []entity.Variant{
			{ID: "lg", Name: "Large", Price: money.FromFloat(12)},
		},
		Modifiers: []entity.Modifier{
			{ID: "cheese", Name: "Extra Cheese", Price: money.FromFloat(2)},
		},
		Customizations: []entity.Customization{
			{ID: "crust", Name: "Crust", Options: []entity.CustomizationOption{
				{ID: "thin", Name: "Thin", Price: money.FromFloat(0)},
			}},
		},
	}
	cart.AddItem(ctx, entity.NewMenuItemEntry(item), &ItemSelections{
		VariantID:      "lg",
		Modifiers:      map[string]int{"cheese": 2},
		Customizations: map[string]string{"crust": "thin"},
	})

	payload, err := orders.BuildPayload(cart, branch)

	require.NoError(t, err)
	require.Len(t, payload.Items, 1)
	got := payload.Items[0]
	assert.Equal(t, "pizza-7", got.MenuItemID)
	assert.Equal(t, "lg", got.VariantID)
	require.Len(t, got.Modifiers, 1)
	assert.Equal(t, "cheese", got.Modifiers[0].ModifierID)
	assert.Equal(t, 2, got.Modifiers[0].Quantity)
	require.Len(t, got.Customizations, 1)
	assert.Equal(t, "crust", got.Customizations[0].CustomizationID)
	assert.Equal(t, "thin", got.Customizations[0].OptionID)
	// variant 12 + cheese 2*2 = 16
	assert.Equal(t, int64(1600), payload.SubtotalCents)
}
