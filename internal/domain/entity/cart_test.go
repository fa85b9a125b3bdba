package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/forkpoint/ordering-api/pkg/money"
)

func TestCartItemKey(t *testing.T) {
	branchID := uuid.New()

	plain := CartItem{CatalogID: "pizza-7", BranchID: branchID}
	assert.Equal(t, "pizza-7::default::"+branchID.String(), plain.Key())

	withVariant := CartItem{CatalogID: "pizza-7", VariantID: "lg", BranchID: branchID}
	assert.Equal(t, "pizza-7::lg::"+branchID.String(), withVariant.Key())

	assert.NotEqual(t, plain.Key(), withVariant.Key())
}

func TestCartItemMatchesKey(t *testing.T) {
	branchID := uuid.New()
	item := CartItem{CatalogID: "pizza-7", VariantID: "lg", BranchID: branchID}

	assert.True(t, item.MatchesKey("pizza-7"))
	assert.True(t, item.MatchesKey(item.Key()))
	assert.False(t, item.MatchesKey("pizza-8"))
	assert.False(t, item.MatchesKey("pizza-7::sm::"+branchID.String()))
}

func TestCartItemTotals(t *testing.T) {
	item := CartItem{
		CatalogID: "burger-1",
		UnitPrice: money.FromFloat(8),
		Quantity:  3,
		Modifiers: []ModifierSelection{
			{ID: "bacon", UnitPrice: money.FromFloat(1.5), Quantity: 2},
		},
		Customizations: []CustomizationSelection{
			{GroupID: "bun", OptionID: "brioche", OptionPrice: money.FromFloat(0.5)},
		},
	}

	// 8 + 1.5*2 + 0.5 = 11.5 per unit
	assert.Equal(t, "11.5", item.UnitTotal().String())
	assert.Equal(t, "34.5", item.LineTotal().String())
}
