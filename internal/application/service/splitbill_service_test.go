package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkpoint/ordering-api/internal/domain/entity"
	"github.com/forkpoint/ordering-api/internal/domain/enum"
)

func TestGenerateEqualitySplit(t *testing.T) {
	splitter := NewSplitBillService()
	items := []entity.CartItem{
		lineItem("pizza", 12.5, 2),
		lineItem("salad", 6.99, 1),
	}

	shares := splitter.Generate(items, enum.SplitTypeEquality)

	require.Len(t, shares, 1)
	assert.Equal(t, enum.SplitTypeEquality, shares[0].SplitType)
	assert.Equal(t, int64(3199), shares[0].AmountCents)
	assert.Equal(t, entity.EqualitySplitPayer, shares[0].PayerHandle)
	assert.Equal(t, entity.EqualitySplitLabel, shares[0].Label)
}

func TestGenerateItemsSplit(t *testing.T) {
	splitter := NewSplitBillService()
	items := []entity.CartItem{
		lineItem("pizza", 12.5, 2),
		lineItem("salad", 6.99, 1),
	}

	shares := splitter.Generate(items, enum.SplitTypeItems)

	require.Len(t, shares, 2)
	assert.Equal(t, int64(2500), shares[0].AmountCents)
	assert.Equal(t, "pizza", shares[0].PayerHandle)
	assert.Equal(t, "pizza", shares[0].Label)
	assert.Equal(t, int64(699), shares[1].AmountCents)
	assert.Equal(t, "salad", shares[1].Label)
}

func TestSplitModesConserveSubtotal(t *testing.T) {
	splitter := NewSplitBillService()
	items := []entity.CartItem{
		lineItem("a", 3.33, 3),
		lineItem("b", 7.77, 2),
		lineItem("c", 0.05, 7),
	}

	equality := splitter.Generate(items, enum.SplitTypeEquality)
	byItem := splitter.Generate(items, enum.SplitTypeItems)

	var equalityTotal, itemTotal int64
	for _, s := range equality {
		equalityTotal += s.AmountCents
	}
	for _, s := range byItem {
		itemTotal += s.AmountCents
	}

	assert.Equal(t, equalityTotal, itemTotal)
}

func TestSplitByItemSubCentPricesConserve(t *testing.T) {
	splitter := NewSplitBillService()
	// Each line alone rounds to a full cent; naive per-line rounding would
	// sum to 3 against an equality share of 2.
	items := []entity.CartItem{
		lineItem("a", 0.005, 1),
		lineItem("b", 0.005, 1),
		lineItem("c", 0.005, 1),
	}

	equality := splitter.Generate(items, enum.SplitTypeEquality)
	byItem := splitter.Generate(items, enum.SplitTypeItems)

	require.Len(t, equality, 1)
	var itemTotal int64
	for _, s := range byItem {
		itemTotal += s.AmountCents
	}
	assert.Equal(t, equality[0].AmountCents, itemTotal)
	assert.Equal(t, int64(2), itemTotal)
}

func TestGenerateIgnoresDiscounts(t *testing.T) {
	splitter := NewSplitBillService()
	items := []entity.CartItem{discounted(lineItem("a", 10, 1), 50, 0)}

	shares := splitter.Generate(items, enum.SplitTypeEquality)

	require.Len(t, shares, 1)
	assert.Equal(t, int64(1000), shares[0].AmountCents)
}

func TestGenerateEmptyCart(t *testing.T) {
	splitter := NewSplitBillService()

	equality := splitter.Generate(nil, enum.SplitTypeEquality)
	require.Len(t, equality, 1)
	assert.Zero(t, equality[0].AmountCents)

	byItem := splitter.Generate(nil, enum.SplitTypeItems)
	assert.Empty(t, byItem)
}
