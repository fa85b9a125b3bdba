package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkpoint/ordering-api/internal/domain/entity"
	"github.com/forkpoint/ordering-api/internal/domain/enum"
	"github.com/forkpoint/ordering-api/pkg/money"
)

func sampleSnapshot(sessionID string) *entity.CartSnapshot {
	branchID := uuid.New()
	return &entity.CartSnapshot{
		SchemaVersion:    entity.SnapshotSchemaVersion,
		SessionID:        sessionID,
		ActiveBranchID:   &branchID,
		ActiveBranchName: "Downtown",
		ServiceType:      enum.ServiceTypeDineIn,
		SplitType:        enum.SplitTypeItems,
		Items: []entity.CartItem{
			{
				CatalogID: "pizza-7",
				Name:      "Margherita",
				UnitPrice: money.FromFloat(12.5),
				Quantity:  2,
				VariantID: "lg",
				BranchID:  branchID,
				Modifiers: []entity.ModifierSelection{
					{ID: "cheese", Name: "Extra Cheese", UnitPrice: money.FromFloat(1.5), Quantity: 1},
				},
			},
		},
		SpecialInstructions: "no onions",
		AllergenIDs:         []string{"nuts"},
	}
}

func TestMemoryCartStateRoundTrip(t *testing.T) {
	repo := NewMemoryCartStateRepository()
	ctx := context.Background()
	snap := sampleSnapshot("s1")

	require.NoError(t, repo.Save(ctx, snap))
	loaded, err := repo.Load(ctx, "s1")

	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, entity.SnapshotSchemaVersion, loaded.SchemaVersion)
	assert.Equal(t, snap.ActiveBranchID, loaded.ActiveBranchID)
	assert.Equal(t, enum.ServiceTypeDineIn, loaded.ServiceType)
	assert.Equal(t, enum.SplitTypeItems, loaded.SplitType)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "pizza-7", loaded.Items[0].CatalogID)
	assert.Equal(t, 2, loaded.Items[0].Quantity)
	assert.True(t, loaded.Items[0].UnitPrice.Equal(snap.Items[0].UnitPrice.Decimal))
	assert.Equal(t, "no onions", loaded.SpecialInstructions)
	assert.Equal(t, []string{"nuts"}, loaded.AllergenIDs)
}

func TestMemoryCartStateLoadMissing(t *testing.T) {
	repo := NewMemoryCartStateRepository()

	loaded, err := repo.Load(context.Background(), "nope")

	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestMemoryCartStateLoadReturnsCopy(t *testing.T) {
	repo := NewMemoryCartStateRepository()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, sampleSnapshot("s1")))

	first, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	first.Items[0].Quantity = 99

	second, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, second.Items[0].Quantity)
}

func TestMemoryCartStateLastWriterWins(t *testing.T) {
	repo := NewMemoryCartStateRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleSnapshot("s1")))
	updated := sampleSnapshot("s1")
	updated.Items = nil
	require.NoError(t, repo.Save(ctx, updated))

	loaded, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Items)
}

func TestMemoryCartStateDelete(t *testing.T) {
	repo := NewMemoryCartStateRepository()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, sampleSnapshot("s1")))

	require.NoError(t, repo.Delete(ctx, "s1"))
	require.NoError(t, repo.Delete(ctx, "s1"))

	loaded, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
