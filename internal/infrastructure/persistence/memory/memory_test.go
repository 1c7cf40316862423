package memory

import (
	"context"
	"testing"
	"time"

	"github.com/foodflow/backend/internal/domain/catalog"
	"github.com/foodflow/backend/internal/domain/ordering"
	"github.com/foodflow/backend/internal/domain/promotion"
	"github.com/foodflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()
	venueID := uuid.New()
	tableID := uuid.New()

	t.Run("missing order", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	order, err := ordering.NewOrder(venueID, tableID, 7, time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, order))

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, found.ID)
	})

	t.Run("find open by table", func(t *testing.T) {
		found, err := repo.FindOpenByTable(ctx, venueID, tableID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, found.ID)

		_, err = repo.FindOpenByTable(ctx, venueID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestProductRepository(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()
	venueID := uuid.New()

	first, err := catalog.NewProduct(venueID, "Birra", "Bebidas", decimal.NewFromInt(1000))
	require.NoError(t, err)
	first.SetSortOrder(2)
	second, err := catalog.NewProduct(venueID, "Papas", "Comida", decimal.NewFromInt(1200))
	require.NoError(t, err)
	second.SetSortOrder(1)
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "Birra", found.Name)
	})

	t.Run("venue listing follows sort order", func(t *testing.T) {
		products, err := repo.FindByVenue(ctx, venueID)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Papas", products[0].Name)
		assert.Equal(t, "Birra", products[1].Name)
	})

	t.Run("other venue sees nothing", func(t *testing.T) {
		products, err := repo.FindByVenue(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestPromotionProvider(t *testing.T) {
	provider := NewPromotionProvider()
	ctx := context.Background()
	venueID := uuid.New()

	strategy, err := promotion.NewPercentageDiscount(decimal.NewFromInt(10))
	require.NoError(t, err)
	trigger, err := promotion.NewMinimumAmountTrigger(decimal.NewFromInt(1))
	require.NoError(t, err)
	scope, err := promotion.NewScope([]promotion.ScopeEntry{
		{Ref: promotion.CategoryRef("Bebidas"), Role: promotion.RoleBeneficiary},
	})
	require.NoError(t, err)

	promo, err := promotion.NewPromotion(venueID, "Happy hour", "", 1, strategy, []promotion.Trigger{trigger}, scope)
	require.NoError(t, err)
	require.NoError(t, provider.Save(ctx, promo))

	active, err := provider.ActiveForVenue(ctx, venueID)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	require.NoError(t, promo.Deactivate())
	require.NoError(t, provider.Save(ctx, promo))

	active, err = provider.ActiveForVenue(ctx, venueID)
	require.NoError(t, err)
	assert.Empty(t, active)
}
