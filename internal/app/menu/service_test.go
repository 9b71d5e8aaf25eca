package menu

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
	"github.com/nadanruchi/storefront/internal/domain"
	"github.com/nadanruchi/storefront/internal/interfaces"
	"github.com/nadanruchi/storefront/internal/notify"
	"github.com/nadanruchi/storefront/internal/storage"
)

func newTestService() (*Service, *notify.Bus) {
	bus := notify.NewBus()
	return NewService(storage.NewMemory(), bus, nil, logger.Nop()), bus
}

func testItem(id string) domain.MenuItem {
	return domain.MenuItem{
		ID:                id,
		Name:              "Puttu & Kadala",
		Category:          domain.CategoryBreakfast,
		Price:             decimal.RequireFromString("12.5"),
		AvailableQuantity: 20,
		MaxPerCart:        10,
	}
}

func TestService_UpsertAndList(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	require.NoError(t, svc.Upsert(ctx, testItem("puttu")))
	require.NoError(t, svc.Upsert(ctx, testItem("dosa")))

	items := svc.List(ctx)
	require.Len(t, items, 2)

	t.Run("upsert replaces by id", func(t *testing.T) {
		updated := testItem("puttu")
		updated.Price = decimal.RequireFromString("15")
		require.NoError(t, svc.Upsert(ctx, updated))

		items := svc.List(ctx)
		require.Len(t, items, 2)
		got, ok := svc.Get(ctx, "puttu")
		require.True(t, ok)
		assert.True(t, got.Price.Equal(decimal.RequireFromString("15")))
	})

	t.Run("invalid item rejected", func(t *testing.T) {
		bad := testItem("x")
		bad.Category = "Brunch"
		assert.Error(t, svc.Upsert(ctx, bad))
	})

	t.Run("unavailable item loses highlight on save", func(t *testing.T) {
		item := testItem("idli")
		item.Highlighted = true
		item.Unavailable = true
		require.NoError(t, svc.Upsert(ctx, item))

		got, ok := svc.Get(ctx, "idli")
		require.True(t, ok)
		assert.False(t, got.Highlighted)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()
	require.NoError(t, svc.Upsert(ctx, testItem("puttu")))

	require.NoError(t, svc.Delete(ctx, "puttu"))
	_, ok := svc.Get(ctx, "puttu")
	assert.False(t, ok)

	assert.ErrorIs(t, svc.Delete(ctx, "puttu"), domain.ErrItemNotFound)
}

func TestService_SetCategoryFlag(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	breakfast := testItem("puttu")
	lunch := testItem("meals")
	lunch.Category = domain.CategoryLunch
	require.NoError(t, svc.Upsert(ctx, breakfast))
	require.NoError(t, svc.Upsert(ctx, lunch))

	t.Run("only the named category changes", func(t *testing.T) {
		require.NoError(t, svc.SetCategoryFlag(ctx, domain.CategoryBreakfast, interfaces.FlagUnavailable, true))

		got, _ := svc.Get(ctx, "puttu")
		assert.True(t, got.Unavailable)
		got, _ = svc.Get(ctx, "meals")
		assert.False(t, got.Unavailable)
	})

	t.Run("marking a category unavailable clears its highlights", func(t *testing.T) {
		item := testItem("appam")
		item.Highlighted = true
		require.NoError(t, svc.Upsert(ctx, item))

		require.NoError(t, svc.SetCategoryFlag(ctx, domain.CategoryBreakfast, interfaces.FlagUnavailable, true))
		got, _ := svc.Get(ctx, "appam")
		assert.True(t, got.Unavailable)
		assert.False(t, got.Highlighted)
	})

	t.Run("invalid flag rejected", func(t *testing.T) {
		assert.Error(t, svc.SetCategoryFlag(ctx, domain.CategoryBreakfast, "veg", true))
	})

	t.Run("invalid category rejected", func(t *testing.T) {
		assert.Error(t, svc.SetCategoryFlag(ctx, "Brunch", interfaces.FlagUnavailable, true))
	})
}

func TestService_NotifiesOnMutation(t *testing.T) {
	ctx := context.Background()
	svc, bus := newTestService()

	notified := 0
	defer bus.Subscribe(notify.TopicMenuUpdated, func() { notified++ })()

	require.NoError(t, svc.Upsert(ctx, testItem("puttu")))
	require.NoError(t, svc.SetCategoryFlag(ctx, domain.CategoryBreakfast, interfaces.FlagHighlighted, true))
	require.NoError(t, svc.Delete(ctx, "puttu"))

	assert.Equal(t, 3, notified)
}

func TestService_SeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	require.NoError(t, svc.SeedIfEmpty(ctx))
	seeded := svc.List(ctx)
	assert.NotEmpty(t, seeded)

	t.Run("second seed is a no-op", func(t *testing.T) {
		require.NoError(t, svc.SeedIfEmpty(ctx))
		assert.Len(t, svc.List(ctx), len(seeded))
	})

	t.Run("emptied catalog stays empty", func(t *testing.T) {
		for _, item := range svc.List(ctx) {
			require.NoError(t, svc.Delete(ctx, item.ID))
		}
		require.NoError(t, svc.SeedIfEmpty(ctx))
		assert.Empty(t, svc.List(ctx))
	})
}
