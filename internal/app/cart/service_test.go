package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
	"github.com/nadanruchi/storefront/internal/app/menu"
	"github.com/nadanruchi/storefront/internal/domain"
	"github.com/nadanruchi/storefront/internal/notify"
	"github.com/nadanruchi/storefront/internal/storage"
)

const customer = "arun@yopmail.com"

func newTestCart(t *testing.T) (*Service, *menu.Service) {
	t.Helper()
	store := storage.NewMemory()
	menuSvc := menu.NewService(store, notify.NewBus(), nil, logger.Nop())
	return NewService(store, menuSvc, logger.Nop()), menuSvc
}

func seedItem(t *testing.T, menuSvc *menu.Service, id string, stock, maxPerCart int) {
	t.Helper()
	require.NoError(t, menuSvc.Upsert(context.Background(), domain.MenuItem{
		ID:                id,
		Name:              id,
		Category:          domain.CategoryLunch,
		Price:             decimal.RequireFromString("10"),
		AvailableQuantity: stock,
		MaxPerCart:        maxPerCart,
	}))
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("adds and increments", func(t *testing.T) {
		cart, menuSvc := newTestCart(t)
		seedItem(t, menuSvc, "meals", 20, 10)

		require.NoError(t, cart.Add(ctx, customer, "meals", 2))
		require.NoError(t, cart.Add(ctx, customer, "meals", 3))

		view := cart.View(ctx, customer)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, 5, view.Lines[0].Quantity)
		assert.True(t, view.Total.Equal(decimal.RequireFromString("50")))
	})

	t.Run("cap is min of per-cart limit and stock", func(t *testing.T) {
		cart, menuSvc := newTestCart(t)
		seedItem(t, menuSvc, "meals", 3, 10)

		require.NoError(t, cart.Add(ctx, customer, "meals", 3))
		assert.ErrorIs(t, cart.Add(ctx, customer, "meals", 1), domain.ErrCartLimitExceeded)

		view := cart.View(ctx, customer)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, 3, view.Lines[0].Quantity, "rejected add must not change the cart")
	})

	t.Run("per-cart limit applies when stock is plentiful", func(t *testing.T) {
		cart, menuSvc := newTestCart(t)
		seedItem(t, menuSvc, "meals", 100, 4)

		assert.ErrorIs(t, cart.Add(ctx, customer, "meals", 5), domain.ErrCartLimitExceeded)
		require.NoError(t, cart.Add(ctx, customer, "meals", 4))
	})

	t.Run("unknown item", func(t *testing.T) {
		cart, _ := newTestCart(t)
		assert.ErrorIs(t, cart.Add(ctx, customer, "ghost", 1), domain.ErrItemNotFound)
	})

	t.Run("unavailable item", func(t *testing.T) {
		cart, menuSvc := newTestCart(t)
		require.NoError(t, menuSvc.Upsert(ctx, domain.MenuItem{
			ID: "meals", Name: "meals", Category: domain.CategoryLunch,
			Price: decimal.RequireFromString("10"), AvailableQuantity: 5, MaxPerCart: 10,
			Unavailable: true,
		}))
		assert.ErrorIs(t, cart.Add(ctx, customer, "meals", 1), domain.ErrItemUnavailable)
	})

	t.Run("zero stock item", func(t *testing.T) {
		cart, menuSvc := newTestCart(t)
		seedItem(t, menuSvc, "meals", 0, 10)
		assert.ErrorIs(t, cart.Add(ctx, customer, "meals", 1), domain.ErrItemUnavailable)
	})

	t.Run("quantity below one", func(t *testing.T) {
		cart, menuSvc := newTestCart(t)
		seedItem(t, menuSvc, "meals", 5, 10)
		assert.Error(t, cart.Add(ctx, customer, "meals", 0))
	})
}

func TestService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("sets quantity", func(t *testing.T) {
		cart, menuSvc := newTestCart(t)
		seedItem(t, menuSvc, "meals", 20, 10)
		require.NoError(t, cart.Add(ctx, customer, "meals", 1))

		require.NoError(t, cart.UpdateQuantity(ctx, customer, "meals", 7))
		assert.Equal(t, 7, cart.View(ctx, customer).Lines[0].Quantity)
	})

	t.Run("rejects over the cap instead of clamping", func(t *testing.T) {
		cart, menuSvc := newTestCart(t)
		seedItem(t, menuSvc, "meals", 4, 10)
		require.NoError(t, cart.Add(ctx, customer, "meals", 2))

		assert.ErrorIs(t, cart.UpdateQuantity(ctx, customer, "meals", 5), domain.ErrCartLimitExceeded)
		assert.Equal(t, 2, cart.View(ctx, customer).Lines[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		cart, menuSvc := newTestCart(t)
		seedItem(t, menuSvc, "meals", 20, 10)
		require.NoError(t, cart.Add(ctx, customer, "meals", 2))

		require.NoError(t, cart.UpdateQuantity(ctx, customer, "meals", 0))
		assert.Empty(t, cart.View(ctx, customer).Lines)
	})

	t.Run("line not in cart", func(t *testing.T) {
		cart, menuSvc := newTestCart(t)
		seedItem(t, menuSvc, "meals", 20, 10)
		assert.ErrorIs(t, cart.UpdateQuantity(ctx, customer, "meals", 2), domain.ErrItemNotFound)
	})
}

func TestService_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	cart, menuSvc := newTestCart(t)
	seedItem(t, menuSvc, "meals", 20, 10)
	seedItem(t, menuSvc, "dosa", 20, 10)

	require.NoError(t, cart.Add(ctx, customer, "meals", 1))
	require.NoError(t, cart.Add(ctx, customer, "dosa", 1))

	require.NoError(t, cart.Remove(ctx, customer, "meals"))
	view := cart.View(ctx, customer)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "dosa", view.Lines[0].ItemID)

	require.NoError(t, cart.Clear(ctx, customer))
	assert.Empty(t, cart.View(ctx, customer).Lines)
}

func TestService_View_ReconcilesAgainstLiveInventory(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted item is flagged, not dropped", func(t *testing.T) {
		cart, menuSvc := newTestCart(t)
		seedItem(t, menuSvc, "meals", 20, 10)
		require.NoError(t, cart.Add(ctx, customer, "meals", 2))

		require.NoError(t, menuSvc.Delete(ctx, "meals"))

		view := cart.View(ctx, customer)
		require.Len(t, view.Lines, 1)
		assert.True(t, view.Lines[0].Removed)
		assert.True(t, view.Total.IsZero(), "removed lines contribute nothing")
	})

	t.Run("stock shrinking below quantity flags the line", func(t *testing.T) {
		cart, menuSvc := newTestCart(t)
		seedItem(t, menuSvc, "kappa-meen", 5, 10)
		require.NoError(t, cart.Add(ctx, customer, "kappa-meen", 2))

		seedItem(t, menuSvc, "kappa-meen", 1, 10)

		view := cart.View(ctx, customer)
		require.Len(t, view.Lines, 1)
		assert.True(t, view.Lines[0].ExceedsStock)
		assert.False(t, view.Lines[0].OutOfStock)
		assert.Equal(t, 1, view.Lines[0].MaxAllowed)
	})

	t.Run("marked unavailable flags out of stock", func(t *testing.T) {
		cart, menuSvc := newTestCart(t)
		seedItem(t, menuSvc, "meals", 20, 10)
		require.NoError(t, cart.Add(ctx, customer, "meals", 2))

		require.NoError(t, menuSvc.Upsert(ctx, domain.MenuItem{
			ID: "meals", Name: "meals", Category: domain.CategoryLunch,
			Price: decimal.RequireFromString("10"), AvailableQuantity: 20, MaxPerCart: 10,
			Unavailable: true,
		}))

		view := cart.View(ctx, customer)
		assert.True(t, view.Lines[0].OutOfStock)
	})

	t.Run("price edits flow into totals", func(t *testing.T) {
		cart, menuSvc := newTestCart(t)
		seedItem(t, menuSvc, "meals", 20, 10)
		require.NoError(t, cart.Add(ctx, customer, "meals", 2))

		require.NoError(t, menuSvc.Upsert(ctx, domain.MenuItem{
			ID: "meals", Name: "meals", Category: domain.CategoryLunch,
			Price: decimal.RequireFromString("13"), AvailableQuantity: 20, MaxPerCart: 10,
		}))

		assert.True(t, cart.Total(ctx, customer).Equal(decimal.RequireFromString("26")))
	})
}

func TestService_CartsAreIsolatedPerCustomer(t *testing.T) {
	ctx := context.Background()
	cart, menuSvc := newTestCart(t)
	seedItem(t, menuSvc, "meals", 20, 10)

	require.NoError(t, cart.Add(ctx, "arun@yopmail.com", "meals", 2))
	require.NoError(t, cart.Add(ctx, "shobin@yopmail.com", "meals", 5))

	assert.Equal(t, 2, cart.View(ctx, "arun@yopmail.com").Lines[0].Quantity)
	assert.Equal(t, 5, cart.View(ctx, "shobin@yopmail.com").Lines[0].Quantity)
}
