package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
	"github.com/nadanruchi/storefront/internal/domain"
)

func TestTicker_AdvancesOrdersOnInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := newFixture(t)
	f.seedItem(t, "meals", "10", 20)
	require.NoError(t, f.cart.Add(ctx, customer, "meals", 1))
	placed := f.checkoutCash(t)

	ticker := NewTicker(f.orders, 10*time.Millisecond, logger.Nop())
	go ticker.Run(ctx)

	require.Eventually(t, func() bool {
		got, ok := f.orders.Get(ctx, placed.ID)
		return ok && got.Status == domain.StatusDone
	}, 2*time.Second, 5*time.Millisecond, "ticker should walk the order to done")
}

func TestTicker_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	f := newFixture(t)
	ticker := NewTicker(f.orders, time.Millisecond, logger.Nop())

	done := make(chan struct{})
	go func() {
		ticker.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticker did not stop on context cancellation")
	}

	assert.Equal(t, 0, f.orders.ProgressAll(context.Background()))
}
