package order

import (
	"context"
	"time"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
	"github.com/nadanruchi/storefront/internal/interfaces"
)

// Ticker simulates kitchen and delivery progress: on a fixed interval it
// advances every non-terminal order one step. There is no real fulfillment
// signal behind it; the uniform pace is intentional.
type Ticker struct {
	orders   interfaces.OrderService
	interval time.Duration
	logger   logger.Logger
}

func NewTicker(orders interfaces.OrderService, interval time.Duration, log logger.Logger) *Ticker {
	return &Ticker{orders: orders, interval: interval, logger: log}
}

// Run blocks until ctx is cancelled. Cancelling stops the loop before its
// next write, so a shut-down process never touches the store again.
func (t *Ticker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.logger.Info("ticker_started", "Order progression ticker started", "", map[string]interface{}{
		"interval": t.interval.String(),
	})

	for {
		select {
		case <-ctx.Done():
			t.logger.Info("ticker_stopped", "Order progression ticker stopped", "", nil)
			return
		case <-ticker.C:
			if moved := t.orders.ProgressAll(ctx); moved > 0 {
				t.logger.Debug("orders_progressed", "Advanced in-flight orders", "", map[string]interface{}{
					"count": moved,
				})
			}
		}
	}
}
