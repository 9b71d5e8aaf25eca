package rabbitmq

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/nadanruchi/storefront/internal/interfaces"
)

const reconnectDelay = 5 * time.Second

type consumer struct {
	conn Connection
}

func NewConsumer(conn Connection) interfaces.EventConsumer {
	return &consumer{conn: conn}
}

func (c *consumer) ConsumeMenuUpdates(ctx context.Context, handler interfaces.MenuUpdatedHandler) error {
	return c.consumeLoop(ctx, routingKeyMenu, func(ctx context.Context, body []byte) error {
		return handler(ctx, body)
	})
}

func (c *consumer) ConsumeOrderStatus(ctx context.Context, handler interfaces.OrderStatusHandler) error {
	return c.consumeLoop(ctx, routingKeyOrderStat, func(ctx context.Context, body []byte) error {
		return handler(ctx, body)
	})
}

// consumeLoop keeps a consumer alive across broker hiccups, reconnecting
// after a fixed delay like the rest of the storefront's best-effort channel.
func (c *consumer) consumeLoop(ctx context.Context, routingKey string, handler func(context.Context, []byte) error) error {
	for {
		err := c.consumeOnce(ctx, routingKey, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err == nil {
			return nil
		}

		log.Printf("Event consumer disconnected: %v. Reconnecting in %s...", err, reconnectDelay)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(reconnectDelay):
		}
	}
}

func (c *consumer) consumeOnce(ctx context.Context, routingKey string, handler func(context.Context, []byte) error) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	closeChan := ch.NotifyClose()

	if err := ch.ExchangeDeclare(eventsExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	// Exclusive auto-delete queue per consumer: every process gets its own
	// copy of every event.
	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}
	if err := ch.QueueBind(q.Name, routingKey, eventsExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	msgs, err := ch.Consume(q.Name, "", true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-closeChan:
			if err != nil {
				return fmt.Errorf("channel closed: %w", err)
			}
			return fmt.Errorf("channel closed gracefully")

		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("messages channel closed")
			}
			// Handler errors only mean a view refreshes later.
			_ = handler(ctx, msg.Body)
		}
	}
}
