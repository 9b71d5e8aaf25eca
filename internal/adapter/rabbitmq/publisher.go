package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/nadanruchi/storefront/internal/interfaces"
)

// Event fan-out for other storefront processes. A consumer re-fetches the
// affected collection on receipt; losing a message only means it refreshes a
// little later, so nothing here is acknowledged back into the core.
const (
	eventsExchange      = "storefront_events"
	routingKeyMenu      = "menu.updated"
	routingKeyOrderStat = "order.status_changed"
)

type publisher struct {
	conn Connection
}

func NewPublisher(conn Connection) interfaces.EventPublisher {
	return &publisher{conn: conn}
}

func (p *publisher) PublishMenuUpdated(ctx context.Context, msg interfaces.MenuUpdatedMessage) error {
	return p.publish(msg, routingKeyMenu)
}

func (p *publisher) PublishOrderStatus(ctx context.Context, msg interfaces.OrderStatusMessage) error {
	return p.publish(msg, routingKeyOrderStat)
}

func (p *publisher) publish(msg any, routingKey string) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(eventsExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = ch.Publish(eventsExchange, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}
