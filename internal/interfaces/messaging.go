package interfaces

import (
	"context"
	"time"

	"github.com/nadanruchi/storefront/internal/domain"
)

// Broker messages. These cross process boundaries on a best-effort basis;
// consumers re-fetch the full collection on receipt rather than trusting the
// payload as state.
type MenuUpdatedMessage struct {
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderStatusMessage struct {
	OrderID   string        `json:"order_id"`
	OldStatus domain.Status `json:"old_status"`
	NewStatus domain.Status `json:"new_status"`
	ChangedBy string        `json:"changed_by"`
	Timestamp time.Time     `json:"timestamp"`
}

type EventPublisher interface {
	PublishMenuUpdated(ctx context.Context, msg MenuUpdatedMessage) error
	PublishOrderStatus(ctx context.Context, msg OrderStatusMessage) error
}

type (
	MenuUpdatedHandler func(ctx context.Context, body []byte) error
	OrderStatusHandler func(ctx context.Context, body []byte) error
)

type EventConsumer interface {
	ConsumeMenuUpdates(ctx context.Context, handler MenuUpdatedHandler) error
	ConsumeOrderStatus(ctx context.Context, handler OrderStatusHandler) error
}
