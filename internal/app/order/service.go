package order

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
	"github.com/nadanruchi/storefront/internal/domain"
	"github.com/nadanruchi/storefront/internal/interfaces"
	"github.com/nadanruchi/storefront/internal/notify"
	"github.com/nadanruchi/storefront/internal/storage"
)

// Service is the order lifecycle engine. Orders are created from a cart
// snapshot and then only ever mutated through the status-transition protocol;
// every mutation is a full load/replace of the persisted order collection in
// one synchronous block.
type Service struct {
	orders    storage.Collection[domain.Order]
	cart      interfaces.CartService
	bus       *notify.Bus
	publisher interfaces.EventPublisher
	logger    logger.Logger

	// idMu guards the monotonic creation-timestamp identity so two
	// checkouts in the same millisecond stay distinguishable.
	idMu   sync.Mutex
	lastID int64
}

func NewService(store storage.Store, cart interfaces.CartService, bus *notify.Bus, publisher interfaces.EventPublisher, log logger.Logger) *Service {
	return &Service{
		orders:    storage.NewCollection[domain.Order](store, storage.KeyOrders, log),
		cart:      cart,
		bus:       bus,
		publisher: publisher,
		logger:    log,
	}
}

// Checkout converts the customer's cart into a pending order. Lines are
// captured by value, so menu edits after this point never alter the order.
// Nothing is persisted until every validation has passed.
func (s *Service) Checkout(ctx context.Context, cmd interfaces.CheckoutCommand) (*domain.Order, error) {
	if !cmd.Payment.Valid() {
		return nil, fmt.Errorf("invalid payment method %q", cmd.Payment)
	}
	if cmd.Payment == domain.PaymentCard {
		if cmd.Card == nil {
			return nil, domain.ErrInvalidCardDetails
		}
		if err := cmd.Card.Validate(); err != nil {
			return nil, err
		}
	}

	view := s.cart.View(ctx, cmd.CustomerEmail)
	if len(view.Lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	lines := make([]domain.OrderLine, 0, len(view.Lines))
	for _, lv := range view.Lines {
		// Inventory may have drifted since the lines were added; refuse
		// rather than silently check out a stale cart.
		if lv.Removed || lv.OutOfStock {
			return nil, domain.ErrItemUnavailable
		}
		if lv.ExceedsStock {
			return nil, domain.ErrCartLimitExceeded
		}
		lines = append(lines, domain.OrderLine{
			ItemID:   lv.ItemID,
			Name:     lv.Name,
			Price:    lv.Price,
			Quantity: lv.Quantity,
		})
	}

	order := domain.Order{
		ID:            s.nextID(),
		CustomerEmail: cmd.CustomerEmail,
		Lines:         lines,
		Delivery:      cmd.Delivery,
		Payment:       cmd.Payment,
		Status:        domain.StatusPending,
		CreatedAt:     time.Now(),
	}
	order.CalculateTotal()

	orders := s.orders.Load(ctx)
	orders = append(orders, order)
	if err := s.orders.Save(ctx, orders); err != nil {
		return nil, err
	}

	if err := s.cart.Clear(ctx, cmd.CustomerEmail); err != nil {
		s.logger.Error("cart_clear_failed", "Order placed but cart could not be cleared", "", map[string]interface{}{"order_id": order.ID}, err)
	}

	s.logger.Info("order_created", "Order placed", "", map[string]interface{}{
		"order_id": order.ID,
		"email":    order.CustomerEmail,
		"total":    order.Total.String(),
		"payment":  order.Payment,
	})
	s.notifyStatus(ctx, order.ID, "", domain.StatusPending, cmd.CustomerEmail)
	return &order, nil
}

func (s *Service) ListByCustomer(ctx context.Context, email string) []domain.Order {
	var out []domain.Order
	for _, o := range s.orders.Load(ctx) {
		if o.CustomerEmail == email {
			out = append(out, o)
		}
	}
	return out
}

func (s *Service) ListAll(ctx context.Context) []domain.Order {
	return s.orders.Load(ctx)
}

func (s *Service) Get(ctx context.Context, orderID string) (*domain.Order, bool) {
	for _, o := range s.orders.Load(ctx) {
		if o.ID == orderID {
			return &o, true
		}
	}
	return nil, false
}

// Advance moves an order one step along the fulfillment flow. Terminal
// orders refuse the transition and stay untouched.
func (s *Service) Advance(ctx context.Context, orderID, changedBy string) error {
	return s.transition(ctx, orderID, changedBy, func(o *domain.Order) error {
		return o.Advance()
	})
}

// Cancel is the customer escape, valid only while the order is pending. The
// caller must own the order.
func (s *Service) Cancel(ctx context.Context, orderID, email string) error {
	return s.transition(ctx, orderID, email, func(o *domain.Order) error {
		if o.CustomerEmail != email {
			return domain.ErrOrderNotFound
		}
		return o.Cancel()
	})
}

// Reject is the administrator escape. It requires a non-empty reason, which
// becomes the order's admin comment, and permanently locks the order.
func (s *Service) Reject(ctx context.Context, orderID, reason, changedBy string) error {
	return s.transition(ctx, orderID, changedBy, func(o *domain.Order) error {
		return o.Reject(reason)
	})
}

// ProgressAll advances every non-terminal order one step. Called by the
// simulation ticker on its fixed interval.
func (s *Service) ProgressAll(ctx context.Context) int {
	orders := s.orders.Load(ctx)

	type change struct {
		id       string
		from, to domain.Status
	}
	var changes []change

	for i := range orders {
		if orders[i].Status.IsTerminal() {
			continue
		}
		from := orders[i].Status
		if err := orders[i].Advance(); err != nil {
			continue
		}
		changes = append(changes, change{id: orders[i].ID, from: from, to: orders[i].Status})
	}
	if len(changes) == 0 {
		return 0
	}

	if err := s.orders.Save(ctx, orders); err != nil {
		s.logger.Error("progress_save_failed", "Failed to persist progressed orders", "", nil, err)
		return 0
	}
	for _, c := range changes {
		s.notifyStatus(ctx, c.id, c.from, c.to, "simulation")
	}
	return len(changes)
}

// transition loads the collection, applies apply to the matching order, and
// writes the whole collection back in one synchronous block.
func (s *Service) transition(ctx context.Context, orderID, changedBy string, apply func(*domain.Order) error) error {
	orders := s.orders.Load(ctx)
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		from := orders[i].Status
		if err := apply(&orders[i]); err != nil {
			return err
		}
		if err := s.orders.Save(ctx, orders); err != nil {
			return err
		}
		s.logger.Info("order_status_changed", "Order status changed", "", map[string]interface{}{
			"order_id": orderID, "from": from, "to": orders[i].Status, "changed_by": changedBy,
		})
		s.notifyStatus(ctx, orderID, from, orders[i].Status, changedBy)
		return nil
	}
	return domain.ErrOrderNotFound
}

func (s *Service) notifyStatus(ctx context.Context, orderID string, from, to domain.Status, changedBy string) {
	s.bus.Publish(notify.TopicOrdersUpdated)

	if s.publisher == nil {
		return
	}
	msg := interfaces.OrderStatusMessage{
		OrderID:   orderID,
		OldStatus: from,
		NewStatus: to,
		ChangedBy: changedBy,
		Timestamp: time.Now(),
	}
	if err := s.publisher.PublishOrderStatus(ctx, msg); err != nil {
		s.logger.Error("order_event_publish_failed", "Failed to publish status update", "", nil, err)
	}
}

// nextID derives the order identity from the creation timestamp, bumped past
// the previous one when two orders land in the same millisecond.
func (s *Service) nextID() string {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= s.lastID {
		now = s.lastID + 1
	}
	s.lastID = now
	return fmt.Sprintf("ORD-%d", now)
}
