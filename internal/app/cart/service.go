package cart

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
	"github.com/nadanruchi/storefront/internal/domain"
	"github.com/nadanruchi/storefront/internal/interfaces"
	"github.com/nadanruchi/storefront/internal/storage"
)

// Service is the cart engine. Lines are persisted per customer and hold only
// item references; every read re-joins against the live inventory registry so
// caps and stock are always checked against current state, never a cached
// copy. Admin edits racing a customer's mutation therefore surface on the
// very next cart read.
type Service struct {
	store  storage.Store
	menu   interfaces.MenuService
	logger logger.Logger
}

func NewService(store storage.Store, menu interfaces.MenuService, log logger.Logger) *Service {
	return &Service{store: store, menu: menu, logger: log}
}

func (s *Service) lines(email string) storage.Collection[domain.CartLine] {
	return storage.NewCollection[domain.CartLine](s.store, storage.CartKey(email), s.logger)
}

// Add puts qty of an item into the cart, incrementing an existing line. The
// resulting quantity is validated against min(per-cart cap, live stock) at
// the moment of the call; violations reject and leave the cart unchanged.
func (s *Service) Add(ctx context.Context, email, itemID string, qty int) error {
	if qty < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}

	item, ok := s.menu.Get(ctx, itemID)
	if !ok {
		return domain.ErrItemNotFound
	}
	if !item.Sellable() {
		return domain.ErrItemUnavailable
	}

	coll := s.lines(email)
	lines := coll.Load(ctx)

	next := qty
	idx := -1
	for i, line := range lines {
		if line.ItemID == itemID {
			idx = i
			next = line.Quantity + qty
			break
		}
	}
	if next > item.MaxAllowed() {
		return domain.ErrCartLimitExceeded
	}

	if idx >= 0 {
		lines[idx].Quantity = next
	} else {
		lines = append(lines, domain.CartLine{ItemID: itemID, Quantity: next})
	}
	return coll.Save(ctx, lines)
}

// UpdateQuantity sets a line's quantity. Zero or less removes the line. A
// quantity above the current allowed maximum is rejected rather than clamped,
// so the caller always learns the cap moved underneath it.
func (s *Service) UpdateQuantity(ctx context.Context, email, itemID string, qty int) error {
	if qty <= 0 {
		return s.Remove(ctx, email, itemID)
	}

	item, ok := s.menu.Get(ctx, itemID)
	if !ok {
		return domain.ErrItemNotFound
	}
	if !item.Sellable() {
		return domain.ErrItemUnavailable
	}
	if qty > item.MaxAllowed() {
		return domain.ErrCartLimitExceeded
	}

	coll := s.lines(email)
	lines := coll.Load(ctx)
	for i := range lines {
		if lines[i].ItemID == itemID {
			lines[i].Quantity = qty
			return coll.Save(ctx, lines)
		}
	}
	return domain.ErrItemNotFound
}

func (s *Service) Remove(ctx context.Context, email, itemID string) error {
	coll := s.lines(email)
	lines := coll.Load(ctx)
	kept := lines[:0]
	for _, line := range lines {
		if line.ItemID != itemID {
			kept = append(kept, line)
		}
	}
	return coll.Save(ctx, kept)
}

func (s *Service) Clear(ctx context.Context, email string) error {
	return s.lines(email).Save(ctx, nil)
}

// View joins every line against the current registry state. Items deleted or
// gone out of stock while sitting in the cart are flagged instead of silently
// dropped so the customer sees "out of stock" rather than checking them out.
func (s *Service) View(ctx context.Context, email string) interfaces.CartView {
	view := interfaces.CartView{Total: decimal.Zero}

	for _, line := range s.lines(email).Load(ctx) {
		lv := interfaces.CartLineView{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Subtotal: decimal.Zero,
		}

		item, ok := s.menu.Get(ctx, line.ItemID)
		if !ok {
			lv.Removed = true
			view.Lines = append(view.Lines, lv)
			continue
		}

		lv.Name = item.Name
		lv.Category = item.Category
		lv.Price = item.Price
		lv.MaxAllowed = item.MaxAllowed()
		lv.OutOfStock = !item.Sellable()
		lv.ExceedsStock = line.Quantity > item.MaxAllowed()
		lv.Subtotal = item.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))

		view.Total = view.Total.Add(lv.Subtotal)
		view.Lines = append(view.Lines, lv)
	}
	return view
}

// Total is recomputed from the joined view on every call; there is no cached
// total to go stale.
func (s *Service) Total(ctx context.Context, email string) decimal.Decimal {
	return s.View(ctx, email).Total
}
