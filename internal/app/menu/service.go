package menu

import (
	"context"
	"fmt"
	"time"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
	"github.com/nadanruchi/storefront/internal/domain"
	"github.com/nadanruchi/storefront/internal/interfaces"
	"github.com/nadanruchi/storefront/internal/notify"
	"github.com/nadanruchi/storefront/internal/storage"
)

// Service is the menu inventory registry: the canonical list of sellable
// items. Every mutation is a full read/replace of the collection followed by
// a change notification so open views refresh their cached copy.
type Service struct {
	items     storage.Collection[domain.MenuItem]
	bus       *notify.Bus
	publisher interfaces.EventPublisher
	logger    logger.Logger
}

// NewService wires the registry. publisher may be nil when the cross-process
// channel is disabled.
func NewService(store storage.Store, bus *notify.Bus, publisher interfaces.EventPublisher, log logger.Logger) *Service {
	return &Service{
		items:     storage.NewCollection[domain.MenuItem](store, storage.KeyMenu, log),
		bus:       bus,
		publisher: publisher,
		logger:    log,
	}
}

// List returns all items in their newest persisted state.
func (s *Service) List(ctx context.Context) []domain.MenuItem {
	return s.items.Load(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.MenuItem, bool) {
	for _, item := range s.items.Load(ctx) {
		if item.ID == id {
			return &item, true
		}
	}
	return nil, false
}

// Upsert matches by id: full replace when found, append otherwise. Partial
// patches are not supported; callers read-modify-write the whole record.
func (s *Service) Upsert(ctx context.Context, item domain.MenuItem) error {
	item.Normalize()
	if err := item.Validate(); err != nil {
		return fmt.Errorf("invalid menu item: %w", err)
	}

	items := s.items.Load(ctx)
	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}

	if err := s.items.Save(ctx, items); err != nil {
		return err
	}
	s.logger.Debug("menu_item_saved", "Menu item persisted", "", map[string]interface{}{"id": item.ID, "replaced": replaced})
	s.notifyChanged(ctx)
	return nil
}

// Delete removes the item. Carts referencing it are not cascaded; the cart
// engine resolves the stale line on its next read.
func (s *Service) Delete(ctx context.Context, id string) error {
	items := s.items.Load(ctx)
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return domain.ErrItemNotFound
	}

	if err := s.items.Save(ctx, kept); err != nil {
		return err
	}
	s.logger.Debug("menu_item_deleted", "Menu item removed", "", map[string]interface{}{"id": id})
	s.notifyChanged(ctx)
	return nil
}

// SetCategoryFlag bulk-updates one boolean across every item of a category.
func (s *Service) SetCategoryFlag(ctx context.Context, category domain.Category, field interfaces.CategoryFlag, value bool) error {
	if !category.Valid() {
		return fmt.Errorf("invalid category %q", category)
	}
	if field != interfaces.FlagUnavailable && field != interfaces.FlagHighlighted {
		return fmt.Errorf("invalid category flag %q", field)
	}

	items := s.items.Load(ctx)
	for i := range items {
		if items[i].Category != category {
			continue
		}
		switch field {
		case interfaces.FlagUnavailable:
			items[i].Unavailable = value
		case interfaces.FlagHighlighted:
			items[i].Highlighted = value
		}
		items[i].Normalize()
	}

	if err := s.items.Save(ctx, items); err != nil {
		return err
	}
	s.logger.Debug("menu_category_flagged", "Category flag updated", "", map[string]interface{}{
		"category": category, "field": field, "value": value,
	})
	s.notifyChanged(ctx)
	return nil
}

// notifyChanged fires the in-process bus synchronously and forwards the event
// to the broker when configured. Broker failures are logged and ignored; the
// channel is best effort.
func (s *Service) notifyChanged(ctx context.Context) {
	s.bus.Publish(notify.TopicMenuUpdated)

	if s.publisher == nil {
		return
	}
	msg := interfaces.MenuUpdatedMessage{UpdatedAt: time.Now()}
	if err := s.publisher.PublishMenuUpdated(ctx, msg); err != nil {
		s.logger.Error("menu_event_publish_failed", "Failed to publish menu update", "", nil, err)
	}
}
