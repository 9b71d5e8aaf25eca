package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nadanruchi/storefront/internal/adapter/logger"
)

// Collection is a typed JSON array under a single key. Malformed persisted
// data is a recoverable condition: Load logs it and falls back to the empty
// collection instead of failing the caller.
type Collection[T any] struct {
	store Store
	key   string
	log   logger.Logger
}

func NewCollection[T any](store Store, key string, log logger.Logger) Collection[T] {
	return Collection[T]{store: store, key: key, log: log}
}

func (c Collection[T]) Key() string { return c.key }

// Exists reports whether the key has ever been written, distinguishing an
// absent collection from an empty one.
func (c Collection[T]) Exists(ctx context.Context) (bool, error) {
	_, ok, err := c.store.Get(ctx, c.key)
	return ok, err
}

// Load returns the current collection, or nil when the key is absent or the
// payload cannot be decoded.
func (c Collection[T]) Load(ctx context.Context) []T {
	data, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		c.log.Error("store_read_failed", "Falling back to empty collection", "", map[string]interface{}{"key": c.key}, err)
		return nil
	}
	if !ok {
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		c.log.Error("store_decode_failed", "Malformed persisted data, falling back to empty collection", "", map[string]interface{}{"key": c.key}, err)
		return nil
	}
	return items
}

// Save replaces the whole collection. Nil saves as an empty array so readers
// never see a null payload.
func (c Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, data); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", c.key, err)
	}
	return nil
}
