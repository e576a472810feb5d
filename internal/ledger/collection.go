package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/saadjs/healthlog/internal/kv"
)

type record[T any] interface {
	Clone() T
}

// collection is one persisted event list. Its mutex serializes mutations
// of that kind; other kinds proceed independently. Items never leave the
// collection except as clones.
type collection[T record[T]] struct {
	key string

	mu    sync.Mutex
	items []T
}

func newCollection[T record[T]](key string) *collection[T] {
	return &collection[T]{key: key, items: []T{}}
}

func (c *collection[T]) snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneAll(c.items)
}

// read decodes the stored list without touching the in-memory one.
func (c *collection[T]) read(ctx context.Context, store kv.Store, log *slog.Logger) ([]T, error) {
	raw, found, err := store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w: %w", c.key, ErrStorageUnavailable, err)
	}
	items := []T{}
	if found {
		if err := json.Unmarshal(raw, &items); err != nil {
			log.WarnContext(ctx, "discarding unreadable collection", "key", c.key, "error", errors.Join(ErrMalformedRecord, err))
			items = []T{}
		}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *collection[T]) replace(items []T) {
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
}

// mutate hands fn a copy of the current items. When fn reports a change,
// the new list is persisted in full and only then becomes the snapshot.
func (c *collection[T]) mutate(ctx context.Context, store kv.Store, fn func([]T) ([]T, bool, error)) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, changed, err := fn(cloneAll(c.items))
	if err != nil || !changed {
		return false, err
	}
	raw, err := json.Marshal(next)
	if err != nil {
		return false, fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := store.Set(ctx, c.key, raw); err != nil {
		return false, fmt.Errorf("persist %s: %w: %w", c.key, ErrStorageUnavailable, err)
	}
	c.items = cloneAll(next)
	return true, nil
}

func cloneAll[T record[T]](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
