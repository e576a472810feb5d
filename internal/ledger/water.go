package ledger

import (
	"context"
	"fmt"

	"github.com/saadjs/healthlog/internal/clock"
	"github.com/saadjs/healthlog/internal/model"
)

func (l *Ledger) AddWater(ctx context.Context, user string, amountML int) (model.WaterEntry, error) {
	if err := validUser(user); err != nil {
		return model.WaterEntry{}, err
	}
	if amountML <= 0 {
		return model.WaterEntry{}, fmt.Errorf("%w: water amount must be > 0", ErrInvalidInput)
	}
	now := l.clock.Now()
	entry := model.WaterEntry{
		ID:        l.ids.NewID(),
		UserID:    user,
		AmountML:  amountML,
		Timestamp: now,
		Date:      clock.DayKey(now),
	}
	_, err := l.water.mutate(ctx, l.store, func(items []model.WaterEntry) ([]model.WaterEntry, bool, error) {
		return append(items, entry), true, nil
	})
	if err != nil {
		return model.WaterEntry{}, fmt.Errorf("add water: %w", err)
	}
	l.bump()
	return entry, nil
}

// RemoveWater reports false when no entry of user has that id.
func (l *Ledger) RemoveWater(ctx context.Context, user, id string) (bool, error) {
	removed, err := l.water.mutate(ctx, l.store, func(items []model.WaterEntry) ([]model.WaterEntry, bool, error) {
		for i, e := range items {
			if e.ID == id && e.UserID == user {
				return append(items[:i], items[i+1:]...), true, nil
			}
		}
		return items, false, nil
	})
	if err != nil {
		return false, fmt.Errorf("remove water %s: %w", id, err)
	}
	if removed {
		l.bump()
	}
	return removed, nil
}

// Water returns user's entries in insertion order.
func (l *Ledger) Water(user string) []model.WaterEntry {
	out := make([]model.WaterEntry, 0)
	for _, e := range l.water.snapshot() {
		if e.UserID == user {
			out = append(out, e)
		}
	}
	return out
}
