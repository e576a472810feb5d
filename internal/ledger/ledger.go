// Package ledger is the persistent store of water entries, calorie entries
// and fasting sessions, plus the scalar settings around them.
//
// Each event kind lives under its own key as a JSON array. Every mutation
// rewrites the whole array for its kind, so a reader of the backing store
// always sees a complete collection. Event operations take an explicit
// user id; records are stamped with it and reads filter on it.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/saadjs/healthlog/internal/clock"
	"github.com/saadjs/healthlog/internal/kv"
	"github.com/saadjs/healthlog/internal/model"
)

const (
	KeyWater     = "water"
	KeyCalories  = "calories"
	KeyFasting   = "fasting"
	KeySettings  = "settings"
	KeyLastReset = "last-reset"
	KeyProfile   = "user-profile"
)

type Options struct {
	Clock  clock.Clock
	IDs    IDGenerator
	Logger *slog.Logger
}

type Ledger struct {
	store kv.Store
	clock clock.Clock
	ids   IDGenerator
	log   *slog.Logger

	water    *collection[model.WaterEntry]
	calories *collection[model.CalorieEntry]
	fasting  *collection[model.FastingSession]

	// scalars guards settings, last-reset and user-profile.
	scalars  sync.Mutex
	revision atomic.Uint64
}

// Open loads every collection from store. Unreadable values load empty;
// an unreachable store is an error.
func Open(ctx context.Context, store kv.Store, opts Options) (*Ledger, error) {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.IDs == nil {
		opts.IDs = UUIDGenerator{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	l := &Ledger{
		store:    store,
		clock:    opts.Clock,
		ids:      opts.IDs,
		log:      opts.Logger.With("component", "ledger"),
		water:    newCollection[model.WaterEntry](KeyWater),
		calories: newCollection[model.CalorieEntry](KeyCalories),
		fasting:  newCollection[model.FastingSession](KeyFasting),
	}
	if err := l.Reload(ctx); err != nil {
		return nil, err
	}
	return l, nil
}

// Reload replaces every in-memory collection with the stored one. Nothing
// is replaced unless all three collections could be read.
func (l *Ledger) Reload(ctx context.Context) error {
	water, err := l.water.read(ctx, l.store, l.log)
	if err != nil {
		return err
	}
	calories, err := l.calories.read(ctx, l.store, l.log)
	if err != nil {
		return err
	}
	fasting, err := l.fasting.read(ctx, l.store, l.log)
	if err != nil {
		return err
	}
	l.water.replace(water)
	l.calories.replace(calories)
	l.fasting.replace(fasting)
	l.bump()
	return nil
}

// Revision increases after every successful mutation. Observers compare it
// with the value they last rendered to decide whether to recompute.
func (l *Ledger) Revision() uint64 {
	return l.revision.Load()
}

func (l *Ledger) Clock() clock.Clock {
	return l.clock
}

func (l *Ledger) bump() {
	l.revision.Add(1)
}

type PruneResult struct {
	Water    int
	Calories int
}

func (r PruneResult) Total() int {
	return r.Water + r.Calories
}

// Prune keeps only water and calorie records whose day key satisfies keep,
// across all users. Fasting sessions are never pruned.
func (l *Ledger) Prune(ctx context.Context, keep func(day string) bool) (PruneResult, error) {
	var res PruneResult
	changed, err := l.water.mutate(ctx, l.store, func(items []model.WaterEntry) ([]model.WaterEntry, bool, error) {
		out := items[:0]
		for _, e := range items {
			if keep(e.Date) {
				out = append(out, e)
			}
		}
		res.Water = len(items) - len(out)
		return out, res.Water > 0, nil
	})
	if err != nil {
		return res, fmt.Errorf("prune water: %w", err)
	}
	if changed {
		l.bump()
	}
	changed, err = l.calories.mutate(ctx, l.store, func(items []model.CalorieEntry) ([]model.CalorieEntry, bool, error) {
		out := items[:0]
		for _, e := range items {
			if keep(e.Date) {
				out = append(out, e)
			}
		}
		res.Calories = len(items) - len(out)
		return out, res.Calories > 0, nil
	})
	if err != nil {
		return res, fmt.Errorf("prune calories: %w", err)
	}
	if changed {
		l.bump()
	}
	return res, nil
}

func validUser(user string) error {
	if user == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return nil
}
