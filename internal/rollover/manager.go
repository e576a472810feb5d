// Package rollover moves the ledger from one calendar day to the next.
//
// The ledger is Current when its last-reset key equals today's key and
// Stale otherwise. Check is the only transition, Stale to Current: prune
// water and calorie entries according to the Policy, then stamp today.
package rollover

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/saadjs/healthlog/internal/clock"
	"github.com/saadjs/healthlog/internal/ledger"
)

type State int

const (
	Current State = iota
	Stale
)

func (s State) String() string {
	if s == Current {
		return "current"
	}
	return "stale"
}

// Policy selects which entries survive a rollover.
type Policy string

const (
	// PolicyPreviousDays keeps only entries dated today.
	PolicyPreviousDays Policy = "previous-days"
	// PolicyLegacyCurrentDay drops entries dated today and keeps older
	// ones. It reproduces stores written by the first release.
	PolicyLegacyCurrentDay Policy = "current-day"
)

func ParsePolicy(v string) (Policy, error) {
	switch Policy(v) {
	case "", PolicyPreviousDays:
		return PolicyPreviousDays, nil
	case PolicyLegacyCurrentDay:
		return PolicyLegacyCurrentDay, nil
	}
	return "", fmt.Errorf("unknown rollover policy %q (expected %s or %s)", v, PolicyPreviousDays, PolicyLegacyCurrentDay)
}

func (p Policy) keep(today string) func(day string) bool {
	if p == PolicyLegacyCurrentDay {
		return func(day string) bool { return day != today }
	}
	return func(day string) bool { return day == today }
}

type Manager struct {
	ledger *ledger.Ledger
	clock  clock.Clock
	policy Policy
	log    *slog.Logger

	mu sync.Mutex
}

func NewManager(l *ledger.Ledger, policy Policy, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if policy == "" {
		policy = PolicyPreviousDays
	}
	return &Manager{
		ledger: l,
		clock:  l.Clock(),
		policy: policy,
		log:    logger.With("component", "rollover"),
	}
}

func (m *Manager) State(ctx context.Context) (State, error) {
	last, found, err := m.ledger.LastReset(ctx)
	if err != nil {
		return Stale, err
	}
	if found && last == clock.Today(m.clock) {
		return Current, nil
	}
	return Stale, nil
}

// Check rolls the ledger over when the day has changed and reports whether
// it did. Calling it again on the same day is a no-op.
func (m *Manager) Check(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	today := clock.Today(m.clock)
	last, found, err := m.ledger.LastReset(ctx)
	if err != nil {
		return false, fmt.Errorf("read last reset: %w", err)
	}
	if found && last == today {
		return false, nil
	}

	// Another process may share the store; prune what is stored now.
	if err := m.ledger.Reload(ctx); err != nil {
		return false, fmt.Errorf("reload before rollover: %w", err)
	}
	res, err := m.ledger.Prune(ctx, m.policy.keep(today))
	if err != nil {
		return false, fmt.Errorf("prune for %s: %w", today, err)
	}
	if err := m.ledger.SetLastReset(ctx, today); err != nil {
		return false, fmt.Errorf("stamp %s: %w", today, err)
	}
	m.log.InfoContext(ctx, "rolled over",
		"from", last,
		"to", today,
		"policy", string(m.policy),
		"water_removed", res.Water,
		"calories_removed", res.Calories,
		"removed", res.Total(),
	)
	return true, nil
}
