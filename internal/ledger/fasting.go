package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/saadjs/healthlog/internal/clock"
	"github.com/saadjs/healthlog/internal/model"
)

// StartFasting opens a session for user. At most one session per user is
// open at a time; a second start fails with ErrAlreadyFasting.
func (l *Ledger) StartFasting(ctx context.Context, user string) (model.FastingSession, error) {
	if err := validUser(user); err != nil {
		return model.FastingSession{}, err
	}
	now := l.clock.Now()
	session := model.FastingSession{
		ID:        l.ids.NewID(),
		UserID:    user,
		StartTime: now,
		Date:      clock.DayKey(now),
	}
	_, err := l.fasting.mutate(ctx, l.store, func(items []model.FastingSession) ([]model.FastingSession, bool, error) {
		if _, ok := openSession(items, user); ok {
			return nil, false, ErrAlreadyFasting
		}
		return append(items, session), true, nil
	})
	if err != nil {
		return model.FastingSession{}, fmt.Errorf("start fasting: %w", err)
	}
	l.bump()
	return session, nil
}

// EndFasting closes user's open session, fixing its duration in whole
// minutes at the moment of closing.
func (l *Ledger) EndFasting(ctx context.Context, user string) (model.FastingSession, error) {
	now := l.clock.Now()
	var closed model.FastingSession
	_, err := l.fasting.mutate(ctx, l.store, func(items []model.FastingSession) ([]model.FastingSession, bool, error) {
		i, ok := openSession(items, user)
		if !ok {
			return nil, false, ErrNotFasting
		}
		s := items[i]
		end := now
		minutes := ElapsedMinutes(s.StartTime, end)
		s.EndTime = &end
		s.DurationMin = &minutes
		items[i] = s
		closed = s
		return items, true, nil
	})
	if err != nil {
		return model.FastingSession{}, fmt.Errorf("end fasting: %w", err)
	}
	l.bump()
	return closed, nil
}

// OpenFasting returns user's in-progress session, if any.
func (l *Ledger) OpenFasting(user string) (model.FastingSession, bool) {
	items := l.fasting.snapshot()
	i, ok := openSession(items, user)
	if !ok {
		return model.FastingSession{}, false
	}
	return items[i], true
}

// Fasting returns user's sessions in insertion order.
func (l *Ledger) Fasting(user string) []model.FastingSession {
	out := make([]model.FastingSession, 0)
	for _, s := range l.fasting.snapshot() {
		if s.UserID == user {
			out = append(out, s)
		}
	}
	return out
}

func openSession(items []model.FastingSession, user string) (int, bool) {
	for i, s := range items {
		if s.UserID == user && s.Open() {
			return i, true
		}
	}
	return -1, false
}

// ElapsedMinutes is the whole minutes from start to end, floored, and never
// negative.
func ElapsedMinutes(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	return int(d / time.Minute)
}
