package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/saadjs/healthlog/internal/clock"
	"github.com/saadjs/healthlog/internal/model"
)

const DefaultCalorieGoal = 2000

// Settings falls back to defaults when nothing usable is stored.
func (l *Ledger) Settings(ctx context.Context) (model.Settings, error) {
	l.scalars.Lock()
	defer l.scalars.Unlock()

	settings := model.Settings{CalorieGoal: DefaultCalorieGoal}
	var stored model.Settings
	found, err := l.readScalar(ctx, KeySettings, &stored)
	if err != nil {
		return settings, err
	}
	if found && stored.CalorieGoal > 0 {
		settings.CalorieGoal = stored.CalorieGoal
	}
	return settings, nil
}

func (l *Ledger) SetCalorieGoal(ctx context.Context, goal int) error {
	if goal <= 0 {
		return fmt.Errorf("%w: calorie goal must be > 0", ErrInvalidInput)
	}
	l.scalars.Lock()
	defer l.scalars.Unlock()
	if err := l.writeScalar(ctx, KeySettings, model.Settings{CalorieGoal: goal}); err != nil {
		return err
	}
	l.bump()
	return nil
}

// LastReset returns the day key of the last rollover, and false when no
// rollover has been recorded.
func (l *Ledger) LastReset(ctx context.Context) (string, bool, error) {
	l.scalars.Lock()
	defer l.scalars.Unlock()

	raw, found, err := l.store.Get(ctx, KeyLastReset)
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w: %w", KeyLastReset, ErrStorageUnavailable, err)
	}
	if !found {
		return "", false, nil
	}
	var day string
	if err := json.Unmarshal(raw, &day); err != nil {
		// Older stores wrote the bare day key without JSON quoting.
		day = strings.TrimSpace(string(raw))
	}
	if _, err := clock.ParseDay(day); err != nil {
		l.log.WarnContext(ctx, "ignoring unreadable last reset", "value", string(raw), "error", errors.Join(ErrMalformedRecord, err))
		return "", false, nil
	}
	return day, true, nil
}

func (l *Ledger) SetLastReset(ctx context.Context, day string) error {
	if _, err := clock.ParseDay(day); err != nil {
		return fmt.Errorf("%w: invalid day %q", ErrInvalidInput, day)
	}
	l.scalars.Lock()
	defer l.scalars.Unlock()
	if err := l.writeScalar(ctx, KeyLastReset, day); err != nil {
		return err
	}
	l.bump()
	return nil
}

// Profile reports false when no profile has been saved yet, which callers
// treat as "run setup first".
func (l *Ledger) Profile(ctx context.Context) (model.UserProfile, bool, error) {
	l.scalars.Lock()
	defer l.scalars.Unlock()

	var p model.UserProfile
	found, err := l.readScalar(ctx, KeyProfile, &p)
	if err != nil || !found {
		return model.UserProfile{}, false, err
	}
	return p, true, nil
}

func (l *Ledger) SaveProfile(ctx context.Context, p model.UserProfile) (model.UserProfile, error) {
	p.Name = strings.TrimSpace(p.Name)
	switch {
	case p.Name == "":
		return p, fmt.Errorf("%w: name is required", ErrInvalidInput)
	case p.CurrentWeightKg <= 0:
		return p, fmt.Errorf("%w: current weight must be > 0", ErrInvalidInput)
	case p.TargetWeightKg < 0, p.HeightM < 0, p.Age < 0:
		return p, fmt.Errorf("%w: age, height and target weight must be >= 0", ErrInvalidInput)
	case !p.Goal.Valid():
		return p, fmt.Errorf("%w: unknown goal %q", ErrInvalidInput, p.Goal)
	}
	if p.ID == "" {
		p.ID = model.DefaultUserID
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = l.clock.Now()
	}

	l.scalars.Lock()
	defer l.scalars.Unlock()
	if err := l.writeScalar(ctx, KeyProfile, p); err != nil {
		return p, err
	}
	l.bump()
	return p, nil
}

// readScalar decodes key into dst. Undecodable values are logged and
// reported as absent.
func (l *Ledger) readScalar(ctx context.Context, key string, dst any) (bool, error) {
	raw, found, err := l.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w: %w", key, ErrStorageUnavailable, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		l.log.WarnContext(ctx, "ignoring unreadable value", "key", key, "error", errors.Join(ErrMalformedRecord, err))
		return false, nil
	}
	return true, nil
}

func (l *Ledger) writeScalar(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := l.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("persist %s: %w: %w", key, ErrStorageUnavailable, err)
	}
	return nil
}
