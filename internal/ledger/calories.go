package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/saadjs/healthlog/internal/clock"
	"github.com/saadjs/healthlog/internal/model"
)

type CalorieInput struct {
	FoodName  string
	Calories  int
	Meal      model.MealSlot
	Nutrition *model.NutritionDetail
}

// CaloriePatch edits an entry in place. A blank FoodName keeps the old name.
type CaloriePatch struct {
	Calories int
	FoodName string
}

func (l *Ledger) AddCalories(ctx context.Context, user string, in CalorieInput) (model.CalorieEntry, error) {
	if err := validUser(user); err != nil {
		return model.CalorieEntry{}, err
	}
	in.FoodName = strings.TrimSpace(in.FoodName)
	if in.FoodName == "" {
		return model.CalorieEntry{}, fmt.Errorf("%w: food name is required", ErrInvalidInput)
	}
	if in.Calories < 0 {
		return model.CalorieEntry{}, fmt.Errorf("%w: calories must be >= 0", ErrInvalidInput)
	}
	if !in.Meal.Valid() {
		return model.CalorieEntry{}, fmt.Errorf("%w: unknown meal %q", ErrInvalidInput, in.Meal)
	}
	if in.Nutrition != nil {
		if err := validateNutrition(*in.Nutrition); err != nil {
			return model.CalorieEntry{}, err
		}
		n := *in.Nutrition
		in.Nutrition = &n
	}
	now := l.clock.Now()
	entry := model.CalorieEntry{
		ID:        l.ids.NewID(),
		UserID:    user,
		FoodName:  in.FoodName,
		Calories:  in.Calories,
		Meal:      in.Meal,
		Timestamp: now,
		Date:      clock.DayKey(now),
		Nutrition: in.Nutrition,
	}
	_, err := l.calories.mutate(ctx, l.store, func(items []model.CalorieEntry) ([]model.CalorieEntry, bool, error) {
		return append(items, entry), true, nil
	})
	if err != nil {
		return model.CalorieEntry{}, fmt.Errorf("add calories: %w", err)
	}
	l.bump()
	return entry, nil
}

// UpdateCalories reports false when no entry of user has that id.
func (l *Ledger) UpdateCalories(ctx context.Context, user, id string, patch CaloriePatch) (bool, error) {
	if patch.Calories < 0 {
		return false, fmt.Errorf("%w: calories must be >= 0", ErrInvalidInput)
	}
	name := strings.TrimSpace(patch.FoodName)
	updated, err := l.calories.mutate(ctx, l.store, func(items []model.CalorieEntry) ([]model.CalorieEntry, bool, error) {
		for i, e := range items {
			if e.ID != id || e.UserID != user {
				continue
			}
			e.Calories = patch.Calories
			if name != "" {
				e.FoodName = name
			}
			items[i] = e
			return items, true, nil
		}
		return items, false, nil
	})
	if err != nil {
		return false, fmt.Errorf("update calories %s: %w", id, err)
	}
	if updated {
		l.bump()
	}
	return updated, nil
}

// RemoveCalories reports false when no entry of user has that id.
func (l *Ledger) RemoveCalories(ctx context.Context, user, id string) (bool, error) {
	removed, err := l.calories.mutate(ctx, l.store, func(items []model.CalorieEntry) ([]model.CalorieEntry, bool, error) {
		for i, e := range items {
			if e.ID == id && e.UserID == user {
				return append(items[:i], items[i+1:]...), true, nil
			}
		}
		return items, false, nil
	})
	if err != nil {
		return false, fmt.Errorf("remove calories %s: %w", id, err)
	}
	if removed {
		l.bump()
	}
	return removed, nil
}

// Calories returns user's entries in insertion order.
func (l *Ledger) Calories(user string) []model.CalorieEntry {
	out := make([]model.CalorieEntry, 0)
	for _, e := range l.calories.snapshot() {
		if e.UserID == user {
			out = append(out, e)
		}
	}
	return out
}

func validateNutrition(n model.NutritionDetail) error {
	for name, v := range map[string]float64{
		"protein": n.ProteinG,
		"carbs":   n.CarbsG,
		"fat":     n.FatG,
		"fiber":   n.FiberG,
		"grams":   n.Grams,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s must be >= 0", ErrInvalidInput, name)
		}
	}
	return nil
}
