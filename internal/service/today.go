package service

import (
	"context"
	"time"

	"github.com/saadjs/healthlog/internal/clock"
	"github.com/saadjs/healthlog/internal/ledger"
	"github.com/saadjs/healthlog/internal/model"
)

type dated interface {
	Day() string
}

// TodayEntries keeps the items filed under today, in insertion order.
func TodayEntries[T dated](items []T, today string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.Day() == today {
			out = append(out, item)
		}
	}
	return out
}

func TodayWaterTotal(entries []model.WaterEntry, today string) int {
	total := 0
	for _, e := range TodayEntries(entries, today) {
		total += e.AmountML
	}
	return total
}

func TodayCalorieTotal(entries []model.CalorieEntry, today string) int {
	total := 0
	for _, e := range TodayEntries(entries, today) {
		total += e.Calories
	}
	return total
}

// FastingMinutes is the live duration of an open session in whole minutes.
// Closed sessions report 0; their duration was fixed when they ended.
func FastingMinutes(s model.FastingSession, now time.Time) int {
	if !s.Open() {
		return 0
	}
	return ledger.ElapsedMinutes(s.StartTime, now)
}

// CurrentFastingDuration is FastingMinutes of user's open session, or 0.
func CurrentFastingDuration(l *ledger.Ledger, user string) int {
	s, ok := l.OpenFasting(user)
	if !ok {
		return 0
	}
	return FastingMinutes(s, l.Clock().Now())
}

type MealGroup struct {
	Meal     model.MealSlot       `json:"meal"`
	Calories int                  `json:"calories"`
	Entries  []model.CalorieEntry `json:"entries"`
}

// GroupByMeal buckets entries by slot in display order. Every slot is
// present, empty or not.
func GroupByMeal(entries []model.CalorieEntry) []MealGroup {
	groups := make([]MealGroup, len(model.MealSlots))
	index := make(map[model.MealSlot]int, len(model.MealSlots))
	for i, slot := range model.MealSlots {
		groups[i] = MealGroup{Meal: slot, Entries: []model.CalorieEntry{}}
		index[slot] = i
	}
	for _, e := range entries {
		i, ok := index[e.Meal]
		if !ok {
			continue
		}
		groups[i].Entries = append(groups[i].Entries, e)
		groups[i].Calories += e.Calories
	}
	return groups
}

type TodayStatus struct {
	Date               string             `json:"date"`
	WaterML            int                `json:"water_ml"`
	WaterGoalML        int                `json:"water_goal_ml"`
	WaterProgress      int                `json:"water_progress"`
	WaterEntries       []model.WaterEntry `json:"water_entries"`
	Calories           int                `json:"calories"`
	CalorieGoal        int                `json:"calorie_goal"`
	CalorieProgress    int                `json:"calorie_progress"`
	RemainingCalories  int                `json:"remaining_calories"`
	Meals              []MealGroup        `json:"meals"`
	Macros             MacroBreakdown     `json:"macros"`
	Fasting            bool               `json:"fasting"`
	FastingMinutes     int                `json:"fasting_minutes"`
	FastingGoalMinutes int                `json:"fasting_goal_minutes"`
	FastingProgress    int                `json:"fasting_progress"`
	HasProfile         bool               `json:"has_profile"`
	Revision           uint64             `json:"revision"`
	Profile            *model.UserProfile `json:"profile,omitempty"`
}

// TodaySummary derives user's dashboard for the ledger clock's current day.
func TodaySummary(ctx context.Context, l *ledger.Ledger, user string) (*TodayStatus, error) {
	now := l.Clock().Now()
	today := clock.DayKey(now)

	settings, err := l.Settings(ctx)
	if err != nil {
		return nil, err
	}
	profile, hasProfile, err := l.Profile(ctx)
	if err != nil {
		return nil, err
	}

	water := TodayEntries(l.Water(user), today)
	meals := TodayEntries(l.Calories(user), today)

	status := &TodayStatus{
		Date:         today,
		WaterGoalML:  DefaultWaterGoalML,
		WaterEntries: water,
		CalorieGoal:  CalorieGoal(settings),
		Meals:        GroupByMeal(meals),
		Macros:       BreakdownMacros(meals),
		HasProfile:   hasProfile,
		Revision:     l.Revision(),
	}
	for _, e := range water {
		status.WaterML += e.AmountML
	}
	for _, e := range meals {
		status.Calories += e.Calories
	}
	if hasProfile {
		status.Profile = &profile
		if profile.CurrentWeightKg > 0 {
			status.WaterGoalML = WaterGoalML(profile.CurrentWeightKg)
		}
		status.FastingGoalMinutes = FastingGoalMinutes(profile.FastingProtocol)
	}
	if open, ok := l.OpenFasting(user); ok {
		status.Fasting = true
		status.FastingMinutes = FastingMinutes(open, now)
	}

	status.WaterProgress = ProgressPercent(float64(status.WaterML), float64(status.WaterGoalML))
	status.CalorieProgress = ProgressPercent(float64(status.Calories), float64(status.CalorieGoal))
	status.FastingProgress = ProgressPercent(float64(status.FastingMinutes), float64(status.FastingGoalMinutes))
	status.RemainingCalories = status.CalorieGoal - status.Calories
	return status, nil
}
