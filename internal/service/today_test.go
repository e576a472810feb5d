package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/saadjs/healthlog/internal/kv"
	"github.com/saadjs/healthlog/internal/ledger"
	"github.com/saadjs/healthlog/internal/model"
	"github.com/saadjs/healthlog/internal/service"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func openLedger(t *testing.T, clk *stepClock) *ledger.Ledger {
	t.Helper()
	l, err := ledger.Open(context.Background(), kv.NewMemory(), ledger.Options{
		Clock: clk,
		IDs:   &ledger.SequenceGenerator{Prefix: "e"},
	})
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	return l
}

func TestTodayWaterTotalIgnoresOtherDays(t *testing.T) {
	entries := []model.WaterEntry{
		{AmountML: 200, Date: "2026-03-14"},
		{AmountML: 300, Date: "2026-03-14"},
		{AmountML: 900, Date: "2026-03-13"},
	}
	if got := service.TodayWaterTotal(entries, "2026-03-14"); got != 500 {
		t.Fatalf("expected 500, got %d", got)
	}
	if got := service.TodayWaterTotal(nil, "2026-03-14"); got != 0 {
		t.Fatalf("expected 0 for no entries, got %d", got)
	}
}

func TestTodayCalorieTotal(t *testing.T) {
	entries := []model.CalorieEntry{
		{Calories: 350, Date: "2026-03-14"},
		{Calories: 120, Date: "2026-03-14"},
		{Calories: 800, Date: "2026-03-12"},
	}
	if got := service.TodayCalorieTotal(entries, "2026-03-14"); got != 470 {
		t.Fatalf("expected 470, got %d", got)
	}
}

func TestGroupByMealKeepsEverySlot(t *testing.T) {
	groups := service.GroupByMeal([]model.CalorieEntry{
		{FoodName: "Aveia", Calories: 150, Meal: model.MealBreakfast},
		{FoodName: "Arroz", Calories: 200, Meal: model.MealLunch},
		{FoodName: "Frango", Calories: 198, Meal: model.MealLunch},
	})
	if len(groups) != 4 {
		t.Fatalf("expected 4 groups, got %d", len(groups))
	}
	want := []struct {
		meal     model.MealSlot
		count    int
		calories int
	}{
		{model.MealBreakfast, 1, 150},
		{model.MealLunch, 2, 398},
		{model.MealSnack, 0, 0},
		{model.MealDinner, 0, 0},
	}
	for i, w := range want {
		g := groups[i]
		if g.Meal != w.meal || len(g.Entries) != w.count || g.Calories != w.calories {
			t.Fatalf("group %d: expected %s/%d/%d, got %s/%d/%d", i, w.meal, w.count, w.calories, g.Meal, len(g.Entries), g.Calories)
		}
	}
	if groups[1].Entries[0].FoodName != "Arroz" {
		t.Fatalf("expected entries in insertion order, got %q first", groups[1].Entries[0].FoodName)
	}
}

func TestFastingMinutes(t *testing.T) {
	start := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	open := model.FastingSession{StartTime: start}
	if got := service.FastingMinutes(open, start.Add(90*time.Minute+59*time.Second)); got != 90 {
		t.Fatalf("expected 90 minutes, got %d", got)
	}
	end := start.Add(time.Hour)
	closed := model.FastingSession{StartTime: start, EndTime: &end}
	if got := service.FastingMinutes(closed, start.Add(5*time.Hour)); got != 0 {
		t.Fatalf("expected 0 for a closed session, got %d", got)
	}
}

func TestCurrentFastingDuration(t *testing.T) {
	ctx := context.Background()
	clk := &stepClock{now: time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)}
	l := openLedger(t, clk)

	if got := service.CurrentFastingDuration(l, model.DefaultUserID); got != 0 {
		t.Fatalf("expected 0 without a session, got %d", got)
	}
	if _, err := l.StartFasting(ctx, model.DefaultUserID); err != nil {
		t.Fatalf("start fasting: %v", err)
	}
	clk.now = clk.now.Add(2*time.Hour + 30*time.Minute)
	if got := service.CurrentFastingDuration(l, model.DefaultUserID); got != 150 {
		t.Fatalf("expected 150, got %d", got)
	}
	if got := service.CurrentFastingDuration(l, "someone-else"); got != 0 {
		t.Fatalf("expected 0 for another user, got %d", got)
	}
}

func TestTodaySummaryWithoutProfile(t *testing.T) {
	ctx := context.Background()
	clk := &stepClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
	l := openLedger(t, clk)
	user := model.DefaultUserID

	for _, ml := range []int{200, 300} {
		if _, err := l.AddWater(ctx, user, ml); err != nil {
			t.Fatalf("add water: %v", err)
		}
	}
	if _, err := l.AddCalories(ctx, user, ledger.CalorieInput{
		FoodName:  "Ovo",
		Calories:  500,
		Meal:      model.MealBreakfast,
		Nutrition: &model.NutritionDetail{ProteinG: 10, CarbsG: 20, FatG: 5, Grams: 100},
	}); err != nil {
		t.Fatalf("add calories: %v", err)
	}

	got, err := service.TodaySummary(ctx, l, user)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got.Date != "2026-03-14" {
		t.Fatalf("expected date 2026-03-14, got %s", got.Date)
	}
	if got.WaterML != 500 || got.WaterGoalML != service.DefaultWaterGoalML || got.WaterProgress != 25 {
		t.Fatalf("unexpected water figures %d/%d/%d", got.WaterML, got.WaterGoalML, got.WaterProgress)
	}
	if got.Calories != 500 || got.CalorieGoal != 2000 || got.CalorieProgress != 25 || got.RemainingCalories != 1500 {
		t.Fatalf("unexpected calorie figures %+v", got)
	}
	if got.Macros.Protein.Grams != 10 {
		t.Fatalf("expected 10g protein, got %v", got.Macros.Protein.Grams)
	}
	if got.HasProfile || got.Profile != nil || got.Fasting || got.FastingProgress != 0 {
		t.Fatalf("expected no profile and no fast, got %+v", got)
	}
	if got.Revision != l.Revision() {
		t.Fatalf("expected revision %d, got %d", l.Revision(), got.Revision)
	}
}

func TestTodaySummaryUsesProfileGoals(t *testing.T) {
	ctx := context.Background()
	clk := &stepClock{now: time.Date(2026, 3, 14, 6, 0, 0, 0, time.UTC)}
	l := openLedger(t, clk)
	user := model.DefaultUserID

	if _, err := l.SaveProfile(ctx, model.UserProfile{
		Name:            "Ana",
		CurrentWeightKg: 70,
		Goal:            model.GoalReduce,
		FastingProtocol: model.FastingProtocol{Type: "16:8", FastingHours: 16, EatingHours: 8},
	}); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if err := l.SetCalorieGoal(ctx, 1600); err != nil {
		t.Fatalf("set goal: %v", err)
	}
	if _, err := l.StartFasting(ctx, user); err != nil {
		t.Fatalf("start fasting: %v", err)
	}
	clk.now = clk.now.Add(8 * time.Hour)
	if _, err := l.AddCalories(ctx, user, ledger.CalorieInput{FoodName: "Arroz", Calories: 2000, Meal: model.MealLunch}); err != nil {
		t.Fatalf("add calories: %v", err)
	}

	got, err := service.TodaySummary(ctx, l, user)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got.WaterGoalML != 2450 {
		t.Fatalf("expected water goal 2450, got %d", got.WaterGoalML)
	}
	if got.CalorieGoal != 1600 || got.CalorieProgress != 100 || got.RemainingCalories != -400 {
		t.Fatalf("expected capped progress over a 1600 goal, got %+v", got)
	}
	if !got.Fasting || got.FastingMinutes != 480 || got.FastingGoalMinutes != 960 || got.FastingProgress != 50 {
		t.Fatalf("unexpected fasting figures %+v", got)
	}
	if !got.HasProfile || got.Profile.Name != "Ana" {
		t.Fatalf("expected profile in summary, got %+v", got.Profile)
	}
}
