package healthlog

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/saadjs/healthlog/internal/ledger"
	"github.com/saadjs/healthlog/internal/service"
)

func TestDayInTheLifeFlow(t *testing.T) {
	clk, db := setup(t)

	out := mustRun(t, "--db", db, "today")
	expectContains(t, out, "Date: 2026-03-14", "Profile: not set", "Water: 0 / 2000 ml (0%)", "Fasting: not fasting")

	out = mustRun(t, "--db", db, "profile", "set", "--name", "Ana", "--weight", "70", "--goal", "reduce", "--protocol", "16:8")
	expectContains(t, out, "Saved profile for Ana", "Water goal: 2450 ml")

	mustRun(t, "--db", db, "water", "add", "250")
	out = mustRun(t, "--db", db, "water", "add", "250")
	expectContains(t, out, "Today: 500 / 2450 ml (20%)")

	out = mustRun(t, "--db", db, "meal", "add", "--food", "frango-peito", "--grams", "150", "--meal", "lunch")
	expectContains(t, out, "Added Peito de Frango: 248 kcal to lunch")
	out = mustRun(t, "--db", db, "meal", "add", "--name", "Salada", "--kcal", "120", "--meal", "dinner")
	expectContains(t, out, "Today: 368 kcal")

	out = mustRun(t, "--db", db, "today")
	expectContains(t, out,
		"Profile: Ana (reduce)",
		"Water: 500 / 2450 ml (20%)",
		"Calories: 368 / 2000 kcal (18%) | remaining 1632",
		"lunch: 248 kcal",
		"dinner: 120 kcal",
	)

	mustRun(t, "--db", db, "fast", "start")
	if _, err := run(t, "--db", db, "fast", "start"); !errors.Is(err, ledger.ErrAlreadyFasting) {
		t.Fatalf("expected ErrAlreadyFasting, got %v", err)
	}

	// Past midnight: the next command rolls the day over.
	clk.now = clk.now.Add(17*time.Hour + 30*time.Minute)

	out = mustRun(t, "--db", db, "fast", "status")
	expectContains(t, out, "Fasting since 2026-03-14 07:00: 17h 30m", "Goal: 16h 0m (16:8) | 100%")

	out = mustRun(t, "--db", db, "today", "--json")
	var status service.TodayStatus
	if err := json.Unmarshal([]byte(out), &status); err != nil {
		t.Fatalf("decode today json: %v\n%s", err, out)
	}
	if status.Date != "2026-03-15" || status.WaterML != 0 || status.Calories != 0 {
		t.Fatalf("expected a fresh day, got %+v", status)
	}
	if !status.Fasting || status.FastingMinutes != 1050 {
		t.Fatalf("expected the fast to survive rollover, got %+v", status)
	}

	out = mustRun(t, "--db", db, "fast", "stop")
	expectContains(t, out, "Ended fast after 17h 30m")
	out = mustRun(t, "--db", db, "fast", "status")
	expectContains(t, out, "Not fasting")
	if _, err := run(t, "--db", db, "fast", "stop"); !errors.Is(err, ledger.ErrNotFasting) {
		t.Fatalf("expected ErrNotFasting, got %v", err)
	}
}

func TestMealEditAndRemove(t *testing.T) {
	_, db := setup(t)

	out := mustRun(t, "--db", db, "meal", "add", "--name", "Pão", "--kcal", "150", "--meal", "breakfast", "--protein", "5", "--carbs", "28", "--fat", "1")
	id := idFrom(t, out)

	mustRun(t, "--db", db, "meal", "edit", id, "--kcal", "300", "--name", "Pão com manteiga")
	out = mustRun(t, "--db", db, "meal", "list")
	expectContains(t, out, id+"\tbreakfast\tPão com manteiga\t300\t5.0\t28.0\t1.0")

	if _, err := run(t, "--db", db, "meal", "edit", id); err == nil {
		t.Fatalf("expected edit without --kcal to fail")
	}
	mustRun(t, "--db", db, "meal", "rm", id)
	out = mustRun(t, "--db", db, "meal", "list")
	if strings.Contains(out, id) {
		t.Fatalf("expected %s to be removed:\n%s", id, out)
	}
	if _, err := run(t, "--db", db, "meal", "rm", id); err == nil {
		t.Fatalf("expected second remove to fail")
	}
}

func TestWaterListAndRemove(t *testing.T) {
	_, db := setup(t)

	first := idFrom(t, mustRun(t, "--db", db, "water", "add", "200"))
	second := idFrom(t, mustRun(t, "--db", db, "water", "add", "300"))

	mustRun(t, "--db", db, "water", "rm", first)
	out := mustRun(t, "--db", db, "water", "list")
	if strings.Contains(out, first) {
		t.Fatalf("expected %s removed:\n%s", first, out)
	}
	expectContains(t, out, second+"\t07:00\t300")

	out = mustRun(t, "--db", db, "water", "goal")
	expectContains(t, out, "Water goal: 2000 ml")
}

func TestGoalAndMacros(t *testing.T) {
	_, db := setup(t)

	mustRun(t, "--db", db, "goal", "set", "2000")
	out := mustRun(t, "--db", db, "goal", "show")
	expectContains(t, out, "Calories: 2000 kcal", "Macros: P 125g | C 225g | F 67g", "Fasting: not set")

	mustRun(t, "--db", db, "meal", "add", "--name", "A", "--kcal", "150", "--meal", "lunch", "--protein", "10", "--carbs", "20", "--fat", "5")
	mustRun(t, "--db", db, "meal", "add", "--name", "B", "--kcal", "80", "--meal", "lunch", "--protein", "5", "--carbs", "10", "--fat", "2")
	mustRun(t, "--db", db, "meal", "add", "--name", "C", "--kcal", "0", "--meal", "snack")

	out = mustRun(t, "--db", db, "macros", "--json")
	var report struct {
		Breakdown       service.MacroBreakdown   `json:"breakdown"`
		Calories        int                      `json:"calories"`
		Recommendations []service.Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode macros json: %v\n%s", err, out)
	}
	b := report.Breakdown
	if b.Protein.Grams != 15 || b.Carbs.Grams != 30 || b.Fat.Grams != 7 || b.TotalCalories != 243 || b.Protein.Percent != 25 {
		t.Fatalf("unexpected breakdown %+v", b)
	}
	if report.Calories != 230 {
		t.Fatalf("expected 230 logged kcal, got %d", report.Calories)
	}
	if len(report.Recommendations) == 0 || report.Recommendations[len(report.Recommendations)-1] != service.RecommendFewCalories {
		t.Fatalf("expected a low-calorie recommendation, got %v", report.Recommendations)
	}

	out = mustRun(t, "--db", db, "macros")
	expectContains(t, out, "Calories: 230 / 2000 kcal", "protein\t15.0\t125\t60\t25%")
}

func TestRolloverCommand(t *testing.T) {
	clk, db := setup(t)

	out := mustRun(t, "--db", db, "rollover")
	expectContains(t, out, "Rolled over to 2026-03-14 (was stale")
	out = mustRun(t, "--db", db, "rollover")
	expectContains(t, out, "Already current for 2026-03-14")

	mustRun(t, "--db", db, "water", "add", "400")
	clk.now = clk.now.Add(24 * time.Hour)
	out = mustRun(t, "--db", db, "rollover")
	expectContains(t, out, "Rolled over to 2026-03-15", "policy previous-days")

	out = mustRun(t, "--db", db, "water", "list")
	if strings.Contains(out, "\t400") {
		t.Fatalf("expected yesterday's water to be pruned:\n%s", out)
	}
}

func TestFoodCommands(t *testing.T) {
	_, db := setup(t)

	out := mustRun(t, "food", "search", "frango")
	expectContains(t, out, "frango-peito\tPeito de Frango\tprotein\t165")

	out = mustRun(t, "food", "code", "7891000100103")
	expectContains(t, out, "leite-integral\tLeite Integral")
	out = mustRun(t, "food", "code", "0000000000000")
	expectContains(t, out, "No food found for barcode 0000000000000")

	out = mustRun(t, "food", "show", "ovo", "--portion", "1 ovo grande")
	expectContains(t, out, "Ovo de Galinha (protein) - 50g", "Calories: 78 kcal", "Protein: 6.5g")
	if _, err := run(t, "food", "show", "ovo", "--portion", "1 dúzia"); err == nil {
		t.Fatalf("expected unknown portion to fail")
	}

	out = mustRun(t, "--db", db, "food", "suggest", "--goal", "maintain", "--json")
	var items []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("decode suggest json: %v\n%s", err, out)
	}
	if len(items) == 0 || len(items) > 8 {
		t.Fatalf("expected between 1 and 8 suggestions, got %d", len(items))
	}
}

func TestWatchPrintsStatus(t *testing.T) {
	_, db := setup(t)
	mustRun(t, "--db", db, "water", "add", "300")

	out := mustRun(t, "--db", db, "watch", "--for", "50ms")
	expectContains(t, out, "2026-03-14 | water 300/2000 ml | 0/2000 kcal")
}
