package food_test

import (
	"math"
	"testing"

	"github.com/saadjs/healthlog/internal/food"
	"github.com/saadjs/healthlog/internal/model"
)

func TestSearchIsCaseInsensitive(t *testing.T) {
	for _, q := range []string{"frango", "FRANGO", "Frango", "  frango "} {
		results := food.Search(q)
		found := false
		for _, item := range results {
			if item.ID == "frango-peito" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected chicken breast in results for %q, got %+v", q, results)
		}
	}
}

func TestSearchBlankBrowsesCatalogHead(t *testing.T) {
	results := food.Search("   ")
	if len(results) != 10 {
		t.Fatalf("expected 10 browse results, got %d", len(results))
	}
	all := food.Catalog()
	for i := range results {
		if results[i].ID != all[i].ID {
			t.Fatalf("expected declaration order at %d: %s, got %s", i, all[i].ID, results[i].ID)
		}
	}
}

func TestSearchMatchesCategory(t *testing.T) {
	results := food.Search("fruit")
	if len(results) != 2 {
		t.Fatalf("expected 2 fruit results, got %d", len(results))
	}
	for _, item := range results {
		if item.Category != model.CategoryFruit {
			t.Fatalf("expected fruit, got %+v", item)
		}
	}
}

func TestSearchCapsResults(t *testing.T) {
	// every category name contains a vowel; "a" matches almost everything
	results := food.Search("a")
	if len(results) > 15 {
		t.Fatalf("expected at most 15 results, got %d", len(results))
	}
}

func TestSearchNoMatch(t *testing.T) {
	if got := food.Search("pizza"); len(got) != 0 {
		t.Fatalf("expected no results, got %+v", got)
	}
}

func TestLookupByCode(t *testing.T) {
	item, ok := food.LookupByCode("7891000100103")
	if !ok || item.ID != "leite-integral" {
		t.Fatalf("expected whole milk, got %+v ok=%v", item, ok)
	}
	if _, ok := food.LookupByCode("0000000000000"); ok {
		t.Fatalf("expected unknown code to be absent")
	}
}

func TestScaleNutritionIdentityAt100g(t *testing.T) {
	for _, item := range food.Catalog() {
		n := food.ScaleNutrition(item, 100)
		if float64(n.Calories) != item.Calories {
			t.Fatalf("%s: expected calories %.0f, got %d", item.ID, item.Calories, n.Calories)
		}
		if n.ProteinG != item.ProteinG || n.CarbsG != item.CarbsG || n.FatG != item.FatG {
			t.Fatalf("%s: expected macros unchanged at 100g, got %+v", item.ID, n)
		}
	}
}

func TestScaleNutritionHalves(t *testing.T) {
	bread, ok := food.ByID("pao-frances")
	if !ok {
		t.Fatalf("expected pao-frances in catalog")
	}
	full := food.ScaleNutrition(bread, 100)
	half := food.ScaleNutrition(bread, 50)
	if half.Calories != 150 || half.ProteinG != 4.5 || half.CarbsG != 29 || half.SodiumMg != 314 {
		t.Fatalf("unexpected half portion %+v", half)
	}
	for name, pair := range map[string][2]float64{
		"fat":   {full.FatG, half.FatG},
		"fiber": {full.FiberG, half.FiberG},
	} {
		if diff := math.Abs(pair[0]/2 - pair[1]); diff > 0.05+1e-9 {
			t.Fatalf("%s: expected half of %.2f, got %.2f", name, pair[0], pair[1])
		}
	}
}

func TestScaleNutritionMissingOptionalsAreZero(t *testing.T) {
	salmon, _ := food.ByID("salmao")
	n := food.ScaleNutrition(salmon, 150)
	if n.FiberG != 0 || n.SugarG != 0 || n.SodiumMg != 0 {
		t.Fatalf("expected zero optionals, got %+v", n)
	}
	if n.Calories != 312 || n.ProteinG != 30 || n.FatG != 19.5 {
		t.Fatalf("unexpected scaled salmon: %+v", n)
	}
}

func TestPortionLookup(t *testing.T) {
	chicken, _ := food.ByID("frango-peito")
	p, ok := food.Portion(chicken, "1 FILÉ MÉDIO")
	if !ok || p.Grams != 120 {
		t.Fatalf("expected 120g portion, got %+v ok=%v", p, ok)
	}
	if _, ok := food.Portion(chicken, "1 bowl"); ok {
		t.Fatalf("expected unknown portion to be absent")
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name     string
		goal     model.Goal
		category model.FoodCategory
		check    func(model.FoodItem) bool
	}{
		{"reduce", model.GoalReduce, "", func(i model.FoodItem) bool {
			return i.Calories < 200 || i.Category == model.CategoryVegetable || i.Category == model.CategoryFruit
		}},
		{"gain", model.GoalGain, "", func(i model.FoodItem) bool {
			return i.Calories > 200 || i.Category == model.CategoryFat || (i.Category == model.CategoryProtein && i.ProteinG > 20)
		}},
		{"gain fat only", model.GoalGain, model.CategoryFat, func(i model.FoodItem) bool {
			return i.Category == model.CategoryFat
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := food.Suggest(tt.goal, tt.category)
			if len(got) == 0 || len(got) > 8 {
				t.Fatalf("expected 1..8 suggestions, got %d", len(got))
			}
			for _, item := range got {
				if !tt.check(item) {
					t.Fatalf("unexpected suggestion %+v", item)
				}
			}
		})
	}
}

func TestSuggestMaintainSamplesEveryOther(t *testing.T) {
	all := food.Catalog()
	got := food.Suggest(model.GoalMaintain, "")
	if len(got) != 7 {
		t.Fatalf("expected 7 maintain suggestions, got %d", len(got))
	}
	for i, item := range got {
		if item.ID != all[i*2].ID {
			t.Fatalf("expected %s at %d, got %s", all[i*2].ID, i, item.ID)
		}
	}
}

func TestAnalyzeMeals(t *testing.T) {
	if got := food.AnalyzeMeals(nil); got != (food.MealAnalysis{}) {
		t.Fatalf("expected zero analysis, got %+v", got)
	}
	got := food.AnalyzeMeals([]food.MealMacros{
		{ProteinG: 25, CarbsG: 0, FatG: 0, Calories: 100},
		{ProteinG: 0, CarbsG: 25, FatG: 0, Calories: 100},
	})
	if got.Protein.Percent != 50 || got.Carbs.Percent != 50 || got.Fat.Percent != 0 {
		t.Fatalf("unexpected analysis %+v", got)
	}
	if got.Protein.Calories != 100 {
		t.Fatalf("expected 100 protein kcal, got %.1f", got.Protein.Calories)
	}
}

func TestReturnedItemsDoNotShareCatalogState(t *testing.T) {
	res := food.Search("frango")
	if len(res) == 0 {
		t.Fatalf("expected frango results")
	}
	res[0].CommonPortions[0].Grams = 1
	*res[0].FiberG = 42

	byID, _ := food.ByID("frango-peito")
	byID.CommonPortions[1].Grams = 2
	*byID.FiberG = 43

	all := food.Catalog()
	for i := range all {
		if all[i].ID == "frango-peito" {
			all[i].CommonPortions[0].Grams = 3
			*all[i].FiberG = 44
		}
	}
	for _, item := range food.Suggest(model.GoalGain, model.CategoryProtein) {
		for i := range item.CommonPortions {
			item.CommonPortions[i].Grams = 4
		}
		if item.FiberG != nil {
			*item.FiberG = 45
		}
	}

	chicken, ok := food.ByID("frango-peito")
	if !ok {
		t.Fatalf("expected frango-peito in catalog")
	}
	if chicken.CommonPortions[0].Grams != 120 || chicken.CommonPortions[1].Grams != 30 {
		t.Fatalf("expected portions 120g and 30g, got %+v", chicken.CommonPortions)
	}
	if chicken.FiberG == nil || *chicken.FiberG != 0 {
		t.Fatalf("expected fiber 0, got %v", chicken.FiberG)
	}
}
