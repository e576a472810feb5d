package food

import (
	"math"

	"github.com/saadjs/healthlog/internal/model"
)

type Nutrition struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein"`
	CarbsG   float64 `json:"carbs"`
	FatG     float64 `json:"fat"`
	FiberG   float64 `json:"fiber"`
	SugarG   float64 `json:"sugar"`
	SodiumMg int     `json:"sodium"`
}

// ScaleNutrition scales per-100g values linearly to grams. Calories and
// sodium round to integers, the rest to one decimal; missing optional
// values scale to zero.
func ScaleNutrition(item model.FoodItem, grams float64) Nutrition {
	factor := grams / 100
	return Nutrition{
		Calories: int(math.Round(item.Calories * factor)),
		ProteinG: round1(item.ProteinG * factor),
		CarbsG:   round1(item.CarbsG * factor),
		FatG:     round1(item.FatG * factor),
		FiberG:   round1(deref(item.FiberG) * factor),
		SugarG:   round1(deref(item.SugarG) * factor),
		SodiumMg: int(math.Round(deref(item.SodiumMg) * factor)),
	}
}

// Detail converts scaled nutrition into the detail stored on a calorie entry.
func (n Nutrition) Detail(grams float64) model.NutritionDetail {
	return model.NutritionDetail{
		ProteinG: n.ProteinG,
		CarbsG:   n.CarbsG,
		FatG:     n.FatG,
		FiberG:   n.FiberG,
		Grams:    grams,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
