package food

import "math"

// MealMacros is one analysed meal: macro grams plus the calories it declares.
type MealMacros struct {
	ProteinG float64
	CarbsG   float64
	FatG     float64
	Calories float64
}

type MacroShare struct {
	Grams    float64 `json:"grams"`
	Percent  int     `json:"percentage"`
	Calories float64 `json:"calories"`
}

type MealAnalysis struct {
	Protein MacroShare `json:"protein"`
	Carbs   MacroShare `json:"carbs"`
	Fat     MacroShare `json:"fat"`
}

// AnalyzeMeals reports each macro's share of the meals' declared calories,
// which need not equal 4/4/9 times the grams. Grams round to one decimal.
func AnalyzeMeals(meals []MealMacros) MealAnalysis {
	var total MealMacros
	for _, m := range meals {
		total.ProteinG += m.ProteinG
		total.CarbsG += m.CarbsG
		total.FatG += m.FatG
		total.Calories += m.Calories
	}
	if total.Calories == 0 {
		return MealAnalysis{}
	}
	share := func(grams, kcalPerGram float64) MacroShare {
		kcal := grams * kcalPerGram
		return MacroShare{
			Grams:    round1(grams),
			Percent:  int(math.Round(kcal / total.Calories * 100)),
			Calories: kcal,
		}
	}
	return MealAnalysis{
		Protein: share(total.ProteinG, 4),
		Carbs:   share(total.CarbsG, 4),
		Fat:     share(total.FatG, 9),
	}
}
