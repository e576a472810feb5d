package service

import (
	"math"

	"github.com/saadjs/healthlog/internal/model"
)

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

type MacroTotal struct {
	Grams    float64 `json:"grams"`
	Percent  int     `json:"percentage"`
	Calories float64 `json:"calories"`
}

type MacroBreakdown struct {
	Protein       MacroTotal `json:"protein"`
	Carbs         MacroTotal `json:"carbs"`
	Fat           MacroTotal `json:"fat"`
	TotalCalories float64    `json:"total_calories"`
}

// BreakdownMacros sums the nutrition detail of entries, converts grams to
// calories at 4/4/9 kcal per gram, and gives each macro's share of the
// macro calories. Entries without detail count as zero.
func BreakdownMacros(entries []model.CalorieEntry) MacroBreakdown {
	var protein, carbs, fat float64
	for _, e := range entries {
		if e.Nutrition == nil {
			continue
		}
		protein += e.Nutrition.ProteinG
		carbs += e.Nutrition.CarbsG
		fat += e.Nutrition.FatG
	}
	out := MacroBreakdown{
		Protein: MacroTotal{Grams: round1(protein), Calories: protein * kcalPerGramProtein},
		Carbs:   MacroTotal{Grams: round1(carbs), Calories: carbs * kcalPerGramCarbs},
		Fat:     MacroTotal{Grams: round1(fat), Calories: fat * kcalPerGramFat},
	}
	out.TotalCalories = out.Protein.Calories + out.Carbs.Calories + out.Fat.Calories
	if out.TotalCalories > 0 {
		out.Protein.Percent = percentOf(out.Protein.Calories, out.TotalCalories)
		out.Carbs.Percent = percentOf(out.Carbs.Calories, out.TotalCalories)
		out.Fat.Percent = percentOf(out.Fat.Calories, out.TotalCalories)
	}
	return out
}

type MacroTargets struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// TargetsFor splits a calorie goal 25/45/30 across protein, carbs and fat.
func TargetsFor(calorieGoal int) MacroTargets {
	kcal := float64(calorieGoal)
	return MacroTargets{
		ProteinG: int(math.Round(kcal * 0.25 / kcalPerGramProtein)),
		CarbsG:   int(math.Round(kcal * 0.45 / kcalPerGramCarbs)),
		FatG:     int(math.Round(kcal * 0.30 / kcalPerGramFat)),
	}
}

type Recommendation string

const (
	RecommendMoreProtein  Recommendation = "more-protein"
	RecommendMoreCarbs    Recommendation = "more-carbs"
	RecommendMoreFat      Recommendation = "more-fat"
	RecommendFewCalories  Recommendation = "too-few-calories"
	RecommendManyCalories Recommendation = "too-many-calories"
	RecommendBalanced     Recommendation = "balanced"
)

var recommendationText = map[Recommendation]string{
	RecommendMoreProtein:  "Add more protein (chicken, eggs, fish)",
	RecommendMoreCarbs:    "Include healthy carbs (sweet potato, oats)",
	RecommendMoreFat:      "Add good fats (avocado, nuts)",
	RecommendFewCalories:  "You are eating few calories today",
	RecommendManyCalories: "Watch out for excess calories",
	RecommendBalanced:     "Great nutritional balance today",
}

func (r Recommendation) String() string {
	if text, ok := recommendationText[r]; ok {
		return text
	}
	return string(r)
}

// Recommend flags macros under 80% of target and calorie intake outside
// 80-120% of the goal. Advisory only.
func Recommend(b MacroBreakdown, t MacroTargets, calories, calorieGoal int) []Recommendation {
	var out []Recommendation
	under := func(grams float64, target int) bool {
		return target > 0 && grams/float64(target) < 0.8
	}
	if under(b.Protein.Grams, t.ProteinG) {
		out = append(out, RecommendMoreProtein)
	}
	if under(b.Carbs.Grams, t.CarbsG) {
		out = append(out, RecommendMoreCarbs)
	}
	if under(b.Fat.Grams, t.FatG) {
		out = append(out, RecommendMoreFat)
	}
	goal := float64(calorieGoal)
	switch {
	case float64(calories) < goal*0.8:
		out = append(out, RecommendFewCalories)
	case float64(calories) > goal*1.2:
		out = append(out, RecommendManyCalories)
	}
	if len(out) == 0 {
		out = append(out, RecommendBalanced)
	}
	return out
}

func percentOf(part, total float64) int {
	return int(math.Round(part / total * 100))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
