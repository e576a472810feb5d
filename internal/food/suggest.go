package food

import "github.com/saadjs/healthlog/internal/model"

const suggestLimit = 8

type rule func(index int, item model.FoodItem) bool

// suggestionRules is advisory: a rough ordering of the catalog per goal,
// not nutrition advice.
var suggestionRules = map[model.Goal]rule{
	model.GoalReduce: func(_ int, item model.FoodItem) bool {
		return (item.Calories < 200 && deref(item.FiberG) > 2) ||
			item.Category == model.CategoryVegetable ||
			item.Category == model.CategoryFruit ||
			(item.Category == model.CategoryProtein && item.Calories < 200)
	},
	model.GoalGain: func(_ int, item model.FoodItem) bool {
		return item.Calories > 200 ||
			item.Category == model.CategoryFat ||
			(item.Category == model.CategoryProtein && item.ProteinG > 20)
	},
	model.GoalMaintain: func(index int, _ model.FoodItem) bool {
		return index%2 == 0
	},
}

// Suggest filters the catalog by the goal's rule, optionally narrows to a
// category, and caps the result. Unknown goals fall back to maintain.
func Suggest(goal model.Goal, category model.FoodCategory) []model.FoodItem {
	keep, ok := suggestionRules[goal]
	if !ok {
		keep = suggestionRules[model.GoalMaintain]
	}
	out := make([]model.FoodItem, 0, suggestLimit)
	for i, item := range catalog {
		if !keep(i, item) {
			continue
		}
		if category != "" && item.Category != category {
			continue
		}
		out = append(out, item.Clone())
		if len(out) == suggestLimit {
			break
		}
	}
	return out
}
