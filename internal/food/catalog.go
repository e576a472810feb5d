// Package food is the static food reference table and the pure functions
// that search it and scale its per-100g values to a portion.
package food

import "github.com/saadjs/healthlog/internal/model"

func f(v float64) *float64 { return &v }

// catalog order matters: a blank search returns its head.
var catalog = []model.FoodItem{
	{
		ID: "frango-peito", Name: "Peito de Frango",
		Calories: 165, ProteinG: 31, CarbsG: 0, FatG: 3.6, FiberG: f(0),
		Category: model.CategoryProtein,
		CommonPortions: []model.Portion{
			{Name: "1 filé médio", Grams: 120},
			{Name: "1 fatia", Grams: 30},
			{Name: "100g", Grams: 100},
		},
	},
	{
		ID: "ovo", Name: "Ovo de Galinha",
		Calories: 155, ProteinG: 13, CarbsG: 1.1, FatG: 11,
		Category: model.CategoryProtein,
		CommonPortions: []model.Portion{
			{Name: "1 ovo grande", Grams: 50},
			{Name: "2 ovos", Grams: 100},
			{Name: "1 clara", Grams: 33},
		},
	},
	{
		ID: "salmao", Name: "Salmão",
		Calories: 208, ProteinG: 20, CarbsG: 0, FatG: 13,
		Category: model.CategoryProtein,
		CommonPortions: []model.Portion{
			{Name: "1 filé médio", Grams: 150},
			{Name: "1 fatia", Grams: 80},
			{Name: "100g", Grams: 100},
		},
	},
	{
		ID: "arroz-branco", Name: "Arroz Branco Cozido",
		Calories: 130, ProteinG: 2.7, CarbsG: 28, FatG: 0.3, FiberG: f(0.4),
		Category: model.CategoryCarb,
		CommonPortions: []model.Portion{
			{Name: "1 xícara", Grams: 158},
			{Name: "1 colher de servir", Grams: 45},
			{Name: "100g", Grams: 100},
		},
	},
	{
		ID: "batata-doce", Name: "Batata Doce Cozida",
		Calories: 86, ProteinG: 1.6, CarbsG: 20, FatG: 0.1, FiberG: f(3), SugarG: f(4.2),
		Category: model.CategoryCarb,
		CommonPortions: []model.Portion{
			{Name: "1 batata média", Grams: 128},
			{Name: "1 fatia", Grams: 35},
			{Name: "100g", Grams: 100},
		},
	},
	{
		ID: "aveia", Name: "Aveia em Flocos",
		Calories: 389, ProteinG: 16.9, CarbsG: 66.3, FatG: 6.9, FiberG: f(10.6),
		Category: model.CategoryCarb,
		CommonPortions: []model.Portion{
			{Name: "1 colher de sopa", Grams: 10},
			{Name: "1/2 xícara", Grams: 40},
			{Name: "100g", Grams: 100},
		},
	},
	{
		ID: "banana", Name: "Banana",
		Calories: 89, ProteinG: 1.1, CarbsG: 23, FatG: 0.3, FiberG: f(2.6), SugarG: f(12),
		Category: model.CategoryFruit,
		CommonPortions: []model.Portion{
			{Name: "1 banana média", Grams: 118},
			{Name: "1 banana pequena", Grams: 81},
			{Name: "100g", Grams: 100},
		},
	},
	{
		ID: "maca", Name: "Maçã",
		Calories: 52, ProteinG: 0.3, CarbsG: 14, FatG: 0.2, FiberG: f(2.4), SugarG: f(10),
		Category: model.CategoryFruit,
		CommonPortions: []model.Portion{
			{Name: "1 maçã média", Grams: 182},
			{Name: "1 fatia", Grams: 25},
			{Name: "100g", Grams: 100},
		},
	},
	{
		ID: "brocolis", Name: "Brócolis Cozido",
		Calories: 35, ProteinG: 2.4, CarbsG: 7, FatG: 0.4, FiberG: f(2.6),
		Category: model.CategoryVegetable,
		CommonPortions: []model.Portion{
			{Name: "1 xícara", Grams: 156},
			{Name: "1 raminho", Grams: 20},
			{Name: "100g", Grams: 100},
		},
	},
	{
		ID: "abacate", Name: "Abacate",
		Calories: 160, ProteinG: 2, CarbsG: 9, FatG: 15, FiberG: f(7),
		Category: model.CategoryFat,
		CommonPortions: []model.Portion{
			{Name: "1/2 abacate médio", Grams: 100},
			{Name: "1 fatia", Grams: 30},
			{Name: "100g", Grams: 100},
		},
	},
	{
		ID: "amendoim", Name: "Amendoim Torrado",
		Calories: 567, ProteinG: 26, CarbsG: 16, FatG: 49, FiberG: f(8.5),
		Category: model.CategoryFat,
		CommonPortions: []model.Portion{
			{Name: "1 punhado", Grams: 28},
			{Name: "1 colher de sopa", Grams: 16},
			{Name: "100g", Grams: 100},
		},
	},
	{
		ID: "leite-integral", Name: "Leite Integral", Barcode: "7891000100103",
		Calories: 61, ProteinG: 3.2, CarbsG: 4.8, FatG: 3.2,
		Category: model.CategoryDrink,
		CommonPortions: []model.Portion{
			{Name: "1 copo (240ml)", Grams: 244},
			{Name: "1/2 copo", Grams: 122},
			{Name: "100ml", Grams: 100},
		},
	},
	{
		ID: "pao-frances", Name: "Pão Francês", Barcode: "7891000053508",
		Calories: 300, ProteinG: 9, CarbsG: 58, FatG: 3.1, FiberG: f(2.3), SodiumMg: f(628),
		Category: model.CategoryProcessed,
		CommonPortions: []model.Portion{
			{Name: "1 pão (50g)", Grams: 50},
			{Name: "1 fatia", Grams: 25},
			{Name: "100g", Grams: 100},
		},
	},
	{
		ID: "queijo-mussarela", Name: "Queijo Mussarela", Barcode: "7891000315507",
		Calories: 280, ProteinG: 25, CarbsG: 3.1, FatG: 19, SodiumMg: f(415),
		Category: model.CategoryProtein,
		CommonPortions: []model.Portion{
			{Name: "1 fatia", Grams: 30},
			{Name: "2 fatias", Grams: 60},
			{Name: "100g", Grams: 100},
		},
	},
}

var codes = map[string]string{
	"7891000100103": "leite-integral",
	"7891000053508": "pao-frances",
	"7891000315507": "queijo-mussarela",
}

// Catalog returns a deep copy of the full table in declaration order.
// Items handed out never alias the table.
func Catalog() []model.FoodItem {
	out := make([]model.FoodItem, len(catalog))
	for i, item := range catalog {
		out[i] = item.Clone()
	}
	return out
}

func ByID(id string) (model.FoodItem, bool) {
	for _, item := range catalog {
		if item.ID == id {
			return item.Clone(), true
		}
	}
	return model.FoodItem{}, false
}

// LookupByCode resolves a barcode through the fixed code table. An unknown
// code is reported through the bool, never as an error.
func LookupByCode(code string) (model.FoodItem, bool) {
	id, ok := codes[code]
	if !ok {
		return model.FoodItem{}, false
	}
	return ByID(id)
}

// Portion finds a named common portion, ignoring case.
func Portion(item model.FoodItem, name string) (model.Portion, bool) {
	for _, p := range item.CommonPortions {
		if equalFold(p.Name, name) {
			return p, true
		}
	}
	return model.Portion{}, false
}
