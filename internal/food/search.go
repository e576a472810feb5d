package food

import (
	"strings"

	"github.com/saadjs/healthlog/internal/model"
)

const (
	searchLimit = 15
	browseLimit = 10
)

// Search matches query case-insensitively against name, brand and category.
// A blank query browses the head of the catalog in declaration order.
func Search(query string) []model.FoodItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Catalog()[:min(browseLimit, len(catalog))]
	}
	out := make([]model.FoodItem, 0, searchLimit)
	for _, item := range catalog {
		if matches(item, q) {
			out = append(out, item.Clone())
			if len(out) == searchLimit {
				break
			}
		}
	}
	return out
}

func matches(item model.FoodItem, q string) bool {
	return strings.Contains(strings.ToLower(item.Name), q) ||
		(item.Brand != "" && strings.Contains(strings.ToLower(item.Brand), q)) ||
		strings.Contains(strings.ToLower(string(item.Category)), q)
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
