package recommender

import (
	"strings"

	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
)

const allCategory = "all"

// attachMacros computes the energy fractions of d once.
func attachMacros(d *domain.Dish) {
	if d.Calories <= 0 {
		d.Macros = domain.MacroPercentages{}
		return
	}
	d.Macros = domain.MacroPercentages{
		Protein: d.Protein * 4 / d.Calories,
		Carbs:   d.Carbs * 4 / d.Calories,
		Fat:     d.Fat * 9 / d.Calories,
	}
}

// categorize attaches macro percentages to every dish and buckets it under
// each category with a keyword contained in its name. Membership is not
// exclusive and bucket order follows catalog order.
func categorize(dishes []*domain.Dish, categories map[string][]string) map[string][]*domain.Dish {
	buckets := make(map[string][]*domain.Dish, len(categories)+1)
	for category := range categories {
		buckets[category] = nil
	}
	buckets[allCategory] = dishes

	for _, d := range dishes {
		attachMacros(d)
		name := strings.ToLower(d.Name)
		for category, keywords := range categories {
			if containsAny(name, keywords) {
				buckets[category] = append(buckets[category], d)
			}
		}
	}
	return buckets
}

// containsAny reports whether any keyword, lower-cased, is a substring of
// the already lower-cased name.
func containsAny(name string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(name, strings.ToLower(k)) {
			return true
		}
	}
	return false
}
