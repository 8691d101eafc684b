package recommender

import (
	"strings"

	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
)

type diet int

const (
	dietAny diet = iota
	dietVegetarian
	dietVegan
)

func parseDiet(pref string) diet {
	switch strings.ToLower(strings.TrimSpace(pref)) {
	case "vegetarian", "veg", "veggie":
		return dietVegetarian
	case "vegan":
		return dietVegan
	default:
		return dietAny
	}
}

// bannedKeywords returns the name keywords a diet excludes.
func (t *Tables) bannedKeywords(pref string) []string {
	switch parseDiet(pref) {
	case dietVegetarian:
		return t.Diet.Vegetarian
	case dietVegan:
		banned := make([]string, 0, len(t.Diet.Vegetarian)+len(t.Diet.Vegan))
		banned = append(banned, t.Diet.Vegetarian...)
		return append(banned, t.Diet.Vegan...)
	default:
		return nil
	}
}

// normalizeAllergens lower-cases and trims allergens, dropping empty ones
// so they cannot match every dish.
func normalizeAllergens(allergies []string) []string {
	out := make([]string, 0, len(allergies))
	for _, a := range allergies {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

// filterDishes drops dishes banned by the dietary preference or naming an
// allergen. Order is preserved.
func (e *Engine) filterDishes(dishes []*domain.Dish, dietaryPreference string, allergies []string) []*domain.Dish {
	banned := e.tables.bannedKeywords(dietaryPreference)
	allergens := normalizeAllergens(allergies)

	out := make([]*domain.Dish, 0, len(dishes))
	for _, d := range dishes {
		name := strings.ToLower(d.Name)
		if containsAny(name, banned) || containsAny(name, allergens) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func withinCalories(dishes []*domain.Dish, lo, hi float64) []*domain.Dish {
	out := make([]*domain.Dish, 0, len(dishes))
	for _, d := range dishes {
		if lo <= d.Calories && d.Calories <= hi {
			out = append(out, d)
		}
	}
	return out
}

func (f StepFilter) apply(dishes []*domain.Dish) []*domain.Dish {
	if f.empty() {
		return dishes
	}
	out := make([]*domain.Dish, 0, len(dishes))
	for _, d := range dishes {
		if f.MinProtein > 0 && d.Protein <= f.MinProtein {
			continue
		}
		if len(f.NameKeywords) > 0 && !containsAny(strings.ToLower(d.Name), f.NameKeywords) {
			continue
		}
		out = append(out, d)
	}
	return out
}
