package recommender

import (
	"math"

	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
)

// BalanceScore rates the macro split of a selection from 0 to 100.
// Protein and fat should each provide 15-35% of the energy and carbs
// 40-60%; three or more items earn a variety bonus.
func BalanceScore(items []domain.RecommendedDish) int {
	if len(items) == 0 {
		return 0
	}
	totals := sumTotals(items)
	if totals.Calories <= 0 {
		return 0
	}

	proteinPct := totals.Protein * 4 / totals.Calories * 100
	carbsPct := totals.Carbs * 4 / totals.Calories * 100
	fatPct := totals.Fat * 9 / totals.Calories * 100

	score := 100
	if proteinPct < 15 || proteinPct > 35 {
		score -= 20
	}
	if carbsPct < 40 || carbsPct > 60 {
		score -= 15
	}
	if fatPct < 15 || fatPct > 35 {
		score -= 15
	}
	if len(items) >= 3 {
		score += 10
	}
	return max(0, min(100, score))
}

func sumTotals(items []domain.RecommendedDish) domain.NutrientTotals {
	var t domain.NutrientTotals
	for _, it := range items {
		t.Calories += it.Calories
		t.Protein += it.Protein
		t.Carbs += it.Carbs
		t.Fat += it.Fat
	}
	return t
}

func roundedTotals(items []domain.RecommendedDish) domain.NutrientTotals {
	t := sumTotals(items)
	return domain.NutrientTotals{
		Calories: round1(t.Calories),
		Protein:  round1(t.Protein),
		Carbs:    round1(t.Carbs),
		Fat:      round1(t.Fat),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func recommended(d *domain.Dish, category, note string) domain.RecommendedDish {
	return domain.RecommendedDish{
		Name:        d.Name,
		Cuisine:     d.Cuisine,
		ServingSize: d.ServingSize,
		Unit:        d.Unit,
		Calories:    d.Calories,
		Protein:     d.Protein,
		Carbs:       d.Carbs,
		Fat:         d.Fat,
		Category:    category,
		Note:        note,
	}
}
