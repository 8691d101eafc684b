package recommender

import (
	"strings"

	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
)

const (
	neutralScore = 0.5

	proteinRangeBonus = 0.2
	carbsRangeBonus   = 0.2
	fatRangeBonus     = 0.1
	propertyBonus     = 0.1
	avoidPenalty      = 0.3
	preferredBonus    = 0.2
	avoidFoodPenalty  = 0.4
)

// scoreForMood rates how well d suits the mood profile, in [0, 1].
func scoreForMood(d *domain.Dish, p *MoodProfile, keywords map[string][]string) float64 {
	name := strings.ToLower(d.Name)
	score := neutralScore

	if p.Protein.contains(d.Macros.Protein) {
		score += proteinRangeBonus
	}
	if p.Carbs.contains(d.Macros.Carbs) {
		score += carbsRangeBonus
	}
	if p.Fat.contains(d.Macros.Fat) {
		score += fatRangeBonus
	}

	for _, property := range p.Properties {
		for _, k := range keywords[property] {
			if strings.Contains(name, strings.ToLower(k)) {
				score += propertyBonus
			}
		}
	}

	for _, avoid := range p.Avoid {
		if strings.Contains(name, strings.ToLower(strings.ReplaceAll(avoid, "_", " "))) {
			score -= avoidPenalty
		}
	}

	for _, food := range p.PreferredFoods {
		if strings.Contains(name, strings.ToLower(food)) {
			score += preferredBonus
		}
	}
	for _, food := range p.AvoidFoods {
		if strings.Contains(name, strings.ToLower(food)) {
			score -= avoidFoodPenalty
		}
	}

	return clamp(score, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
