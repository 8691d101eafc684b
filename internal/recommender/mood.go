package recommender

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
)

const (
	DefaultMoodCount   = 4
	DefaultMinCalories = 200
	DefaultMaxCalories = 800
)

const (
	fallbackBenefit = "Nutritionally balanced for your wellbeing"
	emptyMoodNote   = "No suitable dishes found. Try widening the calorie range or relaxing your filters."
)

var ErrInvalidMood = errors.New("invalid mood")

type MoodRequest struct {
	Mood string
	// MinCalories and MaxCalories bound each dish, inclusive. Both zero
	// selects the default 200-800 range.
	MinCalories       float64
	MaxCalories       float64
	DietaryPreference string
	Allergies         []string
	Count             int
}

// NormalizeMood folds case, surrounding space, inner spaces and hyphens so
// "Happy ", "HAPPY" and "happy" name the same mood.
func NormalizeMood(mood string) string {
	return normalizeKey(mood)
}

type scoredDish struct {
	dish  *domain.Dish
	score float64
}

// ComposeMood ranks dishes against the mood profile and returns a varied
// top-N. It fails only for an unknown mood.
func (e *Engine) ComposeMood(req MoodRequest) (domain.Recommendation, error) {
	mood := NormalizeMood(req.Mood)
	profile, ok := e.tables.Moods[mood]
	if !ok {
		return domain.Recommendation{}, fmt.Errorf("%w %q: choose from %s",
			ErrInvalidMood, req.Mood, strings.Join(e.tables.MoodOrder, ", "))
	}
	idx := e.moods[mood]

	count := req.Count
	if count <= 0 {
		count = DefaultMoodCount
	}
	lo, hi := req.MinCalories, req.MaxCalories
	switch {
	case lo == 0 && hi == 0:
		lo, hi = DefaultMinCalories, DefaultMaxCalories
	case hi == 0:
		hi = max(lo, DefaultMaxCalories)
	}

	candidates := e.filterDishes(withinCalories(idx.pool, lo, hi), req.DietaryPreference, req.Allergies)
	if len(candidates) == 0 {
		candidates = e.filterDishes(withinCalories(e.dishes, lo, hi), req.DietaryPreference, req.Allergies)
	}

	ranked := make([]scoredDish, len(candidates))
	for i, d := range candidates {
		ranked[i] = scoredDish{dish: d, score: idx.scores[d]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	selected := selectDiverse(ranked, count)
	items := make([]domain.RecommendedDish, 0, len(selected))
	for _, d := range selected {
		items = append(items, recommended(d, idx.tiers[d], e.moodBenefit(profile)))
	}

	note := profile.Description
	if len(items) == 0 {
		note = emptyMoodNote
	}

	return domain.Recommendation{
		Mood: &domain.MoodSummary{
			Mood:         mood,
			Description:  profile.Description,
			KeyNutrients: append([]string(nil), profile.KeyNutrients...),
			Ayurvedic:    profile.Ayurvedic,
		},
		Items:        items,
		Totals:       roundedTotals(items),
		BalanceScore: BalanceScore(items),
		Note:         note,
		Tip:          profile.WellnessTip,
		Insights:     e.moodInsights(profile, items),
	}, nil
}

// selectDiverse walks the ranking and prefers dishes whose first name word
// has not been used yet; the first count/2 picks ignore that rule. Any
// shortfall is filled from the remaining dishes in rank order.
func selectDiverse(ranked []scoredDish, count int) []*domain.Dish {
	selected := make([]*domain.Dish, 0, count)
	taken := make([]bool, len(ranked))
	used := make(map[string]struct{}, count)

	for i, c := range ranked {
		if len(selected) >= count {
			break
		}
		word := firstWord(c.dish.Name)
		if _, seen := used[word]; !seen || len(selected) < count/2 {
			selected = append(selected, c.dish)
			taken[i] = true
			used[word] = struct{}{}
		}
	}

	for i, c := range ranked {
		if len(selected) >= count {
			break
		}
		if !taken[i] {
			selected = append(selected, c.dish)
			taken[i] = true
		}
	}
	return selected
}

func firstWord(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func (e *Engine) moodBenefit(profile *MoodProfile) string {
	if len(profile.Benefits) == 0 {
		return fallbackBenefit
	}
	return pickOne(e.picker, profile.Benefits)
}

func (e *Engine) moodInsights(profile *MoodProfile, items []domain.RecommendedDish) []string {
	var insights []string
	if len(items) > 0 && profile.Insight.Text != "" {
		totals := sumTotals(items)
		n := float64(len(items))
		if profile.Insight.applies(totals.Protein/n, totals.Carbs/n) {
			insights = append(insights, profile.Insight.Text)
		}
	}

	desc, ok := e.tables.Ayurvedic[profile.Ayurvedic]
	if !ok {
		desc = "Balanced foods"
	}
	return append(insights, "🕉️ "+desc)
}
