package calorie

import (
	"fmt"
	"math"

	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
)

// DefaultDailyTarget applies when a user has no calculated plan.
const DefaultDailyTarget = 2000

const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"

	StatusOnTrack    = "on_track"
	StatusOverTarget = "over_target"

	otherSlotShare = 0.30
)

// alertShares split the daily target for logged meals.
var alertShares = map[string]float64{
	"breakfast": 0.25,
	"lunch":     0.35,
	"dinner":    0.30,
	"snack":     0.10,
}

var mealSequence = []string{"breakfast", "snack", "lunch", "snack", "dinner"}

type lighterOption struct {
	format string
	factor float64
}

var lighterOptions = map[string][]lighterOption{
	"breakfast": {
		{"Try a lighter breakfast tomorrow: Oats with fruits (~%d kcal)", 0.8},
		{"Consider: 2 Idlis with sambar (~%d kcal)", 0.7},
		{"Option: Vegetable upma with chutney (~%d kcal)", 0.75},
	},
	"lunch": {
		{"Consider a lighter lunch: Grilled chicken salad (~%d kcal)", 0.8},
		{"Try: Dal with 1 roti and vegetables (~%d kcal)", 0.75},
		{"Option: Vegetable pulao with raita (~%d kcal)", 0.8},
	},
	"dinner": {
		{"Lighter dinner suggestion: Grilled fish with vegetables (~%d kcal)", 0.7},
		{"Try: Vegetable soup with 1 roti (~%d kcal)", 0.6},
		{"Option: Paneer tikka with salad (~%d kcal)", 0.75},
	},
	"snack": {
		{"Healthier snack: Handful of nuts (~%d kcal)", 0.5},
		{"Try: Fresh fruit salad (~%d kcal)", 0.4},
		{"Option: Greek yogurt with berries (~%d kcal)", 0.6},
	},
}

type DaySummary struct {
	DailyTarget        int            `json:"daily_target"`
	TotalConsumed      int            `json:"total_consumed"`
	Remaining          int            `json:"remaining"`
	PercentageConsumed float64        `json:"percentage_consumed"`
	MealBreakdown      map[string]int `json:"meal_breakdown,omitempty"`
	MealsLogged        int            `json:"meals_logged"`
	Status             string         `json:"status"`
}

type Suggestion struct {
	NextMealType    string   `json:"next_meal_type"`
	NextMealTarget  int      `json:"next_meal_target"`
	Question        string   `json:"question"`
	Recommendations []string `json:"recommendations"`
}

// Alert warns that a logged meal went over its share of the daily target.
type Alert struct {
	Severity       string     `json:"severity"`
	Message        string     `json:"message"`
	MealType       string     `json:"meal_type"`
	MealCalories   int        `json:"meal_calories"`
	MealTarget     int        `json:"meal_target"`
	ExcessCalories int        `json:"excess_calories"`
	DailySummary   DaySummary `json:"daily_summary"`
	Suggestion     Suggestion `json:"suggestion"`
}

// alertKey normalises a logged meal type; evening_snack is logged as snack.
func alertKey(mealType string) string {
	key := normalize(mealType)
	if key == "evening_snack" {
		return "snack"
	}
	return key
}

// SlotTarget is the kcal budget of one logged meal type.
func SlotTarget(daily int, mealType string) int {
	share, ok := alertShares[alertKey(mealType)]
	if !ok {
		share = otherSlotShare
	}
	return int(float64(daily) * share)
}

// NextMealType follows breakfast, snack, lunch, snack, dinner and falls
// back to dinner.
func NextMealType(current string) string {
	current = alertKey(current)
	for i, m := range mealSequence[:len(mealSequence)-1] {
		if m == current {
			return mealSequence[i+1]
		}
	}
	return "dinner"
}

func lighterRecommendations(mealType string, target int) []string {
	options, ok := lighterOptions[alertKey(mealType)]
	if !ok {
		options = lighterOptions["dinner"]
	}
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = fmt.Sprintf(o.format, int(float64(target)*o.factor))
	}
	return out
}

// CheckMeal returns an alert when mealCalories exceeds the slot target, or
// nil. earlier holds the meals logged today before this one.
func CheckMeal(dailyTarget int, earlier []domain.Meal, mealCalories float64, mealType string) *Alert {
	target := SlotTarget(dailyTarget, mealType)
	if mealCalories <= float64(target) {
		return nil
	}
	excess := int(mealCalories - float64(target))

	summary := Summarize(dailyTarget, earlier)
	total := float64(summary.TotalConsumed) + mealCalories
	summary.TotalConsumed = int(total)
	summary.Remaining = int(float64(dailyTarget) - total)
	summary.PercentageConsumed = percentage(total, dailyTarget)
	summary.MealsLogged++
	summary.Status = status(total, dailyTarget)
	summary.MealBreakdown = nil

	severity := SeverityMedium
	if float64(excess) > float64(target)*0.5 {
		severity = SeverityHigh
	}

	next := NextMealType(mealType)
	nextTarget := SlotTarget(dailyTarget, next)
	return &Alert{
		Severity:       severity,
		Message:        fmt.Sprintf("Your %s exceeded your target by %d kcal.", mealType, excess),
		MealType:       mealType,
		MealCalories:   int(mealCalories),
		MealTarget:     target,
		ExcessCalories: excess,
		DailySummary:   summary,
		Suggestion: Suggestion{
			NextMealType:    next,
			NextMealTarget:  nextTarget,
			Question:        fmt.Sprintf("Would you like a lighter %s recommendation?", next),
			Recommendations: lighterRecommendations(next, nextTarget),
		},
	}
}

// Summarize totals the meals of one day against dailyTarget.
func Summarize(dailyTarget int, meals []domain.Meal) DaySummary {
	var total float64
	breakdown := make(map[string]float64)
	for _, m := range meals {
		kcal := m.CalorieValue()
		total += kcal
		mealType := m.MealType
		if mealType == "" {
			mealType = "other"
		}
		breakdown[mealType] += kcal
	}

	out := make(map[string]int, len(breakdown))
	for k, v := range breakdown {
		out[k] = int(v)
	}
	return DaySummary{
		DailyTarget:        dailyTarget,
		TotalConsumed:      int(total),
		Remaining:          int(float64(dailyTarget) - total),
		PercentageConsumed: percentage(total, dailyTarget),
		MealBreakdown:      out,
		MealsLogged:        len(meals),
		Status:             status(total, dailyTarget),
	}
}

func percentage(consumed float64, target int) float64 {
	if target <= 0 {
		return 0
	}
	return math.Round(consumed/float64(target)*1000) / 10
}

func status(consumed float64, target int) string {
	if consumed > float64(target) {
		return StatusOverTarget
	}
	return StatusOnTrack
}
