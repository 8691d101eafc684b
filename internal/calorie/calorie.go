// Package calorie estimates daily energy needs with the Mifflin-St Jeor
// equation and splits them across meals.
package calorie

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"strings"
)

var ErrMissingParameter = errors.New("missing required parameter")

const (
	DefaultActivityLevel = "moderately_active"
	DefaultHealthGoal    = "maintain_weight"

	defaultMultiplier = 1.55
	minSafeFactor     = 1.2
	kcalPerKg         = 7700
	waterPerKg        = 0.033
	unknownSlotShare  = 0.25
)

// activityMultipliers scale BMR to TDEE.
var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"extra_active":      1.9,
}

// goalAdjustments are daily kcal deltas applied to TDEE.
var goalAdjustments = map[string]int{
	"weight_loss":            -500,
	"aggressive_weight_loss": -750,
	"maintain_weight":        0,
	"muscle_gain":            300,
	"bulking":                500,
}

// MealSplit holds one value per meal slot.
type MealSplit struct {
	Breakfast    int `json:"breakfast"`
	Lunch        int `json:"lunch"`
	EveningSnack int `json:"evening_snack"`
	Dinner       int `json:"dinner"`
}

func (s MealSplit) Total() int {
	return s.Breakfast + s.Lunch + s.EveningSnack + s.Dinner
}

type shares struct {
	breakfast, lunch, eveningSnack, dinner float64
}

func (s shares) slot(key string) (float64, bool) {
	switch key {
	case "breakfast":
		return s.breakfast, true
	case "lunch":
		return s.lunch, true
	case "evening_snack":
		return s.eveningSnack, true
	case "dinner":
		return s.dinner, true
	}
	return 0, false
}

var (
	defaultSplit = shares{0.25, 0.35, 0.10, 0.30}
	goalSplits   = map[string]shares{
		"weight_loss":     {0.30, 0.35, 0.05, 0.30},
		"muscle_gain":     {0.25, 0.30, 0.15, 0.30},
		"maintain_weight": defaultSplit,
	}
)

func splitFor(goal string) shares {
	if s, ok := goalSplits[goal]; ok {
		return s
	}
	return defaultSplit
}

var activityTips = map[string]string{
	"sedentary":         "Consider adding light exercise to boost metabolism",
	"lightly_active":    "Good start! Try increasing activity to 3-5 days/week",
	"moderately_active": "Great activity level! Keep it consistent",
	"very_active":       "Excellent! Make sure to fuel your workouts properly",
	"extra_active":      "Amazing dedication! Ensure adequate recovery and nutrition",
}

type Input struct {
	Weight        float64
	Height        float64
	Age           int
	Gender        string
	ActivityLevel string
	HealthGoal    string
}

type MacroTarget struct {
	Grams      int `json:"grams"`
	Calories   int `json:"calories"`
	Percentage int `json:"percentage"`
}

type Macros struct {
	Protein MacroTarget `json:"protein"`
	Carbs   MacroTarget `json:"carbs"`
	Fat     MacroTarget `json:"fat"`
}

type Insights struct {
	Tips           []string `json:"tips"`
	BMI            float64  `json:"bmi"`
	WaterLiters    float64  `json:"water_intake_liters"`
	WeeklyChangeKg float64  `json:"estimated_weekly_change_kg"`
}

type Result struct {
	DailyCalories    int       `json:"daily_calories"`
	BMR              int       `json:"bmr"`
	TDEE             int       `json:"tdee"`
	Adjustment       int       `json:"adjustment"`
	MealCalories     MealSplit `json:"meal_calories"`
	MealPercentages  MealSplit `json:"meal_split_percentages"`
	Macros           Macros    `json:"macros"`
	Insights         Insights  `json:"insights"`
	Formula          string    `json:"formula_used"`
	ActivityLevel    string    `json:"activity_level"`
	HealthGoal       string    `json:"health_goal"`
	MinSafeCalories  int       `json:"min_safe_calories"`
	FlooredToMinimum bool      `json:"floored_to_minimum"`
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

func isMale(g string) bool {
	switch g {
	case "male", "m", "man":
		return true
	}
	return false
}

func isFemale(g string) bool {
	switch g {
	case "female", "f", "woman":
		return true
	}
	return false
}

// BMR returns the basal metabolic rate in kcal/day, rounded to 0.1.
// Genders other than male or female use the midpoint offset.
func BMR(weight, height float64, age int, gender string) (float64, error) {
	var missing []string
	if weight <= 0 {
		missing = append(missing, "weight")
	}
	if height <= 0 {
		missing = append(missing, "height")
	}
	if age <= 0 {
		missing = append(missing, "age")
	}
	g := normalize(gender)
	if g == "" {
		missing = append(missing, "gender")
	}
	if len(missing) > 0 {
		return 0, fmt.Errorf("%w: %s", ErrMissingParameter, strings.Join(missing, ", "))
	}

	bmr := 10*weight + 6.25*height - 5*float64(age)
	switch {
	case isMale(g):
		bmr += 5
	case isFemale(g):
		bmr -= 161
	default:
		bmr -= 78
	}
	return round(bmr, 1), nil
}

// Multiplier returns the activity multiplier, defaulting to moderately
// active for unknown levels.
func Multiplier(activityLevel string) float64 {
	if m, ok := activityMultipliers[normalize(activityLevel)]; ok {
		return m
	}
	return defaultMultiplier
}

func TDEE(weight, height float64, age int, gender, activityLevel string) (float64, error) {
	bmr, err := BMR(weight, height, age, gender)
	if err != nil {
		return 0, err
	}
	return round(bmr*Multiplier(activityLevel), 1), nil
}

// Calculate produces the daily target, its meal split, macro targets and
// insights. The daily target never drops below 1.2 x BMR.
func Calculate(in Input) (*Result, error) {
	activity := normalize(in.ActivityLevel)
	if activity == "" {
		activity = DefaultActivityLevel
	}
	goal := normalize(in.HealthGoal)
	if goal == "" {
		goal = DefaultHealthGoal
	}

	bmr, err := BMR(in.Weight, in.Height, in.Age, in.Gender)
	if err != nil {
		return nil, err
	}
	tdee := round(bmr*Multiplier(activity), 1)
	adjustment := goalAdjustments[goal]

	minSafe := bmr * minSafeFactor
	raw := tdee + float64(adjustment)
	floored := raw < minSafe
	daily := math.Round(math.Max(raw, minSafe))
	if daily < minSafe {
		daily = math.Ceil(minSafe)
	}
	dailyCalories := int(daily)

	split := splitFor(goal)
	return &Result{
		DailyCalories:    dailyCalories,
		BMR:              int(math.Round(bmr)),
		TDEE:             int(math.Round(tdee)),
		Adjustment:       adjustment,
		MealCalories:     Split(dailyCalories, goal),
		MealPercentages:  percentages(split),
		Macros:           macroTargets(dailyCalories, goal),
		Insights:         insights(dailyCalories, tdee, goal, activity, in.Weight, in.Height),
		Formula:          "Mifflin-St Jeor",
		ActivityLevel:    activity,
		HealthGoal:       goal,
		MinSafeCalories:  int(math.Ceil(minSafe)),
		FlooredToMinimum: floored,
	}, nil
}

// Split divides daily across the four slots by the goal's table. The
// rounding remainder goes to lunch so the slots sum to daily.
func Split(daily int, goal string) MealSplit {
	s := splitFor(normalize(goal))
	d := float64(daily)
	m := MealSplit{
		Breakfast:    int(math.Round(d * s.breakfast)),
		Lunch:        int(math.Round(d * s.lunch)),
		EveningSnack: int(math.Round(d * s.eveningSnack)),
		Dinner:       int(math.Round(d * s.dinner)),
	}
	m.Lunch += daily - m.Total()
	return m
}

// MealTarget returns the share of daily for one slot. "snack" is an alias
// of evening_snack; unknown slots get a quarter.
func MealTarget(daily int, mealType, goal string) int {
	key := normalize(mealType)
	if key == "snack" {
		key = "evening_snack"
	}
	share, ok := splitFor(normalize(goal)).slot(key)
	if !ok {
		share = unknownSlotShare
	}
	return int(math.Round(float64(daily) * share))
}

func percentages(s shares) MealSplit {
	return MealSplit{
		Breakfast:    int(math.Round(s.breakfast * 100)),
		Lunch:        int(math.Round(s.lunch * 100)),
		EveningSnack: int(math.Round(s.eveningSnack * 100)),
		Dinner:       int(math.Round(s.dinner * 100)),
	}
}

func macroTargets(daily int, goal string) Macros {
	protein, carbs, fat := 0.25, 0.45, 0.30
	switch {
	case strings.Contains(goal, "weight_loss"):
		protein, carbs, fat = 0.30, 0.40, 0.30
	case strings.Contains(goal, "muscle"), strings.Contains(goal, "bulk"):
		protein, carbs, fat = 0.30, 0.45, 0.25
	}

	target := func(pct, kcalPerGram float64) MacroTarget {
		grams := int(math.Round(float64(daily) * pct / kcalPerGram))
		return MacroTarget{
			Grams:      grams,
			Calories:   grams * int(kcalPerGram),
			Percentage: int(math.Round(pct * 100)),
		}
	}
	return Macros{
		Protein: target(protein, 4),
		Carbs:   target(carbs, 4),
		Fat:     target(fat, 9),
	}
}

func insights(daily int, tdee float64, goal, activity string, weight, height float64) Insights {
	var tips []string

	diff := float64(daily) - tdee
	weekly := round(diff*7/kcalPerKg, 2)
	switch {
	case diff < 0:
		tips = append(tips, fmt.Sprintf("You're in a %.0f calorie deficit for weight loss (~%.2fkg/week)", -diff, -weekly))
	case diff > 0:
		tips = append(tips, fmt.Sprintf("You're in a %.0f calorie surplus for muscle gain (~%.2fkg/week)", diff, weekly))
	default:
		tips = append(tips, "You're eating at maintenance to maintain current weight")
	}

	if tip, ok := activityTips[activity]; ok {
		tips = append(tips, tip)
	} else {
		tips = append(tips, "Stay active!")
	}

	heightM := height / 100
	bmi := weight / (heightM * heightM)
	switch {
	case bmi < 18.5:
		tips = append(tips, "Your BMI suggests you're underweight. Consider a calorie surplus with strength training")
	case bmi >= 25:
		tips = append(tips, "Focus on a moderate calorie deficit with regular exercise for healthy weight loss")
	}

	water := round(weight*waterPerKg, 1)
	tips = append(tips, fmt.Sprintf("Aim for %.1fL of water daily (based on your weight)", water))

	switch {
	case strings.Contains(goal, "weight_loss"):
		tips = append(tips, "Eat a bigger breakfast and lighter dinner for better weight loss results")
	case strings.Contains(goal, "muscle"):
		tips = append(tips, "Spread protein intake across all meals and snacks for optimal muscle growth")
	}

	return Insights{
		Tips:           tips,
		BMI:            round(bmi, 1),
		WaterLiters:    water,
		WeeklyChangeKg: weekly,
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Info describes the inputs Calculate understands.
type Info struct {
	Formula             string             `json:"formula"`
	ActivityMultipliers map[string]float64 `json:"activity_levels"`
	GoalAdjustments     map[string]int     `json:"health_goals"`
	DefaultActivity     string             `json:"default_activity_level"`
	DefaultGoal         string             `json:"default_health_goal"`
	MinSafeFactor       float64            `json:"min_safe_bmr_factor"`
}

func Describe() Info {
	return Info{
		Formula:             "Mifflin-St Jeor",
		ActivityMultipliers: maps.Clone(activityMultipliers),
		GoalAdjustments:     maps.Clone(goalAdjustments),
		DefaultActivity:     DefaultActivityLevel,
		DefaultGoal:         DefaultHealthGoal,
		MinSafeFactor:       minSafeFactor,
	}
}
