package calorie

import (
	"testing"

	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
)

func kcal(v float64) *float64 { return &v }

func TestSlotTarget(t *testing.T) {
	tests := map[string]int{
		"breakfast":     500,
		"Lunch":         700,
		"dinner":        600,
		"snack":         200,
		"evening_snack": 200,
		"Evening Snack": 200,
		"brunch":        600,
	}
	for mealType, want := range tests {
		if got := SlotTarget(2000, mealType); got != want {
			t.Errorf("SlotTarget(2000, %q) = %d, want %d", mealType, got, want)
		}
	}
}

func TestNextMealType(t *testing.T) {
	tests := map[string]string{
		"breakfast":     "snack",
		"snack":         "lunch",
		"evening_snack": "lunch",
		"lunch":         "snack",
		"dinner":        "dinner",
		"supper":        "dinner",
	}
	for current, want := range tests {
		if got := NextMealType(current); got != want {
			t.Errorf("NextMealType(%q) = %q, want %q", current, got, want)
		}
	}
}

func TestCheckMealUnderTarget(t *testing.T) {
	if a := CheckMeal(2000, nil, 700, "lunch"); a != nil {
		t.Errorf("expected no alert at the target, got %+v", a)
	}
}

func TestCheckMealEveningSnack(t *testing.T) {
	a := CheckMeal(2000, nil, 350, "evening_snack")
	if a == nil {
		t.Fatal("expected an alert for a snack over its share")
	}
	if a.MealTarget != 200 || a.ExcessCalories != 150 || a.Severity != SeverityHigh {
		t.Errorf("unexpected alert %+v", a)
	}
	if a.Suggestion.NextMealType != "lunch" {
		t.Errorf("expected lunch next, got %s", a.Suggestion.NextMealType)
	}
}

func TestCheckMealHigh(t *testing.T) {
	earlier := []domain.Meal{{Name: "Poha", MealType: "breakfast", Calories: kcal(500)}}
	a := CheckMeal(2000, earlier, 1100, "lunch")
	if a == nil {
		t.Fatal("expected an alert")
	}

	if a.Severity != SeverityHigh {
		t.Errorf("expected high severity, got %s", a.Severity)
	}
	if a.ExcessCalories != 400 || a.MealTarget != 700 {
		t.Errorf("unexpected excess %d / target %d", a.ExcessCalories, a.MealTarget)
	}
	s := a.DailySummary
	if s.TotalConsumed != 1600 || s.Remaining != 400 || s.PercentageConsumed != 80 || s.MealsLogged != 2 {
		t.Errorf("unexpected summary %+v", s)
	}
	if a.Suggestion.NextMealType != "snack" || a.Suggestion.NextMealTarget != 200 {
		t.Errorf("unexpected suggestion %+v", a.Suggestion)
	}
	if got := a.Suggestion.Recommendations[0]; got != "Healthier snack: Handful of nuts (~100 kcal)" {
		t.Errorf("unexpected recommendation %q", got)
	}
}

func TestCheckMealMedium(t *testing.T) {
	a := CheckMeal(2000, nil, 800, "lunch")
	if a == nil || a.Severity != SeverityMedium {
		t.Fatalf("expected medium alert, got %+v", a)
	}
	if a.Message != "Your lunch exceeded your target by 100 kcal." {
		t.Errorf("unexpected message %q", a.Message)
	}
}

func TestSummarize(t *testing.T) {
	meals := []domain.Meal{
		{Name: "Idli", MealType: "breakfast", Calories: kcal(500)},
		{Name: "Chai", Calories: kcal(300)},
		{Name: "Unknown", MealType: "lunch"},
	}
	s := Summarize(2000, meals)

	if s.TotalConsumed != 800 || s.Remaining != 1200 {
		t.Errorf("unexpected totals %+v", s)
	}
	if s.PercentageConsumed != 40 {
		t.Errorf("expected 40%%, got %v", s.PercentageConsumed)
	}
	if s.MealBreakdown["other"] != 300 || s.MealBreakdown["breakfast"] != 500 {
		t.Errorf("unexpected breakdown %v", s.MealBreakdown)
	}
	if s.Status != StatusOnTrack || s.MealsLogged != 3 {
		t.Errorf("unexpected status %s / count %d", s.Status, s.MealsLogged)
	}

	over := Summarize(700, meals)
	if over.Status != StatusOverTarget || over.Remaining != -100 {
		t.Errorf("expected over_target, got %+v", over)
	}
}
