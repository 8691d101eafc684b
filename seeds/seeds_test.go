package seeds

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/actuallystonmai/nutrisathi-service/internal/catalog"
	"github.com/jaswdr/faker"
)

var seedNow = time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)

func TestGenerateUsers(t *testing.T) {
	users := GenerateUsers(rand.New(rand.NewSource(1)), faker.NewWithSeed(rand.NewSource(1)), 50, seedNow)
	if len(users) != 50 {
		t.Fatalf("expected 50 users, got %d", len(users))
	}

	emails := make(map[string]bool)
	for _, u := range users {
		if emails[u.Email] {
			t.Errorf("duplicate email %s", u.Email)
		}
		emails[u.Email] = true
		if u.Email != strings.ToLower(u.Email) || !strings.Contains(u.Email, "@") {
			t.Errorf("unexpected email %q", u.Email)
		}
		if u.Gender != "" && (u.Age < 18 || u.Age > 65 || u.Height < 150 || u.Weight < 45) {
			t.Errorf("implausible profile %+v", u.Profile)
		}
		if u.CreatedAt.After(seedNow) {
			t.Errorf("created in the future: %v", u.CreatedAt)
		}
	}
}

func TestGenerateMeals(t *testing.T) {
	dishes := catalog.Sample().Dishes()
	meals := GenerateMeals(rand.New(rand.NewSource(1)), dishes, 5, 14, seedNow)
	if len(meals) == 0 {
		t.Fatal("expected some meals")
	}

	earliest := seedNow.AddDate(0, 0, -14)
	for _, m := range meals {
		if m.UserID < 1 || m.UserID > 5 {
			t.Errorf("unexpected user id %d", m.UserID)
		}
		if m.LoggedAt.After(seedNow) || m.LoggedAt.Before(earliest) {
			t.Errorf("meal outside the window: %v", m.LoggedAt)
		}
		if _, ok := mealHours[m.MealType]; !ok {
			t.Errorf("unexpected meal type %q", m.MealType)
		}
		if m.Calories == nil || *m.Calories < 0 {
			t.Errorf("expected calories on %+v", m)
		}
	}
}

func TestGenerateMealsDeterministic(t *testing.T) {
	dishes := catalog.Sample().Dishes()
	a := GenerateMeals(rand.New(rand.NewSource(9)), dishes, 3, 7, seedNow)
	b := GenerateMeals(rand.New(rand.NewSource(9)), dishes, 3, 7, seedNow)
	if len(a) != len(b) {
		t.Fatalf("expected equal runs, got %d and %d meals", len(a), len(b))
	}
	for i := range a {
		if a[i].Name != b[i].Name || !a[i].LoggedAt.Equal(b[i].LoggedAt) {
			t.Fatalf("meal %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestPlaceholders(t *testing.T) {
	if got := placeholders(10, 3); got != "($11, $12, $13)" {
		t.Errorf("unexpected placeholders %q", got)
	}
}

func TestWeightedChoice(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 100 {
		if got := weightedChoice(rng, []string{"a", "b"}, []float64{1, 0}); got != "a" {
			t.Fatalf("expected only a, got %s", got)
		}
	}
}
