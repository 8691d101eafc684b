package recommender

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
)

const (
	calorieTolerance = 0.20
	closestFallback  = 3
	genericItemCount = 3
)

const (
	emptyThaliNote = "No suitable dishes found. Try adjusting your preferences."
	emptyThaliTip  = "Consult a nutritionist for personalized meal planning"
	genericNote    = "Suggested meal combination"
	genericLabel   = "Suggested Item"
	genericItemTip = "Balanced choice for your goal"
)

type ThaliRequest struct {
	MealType          string
	CalorieGoal       int
	DietaryPreference string
	HealthGoal        string
	Allergies         []string
}

// ComposeThali builds a meal for one slot, sizing each step of the slot
// rule by its share of the calorie goal. When the filters leave no dishes
// the result is empty with an explanatory note.
func (e *Engine) ComposeThali(req ThaliRequest) domain.Recommendation {
	key := e.tables.slotKey(req.MealType)
	rule, known := e.tables.Slots[key]

	available := e.filterDishes(e.dishes, req.DietaryPreference, req.Allergies)
	if len(available) == 0 {
		mealType := req.MealType
		if known {
			mealType = rule.Title
		}
		return domain.Recommendation{
			MealType:    mealType,
			CalorieGoal: req.CalorieGoal,
			Items:       []domain.RecommendedDish{},
			Note:        emptyThaliNote,
			Tip:         emptyThaliTip,
		}
	}

	if !known {
		return e.composeGeneric(req, available)
	}

	goal := float64(req.CalorieGoal)
	items := make([]domain.RecommendedDish, 0, len(rule.Steps))
	chosen := make(map[string]struct{}, len(rule.Steps))
	for _, step := range rule.Steps {
		pool := step.Filter.apply(available)
		d := e.bestMatch(pool, goal*step.Share, step.Preferred, chosen, step.Optional)
		if d == nil {
			continue
		}
		chosen[d.Name] = struct{}{}
		items = append(items, recommended(d, step.Label, step.Note))
	}

	return domain.Recommendation{
		MealType:     rule.Title,
		CalorieGoal:  req.CalorieGoal,
		Items:        items,
		Totals:       roundedTotals(items),
		BalanceScore: BalanceScore(items),
		Note:         strings.ReplaceAll(rule.Note, "{n}", strconv.Itoa(len(items))),
		Tip:          e.tables.healthTip(rule.TipGroup, req.HealthGoal),
	}
}

// composeGeneric picks up to three dishes that together approach the
// goal, each sized to the calories still unassigned.
func (e *Engine) composeGeneric(req ThaliRequest, available []*domain.Dish) domain.Recommendation {
	remaining := float64(req.CalorieGoal)
	items := make([]domain.RecommendedDish, 0, genericItemCount)
	chosen := make(map[string]struct{}, genericItemCount)

	for len(items) < genericItemCount {
		target := remaining / float64(genericItemCount-len(items))
		d := e.bestMatch(available, target, nil, chosen, false)
		if d == nil {
			break
		}
		chosen[d.Name] = struct{}{}
		items = append(items, recommended(d, genericLabel, genericItemTip))
		remaining -= d.Calories
	}

	return domain.Recommendation{
		MealType:     req.MealType,
		CalorieGoal:  req.CalorieGoal,
		Items:        items,
		Totals:       roundedTotals(items),
		BalanceScore: BalanceScore(items),
		Note:         genericNote,
		Tip:          e.tables.GenericTip,
	}
}

// bestMatch picks a dish near target calories from pool, skipping names in
// exclude. Dishes of the preferred categories win when any remain; strict
// steps give up instead of falling back to the whole pool. Candidates are
// the dishes within 20% of target, or failing that the three closest, and
// the Picker chooses among them.
func (e *Engine) bestMatch(pool []*domain.Dish, target float64, preferred []string,
	exclude map[string]struct{}, strict bool) *domain.Dish {
	available := make([]*domain.Dish, 0, len(pool))
	for _, d := range pool {
		if _, skip := exclude[d.Name]; !skip {
			available = append(available, d)
		}
	}
	if len(available) == 0 {
		return nil
	}

	if len(preferred) > 0 {
		if p := e.inCategories(available, preferred); len(p) > 0 {
			available = p
		} else if strict {
			return nil
		}
	}

	tolerance := target * calorieTolerance
	var candidates []*domain.Dish
	for _, d := range available {
		if math.Abs(d.Calories-target) <= tolerance {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		candidates = closestByCalories(available, target, closestFallback)
	}
	return pickOne(e.picker, candidates)
}

func closestByCalories(dishes []*domain.Dish, target float64, n int) []*domain.Dish {
	sorted := append([]*domain.Dish(nil), dishes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return math.Abs(sorted[i].Calories-target) < math.Abs(sorted[j].Calories-target)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// normalizeKey lower-cases s and turns spaces and hyphens into underscores.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}

func (t *Tables) slotKey(mealType string) string {
	key := normalizeKey(mealType)
	if alias, ok := t.SlotAliases[key]; ok {
		return alias
	}
	return key
}

// goalGroup maps a free-form health goal onto a tip group.
func goalGroup(goal string) string {
	g := normalizeKey(goal)
	switch {
	case strings.Contains(g, "weight_loss"):
		return "weight_loss"
	case strings.Contains(g, "muscle"), strings.Contains(g, "bulk"):
		return "muscle"
	default:
		return "default"
	}
}

func (t *Tables) healthTip(group, goal string) string {
	tips, ok := t.HealthTips[group]
	if !ok {
		return t.GenericTip
	}
	if tip, ok := tips[goalGroup(goal)]; ok {
		return tip
	}
	return tips["default"]
}
