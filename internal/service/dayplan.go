package service

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/actuallystonmai/nutrisathi-service/internal/calorie"
	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
)

const dayPlanConcurrency = 4

// DayInput asks for a thali per slot. A zero DailyCalories uses the
// user's plan, or the default target without one.
type DayInput struct {
	DailyCalories     int
	DietaryPreference string
	HealthGoal        string
	Allergies         string
}

// RecommendDay composes every slot of the day concurrently with a bounded
// worker pool. Slots never fail on empty pools; a slot fails only when ctx
// ends before it runs.
func (s *Service) RecommendDay(ctx context.Context, user *domain.User, in DayInput) *domain.DayPlan {
	start := time.Now()

	daily, source := in.DailyCalories, "request"
	if daily <= 0 {
		var fromPlan bool
		daily, fromPlan = s.dailyTarget(ctx, user)
		source = "default"
		if fromPlan {
			source = "plan"
		}
	}

	slots := s.engine.Info().MealTypes
	results := make([]domain.SlotResult, len(slots))
	var wg sync.WaitGroup
	sem := make(chan struct{}, dayPlanConcurrency)

	for i, slot := range slots {
		wg.Add(1)
		go func(idx int, mealType string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[idx] = s.composeSlot(ctx, user, mealType, daily, in)
		}(i, slot)
	}
	wg.Wait()

	plan := &domain.DayPlan{
		DailyCalories: daily,
		Meals:         results,
		Metadata: domain.DayPlanMeta{
			TargetSource: source,
			GeneratedAt:  s.now().UTC().Format(time.RFC3339),
		},
	}
	for _, r := range results {
		switch r.Status {
		case domain.SlotComposed:
			plan.Summary.ComposedCount++
		case domain.SlotEmpty:
			plan.Summary.EmptyCount++
		default:
			plan.Summary.FailedCount++
		}
		if r.Recommendation != nil {
			t := r.Recommendation.Totals
			plan.Totals.Calories += t.Calories
			plan.Totals.Protein += t.Protein
			plan.Totals.Carbs += t.Carbs
			plan.Totals.Fat += t.Fat
		}
	}
	plan.Totals = roundTotals(plan.Totals)
	plan.Summary.ProcessingTimeMs = time.Since(start).Milliseconds()
	return plan
}

func (s *Service) composeSlot(ctx context.Context, user *domain.User, mealType string, daily int, in DayInput) domain.SlotResult {
	if err := ctx.Err(); err != nil {
		code, msg := ErrorCode(err)
		s.log.Warn().Err(err).Str("meal_type", mealType).Msg("day plan slot skipped")
		return domain.SlotResult{MealType: mealType, Status: domain.SlotFailed, Error: code, Message: msg}
	}

	goal := calorie.MealTarget(daily, mealType, orProfile(in.HealthGoal, healthGoal(user)))
	rec := s.RecommendThali(ctx, user, ThaliInput{
		MealType:          mealType,
		CalorieGoal:       goal,
		DietaryPreference: in.DietaryPreference,
		HealthGoal:        in.HealthGoal,
		Allergies:         in.Allergies,
	})

	status := domain.SlotComposed
	if rec.Empty() {
		status = domain.SlotEmpty
	}
	return domain.SlotResult{MealType: mealType, CalorieGoal: goal, Status: status, Recommendation: &rec}
}

func healthGoal(user *domain.User) string {
	if user == nil {
		return ""
	}
	return user.HealthGoal
}

func roundTotals(t domain.NutrientTotals) domain.NutrientTotals {
	r := func(v float64) float64 { return math.Round(v*10) / 10 }
	return domain.NutrientTotals{Calories: r(t.Calories), Protein: r(t.Protein), Carbs: r(t.Carbs), Fat: r(t.Fat)}
}
