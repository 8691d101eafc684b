package service

import (
	"context"
	"strings"

	"github.com/actuallystonmai/nutrisathi-service/internal/calorie"
	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
	"github.com/actuallystonmai/nutrisathi-service/internal/metrics"
)

// LoggedMeal is a stored meal and the alert it raised, if any.
type LoggedMeal struct {
	domain.Meal
	CalorieAlert *calorie.Alert `json:"calorie_alert,omitempty"`
}

// LogMeal stores meal for user. A meal with a type and calories is checked
// against its share of the user's daily target.
func (s *Service) LogMeal(ctx context.Context, user *domain.User, meal domain.Meal) (*LoggedMeal, error) {
	meal.UserID = user.ID
	meal.MealType = strings.ToLower(strings.TrimSpace(meal.MealType))
	if meal.Unit == "" {
		meal.Unit = "g"
	}
	if meal.LoggedAt.IsZero() {
		meal.LoggedAt = s.now()
	}

	var earlier []domain.Meal
	checkable := meal.MealType != "" && meal.Calories != nil
	if checkable {
		from, to := s.today()
		var err error
		earlier, err = s.store.MealsBetween(ctx, user.ID, from, to)
		if err != nil {
			return nil, err
		}
	}

	if err := s.store.CreateMeal(ctx, &meal); err != nil {
		return nil, err
	}
	metrics.RecordMealLogged()

	out := &LoggedMeal{Meal: meal}
	if checkable {
		out.CalorieAlert = calorie.CheckMeal(s.DailyTarget(ctx, user), earlier, *meal.Calories, meal.MealType)
		if out.CalorieAlert != nil {
			metrics.RecordCalorieAlert(out.CalorieAlert.Severity)
			s.log.Debug().
				Int64("user_id", user.ID).
				Str("meal_type", meal.MealType).
				Int("excess", out.CalorieAlert.ExcessCalories).
				Msg("calorie alert")
		}
	}
	return out, nil
}

// ListMeals returns the newest meals of a user first. limit <= 0 selects
// the default page size.
func (s *Service) ListMeals(ctx context.Context, userID int64, limit int) ([]domain.Meal, error) {
	if limit <= 0 {
		limit = defaultMealLimit
	} else if limit > maxMealLimit {
		limit = maxMealLimit
	}
	return s.store.ListMeals(ctx, userID, limit)
}

// DeleteMeal removes a meal owned by userID.
func (s *Service) DeleteMeal(ctx context.Context, userID, mealID int64) error {
	meal, err := s.store.GetMeal(ctx, mealID)
	if err != nil {
		return err
	}
	if meal.UserID != userID {
		return domain.ErrForbidden
	}
	return s.store.DeleteMeal(ctx, mealID)
}

// TodaySummary totals the user's meals of the current day.
func (s *Service) TodaySummary(ctx context.Context, user *domain.User) (calorie.DaySummary, error) {
	from, to := s.today()
	meals, err := s.store.MealsBetween(ctx, user.ID, from, to)
	if err != nil {
		return calorie.DaySummary{}, err
	}
	return calorie.Summarize(s.DailyTarget(ctx, user), meals), nil
}
