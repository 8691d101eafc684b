package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/actuallystonmai/nutrisathi-service/internal/calorie"
	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
	"github.com/actuallystonmai/nutrisathi-service/internal/metrics"
)

// DailyPlan returns the calorie plan derived from the user's profile,
// reading through the plan cache.
func (s *Service) DailyPlan(ctx context.Context, user *domain.User) (*calorie.Result, error) {
	if missing := user.MissingMetrics(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", domain.ErrProfileIncomplete, strings.Join(missing, ", "))
	}

	cached, err := s.cache.GetPlan(ctx, user.ID)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", user.ID).Msg("plan cache get failed")
	}
	metrics.RecordCacheLookup(cached != nil)
	if cached != nil {
		return cached, nil
	}

	plan, err := calorie.Calculate(profileInput(user.Profile))
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetPlan(ctx, user.ID, plan); err != nil {
		s.log.Warn().Err(err).Int64("user_id", user.ID).Msg("plan cache set failed")
	}
	return plan, nil
}

func profileInput(p domain.Profile) calorie.Input {
	return calorie.Input{
		Weight:        p.Weight,
		Height:        p.Height,
		Age:           p.Age,
		Gender:        p.Gender,
		ActivityLevel: p.ActivityLevel,
		HealthGoal:    p.HealthGoal,
	}
}

// CalculateCalories runs the calculator on in when given, otherwise on the
// stored profile of user. With neither it reports a missing parameter.
func (s *Service) CalculateCalories(ctx context.Context, user *domain.User, in *calorie.Input) (*calorie.Result, error) {
	if in != nil {
		return calorie.Calculate(*in)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: authenticate or provide weight, height, age and gender", calorie.ErrMissingParameter)
	}
	return s.DailyPlan(ctx, user)
}

// DailyTarget is the user's planned intake, or the default target when
// there is no user or the profile cannot produce a plan.
func (s *Service) DailyTarget(ctx context.Context, user *domain.User) int {
	target, _ := s.dailyTarget(ctx, user)
	return target
}

// dailyTarget also reports whether the target came from the user's plan.
func (s *Service) dailyTarget(ctx context.Context, user *domain.User) (int, bool) {
	if user == nil || len(user.MissingMetrics()) > 0 {
		return calorie.DefaultDailyTarget, false
	}
	plan, err := s.DailyPlan(ctx, user)
	if err != nil {
		s.log.Warn().Err(err).Int64("user_id", user.ID).Msg("falling back to default daily target")
		return calorie.DefaultDailyTarget, false
	}
	return plan.DailyCalories, true
}
