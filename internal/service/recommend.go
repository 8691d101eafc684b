package service

import (
	"context"
	"errors"
	"strings"

	"github.com/actuallystonmai/nutrisathi-service/internal/calorie"
	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
	"github.com/actuallystonmai/nutrisathi-service/internal/metrics"
	"github.com/actuallystonmai/nutrisathi-service/internal/recommender"
)

// ThaliInput is a thali request. Blank fields are taken from the user's
// profile; a zero CalorieGoal becomes the slot's share of the daily target.
type ThaliInput struct {
	MealType          string
	CalorieGoal       int
	DietaryPreference string
	HealthGoal        string
	Allergies         string
}

type MoodInput struct {
	Mood              string
	MinCalories       float64
	MaxCalories       float64
	DietaryPreference string
	Allergies         string
	Count             int
}

// splitAllergies turns "Peanut, dairy,," into [peanut dairy].
func splitAllergies(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func orProfile(v, fallback string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func (s *Service) thaliRequest(ctx context.Context, user *domain.User, in ThaliInput) recommender.ThaliRequest {
	var profile domain.Profile
	if user != nil {
		profile = user.Profile
	}
	req := recommender.ThaliRequest{
		MealType:          in.MealType,
		CalorieGoal:       in.CalorieGoal,
		DietaryPreference: orProfile(in.DietaryPreference, profile.DietaryPreference),
		HealthGoal:        orProfile(in.HealthGoal, profile.HealthGoal),
		Allergies:         splitAllergies(orProfile(in.Allergies, profile.Allergies)),
	}
	if req.CalorieGoal <= 0 {
		req.CalorieGoal = calorie.MealTarget(s.DailyTarget(ctx, user), req.MealType, req.HealthGoal)
	}
	return req
}

// RecommendThali composes one meal. user may be nil.
func (s *Service) RecommendThali(ctx context.Context, user *domain.User, in ThaliInput) domain.Recommendation {
	rec := s.engine.ComposeThali(s.thaliRequest(ctx, user, in))
	metrics.RecordRecommendation(metrics.KindThali, outcome(rec))
	return rec
}

// RecommendMood ranks dishes for a mood. user may be nil.
func (s *Service) RecommendMood(ctx context.Context, user *domain.User, in MoodInput) (domain.Recommendation, error) {
	var profile domain.Profile
	if user != nil {
		profile = user.Profile
	}
	rec, err := s.engine.ComposeMood(recommender.MoodRequest{
		Mood:              in.Mood,
		MinCalories:       in.MinCalories,
		MaxCalories:       in.MaxCalories,
		DietaryPreference: orProfile(in.DietaryPreference, profile.DietaryPreference),
		Allergies:         splitAllergies(orProfile(in.Allergies, profile.Allergies)),
		Count:             in.Count,
	})
	if err != nil {
		if errors.Is(err, recommender.ErrInvalidMood) {
			metrics.RecordRecommendation(metrics.KindMood, metrics.OutcomeInvalid)
		}
		return domain.Recommendation{}, err
	}
	metrics.RecordRecommendation(metrics.KindMood, outcome(rec))
	return rec, nil
}

func outcome(rec domain.Recommendation) string {
	if rec.Empty() {
		return metrics.OutcomeEmpty
	}
	return metrics.OutcomeOK
}
