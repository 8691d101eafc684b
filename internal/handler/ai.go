package handler

import (
	"net/http"

	"github.com/actuallystonmai/nutrisathi-service/internal/calorie"
	"github.com/actuallystonmai/nutrisathi-service/internal/recommender"
	"github.com/actuallystonmai/nutrisathi-service/internal/service"
)

type thaliRequest struct {
	MealType          string `json:"meal_type" validate:"required,max=30"`
	CalorieGoal       int    `json:"calorie_goal" validate:"omitempty,gt=0,lte=10000"`
	DietaryPreference string `json:"dietary_preference" validate:"omitempty,max=40"`
	HealthGoal        string `json:"health_goal" validate:"omitempty,max=40"`
	Allergies         string `json:"allergies" validate:"omitempty,max=500"`
}

// moodRequest leaves mood unconstrained so an unknown or blank mood is
// reported as invalid_mood with the list of valid ones.
type moodRequest struct {
	Mood              string  `json:"mood" validate:"max=40"`
	MinCalories       float64 `json:"min_calories" validate:"gte=0"`
	MaxCalories       float64 `json:"max_calories" validate:"omitempty,gtefield=MinCalories"`
	DietaryPreference string  `json:"dietary_preference" validate:"omitempty,max=40"`
	Allergies         string  `json:"allergies" validate:"omitempty,max=500"`
	Count             int     `json:"num_recommendations" validate:"omitempty,gte=1,lte=20"`
}

type dayRequest struct {
	DailyCalories     int    `json:"daily_calories" validate:"omitempty,gte=800,lte=10000"`
	DietaryPreference string `json:"dietary_preference" validate:"omitempty,max=40"`
	HealthGoal        string `json:"health_goal" validate:"omitempty,max=40"`
	Allergies         string `json:"allergies" validate:"omitempty,max=500"`
}

// Zero values reach the calculator, which names what is missing.
type calorieRequest struct {
	Weight        float64 `json:"weight" validate:"gte=0,lte=500"`
	Height        float64 `json:"height" validate:"gte=0,lte=300"`
	Age           int     `json:"age" validate:"gte=0,lte=120"`
	Gender        string  `json:"gender" validate:"max=20"`
	ActivityLevel string  `json:"activity_level" validate:"omitempty,max=40"`
	HealthGoal    string  `json:"health_goal" validate:"omitempty,max=40"`
}

// POST /ai/recommend-thali
func (h *Handler) RecommendThali(w http.ResponseWriter, r *http.Request) {
	var req thaliRequest
	if !decode(w, r, &req) {
		return
	}
	rec := h.service.RecommendThali(r.Context(), UserFrom(r.Context()), service.ThaliInput{
		MealType:          req.MealType,
		CalorieGoal:       req.CalorieGoal,
		DietaryPreference: req.DietaryPreference,
		HealthGoal:        req.HealthGoal,
		Allergies:         req.Allergies,
	})
	writeJSON(w, http.StatusOK, rec)
}

// POST /ai/recommend-mood
func (h *Handler) RecommendMood(w http.ResponseWriter, r *http.Request) {
	var req moodRequest
	if !decode(w, r, &req) {
		return
	}
	rec, err := h.service.RecommendMood(r.Context(), UserFrom(r.Context()), service.MoodInput{
		Mood:              req.Mood,
		MinCalories:       req.MinCalories,
		MaxCalories:       req.MaxCalories,
		DietaryPreference: req.DietaryPreference,
		Allergies:         req.Allergies,
		Count:             req.Count,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// POST /ai/recommend-day; the body is optional.
func (h *Handler) RecommendDay(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}
	var req dayRequest
	if len(body) > 0 && !unmarshalValid(w, r, body, &req) {
		return
	}
	plan := h.service.RecommendDay(r.Context(), UserFrom(r.Context()), service.DayInput{
		DailyCalories:     req.DailyCalories,
		DietaryPreference: req.DietaryPreference,
		HealthGoal:        req.HealthGoal,
		Allergies:         req.Allergies,
	})
	writeJSON(w, http.StatusOK, plan)
}

// POST /ai/calculate-calories. Without a body the caller's stored profile
// is used.
func (h *Handler) CalculateCalories(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err.Error())
		return
	}

	var in *calorie.Input
	if len(body) > 0 {
		var req calorieRequest
		if !unmarshalValid(w, r, body, &req) {
			return
		}
		in = &calorie.Input{
			Weight:        req.Weight,
			Height:        req.Height,
			Age:           req.Age,
			Gender:        req.Gender,
			ActivityLevel: req.ActivityLevel,
			HealthGoal:    req.HealthGoal,
		}
	}

	res, err := h.service.CalculateCalories(r.Context(), UserFrom(r.Context()), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type ThaliInfo struct {
	Name             string   `json:"name"`
	Version          string   `json:"version"`
	Description      string   `json:"description"`
	Features         []string `json:"features"`
	BalanceAlgorithm string   `json:"balance_algorithm"`
	CatalogSource    string   `json:"catalog_source"`
	recommender.Info
}

type CalorieInfo struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	MealTypes   []string `json:"meal_types"`
	calorie.Info
}

func (h *Handler) thaliInfo() ThaliInfo {
	return ThaliInfo{
		Name:        "Thali Recommender",
		Version:     "1.0",
		Description: "Indian meal composition based on the traditional thali",
		Features: []string{
			"Meal-specific composition (breakfast, lunch, evening snack, dinner)",
			"Calorie-based portion targeting",
			"Dietary preference and allergy filtering",
			"Health goal tips",
			"Mood-based dish ranking",
			"Whole-day planning",
		},
		BalanceAlgorithm: "Rule-based selection with macronutrient balance scoring",
		CatalogSource:    h.service.Catalog().Source(),
		Info:             h.service.Engine().Info(),
	}
}

func calorieInfo() CalorieInfo {
	return CalorieInfo{
		Name:        "Calorie Calculator",
		Version:     "1.0",
		Description: "Daily calorie targets from the Mifflin-St Jeor equation",
		MealTypes:   []string{"breakfast", "lunch", "evening_snack", "dinner"},
		Info:        calorie.Describe(),
	}
}

// GET /ai/thali-info
func (h *Handler) ThaliInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.thaliInfo())
}

// GET /ai/calorie-info
func (h *Handler) CalorieInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, calorieInfo())
}

// GET /ai/info
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"thali":   h.thaliInfo(),
		"calorie": calorieInfo(),
	})
}
