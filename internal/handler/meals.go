package handler

import (
	"net/http"
	"strconv"

	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
	"github.com/go-chi/chi/v5"
)

type mealRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	ServingSize float64  `json:"serving_size" validate:"gte=0"`
	Unit        string   `json:"unit" validate:"omitempty,max=20"`
	Calories    *float64 `json:"calories" validate:"omitempty,gte=0"`
	Protein     *float64 `json:"protein" validate:"omitempty,gte=0"`
	Carbs       *float64 `json:"carbs" validate:"omitempty,gte=0"`
	Fat         *float64 `json:"fat" validate:"omitempty,gte=0"`
	MealType    string   `json:"meal_type" validate:"omitempty,max=30"`
}

// GET /meals
func (h *Handler) ListMeals(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 500 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	meals, err := h.service.ListMeals(r.Context(), UserFrom(r.Context()).ID, limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, meals)
}

// POST /meals
func (h *Handler) LogMeal(w http.ResponseWriter, r *http.Request) {
	var req mealRequest
	if !decode(w, r, &req) {
		return
	}
	logged, err := h.service.LogMeal(r.Context(), UserFrom(r.Context()), domain.Meal{
		Name:        req.Name,
		ServingSize: req.ServingSize,
		Unit:        req.Unit,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		MealType:    req.MealType,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, logged)
}

// DELETE /meals/{mealID}
func (h *Handler) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	mealID, err := strconv.ParseInt(chi.URLParam(r, "mealID"), 10, 64)
	if err != nil || mealID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid meal_id parameter")
		return
	}

	if err := h.service.DeleteMeal(r.Context(), UserFrom(r.Context()).ID, mealID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Meal deleted successfully", ID: mealID})
}

// GET /meals/summary
func (h *Handler) TodaySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.TodaySummary(r.Context(), UserFrom(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// GET /gamification/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context(), UserFrom(r.Context()).ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
