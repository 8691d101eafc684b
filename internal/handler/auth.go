package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
	"github.com/actuallystonmai/nutrisathi-service/internal/service"
)

type userKey struct{}

// UserFrom returns the authenticated user of a request, or nil.
func UserFrom(ctx context.Context) *domain.User {
	u, _ := ctx.Value(userKey{}).(*domain.User)
	return u
}

func withUser(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// Identify attaches the user of a valid bearer token to the request. A
// missing or expired token leaves the request anonymous.
func (h *Handler) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		user, err := h.service.Authenticate(r.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				next.ServeHTTP(w, r)
				return
			}
			writeServiceError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// RequireUser rejects anonymous requests. It runs after Identify.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFrom(r.Context()) == nil {
			writeError(w, http.StatusUnauthorized, "unauthenticated", "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type profileFields struct {
	Gender            string  `json:"gender" validate:"omitempty,max=20"`
	Age               int     `json:"age" validate:"omitempty,gte=1,lte=120"`
	Height            float64 `json:"height" validate:"omitempty,gt=0,lte=300"`
	Weight            float64 `json:"weight" validate:"omitempty,gt=0,lte=500"`
	ActivityLevel     string  `json:"activity_level" validate:"omitempty,max=40"`
	DietaryPreference string  `json:"dietary_preference" validate:"omitempty,max=40"`
	HealthGoal        string  `json:"health_goal" validate:"omitempty,max=40"`
	Allergies         string  `json:"allergies" validate:"omitempty,max=500"`
}

func (p profileFields) profile() domain.Profile {
	return domain.Profile{
		Gender:            p.Gender,
		Age:               p.Age,
		Height:            p.Height,
		Weight:            p.Weight,
		ActivityLevel:     p.ActivityLevel,
		DietaryPreference: p.DietaryPreference,
		HealthGoal:        p.HealthGoal,
		Allergies:         p.Allergies,
	}
}

type signupRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	profileFields
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type profileUpdateRequest struct {
	Name              *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Gender            *string  `json:"gender" validate:"omitempty,max=20"`
	Age               *int     `json:"age" validate:"omitempty,gte=1,lte=120"`
	Height            *float64 `json:"height" validate:"omitempty,gt=0,lte=300"`
	Weight            *float64 `json:"weight" validate:"omitempty,gt=0,lte=500"`
	ActivityLevel     *string  `json:"activity_level" validate:"omitempty,max=40"`
	DietaryPreference *string  `json:"dietary_preference" validate:"omitempty,max=40"`
	HealthGoal        *string  `json:"health_goal" validate:"omitempty,max=40"`
	Allergies         *string  `json:"allergies" validate:"omitempty,max=500"`
}

// POST /auth/signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decode(w, r, &req) {
		return
	}
	sess, err := h.service.Signup(r.Context(), service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Profile:  req.profile(),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

// POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}
	sess, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

// POST /auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), bearerToken(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

// GET /auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, UserFrom(r.Context()))
}

// PUT /auth/profile
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileUpdateRequest
	if !decode(w, r, &req) {
		return
	}
	user, err := h.service.UpdateProfile(r.Context(), UserFrom(r.Context()).ID, domain.ProfileUpdate{
		Name:              req.Name,
		Gender:            req.Gender,
		Age:               req.Age,
		Height:            req.Height,
		Weight:            req.Weight,
		ActivityLevel:     req.ActivityLevel,
		DietaryPreference: req.DietaryPreference,
		HealthGoal:        req.HealthGoal,
		Allergies:         req.Allergies,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
