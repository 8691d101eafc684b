package service

import (
	"context"
	"errors"
	"time"

	"github.com/actuallystonmai/nutrisathi-service/internal/calorie"
	"github.com/actuallystonmai/nutrisathi-service/internal/catalog"
	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
	"github.com/actuallystonmai/nutrisathi-service/internal/logging"
	"github.com/actuallystonmai/nutrisathi-service/internal/recommender"
	"github.com/rs/zerolog"
)

const (
	defaultMealLimit  = 100
	maxMealLimit      = 500
	defaultSessionTTL = 7 * 24 * time.Hour
)

type UserStore interface {
	CreateUser(ctx context.Context, u *domain.User) error
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, u *domain.User) error
}

type MealStore interface {
	CreateMeal(ctx context.Context, m *domain.Meal) error
	GetMeal(ctx context.Context, mealID int64) (*domain.Meal, error)
	ListMeals(ctx context.Context, userID int64, limit int) ([]domain.Meal, error)
	MealsBetween(ctx context.Context, userID int64, from, to time.Time) ([]domain.Meal, error)
	MealTimes(ctx context.Context, userID int64) ([]time.Time, error)
	DeleteMeal(ctx context.Context, mealID int64) error
}

// Store is the relational side: users and their meals.
type Store interface {
	UserStore
	MealStore
}

type SessionStore interface {
	CreateSession(ctx context.Context, token string, userID int64, ttl time.Duration) error
	SessionUser(ctx context.Context, token string) (int64, error)
	DeleteSession(ctx context.Context, token string) error
}

type PlanCache interface {
	GetPlan(ctx context.Context, userID int64) (*calorie.Result, error)
	SetPlan(ctx context.Context, userID int64, plan *calorie.Result) error
	ClearUserCache(ctx context.Context, userID int64) error
}

// Cache is the redis side: sessions and derived per-user data.
type Cache interface {
	SessionStore
	PlanCache
}

type Settings struct {
	SessionTTL time.Duration
	// Location decides where a day starts for summaries and streaks.
	Location *time.Location
}

type Service struct {
	store      Store
	cache      Cache
	engine     *recommender.Engine
	catalog    *catalog.Catalog
	sessionTTL time.Duration
	loc        *time.Location
	now        func() time.Time
	log        zerolog.Logger
}

func NewService(store Store, cache Cache, engine *recommender.Engine, cat *catalog.Catalog, settings Settings) *Service {
	if settings.SessionTTL <= 0 {
		settings.SessionTTL = defaultSessionTTL
	}
	if settings.Location == nil {
		settings.Location = time.Local
	}
	return &Service{
		store:      store,
		cache:      cache,
		engine:     engine,
		catalog:    cat,
		sessionTTL: settings.SessionTTL,
		loc:        settings.Location,
		now:        time.Now,
		log:        logging.With("service"),
	}
}

func (s *Service) Engine() *recommender.Engine {
	return s.engine
}

func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// today returns the bounds of the current local day.
func (s *Service) today() (time.Time, time.Time) {
	now := s.now().In(s.loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	return start, start.AddDate(0, 0, 1)
}

// ErrorCode maps a service error to a stable code and a client-safe message.
func ErrorCode(err error) (string, string) {
	switch {
	case errors.Is(err, recommender.ErrInvalidMood):
		return "invalid_mood", err.Error()
	case errors.Is(err, calorie.ErrMissingParameter):
		return "missing_parameter", err.Error()
	case errors.Is(err, domain.ErrProfileIncomplete):
		return "profile_incomplete", err.Error()
	case errors.Is(err, domain.ErrUserNotFound):
		return "user_not_found", "user not found"
	case errors.Is(err, domain.ErrEmailTaken):
		return "email_taken", "email already registered"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials", "invalid email or password"
	case errors.Is(err, domain.ErrUnauthenticated):
		return "unauthenticated", "authentication required"
	case errors.Is(err, domain.ErrMealNotFound):
		return "meal_not_found", "meal not found"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden", "not authorized to access this meal"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "request_timeout", "request timed out, please try again"
	}
	return "internal_error", "an unexpected error occurred"
}
