package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/actuallystonmai/nutrisathi-service/internal/calorie"
	"github.com/actuallystonmai/nutrisathi-service/internal/catalog"
	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
	"github.com/actuallystonmai/nutrisathi-service/internal/recommender"
)

type memStore struct {
	mu     sync.Mutex
	users  map[int64]*domain.User
	meals  map[int64]domain.Meal
	nextID int64
}

func newMemStore() *memStore {
	return &memStore{users: map[int64]*domain.User{}, meals: map[int64]domain.Meal{}}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) CreateUser(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailTaken
		}
	}
	u.ID = m.id()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memStore) GetUserByID(_ context.Context, userID int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memStore) UpdateUser(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memStore) CreateMeal(_ context.Context, meal *domain.Meal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	meal.ID = m.id()
	m.meals[meal.ID] = *meal
	return nil
}

func (m *memStore) GetMeal(_ context.Context, mealID int64) (*domain.Meal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	meal, ok := m.meals[mealID]
	if !ok {
		return nil, domain.ErrMealNotFound
	}
	return &meal, nil
}

func (m *memStore) userMeals(userID int64) []domain.Meal {
	var out []domain.Meal
	for _, meal := range m.meals {
		if meal.UserID == userID {
			out = append(out, meal)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memStore) ListMeals(_ context.Context, userID int64, limit int) ([]domain.Meal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	meals := m.userMeals(userID)
	out := make([]domain.Meal, 0, len(meals))
	for i := len(meals) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, meals[i])
	}
	return out, nil
}

func (m *memStore) MealsBetween(_ context.Context, userID int64, from, to time.Time) ([]domain.Meal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Meal
	for _, meal := range m.userMeals(userID) {
		if !meal.LoggedAt.Before(from) && meal.LoggedAt.Before(to) {
			out = append(out, meal)
		}
	}
	return out, nil
}

func (m *memStore) MealTimes(_ context.Context, userID int64) ([]time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []time.Time
	for _, meal := range m.userMeals(userID) {
		out = append(out, meal.LoggedAt)
	}
	return out, nil
}

func (m *memStore) DeleteMeal(_ context.Context, mealID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.meals[mealID]; !ok {
		return domain.ErrMealNotFound
	}
	delete(m.meals, mealID)
	return nil
}

type memCache struct {
	mu       sync.Mutex
	sessions map[string]int64
	plans    map[int64]*calorie.Result
	planSets int
	cleared  []int64
}

func newMemCache() *memCache {
	return &memCache{sessions: map[string]int64{}, plans: map[int64]*calorie.Result{}}
}

func (c *memCache) CreateSession(_ context.Context, token string, userID int64, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[token] = userID
	return nil
}

func (c *memCache) SessionUser(_ context.Context, token string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok := c.sessions[token]
	if !ok {
		return 0, domain.ErrUnauthenticated
	}
	return id, nil
}

func (c *memCache) DeleteSession(_ context.Context, token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, token)
	return nil
}

func (c *memCache) GetPlan(_ context.Context, userID int64) (*calorie.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.plans[userID], nil
}

func (c *memCache) SetPlan(_ context.Context, userID int64, plan *calorie.Result) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.plans[userID] = plan
	c.planSets++
	return nil
}

func (c *memCache) ClearUserCache(_ context.Context, userID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.plans, userID)
	c.cleared = append(c.cleared, userID)
	return nil
}

type firstPicker struct{}

func (firstPicker) Intn(int) int { return 0 }

var testNow = time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)

func newTestService() (*Service, *memStore, *memCache) {
	store, cache := newMemStore(), newMemCache()
	cat := catalog.Sample()
	engine := recommender.New(cat.Dishes(), nil, firstPicker{})
	svc := NewService(store, cache, engine, cat, Settings{Location: time.UTC})
	svc.now = func() time.Time { return testNow }
	return svc, store, cache
}

func completeProfile() domain.Profile {
	return domain.Profile{
		Gender:        "male",
		Age:           30,
		Height:        175,
		Weight:        70,
		ActivityLevel: "moderately_active",
		HealthGoal:    "maintain_weight",
	}
}

func kcal(v float64) *float64 {
	return &v
}
