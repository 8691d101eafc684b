package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
	"github.com/jackc/pgx/v5"
)

const mealColumns = `id, user_id, name, serving_size, unit, calories, protein, carbs, fat, meal_type, logged_at`

func scanMeal(row pgx.Row) (domain.Meal, error) {
	var m domain.Meal
	err := row.Scan(&m.ID, &m.UserID, &m.Name, &m.ServingSize, &m.Unit,
		&m.Calories, &m.Protein, &m.Carbs, &m.Fat, &m.MealType, &m.LoggedAt)
	return m, err
}

func collectMeals(rows pgx.Rows) ([]domain.Meal, error) {
	defer rows.Close()

	meals := []domain.Meal{}
	for rows.Next() {
		m, err := scanMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meals: %w", err)
	}
	return meals, nil
}

// CreateMeal inserts m and fills its ID. A zero LoggedAt means now.
func (r *Repository) CreateMeal(ctx context.Context, m *domain.Meal) error {
	var loggedAt *time.Time
	if !m.LoggedAt.IsZero() {
		loggedAt = &m.LoggedAt
	}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO meals (user_id, name, serving_size, unit, calories, protein, carbs, fat, meal_type, logged_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE($10, now()))
		 RETURNING id, logged_at`,
		m.UserID, m.Name, m.ServingSize, m.Unit, m.Calories, m.Protein, m.Carbs, m.Fat, m.MealType, loggedAt,
	).Scan(&m.ID, &m.LoggedAt)
	if err != nil {
		return fmt.Errorf("insert meal for user %d: %w", m.UserID, err)
	}
	return nil
}

func (r *Repository) GetMeal(ctx context.Context, mealID int64) (*domain.Meal, error) {
	m, err := scanMeal(r.pool.QueryRow(ctx,
		`SELECT `+mealColumns+` FROM meals WHERE id = $1`, mealID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMealNotFound
		}
		return nil, fmt.Errorf("query meal id=%d: %w", mealID, err)
	}
	return &m, nil
}

// ListMeals returns the newest meals of a user first.
func (r *Repository) ListMeals(ctx context.Context, userID int64, limit int) ([]domain.Meal, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+mealColumns+` FROM meals
		 WHERE user_id = $1
		 ORDER BY logged_at DESC, id DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list meals for user %d: %w", userID, err)
	}
	return collectMeals(rows)
}

// MealsBetween returns the meals logged in [from, to), oldest first.
func (r *Repository) MealsBetween(ctx context.Context, userID int64, from, to time.Time) ([]domain.Meal, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+mealColumns+` FROM meals
		 WHERE user_id = $1 AND logged_at >= $2 AND logged_at < $3
		 ORDER BY logged_at, id`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query meals for user %d: %w", userID, err)
	}
	return collectMeals(rows)
}

// MealTimes returns every logging time of a user, oldest first.
func (r *Repository) MealTimes(ctx context.Context, userID int64) ([]time.Time, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT logged_at FROM meals WHERE user_id = $1 ORDER BY logged_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("query meal times for user %d: %w", userID, err)
	}
	times, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, fmt.Errorf("collect meal times: %w", err)
	}
	return times, nil
}

func (r *Repository) DeleteMeal(ctx context.Context, mealID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM meals WHERE id = $1`, mealID)
	if err != nil {
		return fmt.Errorf("delete meal id=%d: %w", mealID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMealNotFound
	}
	return nil
}
