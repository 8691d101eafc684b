package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, password_hash, created_at, gender, age, height, weight,
	activity_level, dietary_preference, health_goal, allergies`

func scanUser(row pgx.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt,
		&u.Gender, &u.Age, &u.Height, &u.Weight,
		&u.ActivityLevel, &u.DietaryPreference, &u.HealthGoal, &u.Allergies)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// CreateUser inserts u and fills its ID and CreatedAt.
func (r *Repository) CreateUser(ctx context.Context, u *domain.User) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, gender, age, height, weight,
			activity_level, dietary_preference, health_goal, allergies)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at`,
		u.Name, u.Email, u.PasswordHash, u.Gender, u.Age, u.Height, u.Weight,
		u.ActivityLevel, u.DietaryPreference, u.HealthGoal, u.Allergies,
	).Scan(&u.ID, &u.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user %s: %w", u.Email, err)
	}
	return nil
}

func (r *Repository) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user id=%d: %w", userID, err)
	}
	return u, nil
}

// GetUserByEmail matches the address case-insensitively.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user email=%s: %w", email, err)
	}
	return u, nil
}

// UpdateUser writes the name and profile of u.
func (r *Repository) UpdateUser(ctx context.Context, u *domain.User) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET name = $2, gender = $3, age = $4, height = $5, weight = $6,
			activity_level = $7, dietary_preference = $8, health_goal = $9, allergies = $10
		 WHERE id = $1`,
		u.ID, u.Name, u.Gender, u.Age, u.Height, u.Weight,
		u.ActivityLevel, u.DietaryPreference, u.HealthGoal, u.Allergies,
	)
	if err != nil {
		return fmt.Errorf("update user id=%d: %w", u.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// CountUsers is used by the seeder to skip populated databases.
func (r *Repository) CountUsers(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}
