// Package seeds fills an empty database with demo users and a few weeks of
// logged meals drawn from the dish catalog.
package seeds

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jaswdr/faker"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "nutrisathi-demo"

type Options struct {
	Users  int
	Days   int
	Seed   int64
	Dishes []*domain.Dish
	Now    time.Time
	Logger zerolog.Logger
}

func (o *Options) defaults() {
	if o.Users <= 0 {
		o.Users = 20
	}
	if o.Days <= 0 {
		o.Days = 21
	}
	if o.Seed == 0 {
		o.Seed = 42
	}
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
}

func Setup(ctx context.Context, pool *pgxpool.Pool, opts Options) error {
	opts.defaults()
	if len(opts.Dishes) == 0 {
		return fmt.Errorf("seed: no dishes to log meals from")
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	fake := faker.NewWithSeed(rand.NewSource(opts.Seed))
	log := opts.Logger

	// Truncate existing data before insert
	log.Info().Msg("truncating existing data")
	if _, err := pool.Exec(ctx, `TRUNCATE meals, users RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	users := GenerateUsers(rng, fake, opts.Users, opts.Now)
	log.Info().Int("count", len(users)).Msg("inserting users")
	if err := insertUsers(ctx, pool, users, string(hash)); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	meals := GenerateMeals(rng, opts.Dishes, len(users), opts.Days, opts.Now)
	log.Info().Int("count", len(meals)).Msg("inserting meals")
	if err := insertMeals(ctx, pool, meals); err != nil {
		return fmt.Errorf("seed meals: %w", err)
	}

	log.Info().Msg("seeding complete")
	return nil
}

var (
	genders       = []string{"male", "female"}
	genderWeights = []float64{0.5, 0.5}

	activityLevels  = []string{"sedentary", "lightly_active", "moderately_active", "very_active", "extra_active"}
	activityWeights = []float64{0.25, 0.3, 0.3, 0.1, 0.05}

	diets       = []string{"vegetarian", "vegan", "non_vegetarian"}
	dietWeights = []float64{0.45, 0.1, 0.45}

	goals       = []string{"weight_loss", "maintain_weight", "muscle_gain", ""}
	goalWeights = []float64{0.35, 0.35, 0.2, 0.1}

	allergyOptions = []string{"peanut", "dairy", "gluten", "shellfish"}
)

// GenerateUsers builds n users with plausible profiles. About one in ten
// leaves the body metrics blank so incomplete profiles show up too.
func GenerateUsers(rng *rand.Rand, fake faker.Faker, n int, now time.Time) []domain.User {
	users := make([]domain.User, 0, n)
	for i := range n {
		person := fake.Person()
		first := emailSafe(person.FirstName())
		if first == "" {
			first = "user"
		}

		u := domain.User{
			Name:      person.FirstName() + " " + person.LastName(),
			Email:     fmt.Sprintf("%s%d@%s", first, i+1, fake.Internet().FreeEmailDomain()),
			CreatedAt: now.AddDate(0, 0, -rng.Intn(365)),
		}
		u.DietaryPreference = weightedChoice(rng, diets, dietWeights)
		if rng.Float64() < 0.15 {
			u.Allergies = allergyOptions[rng.Intn(len(allergyOptions))]
		}

		if rng.Float64() >= 0.1 {
			u.Gender = weightedChoice(rng, genders, genderWeights)
			u.Age = rng.Intn(48) + 18
			u.Height = float64(150 + rng.Intn(41))
			u.Weight = float64(45 + rng.Intn(56))
			u.ActivityLevel = weightedChoice(rng, activityLevels, activityWeights)
			u.HealthGoal = weightedChoice(rng, goals, goalWeights)
		}
		users = append(users, u)
	}
	return users
}

func emailSafe(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

var mealHours = map[string][2]int{
	"breakfast": {7, 10},
	"lunch":     {12, 15},
	"snack":     {16, 18},
	"dinner":    {19, 22},
}

var mealOrder = []string{"breakfast", "lunch", "snack", "dinner"}

// GenerateMeals logs meals for users 1..userCount over the last days days.
// Each user has a habit level, so streak lengths differ between users.
func GenerateMeals(rng *rand.Rand, dishes []*domain.Dish, userCount, days int, now time.Time) []domain.Meal {
	var meals []domain.Meal
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for uid := int64(1); uid <= int64(userCount); uid++ {
		habit := 0.4 + rng.Float64()*0.6
		for d := days - 1; d >= 0; d-- {
			if rng.Float64() > habit {
				continue
			}
			day := today.AddDate(0, 0, -d)
			for _, mealType := range mealOrder {
				if mealType == "snack" && rng.Float64() < 0.5 {
					continue
				}
				hours := mealHours[mealType]
				at := day.Add(time.Duration(hours[0]+rng.Intn(hours[1]-hours[0]))*time.Hour +
					time.Duration(rng.Intn(60))*time.Minute)
				if at.After(now) {
					continue
				}

				dish := dishes[rng.Intn(len(dishes))]
				portion := 0.75 + rng.Float64()*0.75
				meals = append(meals, domain.Meal{
					UserID:      uid,
					Name:        dish.Name,
					ServingSize: round1(dish.ServingSize * portion),
					Unit:        "g",
					Calories:    ptr(round1(dish.Calories * portion)),
					Protein:     ptr(round1(dish.Protein * portion)),
					Carbs:       ptr(round1(dish.Carbs * portion)),
					Fat:         ptr(round1(dish.Fat * portion)),
					MealType:    mealType,
					LoggedAt:    at,
				})
			}
		}
	}
	return meals
}

func insertUsers(ctx context.Context, pool *pgxpool.Pool, users []domain.User, passwordHash string) error {
	const cols = 12
	rows := []string{}
	args := []any{}

	for i, u := range users {
		rows = append(rows, placeholders(i*cols, cols))
		args = append(args, u.Name, u.Email, passwordHash, u.CreatedAt,
			u.Gender, u.Age, u.Height, u.Weight, u.ActivityLevel,
			u.DietaryPreference, u.HealthGoal, u.Allergies)
	}

	if len(rows) == 0 {
		return nil
	}

	query := `INSERT INTO users (name, email, password_hash, created_at, gender, age, height, weight,
		activity_level, dietary_preference, health_goal, allergies) VALUES ` + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

// maxMealRows keeps one statement under the postgres parameter limit.
const maxMealRows = 5000

func insertMeals(ctx context.Context, pool *pgxpool.Pool, meals []domain.Meal) error {
	const cols = 10
	for start := 0; start < len(meals); start += maxMealRows {
		batch := meals[start:min(start+maxMealRows, len(meals))]

		rows := make([]string, 0, len(batch))
		args := make([]any, 0, len(batch)*cols)
		for i, m := range batch {
			rows = append(rows, placeholders(i*cols, cols))
			args = append(args, m.UserID, m.Name, m.ServingSize, m.Unit,
				m.Calories, m.Protein, m.Carbs, m.Fat, m.MealType, m.LoggedAt)
		}

		query := `INSERT INTO meals (user_id, name, serving_size, unit, calories, protein, carbs, fat,
			meal_type, logged_at) VALUES ` + strings.Join(rows, ", ")
		if _, err := pool.Exec(ctx, query, args...); err != nil {
			return err
		}
	}
	return nil
}

// placeholders returns "($base+1, ..., $base+n)".
func placeholders(base, n int) string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 1; i <= n; i++ {
		if i > 1 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "$%d", base+i)
	}
	b.WriteByte(')')
	return b.String()
}

func weightedChoice(rng *rand.Rand, choices []string, weights []float64) string {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return choices[i]
		}
	}
	return choices[len(choices)-1]
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

func ptr(v float64) *float64 {
	return &v
}
