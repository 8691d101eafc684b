package domain

import "time"

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	Profile
}

// Profile holds the optional body metrics and preferences of a user.
// Zero values mean "not set".
type Profile struct {
	Gender            string  `json:"gender,omitempty"`
	Age               int     `json:"age,omitempty"`
	Height            float64 `json:"height,omitempty"`
	Weight            float64 `json:"weight,omitempty"`
	ActivityLevel     string  `json:"activity_level,omitempty"`
	DietaryPreference string  `json:"dietary_preference,omitempty"`
	HealthGoal        string  `json:"health_goal,omitempty"`
	Allergies         string  `json:"allergies,omitempty"`
}

// MissingMetrics lists the body metrics the calorie calculator needs but
// the profile does not have.
func (p Profile) MissingMetrics() []string {
	var missing []string
	if p.Weight <= 0 {
		missing = append(missing, "weight")
	}
	if p.Height <= 0 {
		missing = append(missing, "height")
	}
	if p.Age <= 0 {
		missing = append(missing, "age")
	}
	if p.Gender == "" {
		missing = append(missing, "gender")
	}
	return missing
}

// ProfileUpdate carries a partial profile change; nil fields are left as is.
type ProfileUpdate struct {
	Name              *string
	Gender            *string
	Age               *int
	Height            *float64
	Weight            *float64
	ActivityLevel     *string
	DietaryPreference *string
	HealthGoal        *string
	Allergies         *string
}

// Apply copies the set fields of u onto user.
func (u ProfileUpdate) Apply(user *User) {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Gender != nil {
		user.Gender = *u.Gender
	}
	if u.Age != nil {
		user.Age = *u.Age
	}
	if u.Height != nil {
		user.Height = *u.Height
	}
	if u.Weight != nil {
		user.Weight = *u.Weight
	}
	if u.ActivityLevel != nil {
		user.ActivityLevel = *u.ActivityLevel
	}
	if u.DietaryPreference != nil {
		user.DietaryPreference = *u.DietaryPreference
	}
	if u.HealthGoal != nil {
		user.HealthGoal = *u.HealthGoal
	}
	if u.Allergies != nil {
		user.Allergies = *u.Allergies
	}
}
