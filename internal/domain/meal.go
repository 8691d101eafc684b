package domain

import "time"

type Meal struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	ServingSize float64   `json:"serving_size"`
	Unit        string    `json:"unit"`
	Calories    *float64  `json:"calories"`
	Protein     *float64  `json:"protein"`
	Carbs       *float64  `json:"carbs"`
	Fat         *float64  `json:"fat"`
	MealType    string    `json:"meal_type,omitempty"`
	LoggedAt    time.Time `json:"timestamp"`
}

// CalorieValue returns the logged calories, or 0 when none were recorded.
func (m Meal) CalorieValue() float64 {
	if m.Calories == nil {
		return 0
	}
	return *m.Calories
}
