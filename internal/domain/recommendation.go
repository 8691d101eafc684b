package domain

type RecommendedDish struct {
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine"`
	ServingSize float64 `json:"serving_size"`
	Unit        string  `json:"unit"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Category    string  `json:"category"`
	Note        string  `json:"note"`
}

type NutrientTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MoodSummary describes the profile a mood recommendation was built for.
type MoodSummary struct {
	Mood         string   `json:"mood"`
	Description  string   `json:"description"`
	KeyNutrients []string `json:"key_nutrients"`
	Ayurvedic    string   `json:"ayurvedic_type"`
}

// Recommendation is the result of one thali or mood composition.
type Recommendation struct {
	MealType     string            `json:"meal_type,omitempty"`
	CalorieGoal  int               `json:"calorie_goal,omitempty"`
	Mood         *MoodSummary      `json:"mood,omitempty"`
	Items        []RecommendedDish `json:"recommended_items"`
	Totals       NutrientTotals    `json:"totals"`
	BalanceScore int               `json:"balance_score"`
	Note         string            `json:"note"`
	Tip          string            `json:"tip"`
	Insights     []string          `json:"insights,omitempty"`
}

// Empty reports whether the composition selected nothing.
func (r *Recommendation) Empty() bool {
	return len(r.Items) == 0
}
