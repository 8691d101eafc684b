package domain

// Dish is one catalog row. Only Macros is written after load, once, by the
// recommender's categorizer.
type Dish struct {
	Name        string           `json:"name"`
	Cuisine     string           `json:"cuisine"`
	ServingSize float64          `json:"serving_size"`
	Unit        string           `json:"unit"`
	Calories    float64          `json:"calories"`
	Protein     float64          `json:"protein"`
	Carbs       float64          `json:"carbs"`
	Fat         float64          `json:"fat"`
	Macros      MacroPercentages `json:"macro_percentages"`
}

// MacroPercentages are energy fractions of the dish calories. They are not
// clamped and need not sum to 1.
type MacroPercentages struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}
