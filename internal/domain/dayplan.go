package domain

type SlotStatus string

const (
	SlotComposed SlotStatus = "composed"
	SlotEmpty    SlotStatus = "empty"
	SlotFailed   SlotStatus = "failed"
)

// SlotResult is one meal of a day plan.
type SlotResult struct {
	MealType       string          `json:"meal_type"`
	CalorieGoal    int             `json:"calorie_goal"`
	Status         SlotStatus      `json:"status"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
	Error          string          `json:"error,omitempty"`
	Message        string          `json:"message,omitempty"`
}

type DayPlanSummary struct {
	ComposedCount    int   `json:"composed_count"`
	EmptyCount       int   `json:"empty_count"`
	FailedCount      int   `json:"failed_count"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

type DayPlanMeta struct {
	// TargetSource is "plan", "request" or "default".
	TargetSource string `json:"target_source"`
	GeneratedAt  string `json:"generated_at"`
}

// DayPlan is a thali for every slot of the day sized from one daily target.
type DayPlan struct {
	DailyCalories int            `json:"daily_calories"`
	Meals         []SlotResult   `json:"meals"`
	Totals        NutrientTotals `json:"totals"`
	Summary       DayPlanSummary `json:"summary"`
	Metadata      DayPlanMeta    `json:"metadata"`
}
