package recommender

// Range is an inclusive [Min, Max] interval of energy fractions.
type Range struct {
	Min float64
	Max float64
}

func (r Range) contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// MoodInsight is shown when the average protein and carbs of a selection
// exceed the given thresholds. A zero threshold is always satisfied.
type MoodInsight struct {
	Text            string
	AboveAvgProtein float64
	AboveAvgCarbs   float64
}

func (i MoodInsight) applies(avgProtein, avgCarbs float64) bool {
	if i.AboveAvgProtein > 0 && avgProtein <= i.AboveAvgProtein {
		return false
	}
	if i.AboveAvgCarbs > 0 && avgCarbs <= i.AboveAvgCarbs {
		return false
	}
	return true
}

// MoodProfile is the static nutrition profile of one mood.
type MoodProfile struct {
	Description  string
	KeyNutrients []string
	Protein      Range
	Carbs        Range
	Fat          Range
	Ayurvedic    string
	// Properties name keyword categories (see Tables.Keywords) to reward.
	Properties []string
	// Avoid keywords are penalised; underscores match spaces.
	Avoid []string

	PreferredFoods []string
	ModerateFoods  []string
	AvoidFoods     []string

	Benefits    []string
	Insight     MoodInsight
	WellnessTip string
}

// StepFilter narrows the pool a thali step selects from. An empty filter
// keeps every dish.
type StepFilter struct {
	MinProtein   float64
	NameKeywords []string
}

func (f StepFilter) empty() bool {
	return f.MinProtein == 0 && len(f.NameKeywords) == 0
}

// SlotStep is one (sub-category, calorie share) pair of a meal slot.
type SlotStep struct {
	Key       string
	Share     float64
	Label     string
	Note      string
	Preferred []string
	Filter    StepFilter
	// Optional steps are filled only when a dish of a preferred category
	// is still available.
	Optional bool
}

// SlotRule is the ordered composition of one meal slot.
type SlotRule struct {
	Title string
	// Note may contain {n}, replaced by the number of selected items.
	Note     string
	TipGroup string
	Steps    []SlotStep
}

// DietTables hold the banned name keywords per dietary preference. Vegan
// dishes must also pass the vegetarian list.
type DietTables struct {
	Vegetarian []string
	Vegan      []string
}

// Tables is the swappable keyword and rule configuration of an Engine.
type Tables struct {
	Categories map[string][]string
	Keywords   map[string][]string

	Moods     map[string]*MoodProfile
	MoodOrder []string
	Ayurvedic map[string]string

	Slots     map[string]*SlotRule
	SlotOrder []string
	// SlotAliases maps alternative meal type names to a slot key.
	SlotAliases map[string]string

	Diet DietTables

	// HealthTips is keyed by tip group then by goal group
	// ("weight_loss", "muscle", "default").
	HealthTips map[string]map[string]string
	GenericTip string
}

// DefaultTables returns the built-in Indian cuisine tables.
func DefaultTables() *Tables {
	return &Tables{
		Categories: map[string][]string{
			"grains":          {"Rice", "Roti", "Paratha", "Naan", "Poha", "Upma", "Khichdi"},
			"proteins":        {"Dal", "Paneer", "Chicken", "Egg", "Fish", "Rajma", "Chana"},
			"vegetables":      {"Aloo", "Gobi", "Palak", "Bhindi", "Mixed Veg"},
			"breakfast_items": {"Idli", "Dosa", "Poha", "Upma", "Paratha"},
			"snacks":          {"Samosa", "Vada Pav", "Pav Bhaji", "Pakora", "Dhokla"},
			"curries":         {"Curry", "Masala", "Bhurji", "Makhani"},
			"light_items":     {"Raita", "Salad", "Curd", "Soup"},
			"beverages":       {"Tea", "Coffee", "Lassi", "Juice"},
			"fruits":          {"Fruit", "Banana", "Apple", "Mango", "Papaya"},
		},
		Keywords: map[string][]string{
			"protein_rich":  {"chicken", "egg", "fish", "paneer", "dal", "rajma", "chana", "soya", "tofu"},
			"complex_carbs": {"brown rice", "oats", "quinoa", "whole wheat", "roti", "chapati", "khichdi"},
			"simple_carbs":  {"white rice", "maida", "sugar", "naan", "kulcha"},
			"healthy_fats":  {"nuts", "seeds", "avocado", "olive", "ghee (small)"},
			"comfort_food":  {"khichdi", "dal rice", "curd rice", "porridge", "soup"},
			"light":         {"salad", "soup", "steamed", "boiled", "grilled", "idli", "dhokla"},
			"heavy":         {"fried", "deep fried", "cream", "butter chicken", "biryani", "paratha"},
			"warming":       {"ginger", "garlic", "pepper", "cinnamon", "turmeric", "soup"},
			"cooling":       {"cucumber", "curd", "mint", "coconut", "watermelon"},
			"iron_rich":     {"spinach", "palak", "methi", "beet", "liver"},
			"vitamin_c":     {"lemon", "orange", "amla", "tomato", "capsicum"},
			"digestive":     {"ginger", "ajwain", "jeera", "curd", "buttermilk", "khichdi"},
		},
		Moods:     defaultMoods(),
		MoodOrder: []string{"happy", "sad", "tired", "stressed", "sick"},
		Ayurvedic: map[string]string{
			"sattvic": "Sattvic (pure, calming) foods for balance and clarity",
			"rajasic": "Rajasic (stimulating, energizing) foods for vitality",
		},
		Slots:     defaultSlots(),
		SlotOrder: []string{"breakfast", "lunch", "evening_snack", "dinner"},
		SlotAliases: map[string]string{
			"snack": "evening_snack",
		},
		Diet: DietTables{
			Vegetarian: []string{"chicken", "fish", "mutton", "egg", "meat", "prawn", "lamb"},
			Vegan:      []string{"paneer", "ghee", "butter", "curd", "cheese", "milk", "cream"},
		},
		HealthTips: map[string]map[string]string{
			"breakfast": {
				"weight_loss": "High protein breakfast keeps you full longer",
				"muscle":      "Start your day with protein for muscle recovery",
				"default":     "Never skip breakfast - it kickstarts your metabolism",
			},
			"lunch": {
				"weight_loss": "Fill half your plate with vegetables",
				"muscle":      "Include lean protein in every lunch",
				"default":     "Eat lunch mindfully without distractions",
			},
			"snack": {
				"weight_loss": "Choose protein-rich snacks to avoid overeating at dinner",
				"muscle":      "Post-workout snack helps muscle recovery",
				"default":     "Healthy snacks prevent unhealthy cravings",
			},
			"dinner": {
				"weight_loss": "Lighter dinner aids weight loss and better sleep",
				"muscle":      "Slow-digesting protein before bed supports overnight recovery",
				"default":     "Eat dinner 2-3 hours before bedtime",
			},
		},
		GenericTip: "Eat mindfully and stay hydrated",
	}
}

func defaultSlots() map[string]*SlotRule {
	return map[string]*SlotRule{
		"breakfast": {
			Title:    "Breakfast",
			Note:     "Traditional Indian breakfast thali - {n} items",
			TipGroup: "breakfast",
			Steps: []SlotStep{
				{Key: "main_carb", Share: 0.45, Label: "Main Dish", Note: "Primary energy source for the morning",
					Preferred: []string{"breakfast_items", "grains"}},
				{Key: "protein", Share: 0.25, Label: "Protein", Note: "Keeps you full and energized",
					Filter: StepFilter{MinProtein: 10}},
				{Key: "healthy_fat", Share: 0.15, Label: "Side", Note: "Adds flavor and nutrition"},
				{Key: "beverage", Share: 0.10, Label: "Beverage", Note: "Hydrating start to the day",
					Preferred: []string{"beverages"}, Optional: true},
				{Key: "fruit", Share: 0.05, Label: "Fruit", Note: "Natural sweetness and vitamins",
					Preferred: []string{"fruits"}, Optional: true},
			},
		},
		"lunch": {
			Title:    "Lunch",
			Note:     "Complete Indian thali - {n} items for balanced nutrition",
			TipGroup: "lunch",
			Steps: []SlotStep{
				{Key: "grain", Share: 0.30, Label: "Grain (Staple)", Note: "Foundation of the thali",
					Preferred: []string{"grains"}},
				{Key: "dal_protein", Share: 0.25, Label: "Dal (Lentils)", Note: "Plant-based protein powerhouse",
					Filter: StepFilter{NameKeywords: []string{"dal", "rajma"}}},
				{Key: "vegetable", Share: 0.20, Label: "Sabzi (Vegetable)", Note: "Rich in vitamins and fiber",
					Preferred: []string{"vegetables", "curries"}},
				{Key: "side_protein", Share: 0.15, Label: "Protein Side", Note: "Additional protein for satiety",
					Filter: StepFilter{MinProtein: 8}},
				{Key: "accompaniment", Share: 0.10, Label: "Accompaniment", Note: "Cooling side that aids digestion",
					Preferred: []string{"light_items"}, Optional: true},
			},
		},
		"evening_snack": {
			Title:    "Evening Snack",
			Note:     "Evening snack - keep it light",
			TipGroup: "snack",
			Steps: []SlotStep{
				{Key: "main_item", Share: 0.70, Label: "Snack", Note: "Light bite to curb evening hunger",
					Preferred: []string{"snacks", "breakfast_items"}},
				{Key: "beverage", Share: 0.20, Label: "Beverage", Note: "Pairs well with your snack",
					Preferred: []string{"beverages"}, Optional: true},
				{Key: "light_bite", Share: 0.10, Label: "Light Bite", Note: "Small accompaniment to round it off",
					Preferred: []string{"light_items", "fruits"}, Optional: true},
			},
		},
		"dinner": {
			Title:    "Dinner",
			Note:     "Light dinner thali - {n} items for good sleep",
			TipGroup: "dinner",
			Steps: []SlotStep{
				{Key: "grain", Share: 0.25, Label: "Grain", Note: "Light grain for easy digestion",
					Preferred: []string{"grains"}},
				{Key: "protein_curry", Share: 0.30, Label: "Protein Curry", Note: "Protein for overnight muscle repair",
					Preferred: []string{"proteins", "curries"}, Filter: StepFilter{MinProtein: 10}},
				{Key: "vegetable", Share: 0.25, Label: "Vegetable", Note: "Fiber-rich for digestion",
					Preferred: []string{"vegetables"}},
				{Key: "soup_light", Share: 0.15, Label: "Soup / Light", Note: "Warm and light to end the day",
					Preferred: []string{"light_items"}, Optional: true},
				{Key: "accompaniment", Share: 0.05, Label: "Accompaniment", Note: "A small tangy finish",
					Preferred: []string{"light_items"}, Optional: true},
			},
		},
	}
}

func defaultMoods() map[string]*MoodProfile {
	return map[string]*MoodProfile{
		"happy": {
			Description:    "Maintain positivity and energy",
			KeyNutrients:   []string{"complex_carbs", "b_vitamins", "antioxidants"},
			Protein:        Range{0.15, 0.25},
			Carbs:          Range{0.50, 0.65},
			Fat:            Range{0.20, 0.35},
			Ayurvedic:      "sattvic",
			Properties:     []string{"light", "energizing", "colorful"},
			Avoid:          []string{"heavy", "fried", "excessive_sugar"},
			PreferredFoods: []string{"Fruits", "Salads", "Grains", "Yogurt", "Smoothies"},
			ModerateFoods:  []string{"Chicken", "Fish", "Vegetables", "Rice"},
			AvoidFoods:     []string{"Deep-fried", "Heavy desserts"},
			Benefits: []string{
				"Provides sustained energy to keep spirits high",
				"Rich in mood-maintaining nutrients",
				"Light and refreshing to support positivity",
			},
			Insight:     MoodInsight{Text: "😊 Balanced nutrition helps maintain your positive energy"},
			WellnessTip: "💡 Stay hydrated and maintain regular meals to keep energy steady",
		},
		"sad": {
			Description:    "Boost serotonin and mood naturally",
			KeyNutrients:   []string{"tryptophan", "omega_3", "complex_carbs", "b_vitamins", "vitamin_d"},
			Protein:        Range{0.20, 0.30},
			Carbs:          Range{0.45, 0.60},
			Fat:            Range{0.25, 0.35},
			Ayurvedic:      "rajasic",
			Properties:     []string{"comfort", "warming", "moderate_protein"},
			Avoid:          []string{"caffeine", "alcohol", "processed_sugar"},
			PreferredFoods: []string{"Dal", "Khichdi", "Chicken", "Eggs", "Whole grains", "Nuts"},
			ModerateFoods:  []string{"Rice", "Roti", "Vegetables", "Paneer"},
			AvoidFoods:     []string{"Junk food", "Alcohol", "Excessive sweets"},
			Benefits: []string{
				"Contains tryptophan to boost serotonin naturally",
				"Comfort food that's nutritionally balanced",
				"Warming and satisfying to lift mood",
			},
			Insight: MoodInsight{
				Text:            "✅ High protein content supports neurotransmitter production for better mood",
				AboveAvgProtein: 15,
			},
			WellnessTip: "💡 Combine these foods with sunlight exposure and gentle exercise for best results",
		},
		"tired": {
			Description:    "Restore energy with slow-release fuel",
			KeyNutrients:   []string{"iron", "b_vitamins", "complex_carbs", "magnesium", "protein"},
			Protein:        Range{0.25, 0.35},
			Carbs:          Range{0.40, 0.55},
			Fat:            Range{0.20, 0.30},
			Ayurvedic:      "rajasic",
			Properties:     []string{"energy_boosting", "iron_rich", "moderate_fat"},
			Avoid:          []string{"simple_sugars", "heavy_cream", "excessive_carbs"},
			PreferredFoods: []string{"Eggs", "Chicken", "Fish", "Spinach", "Lentils", "Nuts", "Quinoa"},
			ModerateFoods:  []string{"Brown rice", "Sweet potato", "Vegetables"},
			AvoidFoods:     []string{"White bread", "Pastries", "Candy", "Soda"},
			Benefits: []string{
				"High in iron and B-vitamins for energy",
				"Slow-release carbs prevent energy crashes",
				"Protein-rich to combat fatigue",
			},
			Insight: MoodInsight{
				Text:          "⚡ Complex carbs provide sustained energy release",
				AboveAvgCarbs: 30,
			},
			WellnessTip: "💡 Pair these meals with 7-8 hours of sleep and stay hydrated throughout the day",
		},
		"stressed": {
			Description:    "Calm the nervous system",
			KeyNutrients:   []string{"magnesium", "b_vitamins", "omega_3", "vitamin_c", "complex_carbs"},
			Protein:        Range{0.20, 0.30},
			Carbs:          Range{0.40, 0.55},
			Fat:            Range{0.25, 0.35},
			Ayurvedic:      "sattvic",
			Properties:     []string{"calming", "moderate_portions", "nutrient_dense"},
			Avoid:          []string{"caffeine", "alcohol", "spicy", "fried"},
			PreferredFoods: []string{"Almonds", "Walnuts", "Green vegetables", "Oats", "Chamomile tea", "Berries"},
			ModerateFoods:  []string{"Fish", "Eggs", "Whole grains", "Yogurt"},
			AvoidFoods:     []string{"Coffee", "Energy drinks", "Spicy food", "Alcohol"},
			Benefits: []string{
				"Contains magnesium to calm nerves",
				"Helps reduce cortisol (stress hormone)",
				"Grounding and nourishing for relaxation",
			},
			Insight:     MoodInsight{Text: "🧘 These foods contain calming nutrients like magnesium and B-vitamins"},
			WellnessTip: "💡 Practice deep breathing before meals and eat slowly in a calm environment",
		},
		"sick": {
			Description:    "Support immune system and digestion",
			KeyNutrients:   []string{"vitamin_c", "zinc", "protein", "probiotics", "antioxidants"},
			Protein:        Range{0.20, 0.30},
			Carbs:          Range{0.45, 0.60},
			Fat:            Range{0.15, 0.25},
			Ayurvedic:      "sattvic",
			Properties:     []string{"light", "easily_digestible", "warm", "hydrating"},
			Avoid:          []string{"dairy", "fried", "heavy", "cold"},
			PreferredFoods: []string{"Soup", "Khichdi", "Ginger tea", "Dal", "Steamed vegetables", "Curd"},
			ModerateFoods:  []string{"Rice", "Idli", "Banana", "Applesauce"},
			AvoidFoods:     []string{"Dairy", "Fried", "Spicy", "Cold drinks", "Ice cream"},
			Benefits: []string{
				"Easy to digest, gentle on stomach",
				"Boosts immune system with key nutrients",
				"Hydrating and healing properties",
			},
			Insight:     MoodInsight{Text: "🌿 Light, digestible options support recovery and immune function"},
			WellnessTip: "💡 Eat small, frequent meals and increase fluid intake for faster recovery",
		},
	}
}
