package recommender

import (
	"sort"

	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
)

const (
	tierPreferred = "Preferred"
	tierModerate  = "Moderate"
	tierOther     = "Other"

	preferredThreshold = 0.7
	moderateThreshold  = 0.4
)

// Engine composes thali and mood recommendations over a read-only dish
// catalog. After New returns nothing is written, so an Engine is safe for
// concurrent use as long as its Picker is.
type Engine struct {
	tables  *Tables
	dishes  []*domain.Dish
	buckets map[string][]*domain.Dish
	members map[string]map[*domain.Dish]struct{}
	moods   map[string]*moodIndex
	picker  Picker
}

// moodIndex is the per-mood precomputation done at load.
type moodIndex struct {
	// pool is the preferred bucket followed by the moderate bucket.
	pool   []*domain.Dish
	scores map[*domain.Dish]float64
	tiers  map[*domain.Dish]string
	counts map[string]int
}

// New categorizes dishes and precomputes the mood buckets. Nil tables or
// picker fall back to DefaultTables and a clock-seeded picker.
func New(dishes []*domain.Dish, tables *Tables, picker Picker) *Engine {
	if tables == nil {
		tables = DefaultTables()
	}
	if picker == nil {
		picker = NewPicker(0)
	}

	e := &Engine{
		tables:  tables,
		dishes:  dishes,
		buckets: categorize(dishes, tables.Categories),
		members: make(map[string]map[*domain.Dish]struct{}, len(tables.Categories)),
		moods:   make(map[string]*moodIndex, len(tables.Moods)),
		picker:  picker,
	}

	for category, bucket := range e.buckets {
		set := make(map[*domain.Dish]struct{}, len(bucket))
		for _, d := range bucket {
			set[d] = struct{}{}
		}
		e.members[category] = set
	}

	for mood, profile := range tables.Moods {
		e.moods[mood] = e.indexMood(profile)
	}
	return e
}

func (e *Engine) indexMood(profile *MoodProfile) *moodIndex {
	idx := &moodIndex{
		scores: make(map[*domain.Dish]float64, len(e.dishes)),
		tiers:  make(map[*domain.Dish]string, len(e.dishes)),
		counts: make(map[string]int, 3),
	}
	var preferred, moderate []*domain.Dish
	for _, d := range e.dishes {
		score := scoreForMood(d, profile, e.tables.Keywords)
		idx.scores[d] = score
		switch {
		case score >= preferredThreshold:
			preferred = append(preferred, d)
			idx.tiers[d] = tierPreferred
		case score >= moderateThreshold:
			moderate = append(moderate, d)
			idx.tiers[d] = tierModerate
		default:
			idx.tiers[d] = tierOther
		}
		idx.counts[idx.tiers[d]]++
	}
	idx.pool = append(preferred, moderate...)
	return idx
}

// inCategories keeps the dishes of pool that belong to any of categories.
func (e *Engine) inCategories(pool []*domain.Dish, categories []string) []*domain.Dish {
	var out []*domain.Dish
	for _, d := range pool {
		for _, c := range categories {
			if _, ok := e.members[c][d]; ok {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// Info describes what the engine can be asked for.
type Info struct {
	Categories         []string       `json:"categories"`
	CategoryCounts     map[string]int `json:"category_counts"`
	MealTypes          []string       `json:"meal_types"`
	Moods              []string       `json:"moods"`
	DietaryPreferences []string       `json:"dietary_preferences"`
	AvailableDishes    int            `json:"available_dishes"`
}

func (e *Engine) Info() Info {
	categories := make([]string, 0, len(e.tables.Categories))
	counts := make(map[string]int, len(e.tables.Categories))
	for c := range e.tables.Categories {
		categories = append(categories, c)
		counts[c] = len(e.buckets[c])
	}
	sort.Strings(categories)

	return Info{
		Categories:         categories,
		CategoryCounts:     counts,
		MealTypes:          append([]string(nil), e.tables.SlotOrder...),
		Moods:              append([]string(nil), e.tables.MoodOrder...),
		DietaryPreferences: []string{"vegetarian", "vegan", "non_vegetarian"},
		AvailableDishes:    len(e.dishes),
	}
}
