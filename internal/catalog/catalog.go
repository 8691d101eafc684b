// Package catalog loads the read-only dish table the recommender works on.
package catalog

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/actuallystonmai/nutrisathi-service/internal/domain"
)

//go:embed sample.csv
var sampleCSV string

const (
	defaultServing = 100
	defaultUnit    = "g"

	SourceSample = "built-in sample"
)

var ErrNoNameColumn = errors.New("catalog: header has no name column")

// Catalog is loaded once at startup and never written afterwards.
type Catalog struct {
	dishes []*domain.Dish
	source string
}

// Load reads the CSV at path. A missing or empty file falls back to the
// built-in sample; a malformed one is an error.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Sample(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	dishes, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	if len(dishes) == 0 {
		return Sample(), nil
	}
	return &Catalog{dishes: dishes, source: path}, nil
}

// Sample returns the built-in catalog.
func Sample() *Catalog {
	dishes, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded sample is invalid: %v", err))
	}
	return &Catalog{dishes: dishes, source: SourceSample}
}

// New wraps dishes that were built elsewhere, for tests and seeding.
func New(dishes []*domain.Dish) *Catalog {
	return &Catalog{dishes: dishes, source: "memory"}
}

// Parse reads dishes from CSV with the columns name, cuisine, serving_g,
// calories_kcal, protein_g, carbs_g and fat_g. Only name is required.
// Rows without a name are skipped and unparsable or negative numbers fall
// back to their defaults.
func Parse(r io.Reader) ([]*domain.Dish, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	if _, ok := cols["name"]; !ok {
		return nil, ErrNoNameColumn
	}

	field := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	number := func(rec []string, name string, fallback float64) float64 {
		v, err := strconv.ParseFloat(field(rec, name), 64)
		if err != nil || v < 0 {
			return fallback
		}
		return v
	}

	var dishes []*domain.Dish
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		name := field(rec, "name")
		if name == "" {
			continue
		}
		dishes = append(dishes, &domain.Dish{
			Name:        name,
			Cuisine:     field(rec, "cuisine"),
			ServingSize: number(rec, "serving_g", defaultServing),
			Unit:        defaultUnit,
			Calories:    number(rec, "calories_kcal", 0),
			Protein:     number(rec, "protein_g", 0),
			Carbs:       number(rec, "carbs_g", 0),
			Fat:         number(rec, "fat_g", 0),
		})
	}
	return dishes, nil
}

// Dishes returns the shared dish pointers. Callers must not modify them.
func (c *Catalog) Dishes() []*domain.Dish {
	return c.dishes
}

func (c *Catalog) Len() int {
	return len(c.dishes)
}

// Source names where the dishes came from.
func (c *Catalog) Source() string {
	return c.source
}

// Snapshot copies the dishes for serialisation.
func (c *Catalog) Snapshot() []domain.Dish {
	out := make([]domain.Dish, len(c.dishes))
	for i, d := range c.dishes {
		out[i] = *d
	}
	return out
}
