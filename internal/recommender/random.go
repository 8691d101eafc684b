package recommender

import (
	"math/rand"
	"sync"
	"time"
)

// Picker chooses one of n options. Implementations must return a value in
// [0, n) for n > 0.
type Picker interface {
	Intn(n int) int
}

// lockedPicker serialises access to a *rand.Rand so one engine can serve
// concurrent requests.
type lockedPicker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker returns a Picker backed by math/rand. A zero seed draws one
// from the clock.
func NewPicker(seed int64) Picker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedPicker{rng: rand.New(rand.NewSource(seed))} //nolint:gosec // variety, not security
}

func (p *lockedPicker) Intn(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(n)
}

func pickOne[T any](p Picker, items []T) T {
	if len(items) == 1 {
		return items[0]
	}
	return items[p.Intn(len(items))]
}
