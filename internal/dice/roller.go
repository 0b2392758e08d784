package dice

import (
	"math/rand/v2"
	"time"
)

// Roller draws die faces from its own random source. Each game session
// owns one so that rolls can be replayed from a seed.
type Roller struct {
	rng *rand.Rand
}

// NewRoller returns a roller seeded with seed. A zero seed derives one
// from the current time.
func NewRoller(seed uint64) *Roller {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Roller{rng: rand.New(rand.NewPCG(seed, 0))}
}

// Die rolls a single die.
func (r *Roller) Die() int {
	return 1 + r.rng.IntN(Sides)
}

// Roll rolls n dice.
func (r *Roller) Roll(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = r.Die()
	}
	return out
}

// IntN exposes the underlying source for callers that pick among options.
func (r *Roller) IntN(n int) int {
	return r.rng.IntN(n)
}
