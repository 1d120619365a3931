// Package dice wraps the random source used for tile draws so games can be
// replayed from a seed.
package dice

import (
	"math/rand"
	"time"
)

// Roller draws random numbers from a configurable random source
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a new Roller with the given random source
func NewRoller(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// Seeded creates a Roller from a seed; seed 0 seeds from the clock
func Seeded(seed int64) *Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewRoller(rand.New(rand.NewSource(seed)))
}

// Die rolls one die with the given number of sides, 1..sides
func (r *Roller) Die(sides int) int {
	if sides <= 0 {
		return 0
	}
	return r.rng.Intn(sides) + 1
}

// Index picks a uniform index into a collection of length n
func (r *Roller) Index(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// Rotation picks one of the three clockwise tile rotations, 0..2
func (r *Roller) Rotation() int {
	return r.Die(3) - 1
}
