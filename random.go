package rough

import "math/rand/v2"

// Randomizer is the random source behind a sketch. Each drawable owns
// one, created lazily from [Options.Seed], so repeated generation with
// the same options reproduces the same jitter.
type Randomizer struct {
	rng *rand.Rand
}

// NewRandomizer creates a randomizer from an explicit seed.
func NewRandomizer(seed uint64) *Randomizer {
	return &Randomizer{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// newEntropyRandomizer creates a randomizer from the process-wide source.
func newEntropyRandomizer() *Randomizer {
	return NewRandomizer(rand.Uint64())
}

// Float64 returns a uniform value in [0, 1).
func (r *Randomizer) Float64() float64 {
	return r.rng.Float64()
}
