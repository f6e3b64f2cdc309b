package rough

import "math/rand/v2"

// MaxSeed is the exclusive upper bound of valid seeds.
const MaxSeed = 1 << 31

// Seed keys all pseudo-random jitter of one draw call. Valid seeds lie in
// [0, MaxSeed).
type Seed int64

// NewSeed returns a fresh seed in [0, MaxSeed). Owners typically call it
// once at construction and pass the result to every draw call.
func NewSeed() Seed {
	return Seed(rand.Int64N(MaxSeed))
}

// Valid reports whether s lies in [0, MaxSeed).
func (s Seed) Valid() bool {
	return s >= 0 && s < MaxSeed
}
