package rough

// parkMiller is the multiplier of the minimal-standard Lehmer generator.
const parkMiller = 48271

// Random is a deterministic pseudo-random stream derived from a Seed.
//
// The same seed always yields the same sequence of floats, on every
// platform: the state is an int32 that wraps on multiplication and the
// output is taken from its low 31 bits.
//
// A Random is not safe for concurrent use; each draw call owns its own.
type Random struct {
	state  int32
	stable bool
}

// NewRandom returns the stream for seed.
func NewRandom(seed Seed) *Random {
	s := int32(uint32(seed) & 0x7fffffff)
	if s == 0 {
		// Zero is a fixed point of the multiplier.
		s = 1
	}
	return &Random{state: s}
}

// NewStableRandom returns a stream with zero variance: Next always yields
// 0.5 and Offset always yields the midpoint of its range. Fill layout uses
// it so scanline placement never depends on aesthetic jitter.
func NewStableRandom() *Random {
	return &Random{stable: true}
}

// Stable reports whether r is a zero-variance stream.
func (r *Random) Stable() bool {
	return r.stable
}

// Next returns the next value in [0, 1).
func (r *Random) Next() float64 {
	if r.stable {
		return 0.5
	}
	r.state *= parkMiller
	return float64(r.state&0x7fffffff) / MaxSeed
}

// Offset returns the next value in [min, max].
func (r *Random) Offset(min, max float64) float64 {
	if r.stable {
		return (min + max) / 2
	}
	return min + r.Next()*(max-min)
}
