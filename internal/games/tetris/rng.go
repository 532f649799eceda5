package tetris

// LCG parameters (Numerical Recipes).
const (
	lcgMultiplier uint32 = 1664525
	lcgIncrement  uint32 = 1013904223
)

// RNG is a minimal linear congruential generator.
// The sequence is fully determined by the seed so that sessions can be replayed.
type RNG struct {
	state uint32
}

// NewRNG creates a generator with the given seed.
func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed}
}

// Next advances the state and returns it. Overflow wraps modulo 2^32.
func (r *RNG) Next() uint32 {
	r.state = r.state*lcgMultiplier + lcgIncrement
	return r.state
}

// Range returns a value in [min, max).
// max must be greater than min; an empty range panics with a division by zero.
func (r *RNG) Range(min, max int) int {
	return int(r.Next()%uint32(max-min)) + min
}
