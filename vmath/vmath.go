package vmath

import "math"

// Epsilon is the tolerance for zero checks on float geometry
const Epsilon = 1e-6

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates a -> b by t without clamping
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// NearlyZero reports |v| < Epsilon
func NearlyZero(v float64) bool {
	return math.Abs(v) < Epsilon
}

// --- Randomness ---

// FastRand is a xorshift64 generator
// Not safe for concurrent use; each combatant owns one
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}
