package genome

import "math"

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// PRNG is the linear congruential stream every DNA draw comes from. Fixtures
// depend on the exact order of calls, so callers must not reorder draws.
type PRNG struct {
	state uint64
}

// NewPRNG seeds a stream. Seeds are reduced modulo the LCG modulus up front;
// the recurrence only depends on that residue.
func NewPRNG(seed uint64) *PRNG {
	return &PRNG{state: seed % lcgModulus}
}

// Next returns a float in [0, 1).
func (p *PRNG) Next() float64 {
	p.state = (p.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(p.state) / lcgModulus
}

// NextRange returns a float in [min, max).
func (p *PRNG) NextRange(min, max float64) float64 {
	return min + p.Next()*(max-min)
}

// NextInt returns an int in [min, max], both ends inclusive.
func (p *PRNG) NextInt(min, max int) int {
	return int(math.Floor(p.NextRange(float64(min), float64(max+1))))
}

// Pick draws one element of list. An empty list yields the zero value and
// still consumes a draw so the stream stays aligned.
func Pick[T any](p *PRNG, list []T) T {
	n := p.Next()
	var zero T
	if len(list) == 0 {
		return zero
	}
	return list[int(n*float64(len(list)))]
}
