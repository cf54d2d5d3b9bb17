package common

import (
	"time"

	"github.com/pion/randutil"
)

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// Question draws, icon picks and snare noise all come from one of these so a
// session can be replayed from its seed.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// NewSessionRNG creates a generator seeded from the platform's crypto source,
// falling back to the clock when that source is unavailable.
func NewSessionRNG() *SeededRNG {
	return NewSeededRNG(SessionSeed())
}

// SessionSeed returns a fresh non-deterministic seed.
func SessionSeed() uint32 {
	v, err := randutil.CryptoUint64()
	if err != nil {
		return uint32(time.Now().UnixNano())
	}
	return uint32(v ^ v>>32)
}

// Seed returns the seed the generator was created or last re-seeded with.
func (r *SeededRNG) Seed() uint32 {
	return r.initialSeed
}

// SetSeed sets a new seed and resets the generator state.
func (r *SeededRNG) SetSeed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Reset resets the generator to its initial seed.
func (r *SeededRNG) Reset() {
	r.state = r.initialSeed
}

// Uint32 returns the next raw 32-bit output.
func (r *SeededRNG) Uint32() uint32 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Random returns a float64 in [0, 1).
func (r *SeededRNG) Random() float64 {
	return float64(r.Uint32()) / 4294967296.0
}

// RandomInt returns an integer in [min, max).
func (r *SeededRNG) RandomInt(min, max int) int {
	return int(r.Random()*float64(max-min)) + min
}

// RandomFloat returns a float in [min, max).
func (r *SeededRNG) RandomFloat(min, max float64) float64 {
	return r.Random()*(max-min) + min
}

// Chance reports true with probability p.
func (r *SeededRNG) Chance(p float64) bool {
	return r.Random() < p
}

// Noise fills buf with uniform samples in [-1, 1).
func (r *SeededRNG) Noise(buf []float32) {
	for i := range buf {
		buf[i] = float32(r.Random()*2 - 1)
	}
}
