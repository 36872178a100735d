package spin

import "math/rand"

// StdRNG delegates to math/rand (auto-seeded since Go 1.20)
type StdRNG struct{}

func (StdRNG) Intn(n int) int { return rand.Intn(n) }

// FixedRNG always picks the same value modulo n
type FixedRNG struct{ Value int }

func (r FixedRNG) Intn(n int) int {
	v := r.Value % n
	if v < 0 {
		v += n
	}
	return v
}
