package system

import "math/rand/v2"

// Random is the uniform [0,1) source used for spawn rolls, placement and drops
// *rand.Rand satisfies it; tests inject scripted sequences
type Random interface {
	Float64() float64
}

// NewRandom returns a seeded PCG source; seed 0 draws from the runtime
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
