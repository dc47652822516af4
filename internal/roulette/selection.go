package roulette

import "math/rand/v2"

const (
	WindowSize  = 5
	CenterIndex = 1
)

// Window holds the visible labels, top to bottom.
type Window [WindowSize]string

// PickNext chooses the label to append at the bottom of the window. The
// winner is returned when forced, or with the given probability; otherwise a
// uniform draw from pool.
func PickNext(rng *rand.Rand, pool []string, winner string, probability float64, forced bool) string {
	if forced || rng.Float64() < probability {
		return winner
	}
	return pool[rng.IntN(len(pool))]
}

// Fill draws a whole window independently and uniformly from pool.
func Fill(rng *rand.Rand, pool []string) Window {
	var w Window
	for i := range w {
		w[i] = pool[rng.IntN(len(pool))]
	}
	return w
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
