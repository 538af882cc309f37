package combat

import "math/rand/v2"

// Dice — единственный источник случайности боя. Передаётся явно,
// один экземпляр на бой: одинаковый seed даёт одинаковый лог.
type Dice interface {
	Float64() float64
	IntN(n int) int
}

// pcgStream is the fixed second PCG word; the seed alone selects the sequence.
const pcgStream = 0x9e3779b97f4a7c15

// NewDice returns a deterministic PCG-backed source for seed.
func NewDice(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^pcgStream))
}

// Roll draws once and reports whether the draw fell under p.
// p <= 0 never succeeds, p >= 1 always does, but a draw is consumed either way.
func Roll(d Dice, p float64) bool {
	return d.Float64() < p
}

// RollIfPositive draws only when p > 0. Used for optional mechanics
// (dodge, block) so rosters that do not use them keep the same sequence.
func RollIfPositive(d Dice, p float64) bool {
	if p <= 0 {
		return false
	}
	return d.Float64() < p
}
