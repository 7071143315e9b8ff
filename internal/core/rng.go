package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Source exposes the underlying rand.Rand.
func (r *RNG) Source() *rand.Rand { return r.r }

// Scatter fills the top rows of the grid with the given material at the given
// per-cell density. It is the seeded reset used by the frontends and the
// bench command; the same seed always produces the same fill.
func Scatter(r *rand.Rand, g *Grid, id uint8, density float64, rows int) {
	if density <= 0 || id == Empty {
		return
	}
	size := g.Size()
	if rows <= 0 || rows > size.H {
		rows = size.H
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < size.W; x++ {
			if r.Float64() < density {
				g.SetID(x, y, id)
			}
		}
	}
}
