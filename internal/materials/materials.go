// Package materials defines the built-in particle kinds and registers them
// with the core registry. Frontends blank-import it for the side effect.
package materials

// Cell IDs of the built-in materials. Zero stays reserved for empty cells.
const (
	IDSand  uint8 = 1
	IDWater uint8 = 2
	IDStone uint8 = 3
)
