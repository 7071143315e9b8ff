package core

import (
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Position addresses a single grid cell.
type Position struct {
	X int
	Y int
}

// Empty is the cell value of an unoccupied cell. Material IDs start at 1.
const Empty uint8 = 0

// Material defines the behavior and appearance of one particle kind. A cell
// stores only the material's ID; the registry entry supplies everything else,
// so copying a particle between grids is a byte copy.
type Material interface {
	// Name identifies the material in the registry and on the CLI.
	Name() string

	// Color is the constant render color for the material.
	Color() color.RGBA

	// NextPosition returns where a particle at p wants to be next tick. It
	// reads only the pre-tick grid and must return p or an in-bounds cell
	// adjacent to p.
	NextPosition(g *Grid, p Position) Position
}

var (
	table [256]Material
	names = map[string]uint8{}
)

// Register adds a material under the provided cell ID. ID zero is reserved
// for empty cells.
func Register(id uint8, m Material) {
	if id == Empty || m == nil {
		return
	}
	table[id] = m
	names[m.Name()] = id
}

// ByID returns the material registered for a cell value, or nil.
func ByID(id uint8) Material {
	return table[id]
}

// ByName resolves a material name to its cell ID and material.
func ByName(name string) (uint8, Material) {
	id, ok := names[name]
	if !ok {
		return Empty, nil
	}
	return id, table[id]
}

// Names lists the registered material names in sorted order.
func Names() []string {
	out := make([]string, 0, len(names))
	for name := range names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Palette returns a 256-entry render palette indexed by cell ID. Entry zero
// is the background color.
func Palette() []color.RGBA {
	palette := make([]color.RGBA, 256)
	palette[Empty] = color.RGBA{A: 255}
	for id, m := range table {
		if m != nil {
			palette[id] = m.Color()
		}
	}
	return palette
}
