package core

// Grid stores a 2D field of material IDs in row-major order. Two same-size
// buffers back it: decisions during Step read cur, commits write nxt, and the
// buffers swap once per tick, so every decision sees the frozen pre-tick
// state.
type Grid struct {
	w, h int
	cur  []uint8
	nxt  []uint8
}

// NewGrid allocates an empty grid. Non-positive dimensions are clamped to 1.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, cur: make([]uint8, w*h), nxt: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// IDAt returns the cell value at (x, y). Out-of-bounds reads yield Empty.
func (g *Grid) IDAt(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return Empty
	}
	return g.cur[y*g.w+x]
}

// Get returns the material occupying (x, y), or nil for an empty or
// out-of-bounds cell.
func (g *Grid) Get(x, y int) Material {
	return ByID(g.IDAt(x, y))
}

// IsEmpty reports whether (x, y) is an unoccupied in-bounds cell. Cells
// outside the grid count as unavailable, which is what movement rules need.
func (g *Grid) IsEmpty(x, y int) bool {
	return g.InBounds(x, y) && g.cur[y*g.w+x] == Empty
}

// SetID writes a raw cell value, unconditionally replacing any occupant.
// Out-of-bounds writes are dropped.
func (g *Grid) SetID(x, y int, id uint8) {
	if !g.InBounds(x, y) {
		return
	}
	g.cur[y*g.w+x] = id
}

// Set places a material at (x, y), or clears the cell when m is nil.
// Unregistered materials are ignored.
func (g *Grid) Set(x, y int, m Material) {
	if m == nil {
		g.SetID(x, y, Empty)
		return
	}
	if id, ok := names[m.Name()]; ok {
		g.SetID(x, y, id)
	}
}

// Cells exposes the current cell values for rendering.
func (g *Grid) Cells() []uint8 { return g.cur }

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = Empty
	}
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, id := range g.cur {
		if id != Empty {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid's current state.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.w, g.h)
	copy(c.cur, g.cur)
	return c
}

// Occupied visits every occupied cell in row-major order, giving renderers
// one (position, material) pair per particle. The walk is recomputed on each
// call.
func (g *Grid) Occupied(fn func(p Position, m Material)) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			id := g.cur[y*g.w+x]
			if id == Empty {
				continue
			}
			if m := table[id]; m != nil {
				fn(Position{X: x, Y: y}, m)
			}
		}
	}
}

// Step advances the simulation by one tick. Every occupied cell is scanned in
// row-major order and asked for its next position against the pre-tick grid;
// the result lands in the successor buffer. When two particles claim the same
// destination the earlier one in scan order wins and the later one stays at
// its source, so collisions never destroy a particle. A particle that stays
// always finds its own source free: movement rules only target cells that
// were empty before the tick.
func (g *Grid) Step() {
	for i := range g.nxt {
		g.nxt[i] = Empty
	}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			id := g.cur[y*g.w+x]
			if id == Empty {
				continue
			}
			dst := Position{X: x, Y: y}
			if m := table[id]; m != nil {
				dst = m.NextPosition(g, dst)
				if !g.InBounds(dst.X, dst.Y) {
					dst = Position{X: x, Y: y}
				}
			}
			di := dst.Y*g.w + dst.X
			if g.nxt[di] != Empty {
				di = y*g.w + x
			}
			g.nxt[di] = id
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}
