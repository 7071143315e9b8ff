package core

import (
	"image/color"
	"testing"
)

// Test materials live at the top of the ID space so they never collide with
// the real registry.
const (
	testFallerID  uint8 = 250
	testSitterID  uint8 = 251
	testDropperID uint8 = 252
)

// testFaller mimics granular flow: down, then the diagonals, then rest.
type testFaller struct{}

func (testFaller) Name() string      { return "test-faller" }
func (testFaller) Color() color.RGBA { return color.RGBA{R: 255, A: 255} }

func (testFaller) NextPosition(g *Grid, p Position) Position {
	if g.IsEmpty(p.X, p.Y+1) {
		return Position{X: p.X, Y: p.Y + 1}
	}
	if g.IsEmpty(p.X-1, p.Y+1) {
		return Position{X: p.X - 1, Y: p.Y + 1}
	}
	if g.IsEmpty(p.X+1, p.Y+1) {
		return Position{X: p.X + 1, Y: p.Y + 1}
	}
	return p
}

// testSitter never moves.
type testSitter struct{}

func (testSitter) Name() string      { return "test-sitter" }
func (testSitter) Color() color.RGBA { return color.RGBA{G: 255, A: 255} }

func (testSitter) NextPosition(g *Grid, p Position) Position { return p }

// testDropper only ever moves straight down.
type testDropper struct{}

func (testDropper) Name() string      { return "test-dropper" }
func (testDropper) Color() color.RGBA { return color.RGBA{B: 255, A: 255} }

func (testDropper) NextPosition(g *Grid, p Position) Position {
	if g.IsEmpty(p.X, p.Y+1) {
		return Position{X: p.X, Y: p.Y + 1}
	}
	return p
}

func init() {
	Register(testFallerID, testFaller{})
	Register(testSitterID, testSitter{})
	Register(testDropperID, testDropper{})
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	if s := g.Size(); s.W != 1 || s.H != 1 {
		t.Fatalf("got size %dx%d, want 1x1", s.W, s.H)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(2, 1, testSitter{})
	m := g.Get(2, 1)
	if m == nil || m.Name() != "test-sitter" {
		t.Fatalf("got %v at (2,1), want test-sitter", m)
	}
	g.Set(2, 1, nil)
	if g.Get(2, 1) != nil {
		t.Fatalf("cell (2,1) not cleared by nil set")
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	g := NewGrid(3, 3)
	if g.Get(-1, 0) != nil || g.Get(0, 3) != nil {
		t.Fatalf("out-of-bounds read returned a material")
	}
	if g.IsEmpty(3, 0) || g.IsEmpty(0, -1) {
		t.Fatalf("out-of-bounds cell reported empty")
	}
	g.SetID(5, 5, testSitterID)
	if g.Count() != 0 {
		t.Fatalf("out-of-bounds write landed somewhere, count=%d", g.Count())
	}
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	g := NewGrid(8, 8)
	for i := 0; i < 10; i++ {
		g.Step()
	}
	if n := g.Count(); n != 0 {
		t.Fatalf("empty grid grew %d particles", n)
	}
}

func TestStepReadsPreTickState(t *testing.T) {
	// A stacked pair of straight-down movers. The upper one decides against
	// the pre-tick grid, where the cell below it is still occupied, so it
	// must not chase the lower one into the cell it vacates this tick.
	g := NewGrid(3, 5)
	g.SetID(1, 0, testDropperID)
	g.SetID(1, 1, testDropperID)
	g.Step()

	if g.IDAt(1, 0) != testDropperID {
		t.Fatalf("upper particle moved into a cell that was occupied pre-tick: %v", g.Cells())
	}
	if g.IDAt(1, 2) != testDropperID {
		t.Fatalf("lower particle did not fall: %v", g.Cells())
	}
	if g.IDAt(1, 1) != Empty {
		t.Fatalf("vacated cell (1,1) still occupied")
	}
}

func TestConflictEarliestScanOrderWins(t *testing.T) {
	// Both fallers are blocked below and both diagonals lead to the single
	// gap at (1,1). The particle at (0,0) is scanned first and wins; the
	// one at (2,0) stays put.
	g := NewGrid(3, 2)
	g.SetID(0, 1, testSitterID)
	g.SetID(2, 1, testSitterID)
	g.SetID(0, 0, testFallerID)
	g.SetID(2, 0, testFallerID)

	before := g.Count()
	g.Step()

	if g.IDAt(1, 1) != testFallerID {
		t.Fatalf("contested cell (1,1) holds %d", g.IDAt(1, 1))
	}
	if g.IDAt(0, 0) != Empty {
		t.Fatalf("winning particle left its source occupied")
	}
	if g.IDAt(2, 0) != testFallerID {
		t.Fatalf("losing particle did not stay at (2,0)")
	}
	if after := g.Count(); after != before {
		t.Fatalf("collision changed particle count: %d != %d", after, before)
	}
}

func TestParticleCountConserved(t *testing.T) {
	g := NewGrid(12, 12)
	rng := NewRNG(7)
	Scatter(rng.Source(), g, testFallerID, 0.4, 6)
	before := g.Count()
	for i := 0; i < 30; i++ {
		g.Step()
	}
	if after := g.Count(); after != before {
		t.Fatalf("particle count drifted from %d to %d", before, after)
	}
}

func TestOccupiedEnumeration(t *testing.T) {
	g := NewGrid(4, 3)
	g.SetID(3, 0, testSitterID)
	g.SetID(0, 2, testFallerID)

	var got []Position
	g.Occupied(func(p Position, m Material) {
		got = append(got, p)
		if m == nil {
			t.Fatalf("nil material for occupied cell %v", p)
		}
	})

	want := []Position{{X: 3, Y: 0}, {X: 0, Y: 2}}
	if len(got) != len(want) {
		t.Fatalf("enumerated %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d = %v, want %v (row-major order)", i, got[i], want[i])
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(4, 4)
	g.SetID(1, 0, testFallerID)
	c := g.Clone()
	c.Step()

	if g.IDAt(1, 0) != testFallerID {
		t.Fatalf("stepping the clone mutated the original")
	}
	if c.IDAt(1, 1) != testFallerID {
		t.Fatalf("clone did not step: %v", c.Cells())
	}
}

func TestScatterDeterministic(t *testing.T) {
	a := NewGrid(16, 16)
	b := NewGrid(16, 16)
	Scatter(NewRNG(99).Source(), a, testSitterID, 0.5, 8)
	Scatter(NewRNG(99).Source(), b, testSitterID, 0.5, 8)
	for i, v := range a.Cells() {
		if b.Cells()[i] != v {
			t.Fatalf("scatter diverged at index %d", i)
		}
	}
	if a.Count() == 0 {
		t.Fatalf("scatter placed nothing")
	}
}
