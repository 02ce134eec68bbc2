package life

import "lifegrid/pkg/core"

// Buffer selects one of the two cell arrays owned by a Grid.
type Buffer int

const (
	// Front is the currently observable generation.
	Front Buffer = iota
	// Back receives the generation being computed.
	Back
)

// Grid stores two equally sized row-major cell arrays with toroidal
// addressing. Cells hold 0 (dead) or 1 (alive).
type Grid struct {
	w, h   int
	bufs   [2][]uint8
	front  int
	sealed bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	n, err := core.CheckedArea(w, h)
	if err != nil {
		return nil, err
	}
	return &Grid{w: w, h: h, bufs: [2][]uint8{make([]uint8, n), make([]uint8, n)}}, nil
}

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// Index returns the linear slice index for the wrapped coordinates (x, y).
func (g *Grid) Index(x, y int) int {
	x, y = g.Wrap(x, y)
	return y*g.w + x
}

// Get reports whether the front-buffer cell at (x, y) is alive.
func (g *Grid) Get(x, y int) bool {
	return g.bufs[g.front][g.Index(x, y)] != 0
}

// Set writes a cell into the selected buffer. Front writes are ignored once
// the grid is sealed.
func (g *Grid) Set(x, y int, alive bool, b Buffer) {
	if b == Front && g.sealed {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	g.buffer(b)[g.Index(x, y)] = v
}

// Swap exchanges the front and back roles without copying cell data.
func (g *Grid) Swap() { g.front ^= 1 }

// Seal freezes the front buffer against Set until the next Clear.
func (g *Grid) Seal() { g.sealed = true }

// Sealed reports whether front writes are currently rejected.
func (g *Grid) Sealed() bool { return g.sealed }

// Clear kills every cell in both buffers and unseals the grid.
func (g *Grid) Clear() {
	for _, buf := range g.bufs {
		clear(buf)
	}
	g.sealed = false
}

// Population counts live cells in the front buffer.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.bufs[g.front] {
		n += int(c)
	}
	return n
}

func (g *Grid) buffer(b Buffer) []uint8 {
	if b == Back {
		return g.bufs[g.front^1]
	}
	return g.bufs[g.front]
}
