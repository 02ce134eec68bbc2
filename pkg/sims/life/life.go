package life

import (
	"golang.org/x/sync/errgroup"

	"lifegrid/pkg/core"
)

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	cfg  Config
	grid *Grid
	gen  int
}

// New returns a Life simulation for cfg. The grid starts all dead; call Reset
// to seed it.
func New(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	return &Life{cfg: cfg, grid: grid}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Grid exposes the double buffer for pattern seeding. The first Step seals it,
// so later front writes are dropped until the next Reset.
func (l *Life) Grid() *Grid { return l.grid }

// Alive reports the state of (x, y) in the current generation.
func (l *Life) Alive(x, y int) bool { return l.grid.Get(x, y) }

// Generation returns the number of steps taken since the last Reset.
func (l *Life) Generation() int { return l.gen }

// Population counts live cells in the current generation.
func (l *Life) Population() int { return l.grid.Population() }

// Reset clears the board and seeds the configured pattern. A zero seed falls
// back to the configured one.
func (l *Life) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = l.cfg.Seed
	}
	l.grid.Clear()
	l.gen = 0

	if l.cfg.Pattern == PatternRandom {
		core.FillDensity(core.NewRNG(effective), l.grid.buffer(Front), l.cfg.Density)
		return
	}
	cells, _ := lookupPattern(l.cfg.Pattern)
	for _, c := range cells {
		l.grid.Set(l.cfg.PatternX+c[0], l.cfg.PatternY+c[1], true, Front)
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.grid.Seal()
	h := l.grid.h
	if l.cfg.Workers <= 1 || h < 2 {
		l.stepRows(0, h)
	} else {
		l.stepParallel()
	}
	l.grid.Swap()
	l.gen++
}

// stepParallel splits the rows into contiguous bands, one goroutine each.
// Workers only read the front buffer and only write their own back rows, so
// Wait is the sole synchronization needed before the swap.
func (l *Life) stepParallel() {
	var eg errgroup.Group
	eg.SetLimit(l.cfg.Workers)
	for _, b := range bands(l.grid.h, l.cfg.Workers) {
		eg.Go(func() error {
			l.stepRows(b[0], b[1])
			return nil
		})
	}
	_ = eg.Wait()
}

// stepRows writes next-state values for rows [y0, y1) into the back buffer.
func (l *Life) stepRows(y0, y1 int) {
	w, h := l.grid.w, l.grid.h
	cur := l.grid.buffer(Front)
	nxt := l.grid.buffer(Back)
	for y := y0; y < y1; y++ {
		up := ((y - 1 + h) % h) * w
		mid := y * w
		down := ((y + 1) % h) * w
		for x := 0; x < w; x++ {
			left := (x - 1 + w) % w
			right := (x + 1) % w
			neighbors := cur[up+left] + cur[up+x] + cur[up+right] +
				cur[mid+left] + cur[mid+right] +
				cur[down+left] + cur[down+x] + cur[down+right]
			nxt[mid+x] = rule(cur[mid+x], neighbors)
		}
	}
}

// rule is B3/S23.
func rule(alive, neighbors uint8) uint8 {
	if neighbors == 3 || (alive != 0 && neighbors == 2) {
		return 1
	}
	return 0
}

// bands partitions [0, h) into at most n contiguous half-open ranges.
func bands(h, n int) [][2]int {
	if n < 1 {
		n = 1
	}
	per := (h + n - 1) / n
	out := make([][2]int, 0, n)
	for start := 0; start < h; start += per {
		out = append(out, [2]int{start, min(start+per, h)})
	}
	return out
}

// Parameters reports the settings the simulation was built with.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", l.cfg.Width),
				core.IntParam("h", "Height", l.cfg.Height),
				core.IntParam("workers", "Workers", l.cfg.Workers),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				core.StringParam("pattern", "Pattern", l.cfg.Pattern),
				core.Int64Param("seed", "Seed", l.cfg.Seed),
				core.FloatParam("density", "Density", l.cfg.Density),
				core.IntParam("pattern-x", "Pattern X", l.cfg.PatternX),
				core.IntParam("pattern-y", "Pattern Y", l.cfg.PatternY),
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
