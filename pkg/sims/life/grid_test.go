package life

import (
	"errors"
	"testing"

	"lifegrid/pkg/core"
)

func TestGridWrapsCoordinates(t *testing.T) {
	g, err := NewGrid(5, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.Set(1, 2, true, Front)
	g.Set(4, 0, true, Front)

	for _, k := range []int{-3, -1, 0, 1, 7} {
		for _, m := range []int{-2, 0, 1, 5} {
			for y := 0; y < 3; y++ {
				for x := 0; x < 5; x++ {
					if g.Get(x, y) != g.Get(x+k*5, y+m*3) {
						t.Fatalf("Get(%d,%d) differs from Get(%d,%d)", x, y, x+k*5, y+m*3)
					}
				}
			}
		}
	}
	if !g.Get(-1, -3) {
		t.Fatal("(-1,-3) should wrap to (4,0)")
	}
}

func TestGridBackWritesInvisibleUntilSwap(t *testing.T) {
	g, err := NewGrid(4, 4)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.Set(1, 1, true, Front)
	g.Set(2, 2, true, Back)

	if g.Get(2, 2) || !g.Get(1, 1) {
		t.Fatal("back buffer write leaked into front")
	}

	g.Swap()
	if !g.Get(2, 2) || g.Get(1, 1) {
		t.Fatal("swap did not exchange buffer roles")
	}

	g.Swap()
	if !g.Get(1, 1) || g.Get(2, 2) {
		t.Fatal("second swap should restore the original front buffer")
	}
	if g.Population() != 1 {
		t.Fatalf("Population() = %d, want 1", g.Population())
	}

	g.Clear()
	g.Swap()
	if g.Population() != 0 {
		t.Fatal("Clear should empty both buffers")
	}
}

func TestNewGridRejectsBadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, -1}, {core.MaxCells, 4}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, core.ErrAllocationFailed) {
			t.Fatalf("NewGrid(%d, %d) err = %v, want ErrAllocationFailed", dims[0], dims[1], err)
		}
	}
}

func TestSealedGridIgnoresFrontWrites(t *testing.T) {
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.Set(0, 0, true, Front)
	g.Seal()

	g.Set(1, 1, true, Front)
	g.Set(0, 0, false, Front)
	if g.Get(1, 1) || !g.Get(0, 0) {
		t.Fatal("sealed grid accepted a front write")
	}

	g.Set(2, 2, true, Back)
	g.Swap()
	if !g.Get(2, 2) {
		t.Fatal("back writes must still land on a sealed grid")
	}

	g.Clear()
	if g.Sealed() {
		t.Fatal("Clear should unseal the grid")
	}
	g.Set(1, 1, true, Front)
	if !g.Get(1, 1) {
		t.Fatal("front write after Clear was dropped")
	}
}
