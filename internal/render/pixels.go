package render

import "lifegrid/pkg/core"

// Source is a grid whose current generation can be rendered.
type Source interface {
	Size() core.Size
	Alive(x, y int) bool
}

// fillIntensity converts the state of every cell in src into a gray level in
// buf, row-major.
func fillIntensity(buf []uint8, src Source, on, off uint8) {
	s := src.Size()
	i := 0
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if src.Alive(x, y) {
				buf[i] = on
			} else {
				buf[i] = off
			}
			i++
		}
	}
}
