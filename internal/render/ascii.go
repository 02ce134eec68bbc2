package render

import (
	"io"
)

const (
	// AliveGlyph marks a live cell in ASCII frames.
	AliveGlyph = '*'
	// DeadGlyph marks a dead cell in ASCII frames.
	DeadGlyph = ' '
)

// ASCII renders src as H newline-terminated rows of W glyphs.
func ASCII(src Source) []byte {
	s := src.Size()
	out := make([]byte, 0, (s.W+1)*s.H)
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if src.Alive(x, y) {
				out = append(out, AliveGlyph)
			} else {
				out = append(out, DeadGlyph)
			}
		}
		out = append(out, '\n')
	}
	return out
}

// WriteASCII renders src and writes it to w in a single call.
func WriteASCII(w io.Writer, src Source) error {
	if _, err := w.Write(ASCII(src)); err != nil {
		return sinkErr("write ascii frame", err)
	}
	return nil
}
