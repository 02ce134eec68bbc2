package render

import (
	"fmt"

	"lifegrid/pkg/core"
)

// Expand replicates every pixel of a w*h row-major raster into a solid
// scale*scale block. The result is (w*scale)*(h*scale) pixels.
func Expand(pix []uint8, w, h, scale int) ([]uint8, error) {
	if scale < 2 {
		return nil, fmt.Errorf("expand: %w: %d (must be at least 2)", core.ErrInvalidScale, scale)
	}
	n, err := core.CheckedArea(w, h)
	if err != nil {
		return nil, err
	}
	if len(pix) != n {
		return nil, fmt.Errorf("expand: have %d pixels for a %dx%d raster", len(pix), w, h)
	}
	sw, err := core.CheckedArea(w, scale)
	if err != nil {
		return nil, err
	}
	sh, err := core.CheckedArea(h, scale)
	if err != nil {
		return nil, err
	}
	total, err := core.CheckedArea(sw, sh)
	if err != nil {
		return nil, err
	}

	out := make([]uint8, total)
	for cy := 0; cy < h; cy++ {
		top := cy * scale * sw
		row := out[top : top+sw]
		for cx := 0; cx < w; cx++ {
			v := pix[cy*w+cx]
			block := row[cx*scale : (cx+1)*scale]
			for i := range block {
				block[i] = v
			}
		}
		for dy := 1; dy < scale; dy++ {
			copy(out[top+dy*sw:top+(dy+1)*sw], row)
		}
	}
	return out, nil
}

// Scale returns a block-replicated copy of b. b is left untouched.
func (b *Bitmap) Scale(scale int) (*Bitmap, error) {
	pix, err := Expand(b.Pix, b.W, b.H, scale)
	if err != nil {
		return nil, err
	}
	return &Bitmap{W: b.W * scale, H: b.H * scale, Max: b.Max, Pix: pix}, nil
}
