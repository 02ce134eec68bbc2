package render

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/bmp"

	"lifegrid/pkg/core"
)

// PGMMagic identifies binary grayscale bitmaps.
const PGMMagic = "P5"

// Bitmap is a grayscale raster with one byte per pixel. Dead cells are 0,
// live cells are Max.
type Bitmap struct {
	W, H int
	Max  uint8
	Pix  []uint8
}

// NewBitmap renders the current generation of src. maxval must be 1 or 255.
func NewBitmap(src Source, maxval uint8) (*Bitmap, error) {
	if maxval != 1 && maxval != 255 {
		return nil, fmt.Errorf("unsupported max pixel value %d (want 1 or 255)", maxval)
	}
	s := src.Size()
	n, err := core.CheckedArea(s.W, s.H)
	if err != nil {
		return nil, err
	}
	b := &Bitmap{W: s.W, H: s.H, Max: maxval, Pix: make([]uint8, n)}
	fillIntensity(b.Pix, src, maxval, 0)
	return b, nil
}

// Header returns the three-line PGM header for b.
func (b *Bitmap) Header() string {
	return fmt.Sprintf("%s\n%d %d\n%d\n", PGMMagic, b.W, b.H, b.Max)
}

// WritePGM writes the header followed by exactly W*H raw bytes.
func (b *Bitmap) WritePGM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := io.WriteString(bw, b.Header()); err != nil {
		return sinkErr("write pgm header", err)
	}
	if _, err := bw.Write(b.Pix); err != nil {
		return sinkErr("write pgm pixels", err)
	}
	if err := bw.Flush(); err != nil {
		return sinkErr("write pgm", err)
	}
	return nil
}

// Image converts b into an 8-bit gray image with live cells at full white.
func (b *Bitmap) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.W, b.H))
	for i, v := range b.Pix {
		if v != 0 {
			img.Pix[i] = 255
		}
	}
	return img
}

// WritePNG encodes b as a grayscale PNG.
func (b *Bitmap) WritePNG(w io.Writer) error {
	if err := png.Encode(w, b.Image()); err != nil {
		return sinkErr("write png", err)
	}
	return nil
}

// WriteBMP encodes b as an uncompressed BMP.
func (b *Bitmap) WriteBMP(w io.Writer) error {
	if err := bmp.Encode(w, b.Image()); err != nil {
		return sinkErr("write bmp", err)
	}
	return nil
}

func sinkErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, core.ErrSinkWriteFailed, err)
}
