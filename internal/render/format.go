package render

import (
	"fmt"
	"io"
)

// Format selects how a frame is encoded.
type Format string

const (
	// FormatPGM is a binary grayscale bitmap with a P5 header.
	FormatPGM Format = "pgm"
	// FormatPNG is a grayscale PNG image.
	FormatPNG Format = "png"
	// FormatBMP is an uncompressed BMP image.
	FormatBMP Format = "bmp"
	// FormatASCII is one text row per grid row, '*' for live cells.
	FormatASCII Format = "ascii"
)

// Formats lists every supported encoding.
func Formats() []Format { return []Format{FormatPGM, FormatPNG, FormatBMP, FormatASCII} }

// ParseFormat maps a flag value onto a Format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown frame format %q", s)
}

// Ext is the file extension used for frames in this format.
func (f Format) Ext() string {
	if f == FormatASCII {
		return "txt"
	}
	return string(f)
}

// Options controls a single Encode call.
type Options struct {
	Format Format
	// MaxVal is the live-cell intensity for bitmap formats (1 or 255).
	MaxVal uint8
	// Scale enlarges bitmap formats by block replication; 0 disables it.
	// ASCII frames are never scaled.
	Scale int
}

// Encode renders the current generation of src into w. Scaling errors are
// reported before anything is written.
func Encode(w io.Writer, src Source, opts Options) error {
	if opts.Format == FormatASCII {
		return WriteASCII(w, src)
	}

	b, err := NewBitmap(src, opts.MaxVal)
	if err != nil {
		return err
	}
	if opts.Scale != 0 {
		if b, err = b.Scale(opts.Scale); err != nil {
			return err
		}
	}

	switch opts.Format {
	case FormatPGM:
		return b.WritePGM(w)
	case FormatPNG:
		return b.WritePNG(w)
	case FormatBMP:
		return b.WriteBMP(w)
	}
	return fmt.Errorf("unknown frame format %q", opts.Format)
}
