package core

import (
	"errors"
	"fmt"
	"math"
)

// MaxCells bounds every cell or pixel buffer allocated by the engine and the
// render pipeline.
const MaxCells = 1 << 30

var (
	// ErrInvalidScale is returned when an upscale factor below 2 is requested.
	ErrInvalidScale = errors.New("invalid scale")
	// ErrSinkWriteFailed is returned when a frame destination cannot be opened or written.
	ErrSinkWriteFailed = errors.New("sink write failed")
	// ErrAllocationFailed is returned when a grid or scratch buffer cannot be allocated.
	ErrAllocationFailed = errors.New("allocation failed")
)

// CheckedArea returns w*h, or ErrAllocationFailed when either side is not
// positive or the product overflows or exceeds MaxCells.
func CheckedArea(w, h int) (int, error) {
	if w <= 0 || h <= 0 {
		return 0, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrAllocationFailed, w, h)
	}
	if w > math.MaxInt/h || w*h > MaxCells {
		return 0, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrAllocationFailed, w, h, MaxCells)
	}
	return w * h, nil
}
