package edge

import (
	"errors"
	"fmt"
)

var (
	// ErrDimension is reported by Validate when a grid is smaller than the
	// 3x3 neighbourhood the detectors need.
	ErrDimension = errors.New("edge: grid smaller than 3x3")

	// ErrEmptyReduction is returned when a reduction such as Max runs over a
	// grid with no samples.
	ErrEmptyReduction = errors.New("edge: reduction over empty grid")

	// ErrRaggedRows is returned by FromRows when rows differ in length.
	ErrRaggedRows = errors.New("edge: rows have different lengths")

	// ErrBufferSize is returned by FromPix when the buffer does not hold
	// exactly width*height samples.
	ErrBufferSize = errors.New("edge: buffer size does not match dimensions")

	// ErrNegativeSize is returned when a width or height is negative.
	ErrNegativeSize = errors.New("edge: negative dimension")
)

// MinSize is the smallest width and height with a non-empty interior.
const MinSize = 3

// Validate reports whether g is large enough for a 3x3 neighbourhood.
// The detectors accept smaller grids and return degenerate output; Validate
// lets callers surface that condition as a descriptive error.
func Validate[T Sample](g *Grid[T]) error {
	if g.Width() < MinSize || g.Height() < MinSize {
		return fmt.Errorf("%w: got %dx%d", ErrDimension, g.Width(), g.Height())
	}
	return nil
}
