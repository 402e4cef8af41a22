package edge

import "fmt"

// Sample is the set of numeric types a Grid can hold. Unsigned types are
// excluded because gradient kernels produce negative sums.
type Sample interface {
	~int | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Grid is an immutable width x height matrix of samples stored row-major.
//
// The zero value is an empty 0x0 grid. Grids returned by this package are
// never modified after construction.
type Grid[T Sample] struct {
	width  int
	height int
	pix    []T
}

// New returns a zero-filled grid. Negative dimensions are treated as zero.
func New[T Sample](width, height int) *Grid[T] {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == 0 || height == 0 {
		width, height = 0, 0
	}
	return &Grid[T]{
		width:  width,
		height: height,
		pix:    make([]T, width*height),
	}
}

// FromRows builds a grid from nested rows, copying the samples. Every row must
// have the same length.
func FromRows[T Sample](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return New[T](0, 0), nil
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d samples, want %d", ErrRaggedRows, y, len(row), width)
		}
	}
	g := New[T](width, len(rows))
	for y, row := range rows {
		copy(g.pix[y*g.width:(y+1)*g.width], row)
	}
	return g, nil
}

// FromPix builds a grid from a flat row-major buffer, copying the samples.
func FromPix[T Sample](width, height int, pix []T) (*Grid[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNegativeSize, width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: got %d samples for %dx%d", ErrBufferSize, len(pix), width, height)
	}
	g := New[T](width, height)
	copy(g.pix, pix)
	return g, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns the number of samples.
func (g *Grid[T]) Len() int { return len(g.pix) }

// Empty reports whether the grid holds no samples.
func (g *Grid[T]) Empty() bool { return len(g.pix) == 0 }

// In reports whether (x, y) addresses a sample.
func (g *Grid[T]) In(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the sample at (x, y). Out-of-range access panics: callers guard
// coordinates before indexing.
func (g *Grid[T]) At(x, y int) T {
	if !g.In(x, y) {
		panic(fmt.Sprintf("edge: At(%d, %d) outside %dx%d grid", x, y, g.width, g.height))
	}
	return g.pix[y*g.width+x]
}

// Rows returns a copy of the samples as nested rows.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.height)
	for y := range rows {
		rows[y] = append([]T(nil), g.row(y)...)
	}
	return rows
}

// Pix returns a copy of the flat row-major sample buffer.
func (g *Grid[T]) Pix() []T {
	return append([]T(nil), g.pix...)
}

// Max returns the largest sample. It returns ErrEmptyReduction on an empty
// grid.
func (g *Grid[T]) Max() (T, error) {
	var zero T
	if len(g.pix) == 0 {
		return zero, ErrEmptyReduction
	}
	m := g.pix[0]
	for _, v := range g.pix[1:] {
		if v > m {
			m = v
		}
	}
	return m, nil
}

// Count returns the number of samples for which keep returns true.
func (g *Grid[T]) Count(keep func(T) bool) int {
	n := 0
	for _, v := range g.pix {
		if keep(v) {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and samples.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, v := range g.pix {
		if other.pix[i] != v {
			return false
		}
	}
	return true
}

// String returns a short description such as "Grid[5x5]".
func (g *Grid[T]) String() string {
	return fmt.Sprintf("Grid[%dx%d]", g.width, g.height)
}

// Map returns a new grid of the same size with fn applied to every sample.
func Map[T, U Sample](g *Grid[T], fn func(T) U) *Grid[U] {
	out := New[U](g.width, g.height)
	rows(out.height, func(y int) {
		src, dst := g.row(y), out.row(y)
		for x, v := range src {
			dst[x] = fn(v)
		}
	})
	return out
}

// row returns the backing slice of row y. Only stages building a new grid
// write through it.
func (g *Grid[T]) row(y int) []T {
	return g.pix[y*g.width : (y+1)*g.width]
}
