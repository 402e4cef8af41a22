package edge

import (
	"fmt"
	"math"
)

// Field holds per-pixel gradient magnitude and direction.
//
// Direction is in degrees in [0, 180): a gradient and its opposite describe
// the same edge orientation. Where Magnitude is exactly zero, Direction is 0.
type Field struct {
	Magnitude *Grid[float64]
	Direction *Grid[float64]
}

// Width returns the width of the field.
func (f *Field) Width() int { return f.Magnitude.Width() }

// Height returns the height of the field.
func (f *Field) Height() int { return f.Magnitude.Height() }

// Gradient convolves g with SobelX and SobelY, zero at the border, and
// combines the results into a Field of the same size.
func Gradient(g *Grid[float64]) *Field {
	gx := Convolve(g, SobelX, BorderZero)
	gy := Convolve(g, SobelY, BorderZero)
	f, err := Combine(gx, gy)
	if err != nil {
		// gx and gy come from the same source grid.
		panic(err)
	}
	return f
}

// Combine builds a Field from horizontal and vertical derivative grids of the
// same size. magnitude = sqrt(gx² + gy²); direction = atan2(gy, gx) in degrees
// reduced modulo 180.
func Combine(gx, gy *Grid[float64]) (*Field, error) {
	if gx.width != gy.width || gx.height != gy.height {
		return nil, fmt.Errorf("edge: derivative grids differ in size: %v vs %v", gx, gy)
	}
	mag := New[float64](gx.width, gx.height)
	dir := New[float64](gx.width, gx.height)
	rows(gx.height, func(y int) {
		xs, ys := gx.row(y), gy.row(y)
		m, d := mag.row(y), dir.row(y)
		for x := range xs {
			m[x] = math.Sqrt(xs[x]*xs[x] + ys[x]*ys[x])
			if m[x] != 0 {
				d[x] = Direction(xs[x], ys[x])
			}
		}
	})
	return &Field{Magnitude: mag, Direction: dir}, nil
}

// Direction returns atan2(gy, gx) in degrees folded into [0, 180).
func Direction(gx, gy float64) float64 {
	deg := math.Mod(math.Atan2(gy, gx)*180/math.Pi, 180)
	if deg < 0 {
		deg += 180
	}
	// -ε + 180 can round up to 180.
	if deg >= 180 || deg == 0 {
		return 0
	}
	return deg
}
