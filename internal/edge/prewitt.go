package edge

import "math"

// MaxIntensity is the largest value of an 8-bit sample and the edge marker.
const MaxIntensity = 255

// Prewitt computes the Prewitt gradient magnitude of an intensity grid.
//
// Each pixel is floor(sqrt(gx² + gy²)) clamped to 255, where gx and gy are the
// PrewittX and PrewittY responses with zero borders. The result has the size
// of g and its outermost rows and columns are 0.
func Prewitt(g *Grid[int]) *Grid[int] {
	gx := Convolve(g, PrewittX, BorderZero)
	gy := Convolve(g, PrewittY, BorderZero)

	out := New[int](g.width, g.height)
	rows(g.height, func(y int) {
		xs, ys, dst := gx.row(y), gy.row(y), out.row(y)
		for x := range dst {
			dst[x] = clampIntensity(math.Sqrt(float64(xs[x]*xs[x] + ys[x]*ys[x])))
		}
	})
	return out
}

// clampIntensity truncates a non-negative magnitude and caps it at 255.
func clampIntensity(v float64) int {
	if v >= MaxIntensity {
		return MaxIntensity
	}
	return int(v)
}
