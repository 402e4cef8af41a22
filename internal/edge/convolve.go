package edge

import "fmt"

// BorderPolicy selects the output for pixels on the outermost rows and
// columns, where the 3x3 neighbourhood does not fit.
type BorderPolicy int

const (
	// BorderZero writes 0 at the border. Used for gradient kernels.
	BorderZero BorderPolicy = iota

	// BorderPassthrough copies the source sample unchanged. Used for
	// smoothing so brightness is kept at the image edge.
	BorderPassthrough
)

func (p BorderPolicy) String() string {
	switch p {
	case BorderZero:
		return "zero"
	case BorderPassthrough:
		return "passthrough"
	default:
		return fmt.Sprintf("BorderPolicy(%d)", int(p))
	}
}

// Convolve applies k to every interior pixel of g and returns a new grid of
// the same size.
//
// For 1 <= x < width-1 and 1 <= y < height-1 the output is
//
//	sum over dy,dx in {-1,0,1} of k.Weights[dy+1][dx+1] * g(x+dx, y+dy)
//
// divided by k.Divisor. The sum is accumulated in T, so an integer grid gets
// an integer (truncated) quotient and a float grid a float quotient. Border
// pixels follow policy. A grid smaller than 3 in either axis is all border.
func Convolve[T Sample](g *Grid[T], k Kernel, policy BorderPolicy) *Grid[T] {
	out := New[T](g.width, g.height)
	div := T(k.divisor())
	w, h := g.width, g.height

	rows(h, func(y int) {
		dst := out.row(y)
		if y == 0 || y == h-1 {
			if policy == BorderPassthrough {
				copy(dst, g.row(y))
			}
			return
		}
		src := [3][]T{g.row(y - 1), g.row(y), g.row(y + 1)}
		for x := 0; x < w; x++ {
			if x == 0 || x == w-1 {
				if policy == BorderPassthrough {
					dst[x] = src[1][x]
				}
				continue
			}
			var sum T
			for ky := 0; ky < 3; ky++ {
				for kx := 0; kx < 3; kx++ {
					sum += T(k.Weights[ky][kx]) * src[ky][x+kx-1]
				}
			}
			if div != 1 {
				sum /= div
			}
			dst[x] = sum
		}
	})
	return out
}

// ToFloat converts an intensity grid to float64 samples.
func ToFloat[T Sample](g *Grid[T]) *Grid[float64] {
	return Map(g, func(v T) float64 { return float64(v) })
}
