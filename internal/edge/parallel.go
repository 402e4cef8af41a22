package edge

import "github.com/anthonynsimon/bild/parallel"

// rows calls fn once for every y in [0, height), spreading contiguous row
// ranges across CPUs. fn must only write to row y of its output.
func rows(height int, fn func(y int)) {
	if height <= 0 {
		return
	}
	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			fn(y)
		}
	})
}
