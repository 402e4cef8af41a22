package edge

import "fmt"

// Pixel classes written by DoubleThreshold.
const (
	ClassNone   = 0
	ClassWeak   = 50
	ClassStrong = MaxIntensity
)

// Threshold fractions of the largest suppressed magnitude.
const (
	HighFraction = 0.25
	LowFraction  = 0.12
)

// Sector is a 45-degree wide bin of gradient direction.
type Sector int

const (
	// SectorHorizontal covers [0, 22.5) and [157.5, 180).
	SectorHorizontal Sector = iota
	// SectorRising covers [22.5, 67.5), the "/" diagonal.
	SectorRising
	// SectorVertical covers [67.5, 112.5).
	SectorVertical
	// SectorFalling covers [112.5, 157.5), the "\" diagonal.
	SectorFalling
)

func (s Sector) String() string {
	switch s {
	case SectorHorizontal:
		return "horizontal"
	case SectorRising:
		return "rising"
	case SectorVertical:
		return "vertical"
	case SectorFalling:
		return "falling"
	default:
		return fmt.Sprintf("Sector(%d)", int(s))
	}
}

// SectorOf bins a direction in [0, 180) degrees.
func SectorOf(deg float64) Sector {
	switch {
	case deg < 22.5 || deg >= 157.5:
		return SectorHorizontal
	case deg < 67.5:
		return SectorRising
	case deg < 112.5:
		return SectorVertical
	default:
		return SectorFalling
	}
}

// Neighbors returns the offsets of the two pixels compared against during
// non-maximum suppression, in image coordinates (y down).
func (s Sector) Neighbors() (dx1, dy1, dx2, dy2 int) {
	switch s {
	case SectorRising:
		return 1, -1, -1, 1
	case SectorVertical:
		return 0, -1, 0, 1
	case SectorFalling:
		return -1, -1, 1, 1
	default:
		return -1, 0, 1, 0
	}
}

// Thresholds are the double-threshold limits derived from Max.
type Thresholds struct {
	Max  float64 `json:"max_magnitude"`
	High float64 `json:"high"`
	Low  float64 `json:"low"`
}

// Stages keeps every intermediate grid of one Canny run.
type Stages struct {
	Smoothed   *Grid[float64]
	Gradient   *Field
	Suppressed *Grid[float64]
	Classified *Grid[int]
	Edges      *Grid[int]
	Thresholds Thresholds
}

// Canny runs the five-stage Canny detector on an intensity grid and returns a
// binary {0, 255} edge map of size (width-2) x (height-2).
func Canny(g *Grid[int]) *Grid[int] {
	return CannyStages(g).Edges
}

// CannyStages runs the Canny detector and returns all intermediate grids.
func CannyStages(g *Grid[int]) *Stages {
	s := &Stages{}
	s.Smoothed = Smooth(g)
	s.Gradient = Gradient(s.Smoothed)
	s.Suppressed = SuppressNonMaxima(s.Gradient)
	s.Classified, s.Thresholds = DoubleThreshold(s.Suppressed)
	s.Edges = LinkHysteresis(s.Classified)
	return s
}

// Smooth blurs g with the Gaussian kernel. Border pixels keep their
// original intensity.
func Smooth(g *Grid[int]) *Grid[float64] {
	return Convolve(ToFloat(g), Gaussian, BorderPassthrough)
}

// SuppressNonMaxima thins the gradient magnitude to local maxima across the
// edge. Only pixels strictly inside the field are examined, so the result is
// two pixels smaller than the field in each axis; output (x, y) corresponds to
// field (x+1, y+1). A kept pixel holds its original magnitude, every other
// pixel is 0.
func SuppressNonMaxima(f *Field) *Grid[float64] {
	mag, dir := f.Magnitude, f.Direction
	out := New[float64](mag.width-2, mag.height-2)
	rows(out.height, func(oy int) {
		dst := out.row(oy)
		y := oy + 1
		for ox := range dst {
			x := ox + 1
			m := mag.At(x, y)
			dx1, dy1, dx2, dy2 := SectorOf(dir.At(x, y)).Neighbors()
			if m >= mag.At(x+dx1, y+dy1) && m >= mag.At(x+dx2, y+dy2) {
				dst[ox] = m
			}
		}
	})
	return out
}

// ComputeThresholds derives the high and low thresholds from the largest
// magnitude in s. It returns ErrEmptyReduction when s has no samples.
func ComputeThresholds(s *Grid[float64]) (Thresholds, error) {
	m, err := s.Max()
	if err != nil {
		return Thresholds{}, err
	}
	return Thresholds{Max: m, High: HighFraction * m, Low: LowFraction * m}, nil
}

// DoubleThreshold classifies every pixel of s as ClassStrong (>= high),
// ClassWeak (>= low) or ClassNone. An empty grid, or one whose largest
// magnitude is 0, has no edges and is classified ClassNone throughout.
func DoubleThreshold(s *Grid[float64]) (*Grid[int], Thresholds) {
	out := New[int](s.width, s.height)
	t, err := ComputeThresholds(s)
	if err != nil || t.Max <= 0 {
		return out, t
	}
	rows(s.height, func(y int) {
		src, dst := s.row(y), out.row(y)
		for x, v := range src {
			switch {
			case v >= t.High:
				dst[x] = ClassStrong
			case v >= t.Low:
				dst[x] = ClassWeak
			}
		}
	})
	return out, t
}

// LinkHysteresis turns a classification grid into a binary edge map. Strong
// pixels are edges; a weak pixel is an edge when one of its up to eight
// neighbours is strong. This is a single pass over c: weak pixels only reach
// a strong pixel directly, never through other weak pixels.
func LinkHysteresis(c *Grid[int]) *Grid[int] {
	out := New[int](c.width, c.height)
	rows(c.height, func(y int) {
		dst := out.row(y)
		for x, v := range c.row(y) {
			switch v {
			case ClassStrong:
				dst[x] = MaxIntensity
			case ClassWeak:
				if hasStrongNeighbor(c, x, y) {
					dst[x] = MaxIntensity
				}
			}
		}
	})
	return out
}

func hasStrongNeighbor(c *Grid[int], x, y int) bool {
	for ny := max(0, y-1); ny <= min(c.height-1, y+1); ny++ {
		for nx := max(0, x-1); nx <= min(c.width-1, x+1); nx++ {
			if c.pix[ny*c.width+nx] == ClassStrong {
				return true
			}
		}
	}
	return false
}
