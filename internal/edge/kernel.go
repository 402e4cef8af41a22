package edge

// Kernel is a fixed 3x3 weight matrix indexed [row][column]. Convolution sums
// are divided by Divisor; a zero Divisor is treated as 1.
type Kernel struct {
	Name    string
	Weights [3][3]int
	Divisor int
}

// Kernels are values, so callers always receive a copy.
var (
	// PrewittX responds to intensity increasing to the right.
	PrewittX = Kernel{
		Name: "prewitt-x",
		Weights: [3][3]int{
			{-1, 0, 1},
			{-1, 0, 1},
			{-1, 0, 1},
		},
		Divisor: 1,
	}

	// PrewittY responds to intensity increasing downward.
	PrewittY = Kernel{
		Name: "prewitt-y",
		Weights: [3][3]int{
			{-1, -1, -1},
			{0, 0, 0},
			{1, 1, 1},
		},
		Divisor: 1,
	}

	// SobelX responds to intensity increasing to the right.
	SobelX = Kernel{
		Name: "sobel-x",
		Weights: [3][3]int{
			{-1, 0, 1},
			{-2, 0, 2},
			{-1, 0, 1},
		},
		Divisor: 1,
	}

	// SobelY responds to intensity increasing upward. Its sign is the
	// opposite of PrewittY, so Canny directions are measured with y up.
	SobelY = Kernel{
		Name: "sobel-y",
		Weights: [3][3]int{
			{1, 2, 1},
			{0, 0, 0},
			{-1, -2, -1},
		},
		Divisor: 1,
	}

	// Gaussian is the unnormalized 3x3 binomial blur.
	Gaussian = Kernel{
		Name: "gaussian",
		Weights: [3][3]int{
			{1, 2, 1},
			{2, 4, 2},
			{1, 2, 1},
		},
		Divisor: 16,
	}
)

// Sum returns the sum of all weights.
func (k Kernel) Sum() int {
	s := 0
	for _, row := range k.Weights {
		for _, w := range row {
			s += w
		}
	}
	return s
}

func (k Kernel) divisor() int {
	if k.Divisor == 0 {
		return 1
	}
	return k.Divisor
}
