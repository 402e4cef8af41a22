package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/edge-tools-mcp/internal/edge"
)

// EdgeMapResult is a detector output encoded as base64 PNG.
//
// For Prewitt the image is a grayscale edge strength in [0, 255]. For Canny
// it is binary: white (255) pixels are edges. The Canny map is two pixels
// smaller than the source in each axis; its (0,0) is source pixel (1,1).
type EdgeMapResult struct {
	// Detector is "prewitt" or "canny".
	Detector string `json:"detector"`

	// Width of the edge map in pixels.
	Width int `json:"width"`

	// Height of the edge map in pixels.
	Height int `json:"height"`

	// EdgePixels counts non-zero pixels.
	EdgePixels int `json:"edge_pixels"`

	// Thresholds are the Canny double-threshold limits. Nil for Prewitt.
	Thresholds *edge.Thresholds `json:"thresholds,omitempty"`

	// Warning describes degenerate input, such as an image smaller than 3x3.
	Warning string `json:"warning,omitempty"`

	// ImageBase64 is the edge map encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// Render converts a grid to an 8-bit grayscale image, rounding and clamping
// samples to [0, 255]. An empty grid yields an empty image.
func Render[T edge.Sample](g *edge.Grid[T]) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width(), g.Height()))
	if g.Empty() {
		return img
	}
	parallel.Line(g.Height(), func(start, end int) {
		for y := start; y < end; y++ {
			row := img.Pix[y*img.Stride:]
			for x := 0; x < g.Width(); x++ {
				row[x] = toByte(float64(g.At(x, y)))
			}
		}
	})
	return img
}

func toByte(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}

// EncodePNG encodes img as base64 PNG.
func EncodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode edge image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// EncodeGrid renders and encodes a detector output.
func EncodeGrid(detector string, g *edge.Grid[int]) (*EdgeMapResult, error) {
	var (
		data string
		err  error
	)
	// image/png refuses zero-sized images.
	if !g.Empty() {
		data, err = EncodePNG(Render(g))
		if err != nil {
			return nil, err
		}
	}

	return &EdgeMapResult{
		Detector:    detector,
		Width:       g.Width(),
		Height:      g.Height(),
		EdgePixels:  g.Count(func(v int) bool { return v != 0 }),
		ImageBase64: data,
		MimeType:    "image/png",
	}, nil
}
