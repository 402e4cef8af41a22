package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/edge-tools-mcp/internal/edge"
)

// GradientFieldResult is a rendered gradient field encoded as base64 PNG.
type GradientFieldResult struct {
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	MaxMagnitude float64 `json:"max_magnitude"`
	ImageBase64  string  `json:"image_base64"`
	MimeType     string  `json:"mime_type"`
}

// RenderDirection draws a gradient field as color: hue encodes direction
// (0-180 degrees spread over the full color wheel) and brightness encodes
// magnitude relative to the strongest gradient. Flat areas are black.
func RenderDirection(f *edge.Field) *image.RGBA {
	w, h := f.Width(), f.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	maxMag, err := f.Magnitude.Max()
	if err != nil || maxMag == 0 {
		for i := 3; i < len(img.Pix); i += 4 {
			img.Pix[i] = 255
		}
		return img
	}

	parallel.Line(h, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < w; x++ {
				img.SetRGBA(x, y, directionColor(f.Direction.At(x, y), f.Magnitude.At(x, y)/maxMag))
			}
		}
	})
	return img
}

func directionColor(deg, strength float64) color.RGBA {
	r, g, b := colorful.Hsv(deg*2, 1, strength).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// EncodeField renders and encodes a gradient field.
func EncodeField(f *edge.Field) (*GradientFieldResult, error) {
	maxMag, _ := f.Magnitude.Max()
	res := &GradientFieldResult{
		Width:        f.Width(),
		Height:       f.Height(),
		MaxMagnitude: maxMag,
		MimeType:     "image/png",
	}
	if f.Magnitude.Empty() {
		return res, nil
	}
	data, err := EncodePNG(RenderDirection(f))
	if err != nil {
		return nil, err
	}
	res.ImageBase64 = data
	return res, nil
}
