package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/edge-tools-mcp/internal/edge"
)

// Region is a rectangle in source image coordinates. (X1, Y1) is inclusive,
// (X2, Y2) is exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect converts r to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// SourceOptions selects the part of an image handed to a detector.
type SourceOptions struct {
	// Region restricts detection to a rectangle. Nil means the whole image.
	Region *Region

	// Named selects a named region such as "top-left" or "center". It is
	// ignored when Region is set.
	Named string

	// Scale resizes the selected region before detection. 0 and 1 leave it
	// unchanged.
	Scale float64
}

// ToGrid converts img to an intensity grid using ITU-R BT.601 luminance
// (0.299 R + 0.587 G + 0.114 B, rounded). Alpha is ignored. The grid origin
// is the top-left pixel of img's bounds.
func ToGrid(img image.Image) *edge.Grid[int] {
	gray := imaging.Grayscale(img)
	w, h := gray.Rect.Dx(), gray.Rect.Dy()

	pix := make([]int, w*h)
	for y := 0; y < h; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+w*4]
		for x := 0; x < w; x++ {
			pix[y*w+x] = int(row[x*4])
		}
	}

	g, err := edge.FromPix(w, h, pix)
	if err != nil {
		// pix is sized from w and h above.
		panic(err)
	}
	return g
}

// ToGridRegion selects, optionally rescales, and converts part of img.
func ToGridRegion(img image.Image, opts SourceOptions) (*edge.Grid[int], error) {
	selected, err := Select(img, opts)
	if err != nil {
		return nil, err
	}
	return ToGrid(selected), nil
}

// Select applies opts to img and returns the image the detectors will see.
func Select(img image.Image, opts SourceOptions) (image.Image, error) {
	bounds := img.Bounds()
	out := img

	switch {
	case opts.Region != nil:
		reg := opts.Region
		if reg.X1 >= reg.X2 || reg.Y1 >= reg.Y2 {
			return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
		}
		r := reg.Rect().Add(bounds.Min)
		if !r.In(bounds) {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds %dx%d",
				reg.X1, reg.Y1, reg.X2, reg.Y2, bounds.Dx(), bounds.Dy())
		}
		out = imaging.Crop(img, r)
	case opts.Named != "":
		r, err := NamedRegion(bounds, opts.Named)
		if err != nil {
			return nil, err
		}
		out = imaging.Crop(img, r)
	}

	if opts.Scale < 0 {
		return nil, fmt.Errorf("scale must be positive, got %v", opts.Scale)
	}
	if opts.Scale != 0 && opts.Scale != 1 {
		w := int(float64(out.Bounds().Dx()) * opts.Scale)
		h := int(float64(out.Bounds().Dy()) * opts.Scale)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale %v reduces image to %dx%d", opts.Scale, w, h)
		}
		out = imaging.Resize(out, w, h, imaging.Lanczos)
	}
	return out, nil
}

// RegionNames lists the names accepted by NamedRegion.
var RegionNames = []string{
	"top-left", "top-right", "bottom-left", "bottom-right",
	"top-half", "bottom-half", "left-half", "right-half", "center",
}

// NamedRegion returns the rectangle of bounds called name. "center" is the
// middle half of the image in each axis.
func NamedRegion(bounds image.Rectangle, name string) (image.Rectangle, error) {
	w, h := bounds.Dx(), bounds.Dy()
	midX, midY := w/2, h/2

	var r image.Rectangle
	switch name {
	case "top-left":
		r = image.Rect(0, 0, midX, midY)
	case "top-right":
		r = image.Rect(midX, 0, w, midY)
	case "bottom-left":
		r = image.Rect(0, midY, midX, h)
	case "bottom-right":
		r = image.Rect(midX, midY, w, h)
	case "top-half":
		r = image.Rect(0, 0, w, midY)
	case "bottom-half":
		r = image.Rect(0, midY, w, h)
	case "left-half":
		r = image.Rect(0, 0, midX, h)
	case "right-half":
		r = image.Rect(midX, 0, w, h)
	case "center":
		r = image.Rect(w/4, h/4, w-w/4, h-h/4)
	default:
		return image.Rectangle{}, fmt.Errorf("unknown region: %s", name)
	}
	return r.Add(bounds.Min), nil
}
