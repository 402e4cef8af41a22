package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/edge-tools-mcp/internal/edge"
)

// Panel layout in pixels.
const (
	panelPad   = 8
	panelTitle = 18
)

var (
	panelBackground = color.RGBA{32, 32, 32, 255}
	panelText       = color.RGBA{255, 255, 255, 255}
)

// CompareResult is a side-by-side rendering of a source image and both
// detector outputs.
type CompareResult struct {
	Width             int    `json:"width"`
	Height            int    `json:"height"`
	PrewittEdgePixels int    `json:"prewitt_edge_pixels"`
	CannyEdgePixels   int    `json:"canny_edge_pixels"`
	ImageBase64       string `json:"image_base64"`
	MimeType          string `json:"mime_type"`
}

// ComparePanel draws "Original", "Prewitt" and "Canny" panels next to each
// other. The Canny map is drawn one pixel in from the panel corner so it
// lines up with the source pixels it was computed from.
func ComparePanel(src, prewitt, canny *edge.Grid[int]) *image.RGBA {
	w, h := src.Width(), src.Height()
	// Titles need room even for tiny images.
	cell := max(w, font.MeasureString(basicfont.Face7x13, "Original").Ceil())

	bounds := image.Rect(0, 0, 3*cell+4*panelPad, h+panelTitle+2*panelPad)
	img := image.NewRGBA(bounds)
	draw.Draw(img, bounds, image.NewUniform(panelBackground), image.Point{}, draw.Src)

	panels := []struct {
		title  string
		grid   *edge.Grid[int]
		offset image.Point
	}{
		{"Original", src, image.Point{}},
		{"Prewitt", prewitt, image.Point{}},
		{"Canny", canny, image.Pt(1, 1)},
	}

	for i, p := range panels {
		origin := image.Pt(panelPad+i*(cell+panelPad), panelPad+panelTitle)
		area := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, h))}
		draw.Draw(img, area, image.NewUniform(color.Black), image.Point{}, draw.Src)
		drawGrid(img, p.grid, origin.Add(p.offset))
		drawTitle(img, p.title, image.Pt(origin.X, panelPad+basicfont.Face7x13.Ascent))
	}
	return img
}

func drawGrid(dst *image.RGBA, g *edge.Grid[int], at image.Point) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			v := toByte(float64(g.At(x, y)))
			dst.SetRGBA(at.X+x, at.Y+y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
}

func drawTitle(dst *image.RGBA, text string, baseline image.Point) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(panelText),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(baseline.X, baseline.Y),
	}
	d.DrawString(text)
}

// EncodeCompare renders and encodes a comparison panel.
func EncodeCompare(src, prewitt, canny *edge.Grid[int]) (*CompareResult, error) {
	panel := ComparePanel(src, prewitt, canny)
	data, err := EncodePNG(panel)
	if err != nil {
		return nil, err
	}
	nonZero := func(v int) bool { return v != 0 }
	return &CompareResult{
		Width:             panel.Bounds().Dx(),
		Height:            panel.Bounds().Dy(),
		PrewittEdgePixels: prewitt.Count(nonZero),
		CannyEdgePixels:   canny.Count(nonZero),
		ImageBase64:       data,
		MimeType:          "image/png",
	}, nil
}
