package detection

import (
	"image"

	"github.com/ironsheep/edgelabel-mcp/internal/label"
)

// ringWidth is the thickness of the band along the bounding box border in
// which a rectangle's edge pixels are expected. A filled shape produces a
// two-pixel outline, one on each side of the intensity step.
const ringWidth = 2

// Rectangle is an object whose edge pixels trace its bounding box.
type Rectangle struct {
	Object

	// Confidence indicates how rectangular the object is (0.0 to 1.0).
	Confidence float64 `json:"confidence"`
}

// RectanglesResult contains the rectangles found in an image.
type RectanglesResult struct {
	// Rectangles keeps the object order: largest area first.
	Rectangles []Rectangle `json:"rectangles"`
	Count      int         `json:"count"`
}

// DetectRectangles finds axis-aligned rectangular outlines.
//
// Every object from DetectObjects is scored by two ratios over the band of
// ringWidth pixels inside its bounding box border:
//
//	precision = object pixels in the band / object pixels
//	coverage  = object pixels in the band / band pixels
//
// Confidence is their product; objects scoring below tolerance are dropped.
//
// # Limitations
//
//   - Rotated rectangles score low
//   - Rounded corners reduce coverage slightly
//   - Nested rectangles are reported separately
func DetectRectangles(img image.Image, p Params, tolerance float64) (*RectanglesResult, error) {
	objects, res, err := detectObjects(img, p)
	if err != nil {
		return nil, err
	}

	inBand := bandCounts(res.Labels)
	origin := img.Bounds().Min

	rects := make([]Rectangle, 0)
	for _, o := range objects {
		w, h := o.Width, o.Height
		if w <= 2*ringWidth || h <= 2*ringWidth {
			continue
		}

		band := w*h - (w-2*ringWidth)*(h-2*ringWidth)
		on := inBand(o.ID, Bounds{
			X1: o.Bounds.X1 - origin.X,
			Y1: o.Bounds.Y1 - origin.Y,
			X2: o.Bounds.X2 - origin.X,
			Y2: o.Bounds.Y2 - origin.Y,
		})
		precision := float64(on) / float64(o.Pixels)
		coverage := float64(on) / float64(band)
		if coverage > 1 {
			coverage = 1
		}

		confidence := precision * coverage
		if confidence < tolerance {
			continue
		}
		rects = append(rects, Rectangle{Object: o, Confidence: confidence})
	}

	return &RectanglesResult{
		Rectangles: rects,
		Count:      len(rects),
	}, nil
}

// bandCounts returns a function counting the pixels of component id that lie
// within ringWidth of the border of b, given in grid coordinates.
func bandCounts(m label.Map) func(id label.Label, b Bounds) int {
	return func(id label.Label, b Bounds) int {
		n := 0
		for y := b.Y1; y <= b.Y2; y++ {
			for x := b.X1; x <= b.X2; x++ {
				if m.At(y, x) != id {
					continue
				}
				if x-b.X1 < ringWidth || b.X2-x < ringWidth || y-b.Y1 < ringWidth || b.Y2-y < ringWidth {
					n++
				}
			}
		}
		return n
	}
}
