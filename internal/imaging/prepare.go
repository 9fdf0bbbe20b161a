package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// MaxScale bounds the upscaling factor accepted by Prepare.
const MaxScale = 8.0

// Region is a rectangle in source pixel coordinates. (X1, Y1) is inclusive
// and (X2, Y2) exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect returns the region as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// Prepare crops img to region (nil means the whole image) and resizes the
// result by scale with a Lanczos filter. A scale of 0 or 1 leaves the size
// unchanged. Without a region or scaling img is returned as is.
func Prepare(img image.Image, region *Region, scale float64) (image.Image, error) {
	if scale < 0 || scale > MaxScale {
		return nil, fmt.Errorf("scale %g outside (0, %g]", scale, MaxScale)
	}

	out := img
	if region != nil {
		bounds := img.Bounds()
		r := *region
		if r.X1 < bounds.Min.X || r.Y1 < bounds.Min.Y || r.X2 > bounds.Max.X || r.Y2 > bounds.Max.Y {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
				r.X1, r.Y1, r.X2, r.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
		}
		if r.X1 >= r.X2 || r.Y1 >= r.Y2 {
			return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
		}
		out = imaging.Crop(img, r.Rect())
	}

	if scale != 0 && scale != 1 {
		w := int(float64(out.Bounds().Dx()) * scale)
		h := int(float64(out.Bounds().Dy()) * scale)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale %g shrinks the image to nothing", scale)
		}
		out = imaging.Resize(out, w, h, imaging.Lanczos)
	}
	return out, nil
}

// NamedRegion resolves a named part of an image of the given bounds:
// top-left, top-right, bottom-left, bottom-right, top-half, bottom-half,
// left-half, right-half or center (the middle 50%).
func NamedRegion(bounds image.Rectangle, name string) (Region, error) {
	w, h := bounds.Dx(), bounds.Dy()
	midX, midY := w/2, h/2

	var r Region
	switch name {
	case "top-left":
		r = Region{0, 0, midX, midY}
	case "top-right":
		r = Region{midX, 0, w, midY}
	case "bottom-left":
		r = Region{0, midY, midX, h}
	case "bottom-right":
		r = Region{midX, midY, w, h}
	case "top-half":
		r = Region{0, 0, w, midY}
	case "bottom-half":
		r = Region{0, midY, w, h}
	case "left-half":
		r = Region{0, 0, midX, h}
	case "right-half":
		r = Region{midX, 0, w, h}
	case "center":
		qW, qH := w/4, h/4
		r = Region{qW, qH, w - qW, h - qH}
	default:
		return Region{}, fmt.Errorf("unknown region: %s", name)
	}

	r.X1 += bounds.Min.X
	r.X2 += bounds.Min.X
	r.Y1 += bounds.Min.Y
	r.Y2 += bounds.Min.Y
	return r, nil
}
