package filter

import (
	"fmt"
	"image"
	"strings"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"

	"github.com/ironsheep/edgelabel-mcp/internal/raster"
)

// DefaultRadius is the radius of the 3×3 window.
const DefaultRadius = 1.0

// Median returns a stage replacing each sample by the median of its
// neighbourhood. Borders are extended, so the output keeps the input shape.
func Median(radius float64) Func {
	return imageStage("filter.Median", radius, func(img image.Image) image.Image {
		return effect.Median(img, radius)
	})
}

// Box returns a stage replacing each sample by the mean of its
// neighbourhood.
func Box(radius float64) Func {
	return imageStage("filter.Box", radius, func(img image.Image) image.Image {
		return blur.Box(img, radius)
	})
}

// imageStage adapts an image filter to a grid stage.
func imageStage(op string, radius float64, apply func(image.Image) image.Image) Func {
	return func(g raster.Grid) (raster.Grid, error) {
		if err := g.Validate(); err != nil {
			return raster.Grid{}, raster.Configf(op, err)
		}
		if radius < 0 {
			return raster.Grid{}, raster.Configf(op, ErrRadius)
		}
		if radius == 0 {
			return g.Clone(), nil
		}
		return raster.FromImage(apply(raster.ToGray(g)))
	}
}

// Denoise returns the named smoothing stage. method is "median" (the
// default) or "box"; a zero radius selects DefaultRadius.
func Denoise(method string, radius float64) (Func, error) {
	if radius == 0 {
		radius = DefaultRadius
	}
	switch strings.ToLower(method) {
	case "", "median":
		return Median(radius), nil
	case "box":
		return Box(radius), nil
	}
	return nil, raster.Configf("filter.Denoise", fmt.Errorf("%w: %q", ErrMethod, method))
}
