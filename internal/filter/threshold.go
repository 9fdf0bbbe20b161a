package filter

import (
	"fmt"
	"strings"

	"github.com/anthonynsimon/bild/segment"

	"github.com/ironsheep/edgelabel-mcp/internal/raster"
)

// Binarized mask values.
const (
	Black int32 = 0
	White int32 = 255
)

// OtsuThreshold returns the level that maximizes the between-class variance
// of g's intensity histogram. Samples ≤ the level form the dark class.
//
// A grid holding a single value has no threshold and yields ErrDegenerate.
func OtsuThreshold(g raster.Grid) (int, error) {
	if err := g.Validate(); err != nil {
		return 0, raster.Configf("filter.OtsuThreshold", err)
	}

	var histo [256]int
	for _, v := range g.Pix {
		histo[raster.Saturate8(v)]++
	}

	total := len(g.Pix)
	var totalWeighted int
	distinct := 0
	for level, pixels := range histo {
		totalWeighted += level * pixels
		if pixels > 0 {
			distinct++
		}
	}
	if distinct < 2 {
		return 0, ErrDegenerate
	}

	var (
		best         int
		bestVariance float64

		// Pixels at or below the candidate level, and their weighted sum.
		darkPixels   int
		darkWeighted int
	)
	for level, pixels := range histo {
		darkPixels += pixels
		darkWeighted += level * pixels

		lightPixels := total - darkPixels
		if darkPixels == 0 || lightPixels == 0 {
			continue
		}

		darkMean := float64(darkWeighted) / float64(darkPixels)
		lightMean := float64(totalWeighted-darkWeighted) / float64(lightPixels)
		d := darkMean - lightMean
		variance := float64(darkPixels) * float64(lightPixels) * d * d
		if variance > bestVariance {
			bestVariance = variance
			best = level
		}
	}
	return best, nil
}

// Otsu binarizes g at its Otsu level: samples above the level become White,
// the rest Black.
func Otsu(g raster.Grid) (raster.Grid, error) {
	level, err := OtsuThreshold(g)
	if err != nil {
		return raster.Grid{}, err
	}
	out, _ := raster.New(g.Rows, g.Cols)
	for i, v := range g.Pix {
		if int(raster.Saturate8(v)) > level {
			out.Pix[i] = White
		}
	}
	return out, nil
}

// Global returns a stage that binarizes at a fixed level: samples at or above
// level become White, the rest Black.
func Global(level uint8) Func {
	return func(g raster.Grid) (raster.Grid, error) {
		if err := g.Validate(); err != nil {
			return raster.Grid{}, raster.Configf("filter.Global", err)
		}
		return raster.FromImage(segment.Threshold(raster.ToGray(g), level))
	}
}

// Binarize returns the named binarization stage. method is "otsu" (the
// default) or "global"; level is only used by "global".
func Binarize(method string, level int) (Func, error) {
	switch strings.ToLower(method) {
	case "", "otsu":
		return Otsu, nil
	case "global":
		return Global(raster.Saturate8(int32(level))), nil
	}
	return nil, raster.Configf("filter.Binarize", fmt.Errorf("%w: %q", ErrMethod, method))
}
