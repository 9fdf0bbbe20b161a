package edge

import (
	"github.com/ironsheep/edgelabel-mcp/internal/raster"
)

// offset is a (dy, dx) displacement from the centre pixel.
type offset struct{ dy, dx int }

// suppression holds the four magnitude neighbours compared against a pixel.
// g2 and g4 sit on the dominant axis; g1 and g3 are the diagonals on the
// gradient line. The references are w·g1 + (1-w)·g2 and w·g3 + (1-w)·g4.
type suppression struct {
	g1, g2, g3, g4 offset
}

// The four suppression configurations, indexed by dominant axis and by
// whether gx·gy is strictly positive.
//
//	vertical, gx·gy > 0     vertical, gx·gy <= 0
//	  g1 g2                      g2 g1
//	     C                       C
//	     g4 g3               g3 g4
//
//	horizontal, gx·gy > 0   horizontal, gx·gy <= 0
//	  g1                             g3
//	  g2 C g4                   g2 C g4
//	       g3                   g1
var (
	verticalSame   = suppression{g1: offset{-1, -1}, g2: offset{-1, 0}, g3: offset{1, 1}, g4: offset{1, 0}}
	verticalOpp    = suppression{g1: offset{-1, 1}, g2: offset{-1, 0}, g3: offset{1, -1}, g4: offset{1, 0}}
	horizontalSame = suppression{g1: offset{-1, -1}, g2: offset{0, -1}, g3: offset{1, 1}, g4: offset{0, 1}}
	horizontalOpp  = suppression{g1: offset{1, -1}, g2: offset{0, -1}, g3: offset{-1, 1}, g4: offset{0, 1}}
)

// Suppress thins a magnitude grid to one-pixel-wide ridges.
//
// For every interior pixel with non-zero magnitude m, the dominant gradient
// axis is vertical when |gy| > |gx| and horizontal otherwise. The
// interpolation weight is w = min(|gx|,|gy|) / max(|gx|,|gy|). The pixel keeps
// m when m ≥ r1 and m ≥ r2 (ties survive), and becomes 0 otherwise.
//
// Border pixels are always 0. Each output pixel depends only on the input
// grids, so the result does not depend on visiting order.
//
// Parameters:
//   - mag: Magnitude grid from Magnitude.
//   - gx, gy: The gradients mag was computed from.
//
// Returns:
//   - raster.Grid: Thinned magnitudes, same shape as mag.
//   - error: A ConfigError when the three grids are malformed or differ in
//     shape.
func Suppress(mag, gx, gy raster.Grid) (raster.Grid, error) {
	const op = "edge.Suppress"
	for _, g := range []raster.Grid{mag, gx, gy} {
		if err := g.Validate(); err != nil {
			return raster.Grid{}, raster.Configf(op, err)
		}
	}
	if !mag.SameShape(gx) || !mag.SameShape(gy) {
		return raster.Grid{}, raster.Configf(op, raster.ErrShapeMismatch)
	}

	out, _ := raster.New(mag.Rows, mag.Cols)
	for y := 1; y < mag.Rows-1; y++ {
		for x := 1; x < mag.Cols-1; x++ {
			i := mag.Index(y, x)
			m := mag.Pix[i]
			if m == 0 {
				continue
			}
			if isLocalMax(mag, y, x, m, gx.Pix[i], gy.Pix[i]) {
				out.Pix[i] = m
			}
		}
	}
	return out, nil
}

// isLocalMax compares m against the two interpolated references on the
// gradient line through (y, x).
func isLocalMax(mag raster.Grid, y, x int, m, gx, gy int32) bool {
	ax, ay := float64(abs32(gx)), float64(abs32(gy))
	same := int64(gx)*int64(gy) > 0

	var cfg suppression
	var w float64
	if ay > ax {
		w = ax / ay
		if same {
			cfg = verticalSame
		} else {
			cfg = verticalOpp
		}
	} else {
		if ax > 0 {
			w = ay / ax
		}
		if same {
			cfg = horizontalSame
		} else {
			cfg = horizontalOpp
		}
	}

	at := func(o offset) float64 {
		return float64(mag.At(y+o.dy, x+o.dx))
	}
	r1 := w*at(cfg.g1) + (1-w)*at(cfg.g2)
	r2 := w*at(cfg.g3) + (1-w)*at(cfg.g4)

	v := float64(m)
	return v >= r1 && v >= r2
}
