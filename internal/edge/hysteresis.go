package edge

import (
	"fmt"
	"strings"

	"github.com/ironsheep/edgelabel-mcp/internal/raster"
)

// Mask values written by Hysteresis.
const (
	NonEdge int32 = 0
	Edge    int32 = 255
)

// Propagation selects how weak pixels are promoted to edges.
type Propagation int

const (
	// PropagationNeighborhood promotes a weak pixel iff one of its eight
	// immediate neighbours is strong. Support never travels through other
	// weak pixels.
	PropagationNeighborhood Propagation = iota
	// PropagationTransitive promotes every weak pixel 8-connected to a strong
	// pixel through a chain of weak pixels.
	PropagationTransitive
)

func (p Propagation) String() string {
	switch p {
	case PropagationNeighborhood:
		return "neighborhood"
	case PropagationTransitive:
		return "transitive"
	default:
		return fmt.Sprintf("Propagation(%d)", int(p))
	}
}

// ParsePropagation accepts "neighborhood" or "transitive". The empty string
// maps to PropagationNeighborhood.
func ParsePropagation(s string) (Propagation, error) {
	switch strings.ToLower(s) {
	case "", "neighborhood", "neighbourhood":
		return PropagationNeighborhood, nil
	case "transitive":
		return PropagationTransitive, nil
	}
	return 0, raster.Configf("edge.ParsePropagation", fmt.Errorf("%w: %q", ErrPropagation, s))
}

var neighbors8 = [8]offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Hysteresis classifies thinned magnitudes into a binary edge mask.
//
// Interior pixels are classified as:
//   - value ≥ high: Edge (strong)
//   - value < low: NonEdge
//   - otherwise (weak): decided by p, see Propagation
//
// Neighbour support is read from thin itself, i.e. from the suppressed
// magnitudes. Border pixels are always NonEdge.
//
// Parameters:
//   - thin: Output of Suppress (any non-negative grid works).
//   - low, high: Thresholds with low ≤ high.
//   - p: Weak pixel propagation rule.
//
// Returns:
//   - raster.Grid: Mask holding only NonEdge and Edge.
//   - error: A ConfigError wrapping ErrThresholdOrder when low > high,
//     ErrPropagation for an unknown rule, or a raster error for a malformed
//     grid.
func Hysteresis(thin raster.Grid, low, high int, p Propagation) (raster.Grid, error) {
	const op = "edge.Hysteresis"
	if err := thin.Validate(); err != nil {
		return raster.Grid{}, raster.Configf(op, err)
	}
	if low > high {
		return raster.Grid{}, raster.Configf(op, fmt.Errorf("%w: low=%d high=%d", ErrThresholdOrder, low, high))
	}

	switch p {
	case PropagationNeighborhood:
		return hysteresisNeighborhood(thin, int64(low), int64(high)), nil
	case PropagationTransitive:
		return hysteresisTransitive(thin, int64(low), int64(high)), nil
	default:
		return raster.Grid{}, raster.Configf(op, ErrPropagation)
	}
}

func hysteresisNeighborhood(thin raster.Grid, low, high int64) raster.Grid {
	out, _ := raster.New(thin.Rows, thin.Cols)
	for y := 1; y < thin.Rows-1; y++ {
		for x := 1; x < thin.Cols-1; x++ {
			v := int64(thin.At(y, x))
			switch {
			case v >= high:
				out.Set(y, x, Edge)
			case v < low:
				// NonEdge
			case hasStrongNeighbor(thin, y, x, high):
				out.Set(y, x, Edge)
			}
		}
	}
	return out
}

// hasStrongNeighbor scans the 3×3 neighbourhood of an interior pixel once.
func hasStrongNeighbor(thin raster.Grid, y, x int, high int64) bool {
	for _, d := range neighbors8 {
		if int64(thin.At(y+d.dy, x+d.dx)) >= high {
			return true
		}
	}
	return false
}

// hysteresisTransitive grows edges from strong pixels into weak ones with an
// explicit stack, so long chains cannot exhaust the goroutine stack.
func hysteresisTransitive(thin raster.Grid, low, high int64) raster.Grid {
	out, _ := raster.New(thin.Rows, thin.Cols)
	interior := func(y, x int) bool {
		return y >= 1 && y < thin.Rows-1 && x >= 1 && x < thin.Cols-1
	}

	var stack []offset
	for y := 1; y < thin.Rows-1; y++ {
		for x := 1; x < thin.Cols-1; x++ {
			if int64(thin.At(y, x)) >= high {
				out.Set(y, x, Edge)
				stack = append(stack, offset{y, x})
			}
		}
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range neighbors8 {
			ny, nx := p.dy+d.dy, p.dx+d.dx
			if !interior(ny, nx) || out.At(ny, nx) == Edge {
				continue
			}
			if int64(thin.At(ny, nx)) >= low {
				out.Set(ny, nx, Edge)
				stack = append(stack, offset{ny, nx})
			}
		}
	}
	return out
}
