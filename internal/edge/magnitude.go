package edge

import (
	"fmt"
	"math"
	"strings"

	"github.com/ironsheep/edgelabel-mcp/internal/raster"
)

// Mode selects how Gx and Gy are combined into a single magnitude.
type Mode int

const (
	// ModeL2 is the Euclidean norm sqrt(gx² + gy²).
	ModeL2 Mode = iota
	// ModeL1 is the averaged absolute sum 0.5|gx| + 0.5|gy|.
	ModeL1
)

func (m Mode) String() string {
	switch m {
	case ModeL2:
		return "l2"
	case ModeL1:
		return "l1"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "l1" or "l2" (case-insensitive). The empty string maps to
// ModeL2.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "l2":
		return ModeL2, nil
	case "l1":
		return ModeL1, nil
	}
	return 0, raster.Configf("edge.ParseMode", fmt.Errorf("%w: %q", ErrMode, s))
}

// Magnitude combines gradient grids into an 8-bit magnitude grid.
//
// Both modes round half-to-even and saturate at 255:
//   - ModeL1: round(0.5·|gx| + 0.5·|gy|)
//   - ModeL2: round(sqrt(gx² + gy²))
//
// gx and gy must share a shape; otherwise a ConfigError wrapping
// raster.ErrShapeMismatch is returned.
func Magnitude(gx, gy raster.Grid, mode Mode) (raster.Grid, error) {
	const op = "edge.Magnitude"
	if err := gx.Validate(); err != nil {
		return raster.Grid{}, raster.Configf(op, err)
	}
	if err := gy.Validate(); err != nil {
		return raster.Grid{}, raster.Configf(op, err)
	}
	if !gx.SameShape(gy) {
		return raster.Grid{}, raster.Configf(op, raster.ErrShapeMismatch)
	}

	var combine func(a, b int32) int32
	switch mode {
	case ModeL1:
		combine = l1
	case ModeL2:
		combine = l2
	default:
		return raster.Grid{}, raster.Configf(op, ErrMode)
	}

	out, _ := raster.New(gx.Rows, gx.Cols)
	for i := range out.Pix {
		out.Pix[i] = combine(gx.Pix[i], gy.Pix[i])
	}
	return out, nil
}

// l1 halves |a|+|b| in integer arithmetic, breaking .5 ties toward even.
func l1(a, b int32) int32 {
	s := abs32(a) + abs32(b)
	m := s >> 1
	if s&1 == 1 && m&1 == 1 {
		m++
	}
	return saturate(m)
}

func l2(a, b int32) int32 {
	fa, fb := float64(a), float64(b)
	return saturate(int32(math.RoundToEven(math.Sqrt(fa*fa + fb*fb))))
}

func saturate(v int32) int32 {
	if v > 255 {
		return 255
	}
	return v
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
