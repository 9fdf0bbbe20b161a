package edge

import (
	"github.com/ironsheep/edgelabel-mcp/internal/raster"
)

// Options configures a detector run.
type Options struct {
	// Low is the weak threshold: suppressed magnitudes below it are never edges.
	Low int `json:"low"`

	// High is the strong threshold: suppressed magnitudes at or above it are
	// always edges.
	High int `json:"high"`

	// Mode selects the L1 or L2 magnitude.
	Mode Mode `json:"mode"`

	// Propagation selects the weak pixel promotion rule.
	Propagation Propagation `json:"propagation"`
}

// DefaultOptions returns lo=30, hi=90, L2 magnitude and neighbourhood
// propagation.
func DefaultOptions() Options {
	return Options{
		Low:         30,
		High:        90,
		Mode:        ModeL2,
		Propagation: PropagationNeighborhood,
	}
}

// Validate checks the option values without running the detector.
func (o Options) Validate() error {
	const op = "edge.Options"
	if o.Low > o.High {
		return raster.Configf(op, ErrThresholdOrder)
	}
	if o.Mode != ModeL1 && o.Mode != ModeL2 {
		return raster.Configf(op, ErrMode)
	}
	if o.Propagation != PropagationNeighborhood && o.Propagation != PropagationTransitive {
		return raster.Configf(op, ErrPropagation)
	}
	return nil
}

// Stages holds every intermediate grid of a detector run.
type Stages struct {
	Gx         raster.Grid
	Gy         raster.Grid
	Magnitude  raster.Grid
	Suppressed raster.Grid
	Edges      raster.Grid
}

// Run executes the full chain and keeps each stage's output, which is useful
// for inspecting why a pixel was or was not classified as an edge.
func Run(src raster.Grid, opts Options) (*Stages, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	gx, gy, err := Gradient(src)
	if err != nil {
		return nil, err
	}
	mag, err := Magnitude(gx, gy, opts.Mode)
	if err != nil {
		return nil, err
	}
	thin, err := Suppress(mag, gx, gy)
	if err != nil {
		return nil, err
	}
	edges, err := Hysteresis(thin, opts.Low, opts.High, opts.Propagation)
	if err != nil {
		return nil, err
	}

	return &Stages{
		Gx:         gx,
		Gy:         gy,
		Magnitude:  mag,
		Suppressed: thin,
		Edges:      edges,
	}, nil
}

// DetectEdges returns the binary edge mask of src (0 = non-edge, 255 = edge)
// using neighbourhood hysteresis.
//
// The result is a pure function of its arguments: identical grids,
// thresholds and mode always produce identical masks.
func DetectEdges(src raster.Grid, low, high int, mode Mode) (raster.Grid, error) {
	st, err := Run(src, Options{Low: low, High: high, Mode: mode})
	if err != nil {
		return raster.Grid{}, err
	}
	return st.Edges, nil
}
