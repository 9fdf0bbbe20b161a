package detection

import (
	"fmt"
	"strings"

	"github.com/ironsheep/edgelabel-mcp/internal/edge"
	"github.com/ironsheep/edgelabel-mcp/internal/filter"
	"github.com/ironsheep/edgelabel-mcp/internal/label"
	"github.com/ironsheep/edgelabel-mcp/internal/raster"
)

// ParallelPixels is the grid size from which label resolution is split
// across goroutines.
const ParallelPixels = 1 << 18

// Params configures the detection pipeline.
type Params struct {
	Edge         edge.Options       `json:"edge"`
	Connectivity label.Connectivity `json:"connectivity"`

	// Denoise names the smoothing applied before edge detection: "median",
	// "box" or "none".
	Denoise string  `json:"denoise"`
	Radius  float64 `json:"radius"`

	// MinArea drops objects whose bounding box covers fewer pixels.
	MinArea int `json:"min_area"`
}

// DefaultParams returns the default edge options, 8-connectivity and a 3×3
// median prefilter.
func DefaultParams() Params {
	return Params{
		Edge:         edge.DefaultOptions(),
		Connectivity: label.Eight,
		Denoise:      "median",
		Radius:       filter.DefaultRadius,
	}
}

// Result holds the intermediate products of one pipeline run.
type Result struct {
	Smoothed raster.Grid
	Edges    raster.Grid
	Labels   label.Map
	Count    int
}

// Run denoises src, detects its edges and labels the edge pixels. Non-edge
// pixels get the reserved id 0.
func Run(src raster.Grid, p Params) (*Result, error) {
	smoothed := src
	if m := strings.ToLower(p.Denoise); m != "" && m != "none" {
		stage, err := filter.Denoise(m, p.Radius)
		if err != nil {
			return nil, err
		}
		if smoothed, err = stage(src); err != nil {
			return nil, fmt.Errorf("failed to denoise: %w", err)
		}
	}

	st, err := edge.Run(smoothed, p.Edge)
	if err != nil {
		return nil, err
	}

	m, count, err := label.Run(st.Edges, label.Options{
		Connectivity:   p.Connectivity,
		SkipBackground: true,
		Background:     edge.NonEdge,
		Parallel:       len(st.Edges.Pix) >= ParallelPixels,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Smoothed: smoothed,
		Edges:    st.Edges,
		Labels:   m,
		Count:    count,
	}, nil
}
