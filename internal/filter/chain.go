package filter

import (
	"github.com/ironsheep/edgelabel-mcp/internal/raster"
)

// Func transforms a grid into a new grid of the same shape.
type Func func(raster.Grid) (raster.Grid, error)

// Chain runs stages left to right, stopping at the first error. An empty
// chain returns a copy of its input.
func Chain(stages ...Func) Func {
	return func(g raster.Grid) (raster.Grid, error) {
		if err := g.Validate(); err != nil {
			return raster.Grid{}, raster.Configf("filter.Chain", err)
		}
		out := g.Clone()
		for _, stage := range stages {
			next, err := stage(out)
			if err != nil {
				return raster.Grid{}, err
			}
			out = next
		}
		return out, nil
	}
}
