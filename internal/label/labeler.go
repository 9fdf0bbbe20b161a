package label

import (
	"fmt"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/edgelabel-mcp/internal/raster"
)

// Connectivity is the pixel adjacency rule.
type Connectivity int

const (
	// Four connects north, south, east and west neighbours.
	Four Connectivity = 4
	// Eight adds the four diagonal neighbours.
	Eight Connectivity = 8
)

// Validate returns a ConfigError wrapping ErrConnectivity unless c is Four or
// Eight. The zero value is rejected rather than defaulted.
func (c Connectivity) Validate() error {
	if c != Four && c != Eight {
		return raster.Configf("label.Connectivity", fmt.Errorf("%w: got %d", ErrConnectivity, int(c)))
	}
	return nil
}

// Options configures a labelling run.
type Options struct {
	Connectivity Connectivity `json:"connectivity"`

	// SkipBackground excludes pixels equal to Background from the components.
	// They receive id 0 and objects are numbered from 1.
	SkipBackground bool  `json:"skip_background"`
	Background     int32 `json:"background"`

	// Parallel splits the resolution rewrite across row ranges. The output
	// is identical either way.
	Parallel bool `json:"parallel"`
}

// DefaultOptions returns 8-connectivity with the background counted as an
// object.
func DefaultOptions() Options {
	return Options{Connectivity: Eight}
}

// Map is a dense label map with the shape of the labelled grid.
type Map struct {
	Rows   int
	Cols   int
	Labels []Label

	// Values[id] is the input value shared by every pixel of component id.
	Values []int32

	// Reserved is set when id 0 marks skipped background pixels rather than
	// a component.
	Reserved bool
}

// At returns the id at row y, column x.
func (m Map) At(y, x int) Label {
	return m.Labels[y*m.Cols+x]
}

// Grid returns the ids as a raster grid.
func (m Map) Grid() raster.Grid {
	g := raster.Grid{Rows: m.Rows, Cols: m.Cols, Pix: make([]int32, len(m.Labels))}
	for i, l := range m.Labels {
		g.Pix[i] = int32(l)
	}
	return g
}

// Run computes the connected components of src.
//
// Parameters:
//   - src: Value grid; typically an edge mask but any integer grid works.
//   - opts: Connectivity and background handling, see Options.
//
// Returns:
//   - Map: Dense ids in first-encounter raster order.
//   - int: Number of components (the background is counted unless
//     opts.SkipBackground is set).
//   - error: A ConfigError for a malformed grid or a connectivity other than
//     4 or 8.
func Run(src raster.Grid, opts Options) (Map, int, error) {
	const op = "label.Run"
	if err := src.Validate(); err != nil {
		return Map{}, 0, raster.Configf(op, err)
	}
	if err := opts.Connectivity.Validate(); err != nil {
		return Map{}, 0, err
	}

	prov, forest := firstPass(src, opts.Connectivity)
	resolve(prov, forest, src.Rows, src.Cols, opts.Parallel)

	var skip func(i int) bool
	if opts.SkipBackground {
		skip = func(i int) bool { return src.Pix[i] == opts.Background }
	}
	m := compact(prov, src, forest.Len(), skip)
	if opts.SkipBackground {
		m.Values[0] = opts.Background
	}

	count := len(m.Values)
	if m.Reserved {
		count--
	}
	return m, count, nil
}

// causal neighbours already visited by a row-major scan, as (dy, dx).
var (
	causal4 = [][2]int{{0, -1}, {-1, 0}}
	causal8 = [][2]int{{0, -1}, {-1, 0}, {-1, -1}, {-1, 1}}
)

// firstPass assigns provisional labels in raster order and records
// equivalences between them.
func firstPass(src raster.Grid, conn Connectivity) ([]Label, *Forest) {
	prov := make([]Label, len(src.Pix))
	forest := NewForest(len(src.Pix) / 4)

	causal := causal4
	if conn == Eight {
		causal = causal8
	}

	var cand [4]Label
	for y := 0; y < src.Rows; y++ {
		for x := 0; x < src.Cols; x++ {
			i := src.Index(y, x)
			v := src.Pix[i]

			n := 0
			for _, d := range causal {
				ny, nx := y+d[0], x+d[1]
				if !src.InBounds(ny, nx) {
					continue
				}
				if j := src.Index(ny, nx); src.Pix[j] == v {
					cand[n] = prov[j]
					n++
				}
			}

			if n == 0 {
				prov[i] = forest.MakeSet()
				continue
			}

			lowest := cand[0]
			for _, l := range cand[1:n] {
				if l < lowest {
					lowest = l
				}
			}
			prov[i] = lowest
			for _, l := range cand[:n] {
				forest.Union(lowest, l)
			}
		}
	}
	return prov, forest
}

// resolve rewrites every provisional label to its representative. The forest
// is read-only here, so the rewrite may be split across row ranges.
func resolve(prov []Label, forest *Forest, rows, cols int, split bool) {
	table := make([]Label, forest.Len())
	for l := range table {
		table[l] = forest.Find(Label(l))
	}

	rewrite := func(start, end int) {
		for i := start * cols; i < end*cols; i++ {
			prov[i] = table[prov[i]]
		}
	}
	if split {
		parallel.Line(rows, rewrite)
		return
	}
	rewrite(0, rows)
}

const unassigned = ^Label(0)

// compact renumbers resolved labels densely in first-encounter raster order.
// Pixels for which skip reports true get id 0, which is then reserved.
// Resolved labels must be below bound.
func compact(resolved []Label, src raster.Grid, bound int, skip func(i int) bool) Map {
	m := Map{
		Rows:     src.Rows,
		Cols:     src.Cols,
		Labels:   make([]Label, len(resolved)),
		Reserved: skip != nil,
	}
	if m.Reserved {
		m.Values = append(m.Values, 0)
	}

	dense := make([]Label, bound)
	for i := range dense {
		dense[i] = unassigned
	}

	for i, r := range resolved {
		if skip != nil && skip(i) {
			continue
		}
		id := dense[r]
		if id == unassigned {
			id = Label(len(m.Values))
			dense[r] = id
			m.Values = append(m.Values, src.Pix[i])
		}
		m.Labels[i] = id
	}
	return m
}
