// Package raster defines the integer pixel grid shared by the edge and label
// packages, plus conversions between grids and standard library images.
//
// A Grid is stored row-major in a flat slice: the sample at row y, column x
// lives at Pix[y*Cols+x]. Operations in this module never mutate a grid they
// receive; every stage allocates its own output of the same shape.
package raster

// Grid is a rows×cols grid of signed integer samples.
//
// int32 is wide enough for 8- and 16-bit intensities, signed gradient
// responses and provisional label values alike.
type Grid struct {
	Rows int
	Cols int
	Pix  []int32
}

// New allocates a zero-filled grid. It returns a ConfigError wrapping
// ErrEmptyGrid when either dimension is not positive.
func New(rows, cols int) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, Configf("raster.New", ErrEmptyGrid)
	}
	return Grid{Rows: rows, Cols: cols, Pix: make([]int32, rows*cols)}, nil
}

// FromRows builds a grid from a non-empty rectangular 2D slice, copying the
// values.
func FromRows(rows [][]int32) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, Configf("raster.FromRows", ErrEmptyGrid)
	}
	h, w := len(rows), len(rows[0])
	g := Grid{Rows: h, Cols: w, Pix: make([]int32, 0, h*w)}
	for _, row := range rows {
		if len(row) != w {
			return Grid{}, Configf("raster.FromRows", ErrNonRectangular)
		}
		g.Pix = append(g.Pix, row...)
	}
	return g, nil
}

// Validate checks that the grid has positive dimensions and a matching
// sample count.
func (g Grid) Validate() error {
	if g.Rows <= 0 || g.Cols <= 0 {
		return ErrEmptyGrid
	}
	if len(g.Pix) != g.Rows*g.Cols {
		return ErrSampleCount
	}
	return nil
}

// SameShape reports whether g and o have identical dimensions.
func (g Grid) SameShape(o Grid) bool {
	return g.Rows == o.Rows && g.Cols == o.Cols
}

// Index maps (y, x) to the row-major offset into Pix.
func (g Grid) Index(y, x int) int {
	return y*g.Cols + x
}

// InBounds reports whether (y, x) lies inside the grid.
func (g Grid) InBounds(y, x int) bool {
	return y >= 0 && y < g.Rows && x >= 0 && x < g.Cols
}

// At returns the sample at row y, column x. No bounds checking beyond the
// slice's own is performed.
func (g Grid) At(y, x int) int32 {
	return g.Pix[y*g.Cols+x]
}

// Clamped returns the sample at (y, x) after clamping both coordinates into
// the grid, which is equivalent to reading a grid padded by edge replication.
func (g Grid) Clamped(y, x int) int32 {
	return g.Pix[clamp(y, 0, g.Rows-1)*g.Cols+clamp(x, 0, g.Cols-1)]
}

// Set stores v at row y, column x.
func (g Grid) Set(y, x int, v int32) {
	g.Pix[y*g.Cols+x] = v
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	pix := make([]int32, len(g.Pix))
	copy(pix, g.Pix)
	return Grid{Rows: g.Rows, Cols: g.Cols, Pix: pix}
}

// Rows2D returns the grid as a freshly allocated 2D slice, row by row.
func (g Grid) Rows2D() [][]int32 {
	out := make([][]int32, g.Rows)
	for y := range out {
		out[y] = make([]int32, g.Cols)
		copy(out[y], g.Pix[y*g.Cols:(y+1)*g.Cols])
	}
	return out
}

// Count returns how many samples equal v.
func (g Grid) Count(v int32) int {
	n := 0
	for _, p := range g.Pix {
		if p == v {
			n++
		}
	}
	return n
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
