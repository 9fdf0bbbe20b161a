package edge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/edgelabel-mcp/internal/raster"
)

func TestDetectEdges_ConstantGrid(t *testing.T) {
	for _, mode := range []Mode{ModeL1, ModeL2} {
		out, err := DetectEdges(filled(t, 8, 9, 120), 30, 90, mode)
		require.NoError(t, err)
		assert.Equal(t, 72, out.Count(NonEdge), "mode %s", mode)
	}
}

func TestDetectEdges_VerticalStep(t *testing.T) {
	src := verticalStep(t, 6, 8, 4, 0, 200)

	// The line is deliberately two pixels wide, not one. Both columns beside
	// the step reach 255 and tie under suppression, and ties are kept. Do not
	// "thin" this expectation to a single column.
	want := [][]int32{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 255, 255, 0, 0, 0},
		{0, 0, 0, 255, 255, 0, 0, 0},
		{0, 0, 0, 255, 255, 0, 0, 0},
		{0, 0, 0, 255, 255, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
	}

	for _, mode := range []Mode{ModeL1, ModeL2} {
		out, err := DetectEdges(src, 30, 90, mode)
		require.NoError(t, err)
		assert.Equal(t, want, out.Rows2D(), "mode %s", mode)
	}
}

func TestDetectEdges_Deterministic(t *testing.T) {
	src := mustGrid(t, [][]int32{
		{0, 10, 40, 90, 160},
		{5, 30, 80, 150, 220},
		{20, 60, 130, 200, 250},
		{40, 100, 170, 240, 255},
		{70, 140, 210, 250, 255},
	})

	first, err := DetectEdges(src, 20, 60, ModeL2)
	require.NoError(t, err)
	second, err := DetectEdges(src, 20, 60, ModeL2)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDetectEdges_TinyGrids(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {1, 5}, {2, 2}, {5, 2}} {
		src := verticalStep(t, shape[0], shape[1], shape[1]/2, 0, 255)
		out, err := DetectEdges(src, 30, 90, ModeL2)
		require.NoError(t, err)
		assert.Equal(t, shape[0]*shape[1], out.Count(NonEdge), "shape %v has no interior", shape)
	}
}

func TestDetectEdges_ThresholdOrder(t *testing.T) {
	_, err := DetectEdges(filled(t, 4, 4, 0), 100, 50, ModeL2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrThresholdOrder)
	assert.ErrorIs(t, err, raster.ErrConfig)
}

func TestRun_Stages(t *testing.T) {
	src := verticalStep(t, 5, 6, 3, 0, 100)

	st, err := Run(src, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, int32(400), st.Gx.At(2, 2))
	assert.Equal(t, int32(400), st.Gx.At(2, 3))
	assert.Equal(t, 30, st.Gy.Count(0))
	assert.Equal(t, int32(255), st.Magnitude.At(0, 2), "magnitude keeps border values")
	assert.Equal(t, int32(0), st.Suppressed.At(0, 2), "suppression zeroes the border")
	assert.Equal(t, int32(255), st.Suppressed.At(2, 3))
	assert.Equal(t, Edge, st.Edges.At(2, 2))
	assert.Equal(t, Edge, st.Edges.At(2, 3))
	assert.Equal(t, NonEdge, st.Edges.At(2, 1))
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr error
	}{
		{"defaults", func(*Options) {}, nil},
		{"equal thresholds", func(o *Options) { o.Low, o.High = 50, 50 }, nil},
		{"inverted thresholds", func(o *Options) { o.Low, o.High = 51, 50 }, ErrThresholdOrder},
		{"bad mode", func(o *Options) { o.Mode = Mode(3) }, ErrMode},
		{"bad propagation", func(o *Options) { o.Propagation = Propagation(3) }, ErrPropagation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, raster.ErrConfig)
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 30, opts.Low)
	assert.Equal(t, 90, opts.High)
	assert.Equal(t, ModeL2, opts.Mode)
	assert.Equal(t, PropagationNeighborhood, opts.Propagation)
}
