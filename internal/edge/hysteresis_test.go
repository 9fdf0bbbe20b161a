package edge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/edgelabel-mcp/internal/raster"
)

// thinWith returns a 5×7 zero grid with the given (y, x) → value samples set.
func thinWith(t *testing.T, samples map[[2]int]int32) raster.Grid {
	t.Helper()
	g := filled(t, 5, 7, 0)
	for p, v := range samples {
		g.Set(p[0], p[1], v)
	}
	return g
}

func TestHysteresis_WeakWithoutDirectSupport(t *testing.T) {
	thin := thinWith(t, map[[2]int]int32{
		{2, 2}: 60,
		{2, 4}: 95,
	})

	out, err := Hysteresis(thin, 30, 90, PropagationNeighborhood)
	require.NoError(t, err)

	assert.Equal(t, NonEdge, out.At(2, 2), "weak pixel two steps from strong")
	assert.Equal(t, Edge, out.At(2, 4))
	assert.Equal(t, 1, out.Count(Edge))
}

func TestHysteresis_WeakChain(t *testing.T) {
	thin := thinWith(t, map[[2]int]int32{
		{2, 2}: 60,
		{2, 3}: 60,
		{2, 4}: 95,
	})

	t.Run("neighborhood", func(t *testing.T) {
		out, err := Hysteresis(thin, 30, 90, PropagationNeighborhood)
		require.NoError(t, err)
		assert.Equal(t, NonEdge, out.At(2, 2))
		assert.Equal(t, Edge, out.At(2, 3))
		assert.Equal(t, Edge, out.At(2, 4))
	})

	t.Run("transitive", func(t *testing.T) {
		out, err := Hysteresis(thin, 30, 90, PropagationTransitive)
		require.NoError(t, err)
		assert.Equal(t, Edge, out.At(2, 2))
		assert.Equal(t, Edge, out.At(2, 3))
		assert.Equal(t, Edge, out.At(2, 4))
		assert.Equal(t, 3, out.Count(Edge))
	})
}

func TestHysteresis_ThresholdBoundaries(t *testing.T) {
	tests := []struct {
		name string
		weak int32
		want int32
	}{
		{"at low", 30, Edge},
		{"below low", 29, NonEdge},
		{"just below high", 89, Edge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			thin := thinWith(t, map[[2]int]int32{
				{2, 2}: tt.weak,
				{2, 3}: 90,
			})
			out, err := Hysteresis(thin, 30, 90, PropagationNeighborhood)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.At(2, 2))
			assert.Equal(t, Edge, out.At(2, 3), "value equal to high is strong")
		})
	}
}

func TestHysteresis_EqualThresholds(t *testing.T) {
	thin := thinWith(t, map[[2]int]int32{
		{1, 1}: 60,
		{3, 5}: 59,
	})

	out, err := Hysteresis(thin, 60, 60, PropagationNeighborhood)
	require.NoError(t, err)
	assert.Equal(t, Edge, out.At(1, 1))
	assert.Equal(t, NonEdge, out.At(3, 5))
}

func TestHysteresis_BorderAlwaysNonEdge(t *testing.T) {
	thin := filled(t, 5, 7, 200)

	for _, p := range []Propagation{PropagationNeighborhood, PropagationTransitive} {
		out, err := Hysteresis(thin, 30, 90, p)
		require.NoError(t, err)

		for y := 0; y < 5; y++ {
			for x := 0; x < 7; x++ {
				interior := y > 0 && y < 4 && x > 0 && x < 6
				want := NonEdge
				if interior {
					want = Edge
				}
				assert.Equal(t, want, out.At(y, x), "%s at (%d,%d)", p, y, x)
			}
		}
	}
}

func TestHysteresis_OutputIsBinary(t *testing.T) {
	thin := mustGrid(t, [][]int32{
		{0, 0, 0, 0, 0},
		{0, 12, 45, 91, 0},
		{0, 200, 31, 7, 0},
		{0, 0, 0, 0, 0},
	})

	out, err := Hysteresis(thin, 30, 90, PropagationNeighborhood)
	require.NoError(t, err)
	assert.Equal(t, len(out.Pix), out.Count(Edge)+out.Count(NonEdge))
}

func TestHysteresis_Errors(t *testing.T) {
	thin := filled(t, 3, 3, 0)

	_, err := Hysteresis(thin, 91, 90, PropagationNeighborhood)
	assert.ErrorIs(t, err, ErrThresholdOrder)
	assert.ErrorIs(t, err, raster.ErrConfig)

	_, err = Hysteresis(thin, 30, 90, Propagation(5))
	assert.ErrorIs(t, err, ErrPropagation)

	_, err = Hysteresis(raster.Grid{}, 30, 90, PropagationNeighborhood)
	assert.ErrorIs(t, err, raster.ErrEmptyGrid)
}

func TestParsePropagation(t *testing.T) {
	for in, want := range map[string]Propagation{
		"":             PropagationNeighborhood,
		"neighborhood": PropagationNeighborhood,
		"Transitive":   PropagationTransitive,
	} {
		got, err := ParsePropagation(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParsePropagation("flood")
	assert.ErrorIs(t, err, ErrPropagation)
	assert.ErrorIs(t, err, raster.ErrConfig)
}
