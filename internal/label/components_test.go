package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponents_Statistics(t *testing.T) {
	src := mustGrid(t, [][]int32{
		{0, 0, 0, 0, 0, 0},
		{0, 1, 1, 0, 0, 0},
		{0, 1, 1, 0, 2, 0},
		{0, 0, 0, 0, 2, 0},
	})

	m, count, err := Run(src, opts(Four, true))
	require.NoError(t, err)
	require.Equal(t, 2, count)

	comps := Components(m)
	require.Len(t, comps, 2)

	square := comps[0]
	assert.Equal(t, Label(1), square.ID)
	assert.Equal(t, int32(1), square.Value)
	assert.Equal(t, 4, square.Pixels)
	assert.Equal(t, [4]int{1, 1, 2, 2}, [4]int{square.MinX, square.MinY, square.MaxX, square.MaxY})
	assert.Equal(t, 2, square.Width())
	assert.Equal(t, 2, square.Height())
	assert.InDelta(t, 1.5, square.CentroidX, 1e-9)
	assert.InDelta(t, 1.5, square.CentroidY, 1e-9)

	bar := comps[1]
	assert.Equal(t, Label(2), bar.ID)
	assert.Equal(t, int32(2), bar.Value)
	assert.Equal(t, 2, bar.Pixels)
	assert.Equal(t, 1, bar.Width())
	assert.Equal(t, 2, bar.Height())
	assert.InDelta(t, 4.0, bar.CentroidX, 1e-9)
	assert.InDelta(t, 2.5, bar.CentroidY, 1e-9)
}

func TestComponents_BackgroundCounted(t *testing.T) {
	src := mustGrid(t, [][]int32{
		{0, 0, 0},
		{0, 3, 0},
	})

	m, count, err := Run(src, DefaultOptions())
	require.NoError(t, err)

	comps := Components(m)
	require.Len(t, comps, count)
	assert.Equal(t, 5, comps[0].Pixels)
	assert.Equal(t, int32(0), comps[0].Value)
	assert.Equal(t, 1, comps[1].Pixels)
}
