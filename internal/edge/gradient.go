package edge

import (
	"github.com/ironsheep/edgelabel-mcp/internal/raster"
)

// sobelX responds to intensity increasing left to right.
var sobelX = [3][3]int32{
	{-1, 0, 1},
	{-2, 0, 2},
	{-1, 0, 1},
}

// sobelY responds to intensity increasing top to bottom.
var sobelY = [3][3]int32{
	{-1, -2, -1},
	{0, 0, 0},
	{1, 2, 1},
}

// Gradient computes the horizontal and vertical Sobel derivatives of src.
//
// The grid is treated as if padded by one pixel on every side with copies of
// the nearest row or column (edge replication, not zero padding), so a
// constant grid yields zero gradients everywhere including the border.
//
// Parameters:
//   - src: Input samples, at least 1×1.
//
// Returns:
//   - gx: Horizontal derivative, positive where intensity rises to the right.
//   - gy: Vertical derivative, positive where intensity rises downward.
//   - error: A ConfigError wrapping raster.ErrEmptyGrid or
//     raster.ErrSampleCount for malformed input.
func Gradient(src raster.Grid) (gx, gy raster.Grid, err error) {
	if err := src.Validate(); err != nil {
		return raster.Grid{}, raster.Grid{}, raster.Configf("edge.Gradient", err)
	}

	gx, _ = raster.New(src.Rows, src.Cols)
	gy, _ = raster.New(src.Rows, src.Cols)

	for y := 0; y < src.Rows; y++ {
		for x := 0; x < src.Cols; x++ {
			var sx, sy int32
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := src.Clamped(y+ky, x+kx)
					sx += v * sobelX[ky+1][kx+1]
					sy += v * sobelY[ky+1][kx+1]
				}
			}
			i := src.Index(y, x)
			gx.Pix[i] = sx
			gy.Pix[i] = sy
		}
	}

	return gx, gy, nil
}
