package raster

import (
	"image"
	"image/color"
)

// FromImage converts any image to a single-channel grid of 8-bit luminance
// samples in [0,255].
//
// Colour pixels use the fixed-point ITU-R BT.601 weights
//
//	Y = (19595*R + 38469*G + 7472*B) >> 16
//
// whose coefficients sum to 1<<16, so gray inputs convert exactly. Alpha is
// ignored. The image's bounds origin is translated to (0, 0).
func FromImage(img image.Image) (Grid, error) {
	b := img.Bounds()
	g, err := New(b.Dy(), b.Dx())
	if err != nil {
		return Grid{}, err
	}

	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < g.Rows; y++ {
			row := gray.Pix[y*gray.Stride : y*gray.Stride+g.Cols]
			off := y * g.Cols
			for x, v := range row {
				g.Pix[off+x] = int32(v)
			}
		}
		return g, nil
	}

	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			r, gg, bb, _ := img.At(x+b.Min.X, y+b.Min.Y).RGBA()
			g.Pix[y*g.Cols+x] = int32(Luma(uint8(r>>8), uint8(gg>>8), uint8(bb>>8)))
		}
	}
	return g, nil
}

// Luma returns the fixed-point BT.601 luminance of an 8-bit RGB triple.
func Luma(r, g, b uint8) uint8 {
	return uint8((uint32(r)*19595 + uint32(g)*38469 + uint32(b)*7472) >> 16)
}

// ToGray renders the grid as an 8-bit grayscale image. Samples outside
// [0,255] saturate.
func ToGray(g Grid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Cols, g.Rows))
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			img.SetGray(x, y, color.Gray{Y: Saturate8(g.Pix[y*g.Cols+x])})
		}
	}
	return img
}

// Saturate8 clamps v into the 8-bit range.
func Saturate8(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
