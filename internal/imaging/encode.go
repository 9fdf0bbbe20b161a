package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/edgelabel-mcp/internal/raster"
)

// EncodedImage is a PNG rendering ready to embed in a JSON response.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG encodes img as base64 PNG.
func EncodePNG(img image.Image) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return &EncodedImage{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// EncodeGrid renders g as an 8-bit grayscale PNG. Samples outside [0,255]
// saturate.
func EncodeGrid(g raster.Grid) (*EncodedImage, error) {
	return EncodePNG(raster.ToGray(g))
}

// Overlay paints every non-zero pixel of mask onto base in colour c. mask must
// have base's size.
func Overlay(base image.Image, mask raster.Grid, c color.Color) (*image.NRGBA, error) {
	b := base.Bounds()
	if b.Dx() != mask.Cols || b.Dy() != mask.Rows {
		return nil, fmt.Errorf("mask %dx%d does not match image %dx%d", mask.Cols, mask.Rows, b.Dx(), b.Dy())
	}

	layer := image.NewNRGBA(image.Rect(0, 0, mask.Cols, mask.Rows))
	for y := 0; y < mask.Rows; y++ {
		for x := 0; x < mask.Cols; x++ {
			if mask.At(y, x) != 0 {
				layer.Set(x, y, c)
			}
		}
	}
	return imaging.Overlay(base, layer, b.Min, 1.0), nil
}
