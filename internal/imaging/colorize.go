package imaging

import (
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/edgelabel-mcp/internal/label"
)

// goldenAngle spreads consecutive hues as far apart as possible.
const goldenAngle = 137.50776405

// LabelColor returns the display colour of component id. Colours depend only
// on id, so repeated runs render identically.
func LabelColor(id label.Label) color.RGBA {
	h := math.Mod(float64(id)*goldenAngle, 360)
	r, g, b := colorful.Hsv(h, 0.65, 0.95).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Colorize renders a label map with one colour per component. The reserved
// background id, when present, is black.
func Colorize(m label.Map) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Cols, m.Rows))
	black := color.RGBA{A: 255}
	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			id := m.At(y, x)
			if m.Reserved && id == 0 {
				img.SetRGBA(x, y, black)
				continue
			}
			img.SetRGBA(x, y, LabelColor(id))
		}
	}
	return img
}

// MeanColors returns the average source colour of every component as
// "#rrggbb", indexed by id. src must have the map's size.
func MeanColors(src image.Image, m label.Map) []string {
	n := len(m.Values)
	sums := make([][3]float64, n)
	counts := make([]int, n)

	b := src.Bounds()
	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			id := m.At(y, x)
			c, _ := colorful.MakeColor(src.At(b.Min.X+x, b.Min.Y+y))
			sums[id][0] += c.R
			sums[id][1] += c.G
			sums[id][2] += c.B
			counts[id]++
		}
	}

	out := make([]string, n)
	for id := range out {
		if counts[id] == 0 {
			continue
		}
		k := float64(counts[id])
		out[id] = colorful.Color{R: sums[id][0] / k, G: sums[id][1] / k, B: sums[id][2] / k}.Hex()
	}
	return out
}
