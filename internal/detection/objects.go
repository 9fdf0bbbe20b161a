package detection

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/ironsheep/edgelabel-mcp/internal/imaging"
	"github.com/ironsheep/edgelabel-mcp/internal/label"
	"github.com/ironsheep/edgelabel-mcp/internal/raster"
)

// Bounds is a bounding box in pixel coordinates, inclusive on all sides.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// Point is a 2D pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Object is one connected run of edge pixels.
type Object struct {
	ID     label.Label `json:"id"`
	Bounds Bounds      `json:"bounds"`

	// Center is the centroid of the object's pixels, rounded.
	Center Point `json:"center"`

	Width  int `json:"width"`
	Height int `json:"height"`

	// Area is the bounding box area; Pixels counts the edge pixels.
	Area   int `json:"area"`
	Pixels int `json:"pixels"`

	// Color is the mean source colour under the object's pixels as #rrggbb.
	Color string `json:"color,omitempty"`
}

// ObjectsResult contains the objects found in an image.
type ObjectsResult struct {
	// Objects is sorted by area, largest first.
	Objects []Object `json:"objects"`
	Count   int      `json:"count"`

	// EdgePixels is the total number of edge pixels in the mask.
	EdgePixels int `json:"edge_pixels"`
}

// DetectObjects runs the detection pipeline on img and returns one Object per
// connected edge component whose bounding box area is at least p.MinArea.
//
// Parameters:
//   - img: Source image; colour images are converted to luminance.
//   - p: Pipeline settings, see DefaultParams.
//
// Returns:
//   - *ObjectsResult: Objects sorted by area (largest first), ties by id.
//   - error: A configuration error for invalid thresholds, connectivity or
//     denoise method.
func DetectObjects(img image.Image, p Params) (*ObjectsResult, error) {
	objects, res, err := detectObjects(img, p)
	if err != nil {
		return nil, err
	}
	return &ObjectsResult{
		Objects:    objects,
		Count:      len(objects),
		EdgePixels: res.Edges.Count(255),
	}, nil
}

func detectObjects(img image.Image, p Params) ([]Object, *Result, error) {
	g, err := raster.FromImage(img)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to convert image: %w", err)
	}
	res, err := Run(g, p)
	if err != nil {
		return nil, nil, err
	}

	origin := img.Bounds().Min
	colors := imaging.MeanColors(img, res.Labels)

	objects := make([]Object, 0, res.Count)
	for _, c := range label.Components(res.Labels) {
		o := Object{
			ID: c.ID,
			Bounds: Bounds{
				X1: c.MinX + origin.X,
				Y1: c.MinY + origin.Y,
				X2: c.MaxX + origin.X,
				Y2: c.MaxY + origin.Y,
			},
			Center: Point{
				X: int(math.Round(c.CentroidX)) + origin.X,
				Y: int(math.Round(c.CentroidY)) + origin.Y,
			},
			Width:  c.Width(),
			Height: c.Height(),
			Area:   c.Width() * c.Height(),
			Pixels: c.Pixels,
			Color:  colors[c.ID],
		}
		if o.Area < p.MinArea {
			continue
		}
		objects = append(objects, o)
	}

	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].Area > objects[j].Area
	})
	return objects, res, nil
}
