package label

// Component summarizes one labelled region.
type Component struct {
	ID     Label `json:"id"`
	Value  int32 `json:"value"`
	Pixels int   `json:"pixels"`

	// Bounding box, inclusive on all sides.
	MinX int `json:"min_x"`
	MinY int `json:"min_y"`
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`

	CentroidX float64 `json:"centroid_x"`
	CentroidY float64 `json:"centroid_y"`
}

// Width returns the horizontal extent of the bounding box.
func (c Component) Width() int { return c.MaxX - c.MinX + 1 }

// Height returns the vertical extent of the bounding box.
func (c Component) Height() int { return c.MaxY - c.MinY + 1 }

// Components returns per-component statistics ordered by id. The reserved
// background id is left out.
func Components(m Map) []Component {
	comps := make([]Component, len(m.Values))
	sumX := make([]int, len(m.Values))
	sumY := make([]int, len(m.Values))
	for id := range comps {
		comps[id] = Component{
			ID:    Label(id),
			Value: m.Values[id],
			MinX:  m.Cols,
			MinY:  m.Rows,
			MaxX:  -1,
			MaxY:  -1,
		}
	}

	for y := 0; y < m.Rows; y++ {
		for x := 0; x < m.Cols; x++ {
			id := m.Labels[y*m.Cols+x]
			c := &comps[id]
			c.Pixels++
			sumX[id] += x
			sumY[id] += y
			if x < c.MinX {
				c.MinX = x
			}
			if x > c.MaxX {
				c.MaxX = x
			}
			if y < c.MinY {
				c.MinY = y
			}
			if y > c.MaxY {
				c.MaxY = y
			}
		}
	}

	for id := range comps {
		if n := comps[id].Pixels; n > 0 {
			comps[id].CentroidX = float64(sumX[id]) / float64(n)
			comps[id].CentroidY = float64(sumY[id]) / float64(n)
		}
	}

	if m.Reserved {
		return comps[1:]
	}
	return comps
}
