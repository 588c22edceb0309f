package grid

import (
	"github.com/ctessum/geom"

	"github.com/emberline/ignite/geo"
)

// DrawLine rasterizes every segment of line into g using Bresenham's
// algorithm, writing fill at each visited cell. Points outside g's bounds
// are clipped silently, matching the Grid rasterization contract.
func (g *Grid) DrawLine(line geom.LineString, fill float64) {
	for i := 0; i+1 < len(line); i++ {
		for _, rc := range RasterizeSegment(g.Transform, line[i], line[i+1]) {
			g.Set(rc[0], rc[1], fill)
		}
	}
}

// RasterizeSegment returns every (row, col) cell, in order, that Bresenham's
// line algorithm visits walking from p0 to p1 under transform — the same
// cell set DrawLine marks, exposed standalone so callers that need more than
// a fill value (GDT's per-cell source-vertex labels, for one) can walk the
// rasterized line themselves.
func RasterizeSegment(transform geo.Transform, p0, p1 geom.Point) [][2]int {
	r0, c0 := transform.ToIndex(p0.X, p0.Y)
	r1, c1 := transform.ToIndex(p1.X, p1.Y)

	dc := iabs(c1 - c0)
	dr := -iabs(r1 - r0)
	sc := isign(c1 - c0)
	sr := isign(r1 - r0)
	err := dc + dr

	var cells [][2]int
	r, c := r0, c0
	for {
		cells = append(cells, [2]int{r, c})
		if r == r1 && c == c1 {
			return cells
		}
		e2 := 2 * err
		if e2 >= dr {
			err += dr
			c += sc
		}
		if e2 <= dc {
			err += dc
			r += sr
		}
	}
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func isign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
