package grid

import (
	"math"

	"github.com/emberline/ignite/geo"
)

// ExtractByBounds snaps the requested world bounds to integer cell indices
// (floor/ceil with a ±0.5 cell snap), grows the selection by paddingCells on
// every side, and returns a new Grid view with its own transform. The
// returned grid shares no backing memory with g.
func (g *Grid) ExtractByBounds(b geo.Bounds, paddingCells int) *Grid {
	rowF0, colF0 := g.Transform.ToIndexF(b.West, b.North)
	rowF1, colF1 := g.Transform.ToIndexF(b.East, b.South)
	rowMin, rowMax := minMax(rowF0, rowF1)
	colMin, colMax := minMax(colF0, colF1)

	r0 := int(math.Floor(rowMin+0.5)) - paddingCells
	r1 := int(math.Ceil(rowMax-0.5)) + paddingCells
	c0 := int(math.Floor(colMin+0.5)) - paddingCells
	c1 := int(math.Ceil(colMax-0.5)) + paddingCells

	rows := r1 - r0 + 1
	cols := c1 - c0 + 1
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}

	out := New(rows, cols, g.Transform.Translated(r0, c0), g.CRS, g.NoData)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.Set(r, c, g.At(r+r0, c+c0))
		}
	}
	return out
}

func minMax(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
