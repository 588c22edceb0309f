// Package grid implements the raster type shared by the geodesic distance
// transform and the contour extractor: a dense float64 buffer addressed by
// (row, col), paired with an affine geo.Transform and a CRS code.
package grid

import (
	"fmt"

	"github.com/emberline/ignite/geo"
)

// Grid is a dense row-major raster. It owns Data; nothing else holds a
// reference to the same backing array once constructed.
type Grid struct {
	Rows, Cols int
	Data       []float64
	Transform  geo.Transform
	CRS        int
	// NoData is the sentinel elevation (or cost) a DEM provider declares for
	// missing cells. Cells equal to NoData are treated as barriers by GDT.
	NoData float64
}

// New allocates a Rows x Cols grid with every cell set to noData. noData is
// also recorded as the grid's NoData sentinel; callers that need a zeroed
// grid with a distinct NoData value should follow New with Fill(0).
func New(rows, cols int, transform geo.Transform, crs int, noData float64) *Grid {
	data := make([]float64, rows*cols)
	if noData != 0 {
		for i := range data {
			data[i] = noData
		}
	}
	return &Grid{Rows: rows, Cols: cols, Data: data, Transform: transform, CRS: crs, NoData: noData}
}

// Fill overwrites every cell of g with value; it does not change g.NoData.
func (g *Grid) Fill(value float64) {
	for i := range g.Data {
		g.Data[i] = value
	}
}

// NewFromData wraps an existing row-major buffer; it panics if the buffer's
// length does not match rows*cols, since that would violate the Grid
// invariant for the lifetime of the value.
func NewFromData(rows, cols int, data []float64, transform geo.Transform, crs int, noData float64) *Grid {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("grid: data length %d does not match %dx%d", len(data), rows, cols))
	}
	return &Grid{Rows: rows, Cols: cols, Data: data, Transform: transform, CRS: crs, NoData: noData}
}

func (g *Grid) index(row, col int) int { return row*g.Cols + col }

// InBounds reports whether (row, col) addresses a cell of g.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the value at (row, col). Out-of-range cells read as NoData,
// matching the DEM provider contract in the external-interfaces section.
func (g *Grid) At(row, col int) float64 {
	if !g.InBounds(row, col) {
		return g.NoData
	}
	return g.Data[g.index(row, col)]
}

// Set writes value at (row, col); out-of-range writes are silently dropped
// per the rasterization contract ("out-of-range cells are clipped silently").
func (g *Grid) Set(row, col int, value float64) {
	if !g.InBounds(row, col) {
		return
	}
	g.Data[g.index(row, col)] = value
}

// Bounds derives the world-space extent of g from its transform and shape.
func (g *Grid) Bounds() geo.Bounds {
	x0, y0 := g.Transform.OriginX, g.Transform.OriginY
	x1 := x0 + float64(g.Cols)*g.Transform.ResX
	y1 := y0 + float64(g.Rows)*g.Transform.ResY
	west, east := x0, x1
	if west > east {
		west, east = east, west
	}
	south, north := y0, y1
	if south > north {
		south, north = north, south
	}
	return geo.NewBounds(west, south, east, north)
}

// Max returns the largest finite value in the grid, ignoring NoData cells.
// Used by the path generator to bound its level-set schedule (§4.5 step 5).
func (g *Grid) Max() float64 {
	max := negInf
	for _, v := range g.Data {
		if v == g.NoData || isInf(v) {
			continue
		}
		if v > max {
			max = v
		}
	}
	return max
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	data := make([]float64, len(g.Data))
	copy(data, g.Data)
	return &Grid{Rows: g.Rows, Cols: g.Cols, Data: data, Transform: g.Transform, CRS: g.CRS, NoData: g.NoData}
}
