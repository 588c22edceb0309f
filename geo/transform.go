// Package geo holds the small set of coordinate primitives shared by the
// grid, GDT and contour packages: an affine raster transform and a
// world-space bounding box. Nothing here knows about cell values or a
// coordinate reference system beyond carrying its code.
package geo

import "math"

// Transform maps (row, col) raster indices to (x, y) world coordinates and
// back, for a north-up raster: ResY is negative, matching the ModelPixelScale
// convention used by GeoTIFF-style grids (see Design Notes for the chosen
// sign convention).
type Transform struct {
	// OriginX, OriginY are the world coordinates of the upper-left corner
	// of cell (0, 0).
	OriginX, OriginY float64
	// ResX, ResY are the cell width and height. ResY is negative for a
	// north-up raster (row index increases southward while Y decreases).
	ResX, ResY float64
}

// NewTransform builds a Transform from an upper-left origin and signed
// resolutions.
func NewTransform(originX, originY, resX, resY float64) Transform {
	return Transform{OriginX: originX, OriginY: originY, ResX: resX, ResY: resY}
}

// ToWorld converts a (row, col) cell index, addressed at the cell center,
// to (x, y) world coordinates.
func (t Transform) ToWorld(row, col int) (x, y float64) {
	x = t.OriginX + (float64(col)+0.5)*t.ResX
	y = t.OriginY + (float64(row)+0.5)*t.ResY
	return x, y
}

// ToIndex converts a world (x, y) coordinate to the enclosing (row, col)
// cell index: the origin is the cell's upper-left corner (unlike ToWorld's
// cell-center convention), so the enclosing cell is found by flooring the
// offset directly, with no half-cell adjustment.
func (t Transform) ToIndex(x, y float64) (row, col int) {
	col = int(math.Floor((x - t.OriginX) / t.ResX))
	row = int(math.Floor((y - t.OriginY) / t.ResY))
	return row, col
}

// ToWorldF converts fractional (row, col) raster coordinates — as produced
// by sub-cell interpolation in the contour extractor — to world (x, y).
// Unlike ToWorld it does not address the cell center: callers pass the
// exact fractional position they want mapped.
func (t Transform) ToWorldF(row, col float64) (x, y float64) {
	x = t.OriginX + col*t.ResX
	y = t.OriginY + row*t.ResY
	return x, y
}

// ToIndexF is like ToIndex but returns fractional indices, useful for
// snapping a requested world bounds to cell edges with ±0.5 rounding.
func (t Transform) ToIndexF(x, y float64) (row, col float64) {
	col = (x - t.OriginX) / t.ResX
	row = (y - t.OriginY) / t.ResY
	return row, col
}

// Translated returns a copy of t whose origin has been shifted by n cells
// along each axis. Used by Grid.Pad to recompute the transform of a grown
// or shrunk raster.
func (t Transform) Translated(rows, cols int) Transform {
	t.OriginX += float64(cols) * t.ResX
	t.OriginY += float64(rows) * t.ResY
	return t
}
