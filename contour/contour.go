// Package contour extracts isolines (marching-squares-style) from a dense
// cost field and expresses them as polylines in world coordinates.
package contour

import (
	"sort"

	"github.com/ctessum/geom"
	"github.com/emberline/ignite/geo"
)

// LevelResult holds every connected-component polyline found at one level.
type LevelResult struct {
	Level float64
	Lines []geom.LineString
}

// Extract produces, for each of the (ascending-sorted by caller) levels, the
// set of polylines where the field equals that level. data is a row-major
// rows x cols buffer; transform maps (row, col) to world (x, y).
//
// Polylines are returned in no particular order within a level; they are
// closed (first point equals last) when the isoline forms a loop entirely
// interior to the grid, open otherwise. Duplicate consecutive vertices are
// suppressed.
func Extract(data []float64, rows, cols int, transform geo.Transform, levels []float64) []LevelResult {
	levels = sortedLevels(levels)
	results := make([]LevelResult, len(levels))
	for i, level := range levels {
		segs := marchingSquares(data, rows, cols, level)
		lines := stitch(segs)
		worldLines := make([]geom.LineString, len(lines))
		for j, l := range lines {
			worldLines[j] = toWorld(l, transform)
		}
		results[i] = LevelResult{Level: level, Lines: worldLines}
	}
	return results
}

// point is a sub-cell position expressed in fractional (row, col) raster
// coordinates — e.g. (r, c+0.37) is 37% of the way along the top edge of
// the cell block whose top-left corner is (r, c).
type point struct{ row, col float64 }

type segment struct{ a, b point }

func at(data []float64, cols, r, c int) float64 { return data[r*cols+c] }

// marchingSquares walks every 2x2 block of cell centers and emits the
// segment(s) where the bilinear-on-the-edges field crosses level, using the
// standard 16-case marching-squares table with the average-corner tie break
// for the two saddle cases (5 and 10).
func marchingSquares(data []float64, rows, cols int, level float64) []segment {
	var segs []segment
	for r := 0; r+1 < rows; r++ {
		for c := 0; c+1 < cols; c++ {
			tl := at(data, cols, r, c)
			tr := at(data, cols, r, c+1)
			bl := at(data, cols, r+1, c)
			br := at(data, cols, r+1, c+1)
			if !finite(tl) || !finite(tr) || !finite(bl) || !finite(br) {
				continue
			}

			idx := 0
			if tl > level {
				idx |= 1
			}
			if tr > level {
				idx |= 2
			}
			if br > level {
				idx |= 4
			}
			if bl > level {
				idx |= 8
			}
			if idx == 0 || idx == 15 {
				continue
			}

			top := point{row: float64(r), col: interp(float64(c), float64(c+1), tl, tr, level)}
			right := point{row: interp(float64(r), float64(r+1), tr, br, level), col: float64(c + 1)}
			bottom := point{row: float64(r + 1), col: interp(float64(c), float64(c+1), bl, br, level)}
			left := point{row: interp(float64(r), float64(r+1), tl, bl, level), col: float64(c)}

			switch idx {
			case 1, 14:
				segs = append(segs, segment{left, top})
			case 2, 13:
				segs = append(segs, segment{top, right})
			case 3, 12:
				segs = append(segs, segment{left, right})
			case 4, 11:
				segs = append(segs, segment{right, bottom})
			case 6, 9:
				segs = append(segs, segment{top, bottom})
			case 7, 8:
				segs = append(segs, segment{left, bottom})
			case 5:
				if (tl+tr+bl+br)/4 > level {
					segs = append(segs, segment{left, bottom}, segment{top, right})
				} else {
					segs = append(segs, segment{left, top}, segment{right, bottom})
				}
			case 10:
				if (tl+tr+bl+br)/4 > level {
					segs = append(segs, segment{left, top}, segment{right, bottom})
				} else {
					segs = append(segs, segment{top, right}, segment{left, bottom})
				}
			}
		}
	}
	return segs
}

func interp(a, b, va, vb, level float64) float64 {
	if vb == va {
		return a
	}
	t := (level - va) / (vb - va)
	return a + t*(b-a)
}

func finite(v float64) bool {
	return v == v && v < posInf && v > negInf
}

func toWorld(line []point, transform geo.Transform) geom.LineString {
	out := make(geom.LineString, len(line))
	for i, p := range line {
		x, y := transform.ToWorldF(p.row, p.col)
		out[i] = geom.Point{X: x, Y: y}
	}
	return out
}

// sortedLevels returns a copy of levels sorted ascending, since the path
// generator relies on ascending level order (§4.5 step 7).
func sortedLevels(levels []float64) []float64 {
	out := append([]float64(nil), levels...)
	sort.Float64s(out)
	return out
}
