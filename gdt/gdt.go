// Package gdt computes the geodesic distance transform of a digital
// elevation model from a seed polyline: the cost of the cheapest 3D path
// from any source cell to every other reachable cell, where the cost of
// stepping between adjacent cells combines planar run with elevation rise
// (§4.3).
package gdt

import (
	"math"

	"github.com/ctessum/geom"

	"github.com/emberline/ignite/grid"
	"github.com/emberline/ignite/heap"
)

// offset is one entry of the neighborhood kernel: the (dRow, dCol) step and
// its squared planar distance in world units, scaled by the cell resolution.
type offset struct {
	dRow, dCol int
	planarSq   float64
}

// neighborhood builds every (dRow, dCol) offset with max(|dRow|,|dCol|) <= k,
// excluding the origin, paired with its squared planar run scaled by s (the
// cell resolution). Offsets are ordered row-major so iteration is
// deterministic across runs.
func neighborhood(k int, s float64) []offset {
	offs := make([]offset, 0, (2*k+1)*(2*k+1)-1)
	for dr := -k; dr <= k; dr++ {
		for dc := -k; dc <= k; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			run := s * math.Hypot(float64(dr), float64(dc))
			offs = append(offs, offset{dRow: dr, dCol: dc, planarSq: run * run})
		}
	}
	return offs
}

// Compute runs Dijkstra's algorithm over dem starting from every cell
// touched by source, returning a cost grid the same shape as dem where each
// cell holds the geodesic distance (3D path length) from the nearest source
// cell. Cells unreachable from any source cell (because every path to them
// is blocked by a dem.NoData cell) are left at +Inf.
//
// Edge weight between adjacent cells i, j is
// sqrt((s*run)^2 + (z_multiplier*dz)^2), where s is the cell resolution, run
// is the planar offset in cells, and dz is the unscaled elevation difference
// between i and j.
func Compute(dem *grid.Grid, source geom.LineString, opts ...Option) (*grid.Grid, error) {
	result, _, _, err := compute(dem, source, opts...)
	return result, err
}

// Result holds the optional traceback output of a Compute call made with
// WithTraceback: for every reachable cell, the flat index of its parent in
// the Dijkstra tree, or -1 for source cells and cells never reached.
type Result struct {
	// Cost is the geodesic distance grid, identical to Compute's return.
	Cost *grid.Grid
	// Parent[i] is the flat index, in Cost's row-major buffer, of the cell
	// that relaxed cell i, or -1 if i is a source cell or was never reached.
	Parent []int
	// SourceIndex[i] is the index, into the source LineString passed to
	// ComputeWithTraceback, of the seed cell the Dijkstra tree traces i back
	// to, or -1 if i was never reached. A seed cell rasterized from segment
	// source[j]-source[j+1] is labeled j (its first endpoint), so this is a
	// per-segment label along a multi-cell source line, not strictly a
	// nearest-vertex label. Allocation packages this as a dense array for
	// callers that want the historical allocation-style output (§4.3).
	SourceIndex []int
}

// ComputeWithTraceback is Compute plus the per-cell Dijkstra-tree parent
// pointers (§4.3's "historical allocation-style variant"), letting a caller
// reconstruct the cheapest path back to the nearest source cell from any
// reachable cell. It always behaves as though WithTraceback() were passed,
// regardless of whether the caller included it in opts.
func ComputeWithTraceback(dem *grid.Grid, source geom.LineString, opts ...Option) (*Result, error) {
	opts = append(opts, WithTraceback())
	cost, parent, sourceIdx, err := compute(dem, source, opts...)
	if err != nil {
		return nil, err
	}
	return &Result{Cost: cost, Parent: parent, SourceIndex: sourceIdx}, nil
}

func compute(dem *grid.Grid, source geom.LineString, opts ...Option) (*grid.Grid, []int, []int, error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if err := o.validate(); err != nil {
		return nil, nil, nil, err
	}
	if dem == nil {
		return nil, nil, nil, ErrNilDEM
	}
	if len(source) == 0 {
		return nil, nil, nil, ErrEmptySource
	}

	padded := dem.Pad(o.Padding, math.Inf(1))

	elev := padded.Clone()
	for i, v := range elev.Data {
		if v == padded.NoData || isInf(v) {
			continue
		}
		elev.Data[i] = v * o.ZMultiplier
	}

	cost := grid.New(padded.Rows, padded.Cols, padded.Transform, padded.CRS, math.Inf(1))

	var parent, sourceIdx []int
	if o.Traceback {
		parent = make([]int, padded.Rows*padded.Cols)
		sourceIdx = make([]int, padded.Rows*padded.Cols)
		for i := range parent {
			parent[i] = -1
			sourceIdx[i] = -1
		}
	}

	s := math.Abs(dem.Transform.ResX)
	offs := neighborhood(o.NeighborhoodSize, s)

	pq := heap.NewIndexed(padded.Rows * padded.Cols)
	flat := func(row, col int) int { return row*padded.Cols + col }

	seed := func(row, col, vertex int) {
		if !padded.InBounds(row, col) {
			return
		}
		if padded.At(row, col) == padded.NoData {
			return
		}
		idx := flat(row, col)
		if cost.Data[idx] > 0 {
			cost.Data[idx] = 0
			pq.Push(0, idx)
			if sourceIdx != nil {
				sourceIdx[idx] = vertex
			}
		}
	}

	if len(source) == 1 {
		row, col := padded.Transform.ToIndex(source[0].X, source[0].Y)
		seed(row, col, 0)
	}
	for i := 0; i+1 < len(source); i++ {
		for _, rc := range grid.RasterizeSegment(padded.Transform, source[i], source[i+1]) {
			seed(rc[0], rc[1], i)
		}
	}

	for !pq.IsEmpty() {
		e := pq.Pop()
		idx := e.Value
		if e.Key > cost.Data[idx] {
			continue // stale entry: a cheaper path already relaxed this cell
		}
		row, col := idx/padded.Cols, idx%padded.Cols
		rowElev := elev.Data[idx]

		for _, off := range offs {
			nr, nc := row+off.dRow, col+off.dCol
			if !padded.InBounds(nr, nc) {
				continue
			}
			if padded.At(nr, nc) == padded.NoData {
				continue
			}
			nIdx := flat(nr, nc)
			dz := elev.Data[nIdx] - rowElev
			weight := math.Sqrt(off.planarSq + dz*dz)
			alt := cost.Data[idx] + weight
			if alt < cost.Data[nIdx] {
				cost.Data[nIdx] = alt
				if parent != nil {
					parent[nIdx] = idx
					sourceIdx[nIdx] = sourceIdx[idx]
				}
				pq.Push(alt, nIdx)
			}
		}
	}

	unpadded := cost.Pad(-o.Padding, math.Inf(1))

	var outParent, outSourceIdx []int
	if parent != nil {
		outParent = unpadParent(parent, padded.Rows, padded.Cols, o.Padding)
		outSourceIdx = unpadFlat(sourceIdx, padded.Rows, padded.Cols, o.Padding)
	}

	return unpadded, outParent, outSourceIdx, nil
}

// unpadFlat drops the padding border from a flat per-cell label array whose
// values are not themselves flat indices (so, unlike unpadParent, no
// re-indexing translation is needed beyond dropping the border).
func unpadFlat(vals []int, paddedRows, paddedCols, n int) []int {
	rows := paddedRows - 2*n
	cols := paddedCols - 2*n
	out := make([]int, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out[r*cols+c] = vals[(r+n)*paddedCols+(c+n)]
		}
	}
	return out
}

// unpadParent re-indexes the padded parent array onto the unpadded grid's
// flat index space, dropping pointers into cells the unpadded grid no
// longer has and translating surviving ones by the padding offset.
func unpadParent(parent []int, paddedRows, paddedCols, n int) []int {
	rows := paddedRows - 2*n
	cols := paddedCols - 2*n
	out := make([]int, rows*cols)
	for i := range out {
		out[i] = -1
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pIdx := (r+n)*paddedCols + (c + n)
			p := parent[pIdx]
			if p < 0 {
				continue
			}
			pr, pc := p/paddedCols-n, p%paddedCols-n
			if pr < 0 || pr >= rows || pc < 0 || pc >= cols {
				continue // parent fell in the padding; treat as unreachable origin
			}
			out[r*cols+c] = pr*cols + pc
		}
	}
	return out
}

func isInf(v float64) bool { return math.IsInf(v, 0) }
