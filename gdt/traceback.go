package gdt

import "github.com/ctessum/sparse"

// Allocation packages res.SourceIndex as a dense array shaped
// (res.Cost.Rows, res.Cost.Cols), matching the teacher's own convention of
// carrying per-cell integer labels in a sparse.DenseArray even when the
// array holds no actual zeros to sparsify. Cell (row, col) holds the index
// of the source vertex its geodesic path traces back to, or -1 if
// unreached.
func Allocation(res *Result) *sparse.DenseArray {
	out := sparse.ZerosDense(res.Cost.Rows, res.Cost.Cols)
	for i, v := range res.SourceIndex {
		out.Elements[i] = float64(v)
	}
	return out
}
