package grid

// Pad extends (n > 0) or crops (n < 0) every side of g by n cells, filling
// any newly-created cells with fill. g's NoData sentinel is preserved on the
// result, so barrier cells copied from g are still recognized as such; fill
// is purely the value written into the new border, distinct from NoData
// (GDT pads with +Inf while keeping the DEM's own NoData value intact).
// The transform's origin moves by n cells along each axis so world
// coordinates of surviving cells are unchanged.
func (g *Grid) Pad(n int, fill float64) *Grid {
	if n == 0 {
		return g.Clone()
	}
	rows := g.Rows + 2*n
	cols := g.Cols + 2*n
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	out := New(rows, cols, g.Transform.Translated(-n, -n), g.CRS, g.NoData)
	out.Fill(fill)
	for r := 0; r < out.Rows; r++ {
		for c := 0; c < out.Cols; c++ {
			srcR, srcC := r-n, c-n
			if g.InBounds(srcR, srcC) {
				out.Set(r, c, g.At(srcR, srcC))
			}
		}
	}
	return out
}
