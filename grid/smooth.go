package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Smooth applies a separable 2D isotropic Gaussian filter of standard
// deviation sigma cells and returns the result as a new Grid; g is
// unmodified. Edge cells fall back to a truncated (renormalized) kernel
// rather than reading past the grid.
func (g *Grid) Smooth(sigma float64) *Grid {
	if sigma <= 0 {
		return g.Clone()
	}
	kernel := gaussianKernel(sigma)
	radius := len(kernel) / 2

	horizontal := New(g.Rows, g.Cols, g.Transform, g.CRS, g.NoData)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			horizontal.Set(r, c, convolve1D(g, r, c, kernel, radius, 0, 1))
		}
	}
	out := New(g.Rows, g.Cols, g.Transform, g.CRS, g.NoData)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			out.Set(r, c, convolve1D(horizontal, r, c, kernel, radius, 1, 0))
		}
	}
	return out
}

// convolve1D applies kernel along the axis given by (dRow, dCol) per step,
// skipping NoData neighbors and renormalizing the kernel weight actually
// used (so edges and barriers don't pull the result toward NoData).
func convolve1D(g *Grid, row, col int, kernel []float64, radius, dRow, dCol int) float64 {
	var sum, weight float64
	for i, k := range kernel {
		offset := i - radius
		r, c := row+offset*dRow, col+offset*dCol
		if !g.InBounds(r, c) {
			continue
		}
		v := g.At(r, c)
		if v == g.NoData {
			continue
		}
		sum += k * v
		weight += k
	}
	if weight == 0 {
		return g.At(row, col)
	}
	return sum / weight
}

func gaussianKernel(sigma float64) []float64 {
	radius := int(math.Ceil(3 * sigma))
	if radius < 1 {
		radius = 1
	}
	dist := distuv.Normal{Mu: 0, Sigma: sigma}
	kernel := make([]float64, 2*radius+1)
	for i := range kernel {
		x := float64(i - radius)
		kernel[i] = dist.Prob(x)
	}
	sum := floats.Sum(kernel)
	floats.Scale(1/sum, kernel)
	return kernel
}
