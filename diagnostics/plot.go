package diagnostics

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"

	"github.com/emberline/ignite/grid"
)

// RenderCostGrid renders g as a heatmap, for visually inspecting a GDT cost
// field while debugging a firing technique. Cells at +Inf (unreached) are
// drawn at the palette's hottest stop rather than breaking the color scale.
func RenderCostGrid(g *grid.Grid) (*plot.Plot, error) {
	if g == nil {
		return nil, fmt.Errorf("diagnostics: RenderCostGrid: grid is nil")
	}

	p, err := plot.New()
	if err != nil {
		return nil, fmt.Errorf("diagnostics: RenderCostGrid: %v", err)
	}
	p.Title.Text = "geodesic cost"

	hm := plotter.NewHeatMap(costGridXYZ{g}, coolWarmPalette(32))
	p.Add(hm)
	return p, nil
}

// costGridXYZ adapts a *grid.Grid to plotter.GridXYZ, row-major with row 0
// at the grid's north edge.
type costGridXYZ struct {
	g *grid.Grid
}

func (c costGridXYZ) Dims() (cols, rows int) { return c.g.Cols, c.g.Rows }

func (c costGridXYZ) Z(col, row int) float64 {
	v := c.g.At(row, col)
	if math.IsInf(v, 1) {
		return maxFinite(c.g)
	}
	if v == c.g.NoData {
		return math.NaN()
	}
	return v
}

func (c costGridXYZ) X(col int) float64 {
	x, _ := c.g.Transform.ToWorld(0, col)
	return x
}

func (c costGridXYZ) Y(row int) float64 {
	_, y := c.g.Transform.ToWorld(row, 0)
	return y
}

func maxFinite(g *grid.Grid) float64 {
	max := 0.0
	for _, v := range g.Data {
		if v == g.NoData || math.IsInf(v, 0) {
			continue
		}
		if v > max {
			max = v
		}
	}
	return max
}

// coolWarmPalette builds an n-step blue-to-red palette without depending on
// a fixed-palette submodule, since the pack's captured gonum/plot snapshot
// predates the palette/moreland package.
func coolWarmPalette(n int) palette.Palette {
	colors := make([]color.Color, n)
	for i := range colors {
		t := float64(i) / float64(n-1)
		colors[i] = color.RGBA{
			R: uint8(255 * t),
			G: uint8(255 * (1 - math.Abs(2*t-1))),
			B: uint8(255 * (1 - t)),
			A: 255,
		}
	}
	return simplePalette(colors)
}

type simplePalette []color.Color

func (s simplePalette) Colors() []color.Color { return s }
