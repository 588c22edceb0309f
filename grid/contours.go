package grid

import "github.com/emberline/ignite/contour"

// GetContours extracts, for each requested level, the set of world-coordinate
// polylines where g equals that level (marching-squares style). See
// contour.Extract for the algorithm.
func (g *Grid) GetContours(levels []float64) []contour.LevelResult {
	return contour.Extract(g.Data, g.Rows, g.Cols, g.Transform, levels)
}
