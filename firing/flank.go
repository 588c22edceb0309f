package firing

import (
	"github.com/ctessum/geom"

	"github.com/emberline/ignite/crew"
	"github.com/emberline/ignite/grid"
	"github.com/emberline/ignite/pattern"
)

// Flank fires the two edges parallel to the firing direction. The crew
// splits roughly evenly between the two flanks; on each flank, igniters
// walk from the downwind corner toward the upwind corner, one leg each.
type Flank struct{}

// InitPaths implements Generator.
func (Flank) InitPaths(area FiringArea, dem *grid.Grid, c crew.IgnitionCrew) ([]pattern.Path, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	xmin, xmax, ymin, ymax, centroid, err := alignedFrame(area)
	if err != nil {
		return nil, err
	}

	n := c.Size()
	left := (n + 1) / 2
	right := n - left

	// Downwind-to-upwind direction: x decreases from xmax to xmin.
	leftFlank := toWorld(geom.LineString{{X: xmax, Y: ymin}, {X: xmin, Y: ymin}}, centroid, area.Direction)
	rightFlank := toWorld(geom.LineString{{X: xmax, Y: ymax}, {X: xmin, Y: ymax}}, centroid, area.Direction)

	var tagged []pathTagged
	if left > 0 {
		tagged = append(tagged, splitAcrossCrew(leftFlank, left, 0, 0)...)
	}
	if right > 0 {
		tagged = append(tagged, splitAcrossCrew(rightFlank, right, 0, left)...)
	}
	return toPatternPaths(tagged), nil
}
