package firing

import (
	"github.com/emberline/ignite/crew"
	"github.com/emberline/ignite/grid"
	"github.com/emberline/ignite/pattern"
)

// Head fires a single line along the firing area's downwind edge, one heat,
// with one igniter leg per crew member arrayed across the edge. Fire then
// runs with the wind. dem is unused; Head is a flat-ground technique.
type Head struct{}

// InitPaths implements Generator.
func (Head) InitPaths(area FiringArea, dem *grid.Grid, c crew.IgnitionCrew) ([]pattern.Path, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	_, xmax, ymin, ymax, centroid, err := alignedFrame(area)
	if err != nil {
		return nil, err
	}
	edge := toWorld(edgeLine(xmax, ymin, ymax), centroid, area.Direction)
	return toPatternPaths(splitAcrossCrew(edge, c.Size(), 0, 0)), nil
}

func toPatternPaths(tagged []pathTagged) []pattern.Path {
	out := make([]pattern.Path, len(tagged))
	for i, t := range tagged {
		out[i] = pattern.Path{Heat: t.heat, Igniter: t.igniter, Leg: t.leg, Geometry: t.geometry}
	}
	return out
}
