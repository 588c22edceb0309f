package firing

import (
	"github.com/emberline/ignite/crew"
	"github.com/emberline/ignite/grid"
	"github.com/emberline/ignite/pattern"
)

// Back fires a single line along the firing area's upwind edge — the mirror
// image of Head — so the fire burns into the wind.
type Back struct{}

// InitPaths implements Generator.
func (Back) InitPaths(area FiringArea, dem *grid.Grid, c crew.IgnitionCrew) ([]pattern.Path, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	xmin, _, ymin, ymax, centroid, err := alignedFrame(area)
	if err != nil {
		return nil, err
	}
	edge := toWorld(edgeLine(xmin, ymin, ymax), centroid, area.Direction)
	return toPatternPaths(splitAcrossCrew(edge, c.Size(), 0, 0)), nil
}
