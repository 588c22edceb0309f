package firing

import (
	"github.com/ctessum/geom"

	"github.com/emberline/ignite/crew"
	"github.com/emberline/ignite/geomutil"
	"github.com/emberline/ignite/grid"
	"github.com/emberline/ignite/pattern"
)

// Strip lays straight parallel strips perpendicular to the firing direction
// at fixed spacing, clipped directly to the firing area — the flat-ground
// special case of StripContour, skipping the GDT/contour step entirely.
type Strip struct {
	NumIgniters              int
	IgniterDepth, HeatDepth  float64
}

// InitPaths implements Generator. dem is unused.
func (s Strip) InitPaths(area FiringArea, dem *grid.Grid, c crew.IgnitionCrew) ([]pattern.Path, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	n := s.NumIgniters
	if n < 1 {
		n = c.Size()
	}
	xmin, xmax, ymin, ymax, centroid, err := alignedFrame(area)
	if err != nil {
		return nil, err
	}
	aligned := geomutil.RotatePolygon(area.Polygon, centroid, -area.Direction)

	margin := (ymax - ymin) * 0.01
	if margin == 0 {
		margin = 1
	}
	levels := buildLevels(s.IgniterDepth, s.HeatDepth, n, xmax-xmin)

	var paths []pattern.Path
	for idx, level := range levels {
		heat, igniter := idx/n, idx%n
		x := xmin + level
		strip := geom.LineString{{X: x, Y: ymin - margin}, {X: x, Y: ymax + margin}}
		parts := geomutil.ClipToPolygon(strip, aligned)
		for leg, part := range parts {
			paths = append(paths, pattern.Path{
				Heat: heat, Igniter: igniter, Leg: leg,
				Geometry: toWorld(part, centroid, area.Direction),
			})
		}
	}
	return paths, nil
}
