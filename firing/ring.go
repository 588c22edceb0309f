package firing

import (
	"github.com/emberline/ignite/crew"
	"github.com/emberline/ignite/geomutil"
	"github.com/emberline/ignite/grid"
	"github.com/emberline/ignite/pattern"
)

// Ring fires the full perimeter of the firing area at once, one igniter per
// equal-length arc. dem is unused; Ring is a flat-ground technique.
type Ring struct{}

// InitPaths implements Generator.
func (Ring) InitPaths(area FiringArea, dem *grid.Grid, c crew.IgnitionCrew) ([]pattern.Path, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	ring, err := validRing(area)
	if err != nil {
		return nil, err
	}

	n := c.Size()
	total := ring.Length()
	arcLen := total / float64(n)
	cuts := make([]float64, n-1)
	for i := range cuts {
		cuts[i] = arcLen * float64(i+1)
	}

	arcs := geomutil.Split(ring, cuts)
	paths := make([]pattern.Path, 0, len(arcs))
	for i, arc := range arcs {
		paths = append(paths, pattern.Path{Heat: 0, Igniter: i, Leg: 0, Geometry: arc})
	}
	return paths, nil
}
