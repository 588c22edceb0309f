// Package firing implements the seven ignition-pattern generators named in
// the system overview: ring, head, back, flank, strip, strip-contour, and
// inferno. Each satisfies Generator, producing untimed Paths that the
// propagate package then schedules.
package firing

import (
	"errors"

	"github.com/ctessum/geom"

	"github.com/emberline/ignite/crew"
	"github.com/emberline/ignite/geomutil"
	"github.com/emberline/ignite/grid"
	"github.com/emberline/ignite/pattern"
)

// ErrEmptyPolygon is returned when a FiringArea's Polygon has no rings or
// the outer ring has fewer than 3 vertices.
var ErrEmptyPolygon = errors.New("firing: firing area polygon is empty")

// FiringArea is the burn unit and the direction ignition should progress.
type FiringArea struct {
	// Polygon is the burn unit boundary, possibly with inner rings for
	// exclusions (§3 "Burn unit").
	Polygon geom.Polygon
	// Direction is the firing direction in radians, measured
	// counter-clockwise from +x, matching geomutil.Rotate's convention.
	// For Head/Back/Flank/Strip/StripContour it is the direction fire
	// travels; Inferno uses it to orient its four edges; Ring ignores it.
	Direction float64
}

// Generator lays out the untimed geometry of an ignition pattern: one
// Generator implementation per technique, sharing the dispatch skeleton
// named in §4.5 — spatial layout only, heat/igniter/leg assigned, no times.
type Generator interface {
	InitPaths(area FiringArea, dem *grid.Grid, c crew.IgnitionCrew) ([]pattern.Path, error)
}

func validRing(area FiringArea) (geom.LineString, error) {
	if len(area.Polygon) == 0 || len(area.Polygon[0]) < 3 {
		return nil, ErrEmptyPolygon
	}
	return geomutil.ExteriorRing(area.Polygon), nil
}
