package firing

import (
	"github.com/ctessum/geom"

	"github.com/emberline/ignite/crew"
	"github.com/emberline/ignite/grid"
	"github.com/emberline/ignite/pattern"
)

// Inferno ignites the whole perimeter — both flanks, the head, and the back
// edge — simultaneously as heat 0, for area/mass ignition operations. The
// crew splits into four roughly equal groups, one per edge.
type Inferno struct{}

// InitPaths implements Generator. dem is unused.
func (Inferno) InitPaths(area FiringArea, dem *grid.Grid, c crew.IgnitionCrew) ([]pattern.Path, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	xmin, xmax, ymin, ymax, centroid, err := alignedFrame(area)
	if err != nil {
		return nil, err
	}

	groups := splitFour(c.Size())
	edges := []geom.LineString{
		edgeLine(xmax, ymin, ymax),                // head: downwind edge
		edgeLine(xmin, ymin, ymax),                // back: upwind edge
		{{X: xmax, Y: ymin}, {X: xmin, Y: ymin}},  // flank: downwind to upwind
		{{X: xmax, Y: ymax}, {X: xmin, Y: ymax}},  // flank: downwind to upwind
	}

	var tagged []pathTagged
	offset := 0
	for i, n := range groups {
		if n == 0 {
			continue
		}
		edge := toWorld(edges[i], centroid, area.Direction)
		tagged = append(tagged, splitAcrossCrew(edge, n, 0, offset)...)
		offset += n
	}
	return toPatternPaths(tagged), nil
}

// splitFour divides n as evenly as possible across four groups, giving any
// remainder to the earliest groups.
func splitFour(n int) [4]int {
	var groups [4]int
	base, rem := n/4, n%4
	for i := range groups {
		groups[i] = base
		if i < rem {
			groups[i]++
		}
	}
	return groups
}
