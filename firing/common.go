package firing

import (
	"math"

	"github.com/ctessum/geom"

	"github.com/emberline/ignite/geomutil"
)

// alignedFrame rotates area's polygon so its firing direction points along
// +x, about the polygon's centroid, and returns the rotated exterior ring's
// axis-aligned bounding box together with the centroid and rotation used —
// the "rotate so direction aligns with +x" step shared by every
// direction-aware technique (§4.5 step 1).
func alignedFrame(area FiringArea) (xmin, xmax, ymin, ymax float64, centroid geom.Point, err error) {
	if len(area.Polygon) == 0 || len(area.Polygon[0]) < 3 {
		err = ErrEmptyPolygon
		return
	}
	centroid = area.Polygon.Centroid()
	ring := geomutil.ExteriorRing(area.Polygon)
	aligned := geomutil.RotateLine(ring, centroid, -area.Direction)
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for _, p := range aligned {
		xmin = math.Min(xmin, p.X)
		xmax = math.Max(xmax, p.X)
		ymin = math.Min(ymin, p.Y)
		ymax = math.Max(ymax, p.Y)
	}
	return
}

// toWorld inverse-rotates an aligned-frame line back to world orientation
// (§4.5 step 3).
func toWorld(line geom.LineString, centroid geom.Point, direction float64) geom.LineString {
	return geomutil.RotateLine(line, centroid, direction)
}

// edgeLine builds the aligned-frame vertical segment at x = atX spanning
// [ymin, ymax], used as the source line for Head/Back and one flank edge of
// Flank/Inferno.
func edgeLine(atX, ymin, ymax float64) geom.LineString {
	return geom.LineString{{X: atX, Y: ymin}, {X: atX, Y: ymax}}
}

// splitAcrossCrew splits an edge (already in world coordinates) into one
// sub-segment per igniter, tagging each with the given heat and igniter
// index offset.
func splitAcrossCrew(edge geom.LineString, n int, heat, igniterOffset int) []pathTagged {
	total := edge.Length()
	cuts := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		cuts = append(cuts, total*float64(i)/float64(n))
	}
	parts := geomutil.Split(edge, cuts)
	out := make([]pathTagged, 0, len(parts))
	for i, part := range parts {
		out = append(out, pathTagged{heat: heat, igniter: igniterOffset + i, leg: 0, geometry: part})
	}
	return out
}

// buildLevels constructs the strip-contour level-set schedule (§4.5 step 5):
// ℓ_1 = d, then each group of n-1 further levels increments by the
// within-heat igniter depth d, followed by one level incrementing by the
// between-heat depth h, repeating until the last level reaches maxLevel.
// When h equals d this degenerates to the uniform sequence ℓ_n = n·d.
// Flattened, index i of the result corresponds to heat i/n, igniter i%n.
func buildLevels(d, h float64, n int, maxLevel float64) []float64 {
	if n < 1 {
		n = 1
	}
	levels := []float64{d}
	for levels[len(levels)-1] < maxLevel {
		last := levels[len(levels)-1]
		for i := 0; i < n-1; i++ {
			last += d
			levels = append(levels, last)
		}
		if levels[len(levels)-1] >= maxLevel {
			break
		}
		last += h
		levels = append(levels, last)
	}
	return levels
}

// pathTagged is the firing package's working representation of a laid-out
// leg before it is converted to pattern.Path; kept separate so generators
// can freely reassign igniter offsets while composing sub-layouts (Inferno
// concatenating Head/Back/Flank).
type pathTagged struct {
	heat, igniter, leg int
	geometry           geom.LineString
}
