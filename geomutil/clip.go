package geomutil

import "github.com/ctessum/geom"

// bisectionSteps bounds how finely ClipToPolygon locates a boundary
// crossing along a segment; each step halves the remaining uncertainty, so
// 24 steps resolve the crossing to about 1e-7 of the segment's length.
const bisectionSteps = 24

// ClipToPolygon splits line into the sub-polylines that lie inside poly,
// in walk order. A crossing of poly's boundary is located by bisection
// rather than exact segment intersection, since github.com/ctessum/geom
// exposes polygon-polygon boolean ops but not a line/polygon primitive.
// Runs with fewer than two vertices (a line grazing the boundary at a
// single point) are dropped, matching the "discard point intersections"
// failure mode.
func ClipToPolygon(line geom.LineString, poly geom.Polygon) []geom.LineString {
	if len(line) < 2 {
		return nil
	}
	var parts []geom.LineString
	var current geom.LineString

	inside := func(p geom.Point) bool {
		return p.Within(poly) != geom.Outside
	}

	flush := func() {
		if len(current) >= 2 {
			parts = append(parts, current)
		}
		current = nil
	}

	prevIn := inside(line[0])
	if prevIn {
		current = append(current, line[0])
	}
	for i := 0; i+1 < len(line); i++ {
		a, b := line[i], line[i+1]
		bIn := inside(b)
		if bIn != prevIn {
			cross := bisect(a, b, inside)
			current = append(current, cross)
			flush()
			if bIn {
				current = append(current, cross)
			}
		}
		if bIn {
			current = append(current, b)
		}
		prevIn = bIn
	}
	flush()
	return parts
}

// bisect finds the point on segment a->b where inside(p) flips, assuming
// inside(a) != inside(b).
func bisect(a, b geom.Point, inside func(geom.Point) bool) geom.Point {
	aIn := inside(a)
	lo, hi := a, b
	for i := 0; i < bisectionSteps; i++ {
		mid := geom.Point{X: (lo.X + hi.X) / 2, Y: (lo.Y + hi.Y) / 2}
		if inside(mid) == aIn {
			lo = mid
		} else {
			hi = mid
		}
	}
	return geom.Point{X: (lo.X + hi.X) / 2, Y: (lo.Y + hi.Y) / 2}
}
