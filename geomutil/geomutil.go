// Package geomutil holds small geometric helpers the path generators and
// temporal propagator share, building on github.com/ctessum/geom's types
// where that package stops short of what a firing layout needs: line
// rotation, line-to-polygon clipping, and nearest-point distance between two
// polylines.
package geomutil

import "github.com/ctessum/geom"

// Rotate rotates p by angle radians (counter-clockwise, standard math
// convention) about center.
func Rotate(p geom.Point, center geom.Point, angle float64) geom.Point {
	dx, dy := p.X-center.X, p.Y-center.Y
	cosA, sinA := cos(angle), sin(angle)
	return geom.Point{
		X: center.X + dx*cosA - dy*sinA,
		Y: center.Y + dx*sinA + dy*cosA,
	}
}

// RotateLine rotates every vertex of line by angle radians about center.
func RotateLine(line geom.LineString, center geom.Point, angle float64) geom.LineString {
	out := make(geom.LineString, len(line))
	for i, p := range line {
		out[i] = Rotate(p, center, angle)
	}
	return out
}

// RotatePolygon rotates every ring of poly by angle radians about center.
func RotatePolygon(poly geom.Polygon, center geom.Point, angle float64) geom.Polygon {
	out := make(geom.Polygon, len(poly))
	for i, ring := range poly {
		out[i] = RotateLine(ring, center, angle)
	}
	return out
}

// ExteriorRing returns poly's outer ring as a closed LineString (first and
// last vertex identical), or nil if poly has no rings.
func ExteriorRing(poly geom.Polygon) geom.LineString {
	if len(poly) == 0 {
		return nil
	}
	ring := append(geom.LineString(nil), poly[0]...)
	if len(ring) > 0 && (ring[0].X != ring[len(ring)-1].X || ring[0].Y != ring[len(ring)-1].Y) {
		ring = append(ring, ring[0])
	}
	return ring
}

// MinDistance returns the smallest distance between any vertex of a and any
// vertex of b. This approximates true segment-to-segment distance closely
// enough for the propagator's inter-leg travel estimate, whose legs are
// already densely vertexed contour or strip segments.
func MinDistance(a, b geom.LineString) float64 {
	min := posInf
	for _, pa := range a {
		for _, pb := range b {
			d := dist(pa, pb)
			if d < min {
				min = d
			}
		}
	}
	return min
}

func dist(a, b geom.Point) float64 {
	return hypot(b.X-a.X, b.Y-a.Y)
}
