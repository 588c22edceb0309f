// Package pattern holds the output types shared by every path generator and
// consumed by the temporal propagator: an untimed or timed Path, and the
// Pattern that collects them into one ignition plan.
package pattern

import (
	"math"

	"github.com/ctessum/geom"
)

// Path is one connected sub-path assigned to a single igniter within a
// single heat (§3 Data Model). Geometry always holds the path as laid out
// by a generator, in walk order. Once timed by the propagator, exactly one
// of VertexTimes, SegmentTimes, or PointTimes is populated, matching the
// igniter's line style (§4.6).
type Path struct {
	Heat, Igniter, Leg int
	Geometry           geom.LineString

	StartTime, EndTime float64

	// VertexTimes holds one arrival time per vertex of Geometry, for a
	// continuous-line igniter.
	VertexTimes []float64

	// Segments and SegmentTimes hold the dash segments and their matching
	// [start, end] pairs, for a dashed igniter. When populated, Segments
	// replaces Geometry as the path's effective shape.
	Segments     []geom.LineString
	SegmentTimes [][2]float64

	// Points and PointTimes hold the dot positions and their arrival
	// times, for a dotted igniter. When populated, Points replaces
	// Geometry as the path's effective shape.
	Points     []geom.Point
	PointTimes []float64
}

// Timed reports whether the propagator has assigned times to p.
func (p Path) Timed() bool {
	return len(p.VertexTimes) > 0 || len(p.SegmentTimes) > 0 || len(p.PointTimes) > 0
}

// Length returns the total length, in world units, of p's walked geometry.
func (p Path) Length() float64 {
	var total float64
	for i := 0; i+1 < len(p.Geometry); i++ {
		a, b := p.Geometry[i], p.Geometry[i+1]
		total += math.Hypot(b.X-a.X, b.Y-a.Y)
	}
	return total
}

// Pattern is an immutable collection of Paths sharing a coordinate
// reference system, produced by a path generator and (usually) timed by the
// temporal propagator before being handed to a downstream consumer.
type Pattern struct {
	Paths       []Path
	CRS         int
	ElapsedTime float64
}

// New builds a Pattern from paths, computing ElapsedTime as
// max(times) - min(times) across every path's StartTime/EndTime (§3).
// Paths not yet timed (StartTime == EndTime == 0) still contribute 0 to the
// span, matching an untimed pattern's ElapsedTime of 0.
func New(crs int, paths []Path) Pattern {
	if len(paths) == 0 {
		return Pattern{CRS: crs}
	}
	min, max := math.Inf(1), math.Inf(-1)
	for _, p := range paths {
		min = math.Min(min, p.StartTime)
		max = math.Max(max, p.EndTime)
	}
	return Pattern{Paths: paths, CRS: crs, ElapsedTime: max - min}
}
