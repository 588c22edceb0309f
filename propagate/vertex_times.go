package propagate

import (
	"math"

	"github.com/ctessum/geom"

	"github.com/emberline/ignite/crew"
	"github.com/emberline/ignite/geomutil"
	"github.com/emberline/ignite/pattern"
)

// assignVertexTimes fills in exactly one of p.VertexTimes, p.SegmentTimes,
// or p.PointTimes, dispatching on ig's line style (§4.6 "Per-vertex arrival
// times"). p.StartTime and p.EndTime must already be set.
func assignVertexTimes(p *pattern.Path, ig crew.Igniter) error {
	switch ig.Kind() {
	case crew.Dashed:
		assignDashTimes(p, ig)
	case crew.Dotted:
		assignDotTimes(p, ig)
	default:
		assignContinuousTimes(p, ig)
	}
	return nil
}

func assignContinuousTimes(p *pattern.Path, ig crew.Igniter) {
	cum := geomutil.CumulativeLengths(p.Geometry)
	times := make([]float64, len(cum))
	for i, d := range cum {
		times[i] = p.StartTime + d/ig.Velocity
	}
	p.VertexTimes = times
}

func assignDashTimes(p *pattern.Path, ig crew.Igniter) {
	dash := ig.DashLength
	gap := ig.GapLength
	if gap <= 0 {
		gap = dash
	}
	total := p.Length()

	var cuts []float64
	for d := 0.0; d < total; {
		d = math.Min(d+dash, total)
		cuts = append(cuts, d)
		if d >= total {
			break
		}
		d = math.Min(d+gap, total)
		cuts = append(cuts, d)
	}

	parts := geomutil.Split(p.Geometry, cuts)
	var segs []geom.LineString
	var spans [][2]float64
	dist := 0.0
	for i, part := range parts {
		length := part.Length()
		start, end := dist, dist+length
		if i%2 == 0 {
			segs = append(segs, part)
			spans = append(spans, [2]float64{p.StartTime + start/ig.Velocity, p.StartTime + end/ig.Velocity})
		}
		dist = end
	}
	p.Segments = segs
	p.SegmentTimes = spans
}

func assignDotTimes(p *pattern.Path, ig crew.Igniter) {
	gap := ig.GapLength
	total := p.Length()
	cum := geomutil.CumulativeLengths(p.Geometry)

	var points []geom.Point
	var times []float64
	for d := 0.0; d <= total; d += gap {
		points = append(points, geomutil.PointAtDistance(p.Geometry, cum, d))
		times = append(times, p.StartTime+d/ig.Velocity)
	}
	if len(points) == 0 || points[len(points)-1] != p.Geometry[len(p.Geometry)-1] {
		points = append(points, p.Geometry[len(p.Geometry)-1])
		times = append(times, p.StartTime+total/ig.Velocity)
	}
	p.Points = points
	p.PointTimes = times
}
