// Package propagate assigns arrival times to the paths a firing generator
// lays out: per-path start and end times following the stagger and heat
// rules of §4.6, then per-vertex arrival times dispatched on each igniter's
// line style.
package propagate

import (
	"fmt"
	"math"
	"sort"

	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"

	"github.com/emberline/ignite/crew"
	"github.com/emberline/ignite/geomutil"
	"github.com/emberline/ignite/pattern"
)

// Forward times paths against c, following the start-time rules table,
// optional end-time synchronization, and per-vertex arrival dispatch of
// §4.6, returning a new timed Pattern. paths is not modified.
func Forward(paths []pattern.Path, c crew.IgnitionCrew, opts Options) (pattern.Pattern, error) {
	if c.Size() == 0 {
		return pattern.Pattern{}, ErrEmptyCrew
	}
	if err := c.Validate(); err != nil {
		return pattern.Pattern{}, err
	}

	kept := make([]pattern.Path, 0, len(paths))
	for _, p := range paths {
		if len(p.Geometry) < 2 {
			logrus.WithFields(logrus.Fields{"heat": p.Heat, "igniter": p.Igniter, "leg": p.Leg}).
				Warn("propagate: skipping path with fewer than 2 vertices")
			continue
		}
		if p.Igniter < 0 || p.Igniter >= c.Size() {
			return pattern.Pattern{}, fmt.Errorf("%w: igniter %d, crew size %d", ErrIgniterOutOfRange, p.Igniter, c.Size())
		}
		kept = append(kept, p)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if a.Heat != b.Heat {
			return a.Heat < b.Heat
		}
		if a.Igniter != b.Igniter {
			return a.Igniter < b.Igniter
		}
		return a.Leg < b.Leg
	})

	s := newScheduler(c, opts)
	for i := range kept {
		if err := s.assign(&kept[i]); err != nil {
			return pattern.Pattern{}, err
		}
	}

	shiftToZero(kept)
	if opts.SyncEndTime {
		syncHeatEndTimes(kept)
	}

	for i := range kept {
		if err := assignVertexTimes(&kept[i], c.Igniters[kept[i].Igniter]); err != nil {
			return pattern.Pattern{}, err
		}
	}

	// Forward has no CRS of its own to offer; callers that care about it
	// set Pattern.CRS on the returned value (it is carried through
	// unchanged from whatever FiringArea/DEM the paths came from).
	return pattern.New(0, kept), nil
}

// scheduler carries the per-heat running state the start-time rules need:
// the previous leg's end time and geometry (for the k>0 rule), each
// igniter's leg-0 start time and anchor vertices (for the next igniter's
// k=0,j>0 stagger projection), and
// the running max end time of each completed heat (for the heat-transition
// rule).
type scheduler struct {
	crew crew.IgnitionCrew
	opts Options

	curHeat int

	legEnd map[[2]int]float64
	legGeom map[[2]int]geom.LineString
	igniterStart map[int]float64
	igniterAnchor map[int][2]geom.Point
	heatMaxEnd map[int]float64
}

func newScheduler(c crew.IgnitionCrew, opts Options) *scheduler {
	return &scheduler{
		crew:          c,
		opts:          opts,
		curHeat:       -1,
		legEnd:        map[[2]int]float64{},
		legGeom:       map[[2]int]geom.LineString{},
		igniterStart:  map[int]float64{},
		igniterAnchor: map[int][2]geom.Point{},
		heatMaxEnd:    map[int]float64{},
	}
}

func (s *scheduler) assign(p *pattern.Path) error {
	if p.Heat != s.curHeat {
		s.igniterStart = map[int]float64{}
		s.igniterAnchor = map[int][2]geom.Point{}
		s.curHeat = p.Heat
	}

	v := s.crew.Igniters[p.Igniter].Velocity
	if v <= 0 {
		return fmt.Errorf("%w: igniter %d", ErrNonPositiveVelocity, p.Igniter)
	}
	length := p.Length()

	var start float64
	switch {
	case p.Leg > 0:
		key := [2]int{p.Heat, p.Igniter}
		prevEnd := s.legEnd[key]
		prevGeom := s.legGeom[key]
		start = prevEnd + geomutil.MinDistance(prevGeom, p.Geometry)/v
	case p.Igniter == 0:
		if p.Heat == 0 {
			start = 0
		} else {
			start = s.heatMaxEnd[p.Heat-1]
			if s.opts.ReturnTrip {
				start += length / v
			}
			if s.opts.HeatDelay > 0 {
				start += s.opts.HeatDelay
			}
		}
	default:
		prevStart := s.igniterStart[p.Igniter-1]
		anchor := s.igniterAnchor[p.Igniter-1]
		unit := unitVector(anchor[0], anchor[1])
		toThis := vector(anchor[0], p.Geometry[0])
		proj := dot(toThis, unit)
		start = prevStart + (s.opts.Spacing+proj)/v
	}

	end := start + length/v

	key := [2]int{p.Heat, p.Igniter}
	s.legEnd[key] = end
	s.legGeom[key] = p.Geometry
	if p.Leg == 0 {
		s.igniterStart[p.Igniter] = start
		if len(p.Geometry) >= 2 {
			s.igniterAnchor[p.Igniter] = [2]geom.Point{p.Geometry[0], p.Geometry[1]}
		}
	}
	if end > s.heatMaxEnd[p.Heat] {
		s.heatMaxEnd[p.Heat] = end
	}

	p.StartTime, p.EndTime = start, end
	return nil
}

func vector(a, b geom.Point) geom.Point { return geom.Point{X: b.X - a.X, Y: b.Y - a.Y} }

func unitVector(a, b geom.Point) geom.Point {
	v := vector(a, b)
	n := math.Hypot(v.X, v.Y)
	if n == 0 {
		return geom.Point{}
	}
	return geom.Point{X: v.X / n, Y: v.Y / n}
}

func dot(a, b geom.Point) float64 { return a.X*b.X + a.Y*b.Y }

// shiftToZero shifts every path's start/end time so the earliest start is 0
// (§4.6 "After all paths are processed...").
func shiftToZero(paths []pattern.Path) {
	if len(paths) == 0 {
		return
	}
	min := math.Inf(1)
	for _, p := range paths {
		if p.StartTime < min {
			min = p.StartTime
		}
	}
	if min >= 0 {
		return
	}
	for i := range paths {
		paths[i].StartTime -= min
		paths[i].EndTime -= min
	}
}

// syncHeatEndTimes shifts every path within a heat so all paths in that
// heat share the heat's maximum end time (§4.6 end-time synchronization).
func syncHeatEndTimes(paths []pattern.Path) {
	maxEnd := map[int]float64{}
	for _, p := range paths {
		if p.EndTime > maxEnd[p.Heat] {
			maxEnd[p.Heat] = p.EndTime
		}
	}
	for i := range paths {
		shift := maxEnd[paths[i].Heat] - paths[i].EndTime
		paths[i].StartTime += shift
		paths[i].EndTime += shift
	}
}
