package firing

import (
	"errors"

	"github.com/ctessum/geom"

	"github.com/emberline/ignite/crew"
	"github.com/emberline/ignite/gdt"
	"github.com/emberline/ignite/geomutil"
	"github.com/emberline/ignite/grid"
	"github.com/emberline/ignite/pattern"
)

// Side selects which way StripContour's strips initially travel.
type Side int

const (
	// Left reverses polylines on even-indexed heats.
	Left Side = iota
	// Right reverses polylines on odd-indexed heats.
	Right
)

// ErrNilDEM is returned when StripContour is asked to run without a DEM.
var ErrNilDEM = errors.New("firing: strip-contour requires a DEM")

// StripContour lays terrain-following strips by contouring the geodesic
// distance field from the firing area's upwind edge (§4.5 steps 1-9).
type StripContour struct {
	NumIgniters             int
	IgniterDepth, HeatDepth float64
	Side                    Side
	ZMultiplier             float64
}

// InitPaths implements Generator.
func (s StripContour) InitPaths(area FiringArea, dem *grid.Grid, c crew.IgnitionCrew) ([]pattern.Path, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if dem == nil {
		return nil, ErrNilDEM
	}
	n := s.NumIgniters
	if n < 1 {
		n = c.Size()
	}

	xmin, _, ymin, ymax, centroid, err := alignedFrame(area)
	if err != nil {
		return nil, err
	}

	// Step 2-3: source line is the aligned left edge, inverse-rotated back
	// to world orientation and clipped to the DEM bounds.
	source := toWorld(edgeLine(xmin, ymin, ymax), centroid, area.Direction)
	source = clipToDEM(source, dem)
	if len(source) < 2 {
		return nil, errors.New("firing: strip-contour source line does not intersect the DEM")
	}

	zMul := s.ZMultiplier
	if zMul == 0 {
		zMul = 1
	}
	cost, err := gdt.Compute(dem, source, gdt.WithZMultiplier(zMul))
	if err != nil {
		return nil, err
	}

	levels := buildLevels(s.IgniterDepth, s.HeatDepth, n, cost.Max())
	results := cost.GetContours(levels)

	var paths []pattern.Path
	for idx, level := range results {
		heat, igniter := idx/n, idx%n
		reverse := (s.Side == Left && heat%2 == 0) || (s.Side == Right && heat%2 == 1)
		leg := 0
		for _, line := range level.Lines {
			parts := geomutil.ClipToPolygon(line, area.Polygon)
			for _, part := range parts {
				if reverse {
					part = reverseLine(part)
				}
				paths = append(paths, pattern.Path{Heat: heat, Igniter: igniter, Leg: leg, Geometry: part})
				leg++
			}
		}
	}
	return paths, nil
}

func reverseLine(line geom.LineString) geom.LineString {
	out := make(geom.LineString, len(line))
	for i, p := range line {
		out[len(line)-1-i] = p
	}
	return out
}

// clipToDEM trims line to the portion overlapping dem's world bounds.
func clipToDEM(line geom.LineString, dem *grid.Grid) geom.LineString {
	b := dem.Bounds()
	poly := geom.Polygon{{
		{X: b.West, Y: b.South}, {X: b.East, Y: b.South},
		{X: b.East, Y: b.North}, {X: b.West, Y: b.North},
		{X: b.West, Y: b.South},
	}}
	parts := geomutil.ClipToPolygon(line, poly)
	if len(parts) == 0 {
		return nil
	}
	return parts[0]
}
