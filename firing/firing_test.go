package firing

import (
	"math"
	"testing"

	"github.com/ctessum/geom"

	"github.com/emberline/ignite/crew"
	"github.com/emberline/ignite/geo"
	"github.com/emberline/ignite/grid"
)

func square() FiringArea {
	return FiringArea{
		Polygon: geom.Polygon{{
			{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}, {X: 0, Y: 0},
		}},
	}
}

func threeIgniterCrew() crew.IgnitionCrew {
	return crew.NewCrew(crew.NewIgniter(1), crew.NewIgniter(1), crew.NewIgniter(1))
}

func TestRingAssignsOneLegPerIgniter(t *testing.T) {
	paths, err := Ring{}.InitPaths(square(), nil, threeIgniterCrew())
	if err != nil {
		t.Fatalf("InitPaths: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 paths, got %d", len(paths))
	}
	seen := map[int]bool{}
	for _, p := range paths {
		if p.Heat != 0 {
			t.Fatalf("ring should be a single heat, got heat %d", p.Heat)
		}
		seen[p.Igniter] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 distinct igniter ids, got %d", len(seen))
	}
}

func TestRingRejectsEmptyCrew(t *testing.T) {
	if _, err := Ring{}.InitPaths(square(), nil, crew.IgnitionCrew{}); err == nil {
		t.Fatalf("expected error for empty crew")
	}
}

func TestHeadPlacesPathsAlongDownwindEdge(t *testing.T) {
	area := square()
	paths, err := Head{}.InitPaths(area, nil, threeIgniterCrew())
	if err != nil {
		t.Fatalf("InitPaths: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 paths, got %d", len(paths))
	}
	for _, p := range paths {
		for _, v := range p.Geometry {
			if v.X < 99.999 {
				t.Fatalf("expected head edge near x=100, got vertex %+v", v)
			}
		}
	}
}

func TestFlankSplitsCrewAcrossTwoEdges(t *testing.T) {
	paths, err := Flank{}.InitPaths(square(), nil, threeIgniterCrew())
	if err != nil {
		t.Fatalf("InitPaths: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 paths, got %d", len(paths))
	}
}

func TestStripCoversAreaWithinBounds(t *testing.T) {
	s := Strip{NumIgniters: 2, IgniterDepth: 20, HeatDepth: 20}
	paths, err := s.InitPaths(square(), nil, threeIgniterCrew())
	if err != nil {
		t.Fatalf("InitPaths: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("expected at least one strip")
	}
	for _, p := range paths {
		for _, v := range p.Geometry {
			if v.X < -0.01 || v.X > 100.01 {
				t.Fatalf("strip vertex out of bounds: %+v", v)
			}
		}
	}
}

func TestInfernoUsesSingleHeat(t *testing.T) {
	paths, err := Inferno{}.InitPaths(square(), nil, threeIgniterCrew())
	if err != nil {
		t.Fatalf("InitPaths: %v", err)
	}
	for _, p := range paths {
		if p.Heat != 0 {
			t.Fatalf("inferno should be a single heat, got %d", p.Heat)
		}
	}
}

func flatSquareDEM() *grid.Grid {
	// 50x50 cells of resolution 2, covering world bounds [0,100] x [0,100]
	// north-up, matching square()'s firing area exactly. NoData is a
	// sentinel distinct from the flat elevation (see gdt's flatDEM helper):
	// grid.New(rows, cols, transform, crs, 0) would otherwise leave every
	// cell equal to both elevation 0 and NoData 0, so GDT's barrier check
	// would treat the whole DEM as unreachable.
	transform := geo.NewTransform(0, 100, 2, -2)
	g := grid.New(50, 50, transform, 0, math.Inf(-1))
	g.Fill(0)
	return g
}

func TestStripContourFollowsWholeEdgeNotJustItsCorners(t *testing.T) {
	dem := flatSquareDEM()
	s := StripContour{NumIgniters: 2, IgniterDepth: 20, HeatDepth: 20}
	paths, err := s.InitPaths(square(), dem, threeIgniterCrew())
	if err != nil {
		t.Fatalf("InitPaths: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("expected at least one strip path")
	}

	var xs []float64
	for _, p := range paths {
		if p.Heat != 0 {
			continue
		}
		for _, v := range p.Geometry {
			xs = append(xs, v.X)
		}
	}
	if len(xs) == 0 {
		t.Fatalf("expected at least one heat-0 vertex")
	}

	// The source line spans the whole left edge (x=0, y=0..100), so the
	// first contour at distance igniter_depth=20 should sit at roughly
	// x=20 for every y, not arc inward from x=0 toward the edge's two
	// corners only. If GDT seeded only the polyline's endpoints, cells
	// near the middle of the edge (y=50) would be much farther than 20
	// from the nearest seeded corner, pulling the contour's x spread wide.
	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
	}
	if spread := maxX - minX; spread > 6 {
		t.Fatalf("heat-0 contour x spread = %v (min %v, max %v), want a strip close to parallel to the edge", spread, minX, maxX)
	}
	if math.Abs((minX+maxX)/2-20) > 6 {
		t.Fatalf("heat-0 contour centered at x=%v, want close to igniter_depth=20", (minX+maxX)/2)
	}
}

func TestFactoryRejectsUnknownTechnique(t *testing.T) {
	if _, err := New("nonexistent", Config{}); err == nil {
		t.Fatalf("expected error for unknown technique")
	}
}

func TestFactoryBuildsEveryKnownTechnique(t *testing.T) {
	for _, name := range []string{"ring", "head", "back", "flank", "strip", "strip_contour", "inferno"} {
		if _, err := New(name, Config{NumIgniters: 2, IgniterDepth: 5, HeatDepth: 5}); err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
	}
}

func TestSyncEndTimeDefault(t *testing.T) {
	if !SyncEndTimeDefault("ring") {
		t.Fatalf("expected ring to sync end times by default")
	}
	if SyncEndTimeDefault("head") {
		t.Fatalf("expected head not to sync end times by default")
	}
}
