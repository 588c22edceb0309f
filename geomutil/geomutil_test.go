package geomutil

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
)

func square() geom.Polygon {
	return geom.Polygon{{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0},
	}}
}

func TestRotateQuarterTurn(t *testing.T) {
	p := geom.Point{X: 1, Y: 0}
	got := Rotate(p, geom.Point{X: 0, Y: 0}, math.Pi/2)
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y-1) > 1e-9 {
		t.Fatalf("Rotate(90deg) = %+v, want (0,1)", got)
	}
}

func TestExteriorRingClosesLoop(t *testing.T) {
	ring := ExteriorRing(square())
	if len(ring) == 0 {
		t.Fatalf("expected non-empty ring")
	}
	first, last := ring[0], ring[len(ring)-1]
	if first.X != last.X || first.Y != last.Y {
		t.Fatalf("ring not closed: first=%+v last=%+v", first, last)
	}
}

func TestMinDistance(t *testing.T) {
	a := geom.LineString{{X: 0, Y: 0}, {X: 1, Y: 0}}
	b := geom.LineString{{X: 0, Y: 5}, {X: 1, Y: 5}}
	if got, want := MinDistance(a, b), 5.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("MinDistance = %v, want %v", got, want)
	}
}

func TestClipToPolygonKeepsInteriorRun(t *testing.T) {
	poly := square()
	line := geom.LineString{{X: -5, Y: 5}, {X: 5, Y: 5}, {X: 15, Y: 5}}
	parts := ClipToPolygon(line, poly)
	if len(parts) != 1 {
		t.Fatalf("expected 1 clipped part, got %d", len(parts))
	}
	part := parts[0]
	if part[0].X < 0 || part[0].X > 0.01 {
		t.Fatalf("expected clipped part to start near x=0, got %+v", part[0])
	}
	last := part[len(part)-1]
	if last.X < 9.99 || last.X > 10.01 {
		t.Fatalf("expected clipped part to end near x=10, got %+v", last)
	}
}

func TestClipToPolygonEntirelyOutsideYieldsNothing(t *testing.T) {
	poly := square()
	line := geom.LineString{{X: 20, Y: 20}, {X: 30, Y: 30}}
	parts := ClipToPolygon(line, poly)
	if len(parts) != 0 {
		t.Fatalf("expected no clipped parts, got %d", len(parts))
	}
}
