package diagnostics

import (
	"math"
	"testing"

	"github.com/ctessum/geom"

	"github.com/emberline/ignite/pattern"
)

func line(length float64) geom.LineString {
	return geom.LineString{{X: 0, Y: 0}, {X: length, Y: 0}}
}

func TestSummarizeAggregatesPerHeat(t *testing.T) {
	p := pattern.Pattern{Paths: []pattern.Path{
		{Heat: 0, Igniter: 0, Leg: 0, Geometry: line(10), StartTime: 0, EndTime: 5},
		{Heat: 0, Igniter: 1, Leg: 0, Geometry: line(20), StartTime: 0, EndTime: 10},
		{Heat: 1, Igniter: 0, Leg: 0, Geometry: line(5), StartTime: 10, EndTime: 12},
	}}

	s := Summarize(p)
	if len(s.Heats) != 2 {
		t.Fatalf("expected 2 heats, got %d", len(s.Heats))
	}
	h0 := s.Heats[0]
	if h0.Heat != 0 || h0.IgniterCount != 2 {
		t.Fatalf("heat 0 summary = %+v", h0)
	}
	if math.Abs(h0.TotalLength-30) > 1e-9 {
		t.Fatalf("heat 0 total length = %v, want 30", h0.TotalLength)
	}
	if math.Abs(h0.ElapsedTime-10) > 1e-9 {
		t.Fatalf("heat 0 elapsed time = %v, want 10", h0.ElapsedTime)
	}

	h1 := s.Heats[1]
	if h1.Heat != 1 || h1.IgniterCount != 1 {
		t.Fatalf("heat 1 summary = %+v", h1)
	}
}

func TestSummarizeEmptyPattern(t *testing.T) {
	s := Summarize(pattern.Pattern{})
	if len(s.Heats) != 0 {
		t.Fatalf("expected no heats for an empty pattern, got %d", len(s.Heats))
	}
}
