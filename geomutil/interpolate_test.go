package geomutil

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
)

func TestPointAtDistance(t *testing.T) {
	line := geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}}
	cum := CumulativeLengths(line)
	p := PointAtDistance(line, cum, 4)
	if math.Abs(p.X-4) > 1e-9 || p.Y != 0 {
		t.Fatalf("PointAtDistance(4) = %+v, want (4,0)", p)
	}
	if got := PointAtDistance(line, cum, -5); got != line[0] {
		t.Fatalf("clamp below 0: got %+v", got)
	}
	if got := PointAtDistance(line, cum, 50); got != line[len(line)-1] {
		t.Fatalf("clamp above length: got %+v", got)
	}
}

func TestSplitProducesContiguousParts(t *testing.T) {
	line := geom.LineString{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}}
	parts := Split(line, []float64{5, 15})
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(parts))
	}
	for i := 0; i+1 < len(parts); i++ {
		end := parts[i][len(parts[i])-1]
		start := parts[i+1][0]
		if end != start {
			t.Fatalf("part %d end %+v does not match part %d start %+v", i, end, i+1, start)
		}
	}
}
