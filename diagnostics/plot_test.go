package diagnostics

import (
	"math"
	"testing"

	"github.com/emberline/ignite/geo"
	"github.com/emberline/ignite/grid"
)

func TestRenderCostGridRejectsNil(t *testing.T) {
	if _, err := RenderCostGrid(nil); err == nil {
		t.Fatal("expected an error rendering a nil grid")
	}
}

func TestCostGridXYZReplacesInfWithMaxFinite(t *testing.T) {
	g := grid.New(2, 2, geo.NewTransform(0, 0, 1, -1), 0, math.Inf(1))
	g.Set(0, 0, 0)
	g.Set(0, 1, 5)
	g.Set(1, 0, math.Inf(1))
	g.Set(1, 1, 3)

	z := costGridXYZ{g}
	cols, rows := z.Dims()
	if cols != 2 || rows != 2 {
		t.Fatalf("Dims() = (%d, %d), want (2, 2)", cols, rows)
	}
	if got := z.Z(1, 0); got != 5 {
		t.Fatalf("Z(1,0) = %v, want 5", got)
	}
	if got := z.Z(0, 1); got != 5 {
		t.Fatalf("Z(0,1) (originally +Inf) = %v, want max finite 5", got)
	}
}
