package gdt

import (
	"testing"

	"github.com/ctessum/geom"
)

func TestAllocationLabelsCellsBySourceVertex(t *testing.T) {
	dem := flatDEM(5, 5)
	source := geom.LineString{worldAt(dem, 0, 0), worldAt(dem, 4, 4)}

	result, err := ComputeWithTraceback(dem, source, WithPadding(2))
	if err != nil {
		t.Fatalf("ComputeWithTraceback: %v", err)
	}

	alloc := Allocation(result)
	if alloc.Shape[0] != dem.Rows || alloc.Shape[1] != dem.Cols {
		t.Fatalf("allocation shape = %v, want (%d, %d)", alloc.Shape, dem.Rows, dem.Cols)
	}

	// Both corners lie on the single segment source[0]-source[1]; every cell
	// rasterized from that segment is seeded with its first endpoint's index.
	near0 := int(alloc.Get(0, 0))
	near1 := int(alloc.Get(4, 4))
	if near0 != 0 {
		t.Fatalf("cell (0,0) allocated to source %d, want 0", near0)
	}
	if near1 != 0 {
		t.Fatalf("cell (4,4) allocated to source %d, want 0 (same segment as (0,0))", near1)
	}
}
