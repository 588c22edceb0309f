package gdt

import (
	"math"
	"testing"

	"github.com/ctessum/geom"

	"github.com/emberline/ignite/geo"
	"github.com/emberline/ignite/grid"
)

// flatDEM builds a rows x cols DEM of elevation 0 with NoData set to a
// sentinel distinct from any real elevation in these tests (grid.New fills
// every cell with noData when noData != 0, so a plain 0 sentinel would leave
// every flat cell indistinguishable from NoData — see grid.New's doc
// comment).
func flatDEM(rows, cols int) *grid.Grid {
	transform := geo.NewTransform(0, 0, 1, -1)
	g := grid.New(rows, cols, transform, 0, math.Inf(-1))
	g.Fill(0)
	return g
}

func worldAt(g *grid.Grid, row, col int) geom.Point {
	x, y := g.Transform.ToWorld(row, col)
	return geom.Point{X: x, Y: y}
}

func TestComputeFlatDEMMatchesOctileDistance(t *testing.T) {
	dem := flatDEM(9, 9)
	source := geom.LineString{worldAt(dem, 4, 4)}

	cost, err := Compute(dem, source, WithPadding(2))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if cost.Rows != dem.Rows || cost.Cols != dem.Cols {
		t.Fatalf("shape mismatch: got %dx%d want %dx%d", cost.Rows, cost.Cols, dem.Rows, dem.Cols)
	}

	if got := cost.At(4, 4); got != 0 {
		t.Fatalf("source cell cost = %v, want 0", got)
	}
	if got, want := cost.At(4, 5), 1.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("orthogonal neighbor cost = %v, want %v", got, want)
	}
	if got, want := cost.At(5, 5), math.Sqrt2; math.Abs(got-want) > 1e-9 {
		t.Fatalf("diagonal neighbor cost = %v, want %v", got, want)
	}
	// Two cells straight out should cost twice the one-cell step exactly,
	// since the straight path never needs the diagonal detour.
	if got, want := cost.At(4, 6), 2.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("two-cell orthogonal cost = %v, want %v", got, want)
	}
}

func TestComputeInclinedPlaneAddsVerticalCost(t *testing.T) {
	dem := flatDEM(5, 5)
	// Elevation rises by 1 per column, so every rightward step has dz=1.
	for r := 0; r < dem.Rows; r++ {
		for c := 0; c < dem.Cols; c++ {
			dem.Set(r, c, float64(c))
		}
	}
	source := geom.LineString{worldAt(dem, 2, 0)}

	cost, err := Compute(dem, source, WithPadding(2), WithZMultiplier(2))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	want := math.Sqrt(1*1 + (2*1)*(2*1)) // one cell over, z_multiplier=2, dz=1
	if got := cost.At(2, 1); math.Abs(got-want) > 1e-9 {
		t.Fatalf("inclined step cost = %v, want %v", got, want)
	}

	flat, err := Compute(dem, source, WithPadding(2), WithZMultiplier(0))
	if err != nil {
		t.Fatalf("Compute (flat): %v", err)
	}
	if got := flat.At(2, 1); math.Abs(got-1) > 1e-9 {
		t.Fatalf("z_multiplier=0 step cost = %v, want 1", got)
	}
}

func TestComputeBarrierBlocksPath(t *testing.T) {
	dem := flatDEM(7, 5)
	const noData = -9999.0
	dem.NoData = noData
	for r := 0; r < dem.Rows; r++ {
		dem.Set(r, 2, noData) // a full-height wall down the middle column
	}
	source := geom.LineString{worldAt(dem, 3, 0)}

	cost, err := Compute(dem, source, WithPadding(2))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if got := cost.At(3, 0); got != 0 {
		t.Fatalf("source cost = %v, want 0", got)
	}
	if got := cost.At(3, 1); math.IsInf(got, 1) {
		t.Fatalf("cell adjacent to source should be reachable, got +Inf")
	}
	for r := 0; r < dem.Rows; r++ {
		if got := cost.At(r, 4); !math.IsInf(got, 1) {
			t.Fatalf("cell beyond the wall at row %d = %v, want +Inf", r, got)
		}
	}
}

func TestComputeRejectsInvalidInput(t *testing.T) {
	dem := flatDEM(3, 3)
	if _, err := Compute(nil, geom.LineString{{X: 0, Y: 0}}); err != ErrNilDEM {
		t.Fatalf("nil dem: got %v, want ErrNilDEM", err)
	}
	if _, err := Compute(dem, nil); err != ErrEmptySource {
		t.Fatalf("nil source: got %v, want ErrEmptySource", err)
	}
	if _, err := Compute(dem, geom.LineString{{X: 0, Y: 0}}, WithNeighborhoodSize(0)); err != ErrBadNeighborhood {
		t.Fatalf("k=0: got %v, want ErrBadNeighborhood", err)
	}
	if _, err := Compute(dem, geom.LineString{{X: 0, Y: 0}}, WithZMultiplier(-1)); err != ErrNegativeZMultiplier {
		t.Fatalf("negative z_multiplier: got %v, want ErrNegativeZMultiplier", err)
	}
}

func TestComputeLineSourceSeedsEveryRasterizedCell(t *testing.T) {
	dem := flatDEM(9, 9)
	source := geom.LineString{worldAt(dem, 0, 0), worldAt(dem, 0, dem.Cols-1)}

	cost, err := Compute(dem, source, WithPadding(2))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	for c := 0; c < dem.Cols; c++ {
		if got := cost.At(0, c); got != 0 {
			t.Fatalf("source row cell (0,%d) cost = %v, want 0 (whole line seeded, not just its endpoints)", c, got)
		}
	}
	for r := 0; r < dem.Rows; r++ {
		for c := 0; c < dem.Cols; c++ {
			want := float64(r)
			if got := cost.At(r, c); math.Abs(got-want) > 1e-9 {
				t.Fatalf("cost(%d,%d) = %v, want %v (distance straight up to the seeded row)", r, c, got, want)
			}
		}
	}
}

func TestComputeWithTracebackReconstructsPath(t *testing.T) {
	dem := flatDEM(5, 5)
	source := geom.LineString{worldAt(dem, 2, 2)}

	result, err := ComputeWithTraceback(dem, source, WithPadding(2))
	if err != nil {
		t.Fatalf("ComputeWithTraceback: %v", err)
	}

	targetIdx := 0*dem.Cols + 0 // corner, farthest from center source
	steps := 0
	for idx := targetIdx; idx != -1; steps++ {
		if steps > dem.Rows*dem.Cols {
			t.Fatalf("traceback did not terminate")
		}
		idx = result.Parent[idx]
	}
	if steps == 0 {
		t.Fatalf("expected at least one hop back to the source")
	}
}
