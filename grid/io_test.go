package grid

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/emberline/ignite/geo"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	transform := geo.NewTransform(10, 20, 1, -1)
	g := New(3, 4, transform, 4326, -9999)
	g.Set(1, 2, 5.5)

	var buf bytes.Buffer
	if err := g.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Rows != g.Rows || got.Cols != g.Cols || got.CRS != g.CRS || got.NoData != g.NoData {
		t.Fatalf("round-tripped grid metadata mismatch: %+v", got)
	}
	if got.Transform != g.Transform {
		t.Fatalf("round-tripped transform mismatch: got %+v, want %+v", got.Transform, g.Transform)
	}
	if got.At(1, 2) != 5.5 {
		t.Fatalf("round-tripped cell (1,2) = %v, want 5.5", got.At(1, 2))
	}
}

func TestLoadRejectsUnknownVersion(t *testing.T) {
	var buf bytes.Buffer
	bad := gridFile{DataVersion: "999", Rows: 1, Cols: 1, Data: []float64{0}}
	if err := gob.NewEncoder(&buf).Encode(bad); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := Load(&buf); err == nil {
		t.Fatal("expected an error loading a mismatched data version")
	}
}
