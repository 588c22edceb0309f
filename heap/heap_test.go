package heap

import (
	"math/rand"
	"sort"
	"testing"
)

func TestPlainPopOrder(t *testing.T) {
	h := NewPlain(4)
	keys := []float64{5, 1, 4, 2, 3}
	for i, k := range keys {
		h.Push(k, i)
	}
	var got []float64
	for !h.IsEmpty() {
		got = append(got, h.Pop().Key)
	}
	want := append([]float64(nil), keys...)
	sort.Float64s(want)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pop order mismatch at %d: got %v want %v", i, got, want)
		}
	}
}

func TestIndexedDecreaseKey(t *testing.T) {
	h := NewIndexed(4)
	h.Push(10, 0)
	h.Push(5, 1)
	h.Push(20, 0) // should be ignored: 20 > 10
	h.Push(2, 0)  // should decrease value 0's key to 2

	first := h.Pop()
	if first.Value != 0 || first.Key != 2 {
		t.Fatalf("expected (2,0) first, got %+v", first)
	}
	second := h.Pop()
	if second.Value != 1 || second.Key != 5 {
		t.Fatalf("expected (5,1) second, got %+v", second)
	}
	if !h.IsEmpty() {
		t.Fatalf("expected heap to be empty")
	}
}

func TestIndexedGrowsBeyondInitialCapacity(t *testing.T) {
	h := NewIndexed(2)
	for i := 0; i < 100; i++ {
		h.Push(float64(100-i), i)
	}
	prev := -1.0
	for !h.IsEmpty() {
		e := h.Pop()
		if e.Key < prev {
			t.Fatalf("pop order violated: %v after %v", e.Key, prev)
		}
		prev = e.Key
	}
}

func TestIndexedMatchesSortOnRandomInput(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	const n = 500
	keys := make([]float64, n)
	h := NewIndexed(n)
	for i := 0; i < n; i++ {
		keys[i] = r.Float64() * 1000
		h.Push(keys[i], i)
	}
	sorted := append([]float64(nil), keys...)
	sort.Float64s(sorted)
	for i := 0; i < n; i++ {
		e := h.Pop()
		if e.Key != sorted[i] {
			t.Fatalf("index %d: got %v want %v", i, e.Key, sorted[i])
		}
	}
}
