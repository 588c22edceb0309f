package heap

import stdheap "container/heap"

// Plain is the simpler of the two acceptable heap designs (§4.2(a)): a
// binary heap keyed by (cost, cell-index) with no cross-reference. A cell
// may be pushed more than once as its cost improves; stale entries (popped
// with a cost greater than the cell's now-current best cost) are the
// caller's responsibility to detect and discard, which is exactly what the
// GDT relaxation loop already does.
type Plain struct {
	items items
}

// NewPlain returns an empty plain heap with capacity pre-allocated for n
// entries, doubling thereafter as container/heap grows the backing slice.
func NewPlain(capacityHint int) *Plain {
	p := &Plain{items: make(items, 0, capacityHint)}
	stdheap.Init(&p.items)
	return p
}

func (p *Plain) Push(key float64, value int) {
	stdheap.Push(&p.items, Entry{Key: key, Value: value})
}

func (p *Plain) Pop() Entry {
	if p.IsEmpty() {
		panic("heap: pop from empty plain heap")
	}
	return stdheap.Pop(&p.items).(Entry)
}

func (p *Plain) Len() int      { return p.items.Len() }
func (p *Plain) IsEmpty() bool { return p.items.Len() == 0 }

// items adapts a slice of Entry to container/heap.Interface.
type items []Entry

func (it items) Len() int            { return len(it) }
func (it items) Less(i, j int) bool  { return it[i].Key < it[j].Key }
func (it items) Swap(i, j int)       { it[i], it[j] = it[j], it[i] }
func (it *items) Push(x interface{}) { *it = append(*it, x.(Entry)) }
func (it *items) Pop() interface{} {
	old := *it
	n := len(old)
	e := old[n-1]
	*it = old[:n-1]
	return e
}
