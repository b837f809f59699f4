package maxprec

// entry is one (factor, value) pair inside a single variable's heap.
type entry struct {
	factor int
	value  float64
}

// perVarHeap is a container/heap-compatible max-heap of entries for one
// variable, keyed by value (largest on top), with a back-index from factor
// id to its current slot so Fix-based updates stay O(log s).
//
// Len/Less/Swap/Push/Pop implement heap.Interface; pos is kept in lockstep
// by Swap/Push/Pop so callers never need to track slot indices themselves.
type perVarHeap struct {
	items []entry
	pos   map[int]int // factor -> index into items
}

func newPerVarHeap() perVarHeap {
	return perVarHeap{pos: make(map[int]int)}
}

func (h perVarHeap) Len() int { return len(h.items) }

// Less orders by descending value: the largest precision sits at the root.
func (h perVarHeap) Less(i, j int) bool { return h.items[i].value > h.items[j].value }

func (h *perVarHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].factor] = i
	h.pos[h.items[j].factor] = j
}

// Push appends x (an entry) and records its slot. Called by heap.Push; use
// Index.Update for the public-facing operation.
func (h *perVarHeap) Push(x interface{}) {
	e := x.(entry)
	h.pos[e.factor] = len(h.items)
	h.items = append(h.items, e)
}

// Pop removes and returns the last slot (heap.Pop swaps the victim there
// first); not exposed publicly — entries live for the lifetime of the index.
func (h *perVarHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	e := old[n-1]
	h.items = old[:n-1]
	delete(h.pos, e.factor)

	return e
}
