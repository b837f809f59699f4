package maxprec

import "container/heap"

// Index is the MaxPrecisionIndex: one indexed max-heap per variable i,
// tracking kappa_i = max_{j: i in V_j} pi_{ji}.
type Index struct {
	heaps []perVarHeap
}

// New allocates an empty Index over n variables. Populate it via Update
// (which inserts on first sight of a (variable, factor) pair) before first
// use, typically once per message in the initial assignment.
func New(n int) (*Index, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	heaps := make([]perVarHeap, n)
	for i := range heaps {
		heaps[i] = newPerVarHeap()
	}

	return &Index{heaps: heaps}, nil
}

// NumVariables returns n.
func (x *Index) NumVariables() int { return len(x.heaps) }

// Max returns kappa_i, the largest stored value for variable i.
// Returns ErrEmpty if no (i, j) pair has been recorded yet.
//
// Complexity: O(1).
func (x *Index) Max(i int) (float64, error) {
	if i < 0 || i >= len(x.heaps) {
		return 0, ErrVariableOutOfRange
	}
	h := x.heaps[i]
	if h.Len() == 0 {
		return 0, ErrEmpty
	}

	return h.items[0].value, nil
}

// Update records newValue as the current pi_{ji} for (i, j), inserting the
// pair on first sight and otherwise restoring the heap invariant in place.
//
// Complexity: O(log s_i) where s_i is the number of factors already
// recorded for variable i.
func (x *Index) Update(i, j int, newValue float64) error {
	if i < 0 || i >= len(x.heaps) {
		return ErrVariableOutOfRange
	}
	h := &x.heaps[i]
	if idx, ok := h.pos[j]; ok {
		h.items[idx].value = newValue
		heap.Fix(h, idx)

		return nil
	}
	heap.Push(h, entry{factor: j, value: newValue})

	return nil
}
