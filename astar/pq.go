package astar

// nodeItem is one frontier entry: a state, the number of states on the path
// that reached it (g), its priority f, and its insertion sequence number.
type nodeItem[S comparable] struct {
	state S
	g     int
	f     float64
	seq   uint64
}

// nodePQ is a min-heap of *nodeItem ordered by f, ties broken by insertion
// order (seq ascending) so equal-priority states leave the frontier FIFO.
type nodePQ[S comparable] []*nodeItem[S]

// Len returns the number of items in the heap.
func (pq nodePQ[S]) Len() int { return len(pq) }

// Less defines the comparison: smaller f first, then earlier insertion.
func (pq nodePQ[S]) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ[S]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem[S].
func (pq *nodePQ[S]) Push(x any) { *pq = append(*pq, x.(*nodeItem[S])) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
