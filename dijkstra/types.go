package dijkstra

// nodeItem represents a cell and the distance it was pushed with.
// seq records push order so equal distances pop first-in, first-out.
type nodeItem struct {
	idx  int // row-major cell index
	dist int // distance from start at push time
	seq  int // insertion sequence
}

// nodePQ is a min-heap of nodeItem ordered by dist, then seq.
// We use the “lazy-decrease-key” approach: an improved cell is pushed again,
// and the outdated entry is ignored when popped (visited check).
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist first, then earlier insertion.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
