package astar

// openItem is one queued cell. pos tracks its slot in the heap so the
// entry can be fixed in place after a decrease-key.
type openItem struct {
	idx int // row-major cell index
	g   int // cost from start
	f   int // g + Manhattan to finish
	seq int // insertion sequence
	pos int // index within openSet
}

// openSet is a min-heap of *openItem ordered by f, then g, then seq.
type openSet []*openItem

func (s openSet) Len() int { return len(s) }

// Less prefers lower f; on a tie the lower g, then the earlier push.
func (s openSet) Less(i, j int) bool {
	a, b := s[i], s[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}
	return a.seq < b.seq
}

func (s openSet) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
	s[i].pos = i
	s[j].pos = j
}

// Push appends x, which must be *openItem, and records its slot.
func (s *openSet) Push(x interface{}) {
	item := x.(*openItem)
	item.pos = len(*s)
	*s = append(*s, item)
}

// Pop removes the last element; heap.Pop has already moved the minimum there.
func (s *openSet) Pop() interface{} {
	old := *s
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.pos = -1
	*s = old[:n-1]

	return item
}
