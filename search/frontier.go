package search

import (
	"container/heap"
)

// frontier is the open set of generated-but-not-yet-expanded nodes,
// identified by arena index. Pop order is the one axis on which the four
// algorithms differ; the priority argument is ignored by the uninformed
// frontiers.
type frontier interface {
	push(id int32, priority float64)
	pop() (int32, bool)
	len() int
}

// frontierFor returns the frontier matching the algorithm's pop order.
func frontierFor(algo Algorithm) frontier {
	switch algo {
	case DFS:
		return &lifoFrontier{}
	case UCS, AStar:
		return newHeapFrontier()
	}
	return &fifoFrontier{}
}

// fifoFrontier pops in insertion order (BFS). A head index avoids
// re-slicing the front on every pop; the slice is compacted once the dead
// prefix dominates.
type fifoFrontier struct {
	items []int32
	head  int
}

func (f *fifoFrontier) push(id int32, _ float64) {
	f.items = append(f.items, id)
}

func (f *fifoFrontier) pop() (int32, bool) {
	if f.head >= len(f.items) {
		return 0, false
	}
	id := f.items[f.head]
	f.head++
	if f.head > 1024 && f.head*2 >= len(f.items) {
		f.items = append(f.items[:0], f.items[f.head:]...)
		f.head = 0
	}
	return id, true
}

func (f *fifoFrontier) len() int {
	return len(f.items) - f.head
}

// lifoFrontier pops in reverse insertion order (DFS).
type lifoFrontier struct {
	items []int32
}

func (f *lifoFrontier) push(id int32, _ float64) {
	f.items = append(f.items, id)
}

func (f *lifoFrontier) pop() (int32, bool) {
	n := len(f.items)
	if n == 0 {
		return 0, false
	}
	id := f.items[n-1]
	f.items = f.items[:n-1]
	return id, true
}

func (f *lifoFrontier) len() int {
	return len(f.items)
}

// heapItem pairs an arena index with its priority and an insertion
// sequence number. The sequence number breaks priority ties in favor of
// the earlier-inserted node, which keeps priority pop order stable and
// therefore reproducible across runs.
type heapItem struct {
	id       int32
	priority float64
	seq      uint64
}

// heapFrontier is a min-heap by (priority, seq). Duplicates for one state
// simply coexist; the engine's explored policy discards stale pops
// (lazy decrease-key, as opposed to in-place key updates).
type heapFrontier struct {
	h   itemHeap
	seq uint64
}

func newHeapFrontier() *heapFrontier {
	f := &heapFrontier{h: make(itemHeap, 0, 64)}
	heap.Init(&f.h)
	return f
}

func (f *heapFrontier) push(id int32, priority float64) {
	f.seq++
	heap.Push(&f.h, heapItem{id: id, priority: priority, seq: f.seq})
}

func (f *heapFrontier) pop() (int32, bool) {
	if f.h.Len() == 0 {
		return 0, false
	}
	return heap.Pop(&f.h).(heapItem).id, true
}

func (f *heapFrontier) len() int {
	return f.h.Len()
}

// itemHeap implements heap.Interface over heapItem values.
type itemHeap []heapItem

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
