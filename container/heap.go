package container

import "container/heap"

// item is one entry in a PriorityQueue: a value paired with its priority.
// Lower priority values are popped first, matching teacher dijkstra's
// min-heap-by-distance convention.
type item[T any] struct {
	value    T
	priority float64
	index    int
}

type rawHeap[T any] []*item[T]

func (h rawHeap[T]) Len() int { return len(h) }
func (h rawHeap[T]) Less(i, j int) bool {
	return h[i].priority < h[j].priority
}
func (h rawHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *rawHeap[T]) Push(x any) {
	it := x.(*item[T])
	it.index = len(*h)
	*h = append(*h, it)
}
func (h *rawHeap[T]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}

// PriorityQueue is a binary min-heap keyed by an explicit float64 priority,
// used by Dijkstra/A*/Prim/priority-first traversal. It supports a "lazy
// decrease-key" usage pattern (push duplicates, skip stale entries by
// caller-side bookkeeping) exactly as teacher `dijkstra/dijkstra.go` does
// via container/heap.
type PriorityQueue[T any] struct {
	h rawHeap[T]
}

// NewPriorityQueue returns an empty queue.
func NewPriorityQueue[T any]() *PriorityQueue[T] {
	pq := &PriorityQueue[T]{}
	heap.Init(&pq.h)
	return pq
}

// Push inserts value with the given priority. O(log n).
func (pq *PriorityQueue[T]) Push(value T, priority float64) {
	heap.Push(&pq.h, &item[T]{value: value, priority: priority})
}

// Pop removes and returns the lowest-priority value. O(log n).
func (pq *PriorityQueue[T]) Pop() (T, float64, bool) {
	if pq.h.Len() == 0 {
		var zero T
		return zero, 0, false
	}
	it := heap.Pop(&pq.h).(*item[T])
	return it.value, it.priority, true
}

// Len returns the number of queued entries (including stale duplicates).
func (pq *PriorityQueue[T]) Len() int { return pq.h.Len() }

// DHeap is a d-ary min-heap over values compared with a caller-supplied
// less function, used where a plain priority float isn't a natural fit
// (e.g. ranking by a composite key). d must be >= 2.
type DHeap[T any] struct {
	d    int
	less func(a, b T) bool
	data []T
}

// NewDHeap returns an empty d-ary heap. d < 2 is treated as 2 (binary heap).
func NewDHeap[T any](d int, less func(a, b T) bool) *DHeap[T] {
	if d < 2 {
		d = 2
	}
	return &DHeap[T]{d: d, less: less}
}

// Push inserts v. O(log_d n).
func (h *DHeap[T]) Push(v T) {
	h.data = append(h.data, v)
	h.siftUp(len(h.data) - 1)
}

// Pop removes and returns the minimum element. O(d log_d n).
func (h *DHeap[T]) Pop() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	top := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data = h.data[:last]
	if len(h.data) > 0 {
		h.siftDown(0)
	}
	return top, true
}

// Len returns the number of elements.
func (h *DHeap[T]) Len() int { return len(h.data) }

func (h *DHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / h.d
		if !h.less(h.data[i], h.data[parent]) {
			return
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

func (h *DHeap[T]) siftDown(i int) {
	n := len(h.data)
	for {
		smallest := i
		first := i*h.d + 1
		for c := first; c < first+h.d && c < n; c++ {
			if h.less(h.data[c], h.data[smallest]) {
				smallest = c
			}
		}
		if smallest == i {
			return
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}
