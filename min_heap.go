package gollowds

import "golang.org/x/exp/constraints"

// MinHeap keeps the smallest value at the root
type MinHeap[V constraints.Ordered] struct {
	heap *binaryHeap[V]
}

// Creates an empty MinHeap, a nil option means unbounded
func NewMinHeap[V constraints.Ordered](option *HeapOption) *MinHeap[V] {
	return &MinHeap[V]{heap: newBinaryHeap[V](option, ascending[V])}
}

// Returns the smallest value, or nil if the heap is empty. O(1)
func (h *MinHeap[V]) FindMin() *V {
	return h.heap.peek()
}

// Adds value to the heap. Returns an error wrapping ErrHeapFull and
// leaves the heap untouched when the capacity is reached. O(log n)
func (h *MinHeap[V]) Insert(value V) error {
	return h.heap.insert(value)
}

// Removes and returns the smallest value, or nil if the heap is empty. O(log n)
func (h *MinHeap[V]) ExtractMin() *V {
	return h.heap.extract()
}

func (h *MinHeap[V]) Size() int {
	return h.heap.size()
}

func (h *MinHeap[V]) IsEmpty() bool {
	return h.heap.size() == 0
}

func (h *MinHeap[V]) Capacity() (int, bool) {
	return h.heap.getCapacity()
}

func ascending[V constraints.Ordered](a V, b V) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
