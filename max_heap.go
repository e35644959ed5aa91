package gollowds

import "golang.org/x/exp/constraints"

// MaxHeap keeps the largest value at the root
type MaxHeap[V constraints.Ordered] struct {
	heap *binaryHeap[V]
}

// Creates an empty MaxHeap, a nil option means unbounded
func NewMaxHeap[V constraints.Ordered](option *HeapOption) *MaxHeap[V] {
	return &MaxHeap[V]{heap: newBinaryHeap[V](option, descending[V])}
}

// Returns the largest value, or nil if the heap is empty. O(1)
func (h *MaxHeap[V]) FindMax() *V {
	return h.heap.peek()
}

// Adds value to the heap. Returns an error wrapping ErrHeapFull and
// leaves the heap untouched when the capacity is reached. O(log n)
func (h *MaxHeap[V]) Insert(value V) error {
	return h.heap.insert(value)
}

// Removes and returns the largest value, or nil if the heap is empty. O(log n)
func (h *MaxHeap[V]) ExtractMax() *V {
	return h.heap.extract()
}

func (h *MaxHeap[V]) Size() int {
	return h.heap.size()
}

func (h *MaxHeap[V]) IsEmpty() bool {
	return h.heap.size() == 0
}

func (h *MaxHeap[V]) Capacity() (int, bool) {
	return h.heap.getCapacity()
}

func descending[V constraints.Ordered](a V, b V) int {
	return ascending(b, a)
}
