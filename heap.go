package gollowds

import (
	"errors"
	"fmt"
	"log"
)

var ErrHeapFull = errors.New("heap is full")

// Comparator returns a negative number when a orders before b,
// zero when they are equal and a positive number otherwise.
type Comparator[V any] func(a V, b V) int

// binaryHeap keeps a complete binary tree in a slice. The element at i
// has children at 2i+1 and 2i+2. Whatever the comparator puts first
// sits at the root.
type binaryHeap[V any] struct {
	storage    []V
	capacity   *int
	logger     *log.Logger
	comparator Comparator[V]
}

func newBinaryHeap[V any](option *HeapOption, comparator Comparator[V]) *binaryHeap[V] {
	if option == nil {
		option = NewHeapOption()
	}

	heap := &binaryHeap[V]{
		storage:    make([]V, 0),
		logger:     option.logger,
		comparator: comparator,
	}
	if capacity, ok := option.GetCapacity(); ok {
		heap.capacity = &capacity
	}
	return heap
}

// Returns the root without removing it. O(1)
func (h *binaryHeap[V]) peek() *V {
	if len(h.storage) == 0 {
		return nil
	}
	root := h.storage[0]
	return &root
}

// O(log n)
func (h *binaryHeap[V]) insert(value V) error {
	if h.capacity != nil && len(h.storage) >= *h.capacity {
		if h.logger != nil {
			h.logger.Printf("heap full, rejected insert of %v (capacity: %d)", value, *h.capacity)
		}
		return fmt.Errorf("%w: capacity %d", ErrHeapFull, *h.capacity)
	}

	h.storage = append(h.storage, value)
	h.siftUp(len(h.storage) - 1)
	return nil
}

// O(log n)
func (h *binaryHeap[V]) extract() *V {
	last := len(h.storage) - 1
	if last < 0 {
		return nil
	}

	h.swap(0, last)
	root := h.storage[last]

	var zero V
	h.storage[last] = zero
	h.storage = h.storage[:last]

	h.siftDown(0)
	return &root
}

func (h *binaryHeap[V]) siftUp(child int) {
	for child > 0 {
		parent := parentIndex(child)
		if h.comparator(h.storage[child], h.storage[parent]) >= 0 {
			return
		}
		h.swap(child, parent)
		child = parent
	}
}

func (h *binaryHeap[V]) siftDown(parent int) {
	size := len(h.storage)
	for {
		left := leftIndex(parent)
		right := rightIndex(parent)
		first := parent

		if left < size && h.comparator(h.storage[left], h.storage[first]) < 0 {
			first = left
		}

		if right < size && h.comparator(h.storage[right], h.storage[first]) < 0 {
			first = right
		}

		if first == parent {
			return
		}

		h.swap(parent, first)
		parent = first
	}
}

func (h *binaryHeap[V]) swap(i, j int) {
	h.storage[i], h.storage[j] = h.storage[j], h.storage[i]
}

func (h *binaryHeap[V]) size() int {
	return len(h.storage)
}

func (h *binaryHeap[V]) getCapacity() (int, bool) {
	if h.capacity == nil {
		return 0, false
	}
	return *h.capacity, true
}

func parentIndex(i int) int {
	return (i - 1) / 2
}

func leftIndex(i int) int {
	return 2*i + 1
}

func rightIndex(i int) int {
	return 2*i + 2
}
