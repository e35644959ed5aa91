package gollowds

// Queue is a FIFO on top of a SinglyLinkedList
type Queue[V any] struct {
	EnhancedIterator[V]
	list *SinglyLinkedList[V]
}

func NewQueue[V any]() *Queue[V] {
	queue := &Queue[V]{list: NewSinglyLinkedList[V]()}
	queue.base = queue
	return queue
}

func (q *Queue[V]) Enqueue(value V) {
	q.list.AppendToTail(value)
}

// Returns the oldest value, or nil if the queue is empty
func (q *Queue[V]) Dequeue() *V {
	return q.list.PopHead()
}

func (q *Queue[V]) Peek() *V {
	return q.list.PeekHead()
}

func (q *Queue[V]) IsEmpty() bool {
	return q.list.IsEmpty()
}

func (q *Queue[V]) Count() int {
	return q.list.Count()
}

// iterates from the front of the queue to the back
func (q *Queue[V]) GetIterator() IteratorBase[V] {
	return q.list.GetIterator()
}
