package gollowds

// Dequeue is a double-ended queue on top of a DoublyLinkedList
type Dequeue[V any] struct {
	EnhancedIterator[V]
	list *DoublyLinkedList[V]
}

func NewDequeue[V any]() *Dequeue[V] {
	dequeue := &Dequeue[V]{list: NewDoublyLinkedList[V]()}
	dequeue.base = dequeue
	return dequeue
}

func (d *Dequeue[V]) PushBack(value V) {
	d.list.AppendToTail(value)
}

func (d *Dequeue[V]) PushFront(value V) {
	d.list.PushHead(value)
}

func (d *Dequeue[V]) PopBack() *V {
	return d.list.PopTail()
}

func (d *Dequeue[V]) PopFront() *V {
	return d.list.PopHead()
}

func (d *Dequeue[V]) PeekFirst() *V {
	return d.list.PeekHead()
}

func (d *Dequeue[V]) PeekLast() *V {
	return d.list.PeekTail()
}

func (d *Dequeue[V]) IsEmpty() bool {
	return d.list.IsEmpty()
}

func (d *Dequeue[V]) Count() int {
	return d.list.Count()
}

// iterates front to back
func (d *Dequeue[V]) GetIterator() IteratorBase[V] {
	return d.list.GetIterator()
}

// Returns a view that walks the dequeue from back to front
func (d *Dequeue[V]) Reverse() Iterable[V] {
	return d.list.Reverse()
}
