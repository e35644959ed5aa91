package gollowds

import (
	"fmt"
	"io"
)

// prev is only a back pointer for tail removal and reverse walks,
// the forward chain from head is what holds the list together.
type doublyLinkedNode[V any] struct {
	value V
	prev  *doublyLinkedNode[V]
	next  *doublyLinkedNode[V]
}

type DoublyLinkedList[V any] struct {
	EnhancedIterator[V]
	head  *doublyLinkedNode[V]
	tail  *doublyLinkedNode[V]
	count int
}

func NewDoublyLinkedList[V any]() *DoublyLinkedList[V] {
	list := &DoublyLinkedList[V]{}
	list.base = list
	return list
}

// Adds value after the current tail. O(1)
func (v *DoublyLinkedList[V]) AppendToTail(value V) {
	node := &doublyLinkedNode[V]{value: value, prev: v.tail}
	if v.tail != nil {
		v.tail.next = node
	} else {
		v.head = node
	}
	v.tail = node
	v.count++
}

// Adds value in front of the current head. O(1)
func (v *DoublyLinkedList[V]) PushHead(value V) {
	node := &doublyLinkedNode[V]{value: value, next: v.head}
	if v.head != nil {
		v.head.prev = node
	} else {
		v.tail = node
	}
	v.head = node
	v.count++
}

// Removes and returns the tail value, or nil if the list is empty. O(1)
func (v *DoublyLinkedList[V]) PopTail() *V {
	if v.tail == nil {
		return nil
	}

	node := v.tail
	v.tail = node.prev
	if v.tail != nil {
		v.tail.next = nil
	} else {
		v.head = nil
	}
	node.prev = nil
	v.decrement()

	return &node.value
}

// Removes and returns the head value, or nil if the list is empty. O(1)
func (v *DoublyLinkedList[V]) PopHead() *V {
	if v.head == nil {
		return nil
	}

	node := v.head
	v.head = node.next
	if v.head != nil {
		v.head.prev = nil
	} else {
		v.tail = nil
	}
	node.next = nil
	v.decrement()

	return &node.value
}

func (v *DoublyLinkedList[V]) decrement() {
	if v.count > 0 {
		v.count--
	}
}

// Returns the head value without removing it. O(1)
func (v *DoublyLinkedList[V]) PeekHead() *V {
	if v.head == nil {
		return nil
	}
	value := v.head.value
	return &value
}

// Returns the tail value without removing it. O(1)
func (v *DoublyLinkedList[V]) PeekTail() *V {
	if v.tail == nil {
		return nil
	}
	value := v.tail.value
	return &value
}

func (v *DoublyLinkedList[V]) IsEmpty() bool {
	return v.count == 0
}

func (v *DoublyLinkedList[V]) Count() int {
	return v.count
}

// iterates head to tail
func (v *DoublyLinkedList[V]) GetIterator() IteratorBase[V] {
	return &doublyLinkedIterator[V]{next: v.head, backwards: false}
}

// Returns a view that walks the list from tail to head
func (v *DoublyLinkedList[V]) Reverse() Iterable[V] {
	return newIterable[V](func() IteratorBase[V] {
		return &doublyLinkedIterator[V]{next: v.tail, backwards: true}
	})
}

// Writes every value on its own line, head first. Debugging only.
func (v *DoublyLinkedList[V]) Print(w io.Writer) {
	for node := v.head; node != nil; node = node.next {
		fmt.Fprintln(w, node.value)
	}
}

func (v *DoublyLinkedList[V]) String() string {
	return fmt.Sprint(v.ToList())
}

type doublyLinkedIterator[V any] struct {
	current   *doublyLinkedNode[V]
	next      *doublyLinkedNode[V]
	backwards bool
}

func (i *doublyLinkedIterator[V]) MoveNext() bool {
	if i.next == nil {
		i.current = nil
		return false
	}
	i.current = i.next
	if i.backwards {
		i.next = i.next.prev
	} else {
		i.next = i.next.next
	}
	return true
}

func (i *doublyLinkedIterator[V]) GetCurrent() V {
	if i.current == nil {
		panic("Iterator: No more items left or the first MoveNext() is called")
	}
	return i.current.value
}
