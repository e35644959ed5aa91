package gollowds

import (
	"fmt"
	"io"
)

type singlyLinkedNode[V any] struct {
	value V
	next  *singlyLinkedNode[V]
}

// SinglyLinkedList is a head/tail tracked chain of forward linked nodes.
// Use NewSinglyLinkedList, the zero value cannot be iterated.
type SinglyLinkedList[V any] struct {
	EnhancedIterator[V]
	head  *singlyLinkedNode[V]
	tail  *singlyLinkedNode[V]
	count int
}

func NewSinglyLinkedList[V any]() *SinglyLinkedList[V] {
	list := &SinglyLinkedList[V]{}
	list.base = list
	return list
}

// Adds value after the current tail. O(1)
func (v *SinglyLinkedList[V]) AppendToTail(value V) {
	node := &singlyLinkedNode[V]{value: value}
	if v.tail != nil {
		v.tail.next = node
	} else {
		v.head = node
	}
	v.tail = node
	v.count++
}

// Adds value in front of the current head. O(1)
func (v *SinglyLinkedList[V]) PushHead(value V) {
	node := &singlyLinkedNode[V]{value: value, next: v.head}
	v.head = node
	if v.tail == nil {
		v.tail = node
	}
	v.count++
}

// Removes and returns the head value, or nil if the list is empty. O(1)
func (v *SinglyLinkedList[V]) PopHead() *V {
	if v.head == nil {
		return nil
	}

	node := v.head
	v.head = node.next
	node.next = nil
	if v.head == nil {
		v.tail = nil
	}
	if v.count > 0 {
		v.count--
	}

	return &node.value
}

// Returns the head value without removing it. O(1)
func (v *SinglyLinkedList[V]) PeekHead() *V {
	if v.head == nil {
		return nil
	}
	value := v.head.value
	return &value
}

// Returns the tail value without removing it. O(1)
func (v *SinglyLinkedList[V]) PeekTail() *V {
	if v.tail == nil {
		return nil
	}
	value := v.tail.value
	return &value
}

func (v *SinglyLinkedList[V]) IsEmpty() bool {
	return v.count == 0
}

func (v *SinglyLinkedList[V]) Count() int {
	return v.count
}

// iterates head to tail
func (v *SinglyLinkedList[V]) GetIterator() IteratorBase[V] {
	return &singlyLinkedIterator[V]{next: v.head}
}

// Writes every value on its own line, head first. Debugging only.
func (v *SinglyLinkedList[V]) Print(w io.Writer) {
	for node := v.head; node != nil; node = node.next {
		fmt.Fprintln(w, node.value)
	}
}

func (v *SinglyLinkedList[V]) String() string {
	return fmt.Sprint(v.ToList())
}

type singlyLinkedIterator[V any] struct {
	current *singlyLinkedNode[V]
	next    *singlyLinkedNode[V]
}

func (i *singlyLinkedIterator[V]) MoveNext() bool {
	if i.next == nil {
		i.current = nil
		return false
	}
	i.current = i.next
	i.next = i.next.next
	return true
}

func (i *singlyLinkedIterator[V]) GetCurrent() V {
	if i.current == nil {
		panic("Iterator: No more items left or the first MoveNext() is called")
	}
	return i.current.value
}
