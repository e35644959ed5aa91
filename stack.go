package gollowds

// Stack is a LIFO on top of a SinglyLinkedList, the head is the top
type Stack[V any] struct {
	EnhancedIterator[V]
	list *SinglyLinkedList[V]
}

func NewStack[V any]() *Stack[V] {
	stack := &Stack[V]{list: NewSinglyLinkedList[V]()}
	stack.base = stack
	return stack
}

func (s *Stack[V]) Push(value V) {
	s.list.PushHead(value)
}

// Returns the most recently pushed value, or nil if the stack is empty
func (s *Stack[V]) Pop() *V {
	return s.list.PopHead()
}

func (s *Stack[V]) Peek() *V {
	return s.list.PeekHead()
}

func (s *Stack[V]) IsEmpty() bool {
	return s.list.IsEmpty()
}

func (s *Stack[V]) Count() int {
	return s.list.Count()
}

// iterates from the top of the stack down
func (s *Stack[V]) GetIterator() IteratorBase[V] {
	return s.list.GetIterator()
}
