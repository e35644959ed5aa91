package gollowds

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

func checkDoublyLinked[V any](t *testing.T, list *DoublyLinkedList[V]) {
	t.Helper()

	if (list.head == nil) != (list.tail == nil) || (list.head == nil) != (list.count == 0) {
		t.Fatalf("head=%v tail=%v count=%d disagree on emptiness", list.head, list.tail, list.count)
	}
	if list.head == nil {
		return
	}
	if list.head.prev != nil {
		t.Fatalf("head.prev is set")
	}
	if list.tail.next != nil {
		t.Fatalf("tail.next is set")
	}

	seen := 1
	for node := list.head; node.next != nil; node = node.next {
		if node.next.prev != node {
			t.Fatalf("node.next.prev does not point back at node %d", seen)
		}
		seen++
	}
	if seen != list.count {
		t.Fatalf("reachable nodes = %d; count = %d", seen, list.count)
	}
}

func TestDoublyLinkedListPushAndPop(t *testing.T) {
	list := NewDoublyLinkedList[int]()
	list.PushHead(2)
	checkDoublyLinked(t, list)
	list.PushHead(1)
	list.AppendToTail(3)
	checkDoublyLinked(t, list)

	if got := *list.PopTail(); got != 3 {
		t.Errorf("PopTail() = %d; want 3", got)
	}
	checkDoublyLinked(t, list)

	if got := *list.PopHead(); got != 1 {
		t.Errorf("PopHead() = %d; want 1", got)
	}
	checkDoublyLinked(t, list)

	if got := *list.PopTail(); got != 2 {
		t.Errorf("PopTail() = %d; want 2", got)
	}
	checkDoublyLinked(t, list)

	if list.PopTail() != nil || list.PopHead() != nil {
		t.Errorf("pop on empty list returned a value")
	}
	if list.Count() != 0 {
		t.Errorf("Count() = %d; want 0", list.Count())
	}
}

func TestDoublyLinkedListReverse(t *testing.T) {
	list := NewDoublyLinkedList[int]()
	for i := 0; i < 5; i++ {
		list.AppendToTail(i)
	}

	reversed := list.Reverse()
	for run := 0; run < 2; run++ {
		got := reversed.ToList()
		if len(got) != 5 {
			t.Fatalf("Reverse().ToList() = %v; want 5 values", got)
		}
		for i, value := range got {
			if value != 4-i {
				t.Errorf("Reverse()[%d] = %d; want %d", i, value, 4-i)
			}
		}
	}
}

func TestDoublyLinkedListMatchesReference(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	list := NewDoublyLinkedList[int]()
	reference := doublylinkedlist.New()

	for i := 0; i < 3000; i++ {
		switch r.Intn(4) {
		case 0:
			list.AppendToTail(i)
			reference.Add(i)
		case 1:
			list.PushHead(i)
			reference.Prepend(i)
		case 2:
			got := list.PopHead()
			want, ok := reference.Get(0)
			if ok {
				reference.Remove(0)
			}
			assertPopped(t, "PopHead", got, want, ok)
		case 3:
			got := list.PopTail()
			want, ok := reference.Get(reference.Size() - 1)
			if ok {
				reference.Remove(reference.Size() - 1)
			}
			assertPopped(t, "PopTail", got, want, ok)
		}

		checkDoublyLinked(t, list)
		if list.Count() != reference.Size() {
			t.Fatalf("Count() = %d; want %d", list.Count(), reference.Size())
		}
	}

	values := list.ToList()
	for i, want := range reference.Values() {
		if values[i] != want.(int) {
			t.Errorf("ToList()[%d] = %d; want %d", i, values[i], want)
		}
	}
}

func assertPopped(t *testing.T, op string, got *int, want interface{}, ok bool) {
	t.Helper()

	if !ok {
		if got != nil {
			t.Fatalf("%s() = %d; want nil", op, *got)
		}
		return
	}
	if got == nil || *got != want.(int) {
		t.Fatalf("%s() = %v; want %d", op, got, want)
	}
}
