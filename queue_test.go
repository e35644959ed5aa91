package gollowds

import (
	"math/rand"
	"testing"

	"github.com/golang-collections/collections/queue"
	"github.com/google/uuid"
)

func TestQueueScenario(t *testing.T) {
	q := NewQueue[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	if got := *q.Dequeue(); got != 1 {
		t.Errorf("Dequeue() = %d; want 1", got)
	}
	if got := *q.Dequeue(); got != 2 {
		t.Errorf("Dequeue() = %d; want 2", got)
	}
	if got := *q.Peek(); got != 3 {
		t.Errorf("Peek() = %d; want 3", got)
	}
	if q.Count() != 1 {
		t.Errorf("Count() = %d; want 1", q.Count())
	}
}

func TestQueueEmpty(t *testing.T) {
	q := NewQueue[string]()
	if !q.IsEmpty() {
		t.Errorf("IsEmpty() = false on new queue")
	}
	if q.Dequeue() != nil || q.Peek() != nil {
		t.Errorf("empty queue returned a value")
	}
	if q.Count() != 0 {
		t.Errorf("Count() = %d; want 0", q.Count())
	}
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[string]()
	values := make([]string, 100)
	for i := range values {
		values[i] = uuid.New().String()
		q.Enqueue(values[i])
	}

	if got := q.ToList(); len(got) != len(values) || got[0] != values[0] {
		t.Errorf("ToList() does not start at the front of the queue")
	}

	for i, want := range values {
		got := q.Dequeue()
		if got == nil || *got != want {
			t.Fatalf("Dequeue() #%d = %v; want %s", i, got, want)
		}
	}
	if !q.IsEmpty() {
		t.Errorf("queue not empty after draining")
	}
}

func TestQueueMatchesReference(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	q := NewQueue[int]()
	reference := queue.New()

	for i := 0; i < 2000; i++ {
		if r.Intn(3) == 0 {
			got := q.Dequeue()
			want := reference.Dequeue()
			if want == nil {
				if got != nil {
					t.Fatalf("Dequeue() = %d; want nil", *got)
				}
				continue
			}
			if got == nil || *got != want.(int) {
				t.Fatalf("Dequeue() = %v; want %d", got, want)
			}
		} else {
			q.Enqueue(i)
			reference.Enqueue(i)
		}

		if q.Count() != reference.Len() {
			t.Fatalf("Count() = %d; want %d", q.Count(), reference.Len())
		}
		if peek := reference.Peek(); peek != nil && *q.Peek() != peek.(int) {
			t.Fatalf("Peek() = %d; want %d", *q.Peek(), peek)
		}
	}
}
