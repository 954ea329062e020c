package intcode

import "testing"

func TestStackOrder(t *testing.T) {
	var s Stack
	s.Push(1)
	s.Push(2)
	if v, _ := s.Pop(); v != 2 {
		t.Fatalf("Pop() = %d, want the last pushed value 2", v)
	}

	q := Queue(7, 8)
	q.Enqueue(9)
	for _, want := range []int{7, 8, 9} {
		v, ok := q.Pop()
		if !ok || v != want {
			t.Fatalf("Pop() = %d, %v, want %d", v, ok, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Fatalf("Pop() on empty stack succeeded")
	}

	var nilStack *Stack
	if _, ok := nilStack.Pop(); ok || nilStack.Len() != 0 {
		t.Fatalf("nil stack should be empty")
	}
}

func TestQueueCopies(t *testing.T) {
	vals := []int{1, 2, 3}
	Queue(vals...)
	if vals[0] != 1 || vals[2] != 3 {
		t.Fatalf("Queue modified its argument: %v", vals)
	}
}
