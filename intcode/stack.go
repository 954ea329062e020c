package intcode

import "golang.org/x/exp/slices"

// Stack is the caller-owned input of a machine. The machine consumes
// values from the back, so the most recently pushed value is read first.
type Stack []int

// Queue returns a Stack that yields vals in the order given.
func Queue(vals ...int) *Stack {
	s := Stack(slices.Clone(vals))
	slices.Reverse(s)
	return &s
}

// Push adds v to the back of the stack, making it the next value read.
func (s *Stack) Push(v int) {
	*s = append(*s, v)
}

// Enqueue adds v so that it is read after every value already held.
func (s *Stack) Enqueue(v int) {
	*s = slices.Insert(*s, 0, v)
}

// Pop removes and returns the value at the back of the stack.
func (s *Stack) Pop() (int, bool) {
	if s == nil || len(*s) == 0 {
		return 0, false
	}
	n := len(*s) - 1
	v := (*s)[n]
	*s = (*s)[:n]
	return v, true
}

func (s *Stack) Len() int {
	if s == nil {
		return 0
	}
	return len(*s)
}
