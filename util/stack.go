package util

// Stack is a LIFO used for navigation history. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes the top element. An empty stack yields the zero value.
func (s *Stack[T]) Pop() T {
	top, ok := s.top()
	if ok {
		s.items = s.items[:len(s.items)-1]
	}
	return top
}

// Peek is Pop without the removal.
func (s *Stack[T]) Peek() T {
	top, _ := s.top()
	return top
}

func (s *Stack[T]) top() (item T, ok bool) {
	if n := len(s.items); n > 0 {
		return s.items[n-1], true
	}
	return item, false
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) Clear() {
	s.items = s.items[:0]
}
