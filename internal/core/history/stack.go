package history

// Stack is a LIFO of Action pointers shared with the log.
type Stack struct {
	items []*Action
}

// Push places a on top of the stack.
func (s *Stack) Push(a *Action) {
	s.items = append(s.items, a)
}

// Pop removes and returns the top action, or nil when the stack is empty.
func (s *Stack) Pop() *Action {
	if len(s.items) == 0 {
		return nil
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	return top
}

// Peek returns the top action without removing it.
func (s *Stack) Peek() *Action {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s *Stack) Len() int { return len(s.items) }

func (s *Stack) IsEmpty() bool { return len(s.items) == 0 }

// Clear drops every entry but keeps the allocated capacity.
func (s *Stack) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}
