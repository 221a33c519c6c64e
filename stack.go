package tagsoup

import (
	"github.com/lestrrat-go/tagsoup/internal/stack"
	"github.com/lestrrat-go/tagsoup/node"
)

// elementStack is the stack of open elements, innermost on top
type elementStack struct {
	stack.Stack[*node.Element]
}

func (s *elementStack) Push(e *node.Element) {
	s.Stack.Push(e)
}

// PeekOne returns the innermost open element, or nil
func (s *elementStack) PeekOne() *node.Element {
	e, ok := s.Stack.Top()
	if !ok {
		return nil
	}
	return e
}

// Lookup returns the index of the innermost open element named name,
// searching from the top of the stack down. It returns -1 if there is
// no such element.
func (s *elementStack) Lookup(name string) int {
	for i := s.Len() - 1; i >= 0; i-- {
		if s.At(i).LocalName() == name {
			return i
		}
	}
	return -1
}

func (s *elementStack) Contains(e *node.Element) bool {
	for i := s.Len() - 1; i >= 0; i-- {
		if s.At(i) == e {
			return true
		}
	}
	return false
}

// PopTo pops every element at index i and above, returning them
// innermost first.
func (s *elementStack) PopTo(i int) []*node.Element {
	if i < 0 || i >= s.Len() {
		return nil
	}
	popped := make([]*node.Element, 0, s.Len()-i)
	for j := s.Len() - 1; j >= i; j-- {
		popped = append(popped, s.At(j))
	}
	s.Pop(len(popped))
	return popped
}

// PopUntil pops up to and including the innermost element named name.
// It reports whether such an element was open.
func (s *elementStack) PopUntil(name string) bool {
	i := s.Lookup(name)
	if i < 0 {
		return false
	}
	s.PopTo(i)
	return true
}
