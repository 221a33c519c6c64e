package stack

// Stack is a LIFO of T. The top of the stack is the last element.
type Stack[T any] []T

func (s *Stack[T]) Push(v T) {
	*s = append(*s, v)
}

// Pop removes n items (1 if unspecified) from the top of the stack.
func (s *Stack[T]) Pop(n ...int) {
	nn := 1
	if len(n) > 0 {
		nn = n[0]
	}
	stackPop(s, nn)
}

func (s *Stack[T]) Realloc() {
	*s = append(Stack[T](nil), *s...)
}

func (s *Stack[T]) PopLast() {
	if s.Len() <= 0 {
		return
	}
	var zero T
	(*s)[s.Len()-1] = zero
	*s = (*s)[:s.Len()-1]
}

// Top returns the item at the top of the stack.
func (s Stack[T]) Top() (T, bool) {
	if l := s.Len(); l > 0 {
		return s[l-1], true
	}
	var zero T
	return zero, false
}

// At returns the i-th item counting from the bottom of the stack.
func (s Stack[T]) At(i int) T {
	return s[i]
}

func (s Stack[T]) Peek(n int) []T {
	if l := s.Len(); l > n {
		return s[l-n : l]
	}
	return s
}

func (s Stack[T]) Len() int {
	return len(s)
}

func (s Stack[T]) Cap() int {
	return cap(s)
}
