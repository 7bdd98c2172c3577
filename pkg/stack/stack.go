package stack

// Stack is an implementation of a persistent stack based on a linked list of frames.
//
// The zero value is an empty stack. *Important*: no method modifies its receiver. Push and Pop
// hand back other stacks, and the receiver remains valid and unchanged.
type Stack[T any] struct {
	top *frame[T]
}

// frame is one pushed value together with the stack it was pushed onto.
type frame[T any] struct {
	value  T
	parent Stack[T]

	// depth is the number of values from this frame down to the root, inclusive.
	depth int
}

// New returns an empty stack. It is equivalent to the zero value.
func New[T any]() Stack[T] {
	return Stack[T]{}
}

// Push returns a new stack holding value on top of s. s itself is not changed and may be pushed
// onto again.
func (s Stack[T]) Push(value T) Stack[T] {
	return Stack[T]{
		top: &frame[T]{
			value:  value,
			parent: s,
			depth:  s.Len() + 1,
		},
	}
}

// Pop returns the top value of s together with the stack it was pushed onto. If s is empty, ok
// is false and the other results are zero values.
func (s Stack[T]) Pop() (value T, parent Stack[T], ok bool) {
	if s.top == nil {
		return value, parent, false
	}
	return s.top.value, s.top.parent, true
}

// Peek returns the top value of s. ok is false if s is empty.
func (s Stack[T]) Peek() (value T, ok bool) {
	if s.top == nil {
		return value, false
	}
	return s.top.value, true
}

// IsEmpty reports whether s holds no values.
func (s Stack[T]) IsEmpty() bool {
	return s.top == nil
}

// Len returns the number of values in s.
func (s Stack[T]) Len() int {
	if s.top == nil {
		return 0
	}
	return s.top.depth
}

// Clone returns a stack that shares every frame with s.
func (s Stack[T]) Clone() Stack[T] {
	return s
}

// Same reports whether s and other are the same handle, i.e. they point at the same top frame or
// are both empty. Same stacks are always Equal; Equal stacks need not be Same.
func (s Stack[T]) Same(other Stack[T]) bool {
	return s.top == other.top
}

// Drop returns the stack n pushes below s. It returns an empty stack when n >= s.Len() and s
// itself when n <= 0.
func (s Stack[T]) Drop(n int) Stack[T] {
	for ; n > 0 && s.top != nil; n-- {
		s = s.top.parent
	}
	return s
}

// CommonAncestor returns the deepest stack that a and b both descend from, i.e. the point at
// which their histories branched. The result is Same as an ancestor of both (possibly a or b
// itself). Stacks grown from different roots only share the empty stack.
func CommonAncestor[T any](a, b Stack[T]) Stack[T] {
	a = a.Drop(a.Len() - b.Len())
	b = b.Drop(b.Len() - a.Len())

	for a.top != b.top {
		a = a.top.parent
		b = b.top.parent
	}
	return a
}
