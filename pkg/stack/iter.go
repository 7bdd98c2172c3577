package stack

import "iter"

// Iterator walks the values of a stack from top to bottom.
type Iterator[T any] struct {
	current Stack[T]
}

// Iter returns an iterator positioned at the top of s.
func (s Stack[T]) Iter() *Iterator[T] {
	return &Iterator[T]{current: s}
}

// Next returns the next value and advances the iterator. Once the bottom of the stack has been
// passed, ok is false and stays false.
func (it *Iterator[T]) Next() (value T, ok bool) {
	f := it.current.top
	if f == nil {
		return value, false
	}
	it.current = f.parent
	return f.value, true
}

// FrameIterator walks the sub-stacks of a stack from top to bottom. The first stack produced is
// the one the iterator was created from; the empty root is never produced.
type FrameIterator[T any] struct {
	current Stack[T]
}

// IterFrames returns a FrameIterator positioned at s.
func (s Stack[T]) IterFrames() *FrameIterator[T] {
	return &FrameIterator[T]{current: s}
}

// Next returns the stack at the current position and moves on to its parent.
func (it *FrameIterator[T]) Next() (Stack[T], bool) {
	item := it.current
	if item.top == nil {
		return item, false
	}
	it.current = item.top.parent
	return item, true
}

// Values returns an iterator over the values of s, most recently pushed first.
func (s Stack[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iter()
		for {
			value, ok := it.Next()
			if !ok || !yield(value) {
				return
			}
		}
	}
}

// Frames returns an iterator over s and each of its non-empty ancestors.
func (s Stack[T]) Frames() iter.Seq[Stack[T]] {
	return func(yield func(Stack[T]) bool) {
		it := s.IterFrames()
		for {
			sub, ok := it.Next()
			if !ok || !yield(sub) {
				return
			}
		}
	}
}
