package stack

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// valueOptions lets cmp.Equal descend into unexported struct fields, so element types need not
// export their state to be compared.
var valueOptions = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// Equal reports whether s and other hold the same values in the same order. Values are compared
// deeply with cmp.Equal, including unexported struct fields, so T need not be comparable. Element
// types with an Equal method are compared with that method.
func (s Stack[T]) Equal(other Stack[T]) bool {
	return EqualFunc(s, other, func(a, b T) bool {
		return cmp.Equal(a, b, valueOptions...)
	})
}

// EqualFunc reports whether a and b have the same depth and eq holds for each pair of values
// taken top to bottom. Shared ancestry is not compared value by value: once both walks reach the
// same frame the stacks are equal.
func EqualFunc[T any](a, b Stack[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	// equal depths reach the root together, where both tops are nil
	for a.top != b.top {
		if !eq(a.top.value, b.top.value) {
			return false
		}
		a, b = a.top.parent, b.top.parent
	}
	return true
}
