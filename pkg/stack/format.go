package stack

import (
	"fmt"
	"io"
	"strings"
)

const (
	topMarker  = "<top>"
	baseMarker = "<base>"
)

// Format implements fmt.Formatter. A stack renders as [<top>, v1, ..., vn, <base>] with the most
// recently pushed value first; each value is formatted with the verb and flags given for the
// stack, so %q quotes strings and %#v prints Go syntax.
func (s Stack[T]) Format(f fmt.State, verb rune) {
	s.render(f, fmt.FormatString(f, verb))
}

// String returns the %v rendering of s.
func (s Stack[T]) String() string {
	var b strings.Builder
	s.render(&b, "%v")
	return b.String()
}

func (s Stack[T]) render(w io.Writer, format string) {
	_, _ = io.WriteString(w, "["+topMarker+", ")
	for value := range s.Values() {
		_, _ = fmt.Fprintf(w, format, value)
		_, _ = io.WriteString(w, ", ")
	}
	_, _ = io.WriteString(w, baseMarker+"]")
}
