package stack_test

import (
	"fmt"

	"github.com/golddranks/scoped-stack/pkg/stack"
)

func Example() {
	s0 := stack.New[string]()
	a := s0.Push("a")
	b := s0.Push("b")
	aa := a.Push("aa")

	fmt.Println(aa)
	fmt.Println(b)
	fmt.Println(a.Equal(b))
	// Output:
	// [<top>, aa, a, <base>]
	// [<top>, b, <base>]
	// false
}

func ExampleStack_Pop() {
	base := stack.New[int]().Push(1)

	top, parent, ok := base.Push(2).Pop()
	fmt.Println(top, ok, parent.Same(base))

	_, _, ok = stack.New[int]().Pop()
	fmt.Println(ok)
	// Output:
	// 2 true true
	// false
}

func ExampleStack_Frames() {
	s := stack.New[string]().Push("a").Push("aa")

	for sub := range s.Frames() {
		fmt.Println(sub.Len(), sub)
	}
	// Output:
	// 2 [<top>, aa, a, <base>]
	// 1 [<top>, a, <base>]
}

func ExampleCommonAncestor() {
	a := stack.New[string]().Push("a")
	ab := a.Push("b")
	ac := a.Push("c").Push("d")

	fmt.Println(stack.CommonAncestor(ab, ac))
	// Output:
	// [<top>, a, <base>]
}
