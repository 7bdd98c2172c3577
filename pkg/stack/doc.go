// Package stack provides a persistent, immutable stack.
//
// A Stack is a handle to one point in a tree of shared histories. Pushing onto a
// handle returns a new handle and leaves the receiver untouched, so the same
// handle may be pushed onto many times to grow sibling branches:
//
//	base := stack.New[string]()
//	a := base.Push("a")
//	b := base.Push("b")
//	aa := a.Push("aa")
//
//	fmt.Println(aa) // [<top>, aa, a, <base>]
//	fmt.Println(b)  // [<top>, b, <base>]
//
// Handles are one pointer wide and copying one is the clone operation. The
// frames they point at are never written after Push returns, and are shared by
// every handle derived from them, so any number of goroutines may read the same
// handle at once. A child handle keeps its ancestors reachable; there is no
// explicit release.
//
// Every traversal in this package walks parent links in a loop, so the depth of
// a stack is bounded by memory only.
package stack
