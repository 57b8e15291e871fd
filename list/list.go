// Package list implements a persistent list.
//
// A List is an immutable, singly linked list. Operations that derive a new
// list from an existing one share structure with the original instead of
// copying it wholesale; a list and all lists derived from it can be used
// concurrently without synchronization.
//
// Each node caches the length of the chain it heads, so Len runs in O(1)
// time. Head, Tail and Cons also run in O(1) time; most other operations
// take time linear in the length of their inputs.
package list

import (
	"cmp"
	"fmt"
	"strings"
)

// List is a persistent list of elements of type T. The zero value is a
// valid empty list.
type List[T any] struct {
	head *node[T]
}

// node is a cons cell. The count field is the length of the chain starting
// at the node; a nil *node stands for the empty chain of length 0. A node
// is never modified once it is reachable from a published List.
type node[T any] struct {
	first T
	rest  *node[T]
	count int
}

func (n *node[T]) len() int {
	if n == nil {
		return 0
	}
	return n.count
}

// Empty returns an empty list. It is equivalent to the zero value of
// List[T], and exists to make the type argument explicit at call sites.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Of builds a list containing the given elements in order.
func Of[T any](elems ...T) List[T] {
	var b builder[T]
	for _, elem := range elems {
		b.add(elem)
	}
	return b.list()
}

// Init builds a list of n elements where the element at index i is f(i).
// The function is called in index order, from 0 to n-1. Init panics with
// an InvalidArgumentError if n is negative.
func Init[T any](n int, f func(int) T) List[T] {
	checkNonNegative("length", n)
	var b builder[T]
	for i := 0; i < n; i++ {
		b.add(f(i))
	}
	return b.list()
}

// Len returns the number of elements in the list in O(1) time.
func (l List[T]) Len() int {
	return l.head.len()
}

// IsEmpty reports whether the list has no elements.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Cons returns a new list with elem prepended. The new list shares all
// nodes of the original.
func (l List[T]) Cons(elem T) List[T] {
	return List[T]{&node[T]{elem, l.head, l.head.len() + 1}}
}

// Head returns the first element of the list. It returns ErrEmpty if the
// list is empty.
func (l List[T]) Head() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	return l.head.first, nil
}

// Tail returns the list without its first element, sharing all remaining
// nodes. It returns ErrEmpty if the list is empty.
func (l List[T]) Tail() (List[T], error) {
	if l.head == nil {
		return List[T]{}, ErrEmpty
	}
	return List[T]{l.head.rest}, nil
}

// Nth returns the element at index i, counting from 0. It returns an
// OutOfRangeError if the list has no more than i elements, and panics with
// an InvalidArgumentError if i is negative.
func (l List[T]) Nth(i int) (T, error) {
	checkNonNegative("index", i)
	if i >= l.Len() {
		var zero T
		return zero, OutOfRangeError{
			What: "index", ValidLow: 0, ValidHigh: l.Len() - 1, Actual: i}
	}
	n := l.head
	for ; i > 0; i-- {
		n = n.rest
	}
	return n.first, nil
}

// NthOpt is like Nth, except that it returns false instead of an error
// when the list is too short. It still panics if i is negative.
func (l List[T]) NthOpt(i int) (T, bool) {
	checkNonNegative("index", i)
	if i >= l.Len() {
		var zero T
		return zero, false
	}
	n := l.head
	for ; i > 0; i-- {
		n = n.rest
	}
	return n.first, true
}

// CompareLengthWith compares the length of the list with n, returning -1,
// 0 or 1 if the length is smaller than, equal to or greater than n. Since
// lengths are cached it runs in O(1) time. It panics with an
// InvalidArgumentError if n is negative.
func (l List[T]) CompareLengthWith(n int) int {
	checkNonNegative("length", n)
	return cmp.Compare(l.Len(), n)
}

// CompareLengths compares the lengths of two lists, returning -1, 0 or 1.
// Since lengths are cached it runs in O(1) time and inspects no elements,
// so the lists may have different element types.
func CompareLengths[T, U any](l1 List[T], l2 List[U]) int {
	return cmp.Compare(l1.Len(), l2.Len())
}

// String returns a representation of the list like "[1 2 3]", formatting
// each element as with fmt's %v verb.
func (l List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.rest {
		if n != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.first)
	}
	sb.WriteByte(']')
	return sb.String()
}

// builder accumulates a list in order by appending to the tail of a chain
// of fresh nodes. The chain is private to the builder, so writing to the
// nodes does not violate the immutability of any published list. Node
// counts are left unset while building and patched when the chain is
// published by list or attach.
//
// The zero value is an empty builder. A builder must not be used again
// after calling list or attach.
type builder[T any] struct {
	head *node[T]
	tail *node[T]
	n    int
}

func (b *builder[T]) add(elem T) {
	n := &node[T]{first: elem}
	if b.tail == nil {
		b.head = n
	} else {
		b.tail.rest = n
	}
	b.tail = n
	b.n++
}

// list publishes the accumulated chain as a list.
func (b *builder[T]) list() List[T] {
	return b.attach(List[T]{})
}

// attach publishes the accumulated chain with rest appended after it. The
// nodes of rest are shared, not copied.
func (b *builder[T]) attach(rest List[T]) List[T] {
	if b.head == nil {
		return rest
	}
	restLen := rest.Len()
	b.tail.rest = rest.head
	count := b.n + restLen
	for n := b.head; count > restLen; n = n.rest {
		n.count = count
		count--
	}
	return List[T]{b.head}
}
