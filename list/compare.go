package list

import "cmp"

// Equal reports whether two lists have equal length and all corresponding
// elements equal. Since lengths are cached, lists of different lengths
// compare unequal without any element being inspected.
func Equal[T comparable](l1, l2 List[T]) bool {
	if l1.Len() != l2.Len() {
		return false
	}
	n2 := l2.head
	for n1 := l1.head; n1 != nil; n1 = n1.rest {
		if n1.first != n2.first {
			return false
		}
		n2 = n2.rest
	}
	return true
}

// EqualFunc is like Equal, but uses eq to compare elements. On lists of
// different lengths it returns false without calling eq.
func EqualFunc[T, U any](l1 List[T], l2 List[U], eq func(T, U) bool) bool {
	if l1.Len() != l2.Len() {
		return false
	}
	n2 := l2.head
	for n1 := l1.head; n1 != nil; n1 = n1.rest {
		if !eq(n1.first, n2.first) {
			return false
		}
		n2 = n2.rest
	}
	return true
}

// Compare compares two lists lexicographically: elements are compared
// pairwise from the front until a pair differs, and if one list runs out
// first it is considered smaller. The result is -1, 0 or 1. Note that the
// comparison is not by length: Of(9) is greater than Of(1, 2).
func Compare[T cmp.Ordered](l1, l2 List[T]) int {
	n2 := l2.head
	for n1 := l1.head; n1 != nil; n1 = n1.rest {
		if n2 == nil {
			return 1
		}
		if c := cmp.Compare(n1.first, n2.first); c != 0 {
			return c
		}
		n2 = n2.rest
	}
	if n2 != nil {
		return -1
	}
	return 0
}

// CompareFunc is like Compare, but uses cmp to compare elements. The
// result of cmp should be 0 if the elements are equal, negative if the
// first is smaller and positive if it is greater; the result of
// CompareFunc is always -1, 0 or 1.
func CompareFunc[T, U any](l1 List[T], l2 List[U], cmp func(T, U) int) int {
	n2 := l2.head
	for n1 := l1.head; n1 != nil; n1 = n1.rest {
		if n2 == nil {
			return 1
		}
		if c := cmp(n1.first, n2.first); c != 0 {
			if c < 0 {
				return -1
			}
			return 1
		}
		n2 = n2.rest
	}
	if n2 != nil {
		return -1
	}
	return 0
}
