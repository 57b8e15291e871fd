package list

// Functions with a 2 suffix iterate over two lists in lockstep. They
// require the lists to have equal length and panic with a
// LengthMismatchError otherwise. Since lengths are cached, the check
// happens before any element is visited.

// ForEach2 calls f on corresponding elements of l1 and l2, from front to
// back.
func ForEach2[T, U any](l1 List[T], l2 List[U], f func(T, U)) {
	checkSameLength("ForEach2", l1.Len(), l2.Len())
	n2 := l2.head
	for n1 := l1.head; n1 != nil; n1 = n1.rest {
		f(n1.first, n2.first)
		n2 = n2.rest
	}
}

// Map2 returns a list of f applied to corresponding elements of l1 and l2,
// preserving order.
func Map2[T, U, V any](l1 List[T], l2 List[U], f func(T, U) V) List[V] {
	checkSameLength("Map2", l1.Len(), l2.Len())
	var b builder[V]
	n2 := l2.head
	for n1 := l1.head; n1 != nil; n1 = n1.rest {
		b.add(f(n1.first, n2.first))
		n2 = n2.rest
	}
	return b.list()
}

// RevMap2 is equivalent to Map2(l1, l2, f).Reverse(), but makes a single
// pass over the lists. The function is still called from front to back.
func RevMap2[T, U, V any](l1 List[T], l2 List[U], f func(T, U) V) List[V] {
	checkSameLength("RevMap2", l1.Len(), l2.Len())
	var acc List[V]
	n2 := l2.head
	for n1 := l1.head; n1 != nil; n1 = n1.rest {
		acc = acc.Cons(f(n1.first, n2.first))
		n2 = n2.rest
	}
	return acc
}

// FoldLeft2 folds two lists from the front in lockstep: it calls f on the
// accumulator and corresponding elements of l1 and l2 in turn, and returns
// the final accumulator. It uses constant stack space.
func FoldLeft2[T, U, A any](l1 List[T], l2 List[U], acc A, f func(A, T, U) A) A {
	checkSameLength("FoldLeft2", l1.Len(), l2.Len())
	n2 := l2.head
	for n1 := l1.head; n1 != nil; n1 = n1.rest {
		acc = f(acc, n1.first, n2.first)
		n2 = n2.rest
	}
	return acc
}

// FoldRight2 folds two lists from the back in lockstep. Like FoldRight, it
// recurses once per element pair, so its stack usage is proportional to
// the length of the lists.
func FoldRight2[T, U, A any](l1 List[T], l2 List[U], acc A, f func(T, U, A) A) A {
	checkSameLength("FoldRight2", l1.Len(), l2.Len())
	return foldRightNode2(l1.head, l2.head, acc, f)
}

func foldRightNode2[T, U, A any](n1 *node[T], n2 *node[U], acc A, f func(T, U, A) A) A {
	if n1 == nil {
		return acc
	}
	return f(n1.first, n2.first, foldRightNode2(n1.rest, n2.rest, acc, f))
}

// ForAll2 reports whether pred holds for every pair of corresponding
// elements of l1 and l2. It returns true if the lists are empty, and stops
// at the first pair for which pred returns false.
func ForAll2[T, U any](l1 List[T], l2 List[U], pred func(T, U) bool) bool {
	checkSameLength("ForAll2", l1.Len(), l2.Len())
	n2 := l2.head
	for n1 := l1.head; n1 != nil; n1 = n1.rest {
		if !pred(n1.first, n2.first) {
			return false
		}
		n2 = n2.rest
	}
	return true
}

// Exists2 reports whether pred holds for at least one pair of
// corresponding elements of l1 and l2. It returns false if the lists are
// empty, and stops at the first pair for which pred returns true.
func Exists2[T, U any](l1 List[T], l2 List[U], pred func(T, U) bool) bool {
	checkSameLength("Exists2", l1.Len(), l2.Len())
	n2 := l2.head
	for n1 := l1.head; n1 != nil; n1 = n1.rest {
		if pred(n1.first, n2.first) {
			return true
		}
		n2 = n2.rest
	}
	return false
}
