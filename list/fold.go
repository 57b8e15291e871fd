package list

// ForEach calls f on each element of the list, from front to back.
func (l List[T]) ForEach(f func(T)) {
	for n := l.head; n != nil; n = n.rest {
		f(n.first)
	}
}

// ForEachIndexed is like ForEach, except that f is also given the index of
// each element, counting from 0.
func (l List[T]) ForEachIndexed(f func(int, T)) {
	i := 0
	for n := l.head; n != nil; n = n.rest {
		f(i, n.first)
		i++
	}
}

// FoldLeft folds the list from the front: it calls f on the accumulator
// and each element in turn, starting from acc, and returns the final
// accumulator. It uses constant stack space.
func FoldLeft[T, A any](l List[T], acc A, f func(A, T) A) A {
	for n := l.head; n != nil; n = n.rest {
		acc = f(acc, n.first)
	}
	return acc
}

// FoldRight folds the list from the back: it calls f on each element and
// the accumulator in turn, starting from the last element and acc, and
// returns the final accumulator.
//
// FoldRight recurses once per element, so its stack usage is proportional
// to the length of the list. Prefer FoldLeft for lists that may be long.
func FoldRight[T, A any](l List[T], acc A, f func(T, A) A) A {
	return foldRightNode(l.head, acc, f)
}

func foldRightNode[T, A any](n *node[T], acc A, f func(T, A) A) A {
	if n == nil {
		return acc
	}
	return f(n.first, foldRightNode(n.rest, acc, f))
}

// FoldLeftMap combines FoldLeft and Map: it threads an accumulator through
// f from front to back, and also collects the elements f produces into a
// new list, preserving order. It returns the final accumulator and the
// collected list.
func FoldLeftMap[T, U, A any](l List[T], acc A, f func(A, T) (A, U)) (A, List[U]) {
	var b builder[U]
	for n := l.head; n != nil; n = n.rest {
		var out U
		acc, out = f(acc, n.first)
		b.add(out)
	}
	return acc, b.list()
}
