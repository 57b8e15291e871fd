package list

// Reverse returns a list with the elements in reverse order.
func (l List[T]) Reverse() List[T] {
	return l.RevAppend(List[T]{})
}

// RevAppend is equivalent to l.Reverse().Append(m), but makes a single
// pass over l. The result shares the nodes of m.
func (l List[T]) RevAppend(m List[T]) List[T] {
	acc := m
	for n := l.head; n != nil; n = n.rest {
		acc = acc.Cons(n.first)
	}
	return acc
}

// Append returns a list with all elements of l followed by all elements of
// m. The elements of l are copied into fresh nodes; the nodes of m are
// shared.
func (l List[T]) Append(m List[T]) List[T] {
	var b builder[T]
	for n := l.head; n != nil; n = n.rest {
		b.add(n.first)
	}
	return b.attach(m)
}

// Concat concatenates a list of lists, preserving the order of elements
// across and within the inner lists. The nodes of the last inner list are
// shared; all other elements are copied into fresh nodes.
func Concat[T any](ls List[List[T]]) List[T] {
	var b builder[T]
	for n := ls.head; n != nil; n = n.rest {
		if n.rest == nil {
			return b.attach(n.first)
		}
		for inner := n.first.head; inner != nil; inner = inner.rest {
			b.add(inner.first)
		}
	}
	return b.list()
}

// Map returns a list of f applied to each element of l, preserving order.
// The function is called on each element exactly once, from front to back.
func Map[T, U any](l List[T], f func(T) U) List[U] {
	var b builder[U]
	for n := l.head; n != nil; n = n.rest {
		b.add(f(n.first))
	}
	return b.list()
}

// MapIndexed is like Map, except that f is also given the index of each
// element, counting from 0.
func MapIndexed[T, U any](l List[T], f func(int, T) U) List[U] {
	var b builder[U]
	i := 0
	for n := l.head; n != nil; n = n.rest {
		b.add(f(i, n.first))
		i++
	}
	return b.list()
}

// RevMap is equivalent to Map(l, f).Reverse(), but makes a single pass
// over l. The function is still called from front to back.
func RevMap[T, U any](l List[T], f func(T) U) List[U] {
	var acc List[U]
	for n := l.head; n != nil; n = n.rest {
		acc = acc.Cons(f(n.first))
	}
	return acc
}

// FilterMap returns a list of the first return value of f applied to each
// element for which f also returns true, preserving order.
func FilterMap[T, U any](l List[T], f func(T) (U, bool)) List[U] {
	var b builder[U]
	for n := l.head; n != nil; n = n.rest {
		if out, ok := f(n.first); ok {
			b.add(out)
		}
	}
	return b.list()
}

// ConcatMap is equivalent to Concat(Map(l, f)), but builds the result in a
// single pass without materializing the intermediate list of lists. The
// nodes of the last f result are shared.
func ConcatMap[T, U any](l List[T], f func(T) List[U]) List[U] {
	var b builder[U]
	for n := l.head; n != nil; n = n.rest {
		if n.rest == nil {
			return b.attach(f(n.first))
		}
		for inner := f(n.first).head; inner != nil; inner = inner.rest {
			b.add(inner.first)
		}
	}
	return b.list()
}
