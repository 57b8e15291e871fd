package list

// ForAll reports whether pred holds for every element of the list. It
// returns true if the list is empty, and stops at the first element for
// which pred returns false.
func (l List[T]) ForAll(pred func(T) bool) bool {
	for n := l.head; n != nil; n = n.rest {
		if !pred(n.first) {
			return false
		}
	}
	return true
}

// Exists reports whether pred holds for at least one element of the list.
// It returns false if the list is empty, and stops at the first element
// for which pred returns true.
func (l List[T]) Exists(pred func(T) bool) bool {
	for n := l.head; n != nil; n = n.rest {
		if pred(n.first) {
			return true
		}
	}
	return false
}

// Contains reports whether some element of the list equals elem.
func Contains[T comparable](l List[T], elem T) bool {
	for n := l.head; n != nil; n = n.rest {
		if n.first == elem {
			return true
		}
	}
	return false
}

// ContainsFunc is like Contains, but uses eq to compare elements, with
// elem as the second argument.
func ContainsFunc[T, U any](l List[T], elem U, eq func(T, U) bool) bool {
	for n := l.head; n != nil; n = n.rest {
		if eq(n.first, elem) {
			return true
		}
	}
	return false
}

// Find returns the first element for which pred holds. It returns
// ErrNotFound if there is no such element.
func (l List[T]) Find(pred func(T) bool) (T, error) {
	for n := l.head; n != nil; n = n.rest {
		if pred(n.first) {
			return n.first, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// FindOpt is like Find, except that it returns false instead of an error
// when there is no matching element.
func (l List[T]) FindOpt(pred func(T) bool) (T, bool) {
	for n := l.head; n != nil; n = n.rest {
		if pred(n.first) {
			return n.first, true
		}
	}
	var zero T
	return zero, false
}

// FindMap applies f to the elements in order and returns the first result
// for which f also returns true. It returns false if f returns false on
// all elements.
func FindMap[T, U any](l List[T], f func(T) (U, bool)) (U, bool) {
	for n := l.head; n != nil; n = n.rest {
		if out, ok := f(n.first); ok {
			return out, true
		}
	}
	var zero U
	return zero, false
}

// Filter returns a list of the elements for which pred holds, preserving
// order.
func (l List[T]) Filter(pred func(T) bool) List[T] {
	var b builder[T]
	for n := l.head; n != nil; n = n.rest {
		if pred(n.first) {
			b.add(n.first)
		}
	}
	return b.list()
}

// FilterIndexed is like Filter, except that pred is also given the index
// of each element, counting from 0.
func (l List[T]) FilterIndexed(pred func(int, T) bool) List[T] {
	var b builder[T]
	i := 0
	for n := l.head; n != nil; n = n.rest {
		if pred(i, n.first) {
			b.add(n.first)
		}
		i++
	}
	return b.list()
}

// Partition returns two lists: the elements for which pred holds, and the
// elements for which it does not. Both preserve the order of the original
// list.
func (l List[T]) Partition(pred func(T) bool) (List[T], List[T]) {
	var yes, no builder[T]
	for n := l.head; n != nil; n = n.rest {
		if pred(n.first) {
			yes.add(n.first)
		} else {
			no.add(n.first)
		}
	}
	return yes.list(), no.list()
}
