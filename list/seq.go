package list

import "iter"

// All returns an iterator over the elements of the list, from front to
// back. The iterator holds O(1) state, and the same iterator can be ranged
// over any number of times; each use starts again from the first element.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.rest {
			if !yield(n.first) {
				return
			}
		}
	}
}

// Collect builds a list from seq, preserving the order of the elements.
// It consumes seq fully, so it does not return if seq is infinite.
func Collect[T any](seq iter.Seq[T]) List[T] {
	var b builder[T]
	for elem := range seq {
		b.add(elem)
	}
	return b.list()
}
