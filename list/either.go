package list

// Either holds either a left value of type L or a right value of type R.
// Use Left or Right to construct one. The zero value is a left value
// holding the zero value of L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left returns an Either holding the given left value.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Right returns an Either holding the given right value.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

// IsLeft reports whether e holds a left value.
func (e Either[L, R]) IsLeft() bool { return !e.isRight }

// IsRight reports whether e holds a right value.
func (e Either[L, R]) IsRight() bool { return e.isRight }

// GetLeft returns the left value and whether e holds one.
func (e Either[L, R]) GetLeft() (L, bool) {
	return e.left, !e.isRight
}

// GetRight returns the right value and whether e holds one.
func (e Either[L, R]) GetRight() (R, bool) {
	return e.right, e.isRight
}

// PartitionMap applies f to each element of the list and returns two
// lists: the left values and the right values that f produces. Both
// preserve the order of the original list.
func PartitionMap[T, L, R any](l List[T], f func(T) Either[L, R]) (List[L], List[R]) {
	var lefts builder[L]
	var rights builder[R]
	for n := l.head; n != nil; n = n.rest {
		e := f(n.first)
		if e.isRight {
			rights.add(e.right)
		} else {
			lefts.add(e.left)
		}
	}
	return lefts.list(), rights.list()
}
