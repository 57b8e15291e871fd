package list

// Pair holds two values. Lists of pairs are produced by Zip and consumed
// by Unzip and the association list functions like Assoc.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip returns a list of pairs of corresponding elements of l1 and l2. It
// requires the lists to have equal length and panics with a
// LengthMismatchError otherwise.
func Zip[A, B any](l1 List[A], l2 List[B]) List[Pair[A, B]] {
	checkSameLength("Zip", l1.Len(), l2.Len())
	var b builder[Pair[A, B]]
	n2 := l2.head
	for n1 := l1.head; n1 != nil; n1 = n1.rest {
		b.add(Pair[A, B]{n1.first, n2.first})
		n2 = n2.rest
	}
	return b.list()
}

// Unzip returns a list of the first fields and a list of the second fields
// of the pairs, both preserving the order of l.
func Unzip[A, B any](l List[Pair[A, B]]) (List[A], List[B]) {
	var firsts builder[A]
	var seconds builder[B]
	for n := l.head; n != nil; n = n.rest {
		firsts.add(n.first.First)
		seconds.add(n.first.Second)
	}
	return firsts.list(), seconds.list()
}
