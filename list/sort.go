package list

import "cmp"

// Sort returns a list with the elements sorted in ascending order.
func Sort[T cmp.Ordered](l List[T]) List[T] {
	return SortFunc(l, cmp.Compare[T])
}

// SortFunc returns a list with the elements sorted in ascending order as
// determined by the cmp function, which should return 0 if two elements
// are equal, a negative number if the first is smaller and a positive
// number if it is greater.
//
// The sort is a bottom-up merge sort over a private copy of the nodes:
// it runs in O(n log n) time and, beyond the n output nodes, allocates
// O(1) memory and uses O(1) stack space. The sort is not guaranteed to be
// stable; use SortStableFunc for a stable sort.
func SortFunc[T any](l List[T], cmp func(T, T) int) List[T] {
	head, n := copyChain(l)
	if n > 1 {
		head = mergeSortChain(head, n, cmp)
	}
	return publish(head, n)
}

// SortStableFunc is like SortFunc, but the sort is stable: elements that
// compare equal keep their original order.
func SortStableFunc[T any](l List[T], cmp func(T, T) int) List[T] {
	return SortFunc(l, cmp)
}

// FastSortFunc sorts like SortFunc, using whichever strategy is fastest.
// Like SortFunc, it is not guaranteed to be stable.
func FastSortFunc[T any](l List[T], cmp func(T, T) int) List[T] {
	return SortFunc(l, cmp)
}

// SortUniq returns a list with the elements sorted in ascending order and
// exact duplicates removed.
func SortUniq[T cmp.Ordered](l List[T]) List[T] {
	return SortUniqFunc(l, cmp.Compare[T])
}

// SortUniqFunc is like SortFunc, except that among elements that compare
// equal only the one earliest in the original list is kept.
func SortUniqFunc[T any](l List[T], cmp func(T, T) int) List[T] {
	head, n := copyChain(l)
	if n > 1 {
		head = mergeSortChain(head, n, cmp)
		for nd := head; nd.rest != nil; {
			if cmp(nd.first, nd.rest.first) == 0 {
				nd.rest = nd.rest.rest
				n--
			} else {
				nd = nd.rest
			}
		}
	}
	return publish(head, n)
}

// Merge merges two lists sorted in ascending order into a single sorted
// list.
func Merge[T cmp.Ordered](l1, l2 List[T]) List[T] {
	return MergeFunc(l1, l2, cmp.Compare[T])
}

// MergeFunc merges two lists sorted as determined by the cmp function into
// a single sorted list. When elements compare equal, the element from l1
// comes first. If the inputs are not sorted the result is an arbitrary
// interleaving of the two, but still contains every element of both.
//
// The unexhausted suffix of one input survives into the result as shared
// nodes; all other elements are copied into fresh nodes.
func MergeFunc[T any](l1, l2 List[T], cmp func(T, T) int) List[T] {
	var b builder[T]
	n1, n2 := l1.head, l2.head
	for n1 != nil && n2 != nil {
		if cmp(n1.first, n2.first) <= 0 {
			b.add(n1.first)
			n1 = n1.rest
		} else {
			b.add(n2.first)
			n2 = n2.rest
		}
	}
	if n1 == nil {
		return b.attach(List[T]{n2})
	}
	return b.attach(List[T]{n1})
}

// copyChain copies the elements of l into a fresh nil-terminated chain,
// returning its head and length. The counts of the new nodes are left
// unset; the caller must publish the chain to fix them up.
func copyChain[T any](l List[T]) (*node[T], int) {
	var head, tail *node[T]
	for n := l.head; n != nil; n = n.rest {
		fresh := &node[T]{first: n.first}
		if tail == nil {
			head = fresh
		} else {
			tail.rest = fresh
		}
		tail = fresh
	}
	return head, l.Len()
}

// publish sets the counts of a private chain of n nodes and wraps it in a
// List.
func publish[T any](head *node[T], n int) List[T] {
	count := n
	for nd := head; nd != nil; nd = nd.rest {
		nd.count = count
		count--
	}
	return List[T]{head}
}

// mergeSortChain sorts a private chain of n > 1 nodes by relinking,
// without allocating. Runs of width 1, 2, 4, ... are merged pairwise until
// a single run remains.
func mergeSortChain[T any](head *node[T], n int, cmp func(T, T) int) *node[T] {
	for width := 1; width < n; width *= 2 {
		var newHead, newTail *node[T]
		rest := head
		for rest != nil {
			left, right, next := cutRuns(rest, width)
			mergedHead, mergedTail := mergeChains(left, right, cmp)
			if newTail == nil {
				newHead = mergedHead
			} else {
				newTail.rest = mergedHead
			}
			newTail = mergedTail
			rest = next
		}
		head = newHead
	}
	return head
}

// cutRuns detaches up to two runs of at most width nodes each from the
// front of a chain, terminating both with nil, and returns them along with
// the remainder of the chain.
func cutRuns[T any](chain *node[T], width int) (left, right, rest *node[T]) {
	left = chain
	n := chain
	for i := 1; i < width && n.rest != nil; i++ {
		n = n.rest
	}
	right = n.rest
	n.rest = nil
	if right == nil {
		return left, nil, nil
	}
	n = right
	for i := 1; i < width && n.rest != nil; i++ {
		n = n.rest
	}
	rest = n.rest
	n.rest = nil
	return left, right, rest
}

// mergeChains merges two sorted nil-terminated chains by relinking their
// nodes, returning the head and tail of the merged chain. Ties take the
// node from the left chain, which keeps the overall sort stable.
func mergeChains[T any](left, right *node[T], cmp func(T, T) int) (head, tail *node[T]) {
	var sentinel node[T]
	t := &sentinel
	for left != nil && right != nil {
		if cmp(left.first, right.first) <= 0 {
			t.rest = left
			left = left.rest
		} else {
			t.rest = right
			right = right.rest
		}
		t = t.rest
	}
	if left != nil {
		t.rest = left
	} else {
		t.rest = right
	}
	for t.rest != nil {
		t = t.rest
	}
	return sentinel.rest, t
}
