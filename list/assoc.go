package list

// A list of pairs can be used as an association list that maps keys (the
// First fields) to values (the Second fields). Lookups find the leftmost
// pair with a matching key, so consing a new pair onto the list shadows
// any earlier binding of the same key.
//
// Functions without a Func suffix compare keys with ==; functions with a
// Func suffix take an explicit equality function, with the queried key as
// the second argument.

// Assoc returns the value of the leftmost pair whose key equals k. It
// returns ErrNotFound if there is no such pair.
func Assoc[K comparable, V any](l List[Pair[K, V]], k K) (V, error) {
	for n := l.head; n != nil; n = n.rest {
		if n.first.First == k {
			return n.first.Second, nil
		}
	}
	var zero V
	return zero, ErrNotFound
}

// AssocOpt is like Assoc, except that it returns false instead of an error
// when there is no matching pair.
func AssocOpt[K comparable, V any](l List[Pair[K, V]], k K) (V, bool) {
	for n := l.head; n != nil; n = n.rest {
		if n.first.First == k {
			return n.first.Second, true
		}
	}
	var zero V
	return zero, false
}

// AssocFunc is like Assoc, but uses eq to compare keys.
func AssocFunc[K, V, Q any](l List[Pair[K, V]], k Q, eq func(K, Q) bool) (V, error) {
	for n := l.head; n != nil; n = n.rest {
		if eq(n.first.First, k) {
			return n.first.Second, nil
		}
	}
	var zero V
	return zero, ErrNotFound
}

// AssocOptFunc is like AssocOpt, but uses eq to compare keys.
func AssocOptFunc[K, V, Q any](l List[Pair[K, V]], k Q, eq func(K, Q) bool) (V, bool) {
	for n := l.head; n != nil; n = n.rest {
		if eq(n.first.First, k) {
			return n.first.Second, true
		}
	}
	var zero V
	return zero, false
}

// HasKey reports whether some pair's key equals k.
func HasKey[K comparable, V any](l List[Pair[K, V]], k K) bool {
	for n := l.head; n != nil; n = n.rest {
		if n.first.First == k {
			return true
		}
	}
	return false
}

// HasKeyFunc is like HasKey, but uses eq to compare keys.
func HasKeyFunc[K, V, Q any](l List[Pair[K, V]], k Q, eq func(K, Q) bool) bool {
	for n := l.head; n != nil; n = n.rest {
		if eq(n.first.First, k) {
			return true
		}
	}
	return false
}

// RemoveKey returns a list with the leftmost pair whose key equals k
// removed, preserving the order of the remaining pairs. At most one pair
// is removed; pairs after it keep binding the same key. If there is no
// matching pair the list is returned unchanged.
//
// The pairs before the removed one are copied into fresh nodes; the nodes
// after it are shared.
func RemoveKey[K comparable, V any](l List[Pair[K, V]], k K) List[Pair[K, V]] {
	return removeKey(l, func(key K) bool { return key == k })
}

// RemoveKeyFunc is like RemoveKey, but uses eq to compare keys.
func RemoveKeyFunc[K, V, Q any](l List[Pair[K, V]], k Q, eq func(K, Q) bool) List[Pair[K, V]] {
	return removeKey(l, func(key K) bool { return eq(key, k) })
}

func removeKey[K, V any](l List[Pair[K, V]], match func(K) bool) List[Pair[K, V]] {
	var found *node[Pair[K, V]]
	for n := l.head; n != nil; n = n.rest {
		if match(n.first.First) {
			found = n
			break
		}
	}
	if found == nil {
		return l
	}
	var b builder[Pair[K, V]]
	for n := l.head; n != found; n = n.rest {
		b.add(n.first)
	}
	return b.attach(List[Pair[K, V]]{found.rest})
}
