package list

import (
	"math/rand"
	"slices"
	"testing"
	"testing/quick"

	"github.com/xiaq/persistent/tt"
)

func TestSort(t *testing.T) {
	tt.Test(t, Sort[int],
		Args(Empty[int]()).Rets(Empty[int]()),
		Args(Of(1)).Rets(Of(1)),
		Args(Of(1, 2, 3)).Rets(Of(1, 2, 3)),
		Args(Of(3, 2, 1)).Rets(Of(1, 2, 3)),
		Args(Of(2, 1, 3, 1, 2)).Rets(Of(1, 1, 2, 2, 3)),
	)
	checkCounts(t, Sort(Of(5, 3, 8, 1, 9, 2)))
}

func TestSortFunc(t *testing.T) {
	descending := func(x, y int) int { return y - x }
	tt.Test(t, SortFunc[int],
		Args(Empty[int](), descending).Rets(Empty[int]()),
		Args(Of(1, 3, 2), descending).Rets(Of(3, 2, 1)),
	)
}

func TestSortFuncVariants(t *testing.T) {
	descending := func(x, y int) int { return y - x }
	l := Of(2, 3, 1, 3)
	want := Of(3, 3, 2, 1)
	if got := SortStableFunc(l, descending); !Equal(got, want) {
		t.Errorf("SortStableFunc returns %v, want %v", got, want)
	}
	if got := FastSortFunc(l, descending); !Equal(got, want) {
		t.Errorf("FastSortFunc returns %v, want %v", got, want)
	}
}

func TestSortDoesNotChangeOriginal(t *testing.T) {
	l := Of(3, 1, 2)
	Sort(l)
	if want := Of(3, 1, 2); !Equal(l, want) {
		t.Errorf("original list is %v after sorting, want %v", l, want)
	}
	checkCounts(t, l)
}

// byKey compares pairs by the key field only, so that the order of the
// sequence numbers among equal keys reveals whether a sort is stable.
func byKey(p1, p2 Pair[int, int]) int {
	return p1.First - p2.First
}

func TestSortStableFuncIsStable(t *testing.T) {
	byFirst := func(p1, p2 Pair[int, string]) int { return p1.First - p2.First }
	got := SortStableFunc(
		Of(Pair[int, string]{1, "a"}, Pair[int, string]{1, "b"}, Pair[int, string]{0, "c"}),
		byFirst)
	want := Of(Pair[int, string]{0, "c"}, Pair[int, string]{1, "a"}, Pair[int, string]{1, "b"})
	if !Equal(got, want) {
		t.Errorf("SortStableFunc returns %v, want %v", got, want)
	}

	var pairs []Pair[int, int]
	for seq := 0; seq < NSequential; seq++ {
		pairs = append(pairs, Pair[int, int]{rand.Intn(0x10), seq})
	}
	sorted := SortStableFunc(Of(pairs...), byKey)

	if sorted.Len() != len(pairs) {
		t.Fatalf("sorted list has %d elements, want %d", sorted.Len(), len(pairs))
	}
	var prev Pair[int, int]
	first := true
	for p := range sorted.All() {
		if !first {
			if p.First < prev.First {
				t.Fatalf("pair %v sorted after %v", p, prev)
			}
			if p.First == prev.First && p.Second < prev.Second {
				t.Fatalf("equal pair %v sorted after %v", p, prev)
			}
		}
		prev, first = p, false
	}
}

func TestSortAgreesWithSlices(t *testing.T) {
	err := quick.Check(func(xs []int) bool {
		want := slices.Clone(xs)
		slices.Sort(want)
		return Equal(Sort(Of(xs...)), Of(want...))
	}, nil)
	if err != nil {
		t.Error(err)
	}
}

func TestSortIsIdempotent(t *testing.T) {
	err := quick.Check(func(xs []int) bool {
		sorted := Sort(Of(xs...))
		return Equal(Sort(sorted), sorted)
	}, nil)
	if err != nil {
		t.Error(err)
	}
}

func TestMergeAgreesWithSortedConcat(t *testing.T) {
	err := quick.Check(func(xs, ys []int) bool {
		l1, l2 := Sort(Of(xs...)), Sort(Of(ys...))
		return Equal(Merge(l1, l2), Sort(l1.Append(l2)))
	}, nil)
	if err != nil {
		t.Error(err)
	}
}

func TestSortBigRandom(t *testing.T) {
	xs := make([]int, NSequential)
	for i := range xs {
		xs[i] = rand.Intn(NSequential / 2)
	}
	got := Sort(Of(xs...))
	slices.Sort(xs)
	if !Equal(got, Of(xs...)) {
		t.Errorf("sorting a big random list disagrees with slices.Sort")
	}
	checkCounts(t, got)
}

func TestSortUniq(t *testing.T) {
	tt.Test(t, SortUniq[int],
		Args(Empty[int]()).Rets(Empty[int]()),
		Args(Of(1)).Rets(Of(1)),
		Args(Of(2, 1, 3, 1, 2, 1)).Rets(Of(1, 2, 3)),
		Args(Of(1, 1, 1)).Rets(Of(1)),
		Args(Of(3, 2, 1)).Rets(Of(1, 2, 3)),
	)
	checkCounts(t, SortUniq(Of(5, 3, 5, 1, 3, 5)))
}

func TestSortUniqFuncKeepsFirstOfEqualElements(t *testing.T) {
	got := SortUniqFunc(
		Of(Pair[int, int]{2, 0}, Pair[int, int]{1, 1}, Pair[int, int]{2, 2},
			Pair[int, int]{1, 3}),
		byKey)
	want := Of(Pair[int, int]{1, 1}, Pair[int, int]{2, 0})
	if !Equal(got, want) {
		t.Errorf("SortUniqFunc returns %v, want %v", got, want)
	}
}

func TestMerge(t *testing.T) {
	tt.Test(t, Merge[int],
		Args(Empty[int](), Empty[int]()).Rets(Empty[int]()),
		Args(Of(1, 3), Empty[int]()).Rets(Of(1, 3)),
		Args(Empty[int](), Of(2, 4)).Rets(Of(2, 4)),
		Args(Of(1, 3, 5), Of(2, 4)).Rets(Of(1, 2, 3, 4, 5)),
		Args(Of(1, 2), Of(3, 4)).Rets(Of(1, 2, 3, 4)),
	)
}

func TestMergeFuncTakesTiesFromFirstList(t *testing.T) {
	l1 := Of(Pair[int, int]{1, 100}, Pair[int, int]{2, 100})
	l2 := Of(Pair[int, int]{1, 200}, Pair[int, int]{3, 200})
	got := MergeFunc(l1, l2, byKey)
	want := Of(Pair[int, int]{1, 100}, Pair[int, int]{1, 200},
		Pair[int, int]{2, 100}, Pair[int, int]{3, 200})
	if !Equal(got, want) {
		t.Errorf("MergeFunc returns %v, want %v", got, want)
	}
}

func TestMergeSharesUnexhaustedSuffix(t *testing.T) {
	l1 := Of(1, 2)
	l2 := Of(5, 6, 7)
	got := Merge(l1, l2)
	if nodeAt(got, 2) != l2.head {
		t.Errorf("Merge does not share the unexhausted suffix")
	}
	checkCounts(t, got)
}

func BenchmarkSortNative1(b *testing.B) { nativeSort(b, N1) }
func BenchmarkSortNative2(b *testing.B) { nativeSort(b, N2) }
func BenchmarkSortNative3(b *testing.B) { nativeSort(b, N3) }

// nativeSort sorts a slice of n random ints with slices.Sort, repeating for
// b.N times.
func nativeSort(b *testing.B, n int) {
	xs := getRandomInts(b, n)
	b.ResetTimer()
	for r := 0; r < b.N; r++ {
		ys := slices.Clone(xs)
		slices.Sort(ys)
	}
}

func BenchmarkSortPersistent1(b *testing.B) { persistentSort(b, N1) }
func BenchmarkSortPersistent2(b *testing.B) { persistentSort(b, N2) }
func BenchmarkSortPersistent3(b *testing.B) { persistentSort(b, N3) }

// persistentSort sorts a list of n random ints with Sort, repeating for b.N
// times.
func persistentSort(b *testing.B, n int) {
	l := Of(getRandomInts(b, n)...)
	b.ResetTimer()
	for r := 0; r < b.N; r++ {
		Sort(l)
	}
}

var randomInts []int

// getRandomInts returns a slice of n random ints. It builds the backing
// slice once and caches it.
func getRandomInts(b *testing.B, n int) []int {
	if len(randomInts) < n {
		b.StopTimer()
		defer b.StartTimer()
		for len(randomInts) < n {
			randomInts = append(randomInts, rand.Int())
		}
	}
	return randomInts[:n]
}
