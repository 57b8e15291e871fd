package list

import (
	"errors"
	"fmt"
	"testing"

	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

const NWorkers = 16

// Lists are immutable, so any number of goroutines may derive new lists
// from a shared one without synchronization. Run with -race to make this
// test meaningful.
func TestConcurrentDerivations(t *testing.T) {
	defer goleak.VerifyNone(t)

	base := Init(NSequential, func(i int) int { return i })

	var g errgroup.Group
	for w := 0; w < NWorkers; w++ {
		g.Go(func() error {
			l := base.Cons(-1 - w)
			if head, err := l.Head(); err != nil || head != -1-w {
				return fmt.Errorf("head is (%d, %v), want (%d, nil)", head, err, -1-w)
			}
			tl, err := l.Tail()
			if err != nil {
				return err
			}
			if tl.head != base.head {
				return errors.New("Tail does not share the base list")
			}

			evens := base.Filter(func(x int) bool { return x%2 == 0 })
			if evens.Len() != base.Len()/2 {
				return fmt.Errorf("filtered list has %d elements, want %d",
					evens.Len(), base.Len()/2)
			}

			if !Equal(Sort(base.Reverse()), base) {
				return errors.New("sorting the reversed base does not recover the base")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Error(err)
	}
}
