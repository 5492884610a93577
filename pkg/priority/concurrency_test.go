package priority

import (
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"
)

// The tree itself is single-owner; sharing it across goroutines requires the
// caller to wrap every operation in external mutual exclusion. This exercises
// that contract: four workers churn block/unblock/schedule under one mutex
// and the tree must come out structurally intact.
func TestExternalSerialization(t *testing.T) {
	tree := New()

	const workers = 4
	const perWorker = 8

	var ids []uint32
	for w := 0; w < workers; w++ {
		for i := 0; i < perWorker; i++ {
			id := uint32(2*(w*perWorker+i) + 1)
			ids = append(ids, id)
			if err := tree.Insert(id, 0, 16, false); err != nil {
				t.Fatalf("Insert(%d) error: %v", id, err)
			}
		}
	}

	var mu sync.Mutex
	var g errgroup.Group

	for w := 0; w < workers; w++ {
		base := w * perWorker
		g.Go(func() error {
			for round := 0; round < 50; round++ {
				for i := 0; i < perWorker; i++ {
					id := uint32(2*(base+i) + 1)

					mu.Lock()
					err := tree.Block(id)
					mu.Unlock()
					if err != nil {
						return err
					}

					mu.Lock()
					_, err = tree.Next()
					mu.Unlock()
					if err != nil && !IsDeadlock(err) {
						return err
					}

					mu.Lock()
					err = tree.Unblock(id)
					mu.Unlock()
					if err != nil {
						return err
					}
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatalf("worker error: %v", err)
	}

	if tree.Len() != len(ids) {
		t.Fatalf("Len() = %d, want %d", tree.Len(), len(ids))
	}

	// Every stream ended unblocked and equal-weighted. The churn leaves the
	// round-robin mid-round, so counts over K rounds may straddle a round
	// boundary by one, never more.
	const rounds = 10
	counts := make(map[uint32]int)
	for _, id := range nextN(t, tree, rounds*len(ids)) {
		counts[id]++
	}
	for _, id := range ids {
		if counts[id] < rounds-1 || counts[id] > rounds+1 {
			t.Errorf("stream %d scheduled %d times over %d rounds, want %d±1", id, counts[id], rounds, rounds)
		}
	}
}
