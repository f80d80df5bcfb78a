package selection

import "testing"

func TestSubscriptionSet_ReleaseOnce(t *testing.T) {
	var ss subscriptionSet
	released := 0
	s := ss.Acquire(subPointerMove, func() { released++ })
	if ss.Count() != 1 || !ss.Holds(subPointerMove) {
		t.Fatalf("acquire not tracked")
	}
	ss.Release(s)
	ss.Release(s) // second release must be a no-op
	s.Release()
	if released != 1 {
		t.Fatalf("release ran %d times, want exactly once", released)
	}
	if ss.Count() != 0 || ss.Holds(subPointerMove) {
		t.Fatalf("token not removed from set")
	}
}

func TestSubscriptionSet_ReleaseAllSweepsEverything(t *testing.T) {
	var ss subscriptionSet
	released := 0
	ss.Acquire(subPointerUp, func() { released++ })
	ss.Acquire(subPointerMove, func() { released++ })
	ss.ReleaseAll()
	ss.ReleaseAll()
	if released != 2 || ss.Count() != 0 {
		t.Fatalf("sweep incomplete: released=%d count=%d", released, ss.Count())
	}
}
