package selection

// The engine shares global pointer listeners with its host. Each listener is
// tracked as a subscription token that must be released exactly once; Disable
// and Destroy sweep the whole set so no gesture can leak a callback.

// subKind names the two global listeners the engine may hold.
type subKind int

const (
	subPointerUp subKind = iota
	subPointerMove
)

func (k subKind) String() string {
	if k == subPointerUp {
		return "pointer-up"
	}
	return "pointer-move"
}

// subscription is a release-once token for one acquired listener.
type subscription struct {
	kind     subKind
	release  func()
	released bool
}

func (s *subscription) Release() {
	if s == nil || s.released {
		return
	}
	s.released = true
	if s.release != nil {
		s.release()
	}
}

// subscriptionSet owns the engine's live tokens. Single-threaded like the
// rest of the engine: all calls happen on the UI event loop.
type subscriptionSet struct {
	active []*subscription
}

// Acquire registers a token. release may be nil when the host needs no
// teardown beyond the engine-side bookkeeping.
func (ss *subscriptionSet) Acquire(kind subKind, release func()) *subscription {
	s := &subscription{kind: kind, release: release}
	ss.active = append(ss.active, s)
	return s
}

// Release drops one token from the set and runs its teardown.
func (ss *subscriptionSet) Release(s *subscription) {
	if s == nil {
		return
	}
	s.Release()
	for i, cur := range ss.active {
		if cur == s {
			ss.active = append(ss.active[:i], ss.active[i+1:]...)
			break
		}
	}
}

// ReleaseAll tears down every live token. Safe to call repeatedly.
func (ss *subscriptionSet) ReleaseAll() {
	for _, s := range ss.active {
		s.Release()
	}
	ss.active = ss.active[:0]
}

// Holds reports whether a token of the given kind is live.
func (ss *subscriptionSet) Holds(kind subKind) bool {
	for _, s := range ss.active {
		if s.kind == kind {
			return true
		}
	}
	return false
}

// Count returns the number of live tokens, for leak instrumentation.
func (ss *subscriptionSet) Count() int { return len(ss.active) }
