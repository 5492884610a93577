package priority

import (
	"fmt"
	"sync"
)

// Stream is one node in the dependency tree (RFC 7540 Section 5.3).
// A stream with data pending is active; an active stream hides all of its
// descendants from the scheduler. Among siblings, transmission opportunities
// are distributed proportionally to weight.
type Stream struct {
	id     uint32
	weight uint16 // decoded weight, 1-256
	active bool

	// parent is a non-owning back-reference, consulted only to locate the
	// parent during removal. The parent owns its children.
	parent   *Stream
	children []*Stream // insertion order

	childQueue childQueue
	lastLevel  int64

	// deficit carries the fractional remainder of 256/weight across rounds
	// so scheduling is exactly weight-proportional over a full period. It
	// stays with the stream when it is re-parented.
	deficit uint16
}

// ID returns the stream identifier.
func (s *Stream) ID() uint32 {
	return s.id
}

// Weight returns the decoded stream weight (1-256).
func (s *Stream) Weight() uint16 {
	return s.weight
}

// Active reports whether the stream has data ready to send.
func (s *Stream) Active() bool {
	return s.active
}

// String renders the stream for diagnostics.
func (s *Stream) String() string {
	return fmt.Sprintf("Stream<id=%d, weight=%d>", s.id, s.weight)
}

// addChild links a parentless stream beneath s. The child joins the queue at
// the current wavefront (s.lastLevel), never at level 0, so a late joiner is
// not scheduled repeatedly to catch up on rounds it was absent for.
func (s *Stream) addChild(c *Stream) {
	c.parent = s
	s.children = append(s.children, c)
	s.childQueue.push(s.lastLevel, c)
}

// addChildExclusive makes c the sole child of s; every previous child of s
// becomes a child of c (RFC 7540 Section 5.3.3, exclusive flag).
func (s *Stream) addChildExclusive(c *Stream) {
	old := s.children
	s.children = nil
	s.childQueue = nil
	s.lastLevel = 0
	s.addChild(c)

	for _, oc := range old {
		oc.parent = nil
		c.addChild(oc)
	}
}

// removeChild unlinks c from s and re-parents c's children to s, joining
// them at s's current wavefront. Linear in s's fan-out; removal is rare
// relative to scheduling.
func (s *Stream) removeChild(c *Stream) {
	for i, cc := range s.children {
		if cc == c {
			s.children = append(s.children[:i], s.children[i+1:]...)
			break
		}
	}

	// Rebuild the queue on a scratch heap and swap it in whole, so a fault
	// mid-rebuild cannot leave a half-filtered queue behind.
	s.childQueue = s.childQueue.without(c)

	grandchildren := c.children
	c.children = nil
	for _, g := range grandchildren {
		g.parent = nil
		s.addChild(g)
	}
	c.parent = nil
}

// schedule returns the ID of the next active stream at or below s, walking
// the weighted queue in level order and recursing through inactive children.
// Every popped entry is re-inserted with its level advanced whether or not
// it was chosen; an inactive subtree must not be probed again before its
// next turn. Returns errQueueEmpty when no active descendant exists.
//
// Must only be called on inactive nodes: an active node is scheduled by its
// parent without descending.
func (s *Stream) schedule() (uint32, error) {
	var (
		nextID uint32
		found  bool
		popped []queueEntry
	)

	for !found {
		e, ok := s.childQueue.pop()
		if !ok {
			break
		}
		popped = append(popped, e)

		if e.child.active {
			// A child with data is chosen without descending: it dominates
			// its own descendants.
			nextID = e.child.id
			found = true
			continue
		}

		if id, err := e.child.schedule(); err == nil {
			nextID = id
			found = true
		}
		// errQueueEmpty: the child had no active descendants; keep looking.
	}

	for _, e := range popped {
		s.lastLevel = e.level
		c := e.child
		step := (256 + int64(c.deficit)) / int64(c.weight)
		c.deficit = uint16((256 + int64(c.deficit)) % int64(c.weight))
		s.childQueue.push(e.level+step, c)
	}

	if !found {
		return 0, errQueueEmpty
	}
	return nextID, nil
}

// ====== Stream Node Pooling ======
// Nodes churn with stream lifecycles; recycling them keeps insert/remove
// allocation-free in the steady state.

var nodePool = sync.Pool{
	New: func() any {
		return &Stream{}
	},
}

// newStream retrieves a node from the pool and resets it. New streams start
// active: they are created because the framing layer has data for them.
func newStream(id uint32, weight uint16) *Stream {
	s := nodePool.Get().(*Stream)

	s.id = id
	s.weight = weight
	s.active = true
	s.parent = nil
	s.children = s.children[:0]
	s.childQueue = s.childQueue[:0]
	s.lastLevel = 0
	s.deficit = 0

	return s
}

// releaseStream returns a detached node to the pool. The caller must have
// re-parented its children already.
func releaseStream(s *Stream) {
	s.parent = nil
	s.children = s.children[:0]
	s.childQueue = s.childQueue[:0]
	nodePool.Put(s)
}
