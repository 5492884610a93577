package priority

// PriorityTree stores the streams of one HTTP/2 connection according to
// their dependencies and weights, and answers which stream should transmit
// the next unit of data (RFC 7540 Section 5.3).
//
// A tree is owned by a single connection handler. It is not safe for
// concurrent use; callers that share one across goroutines must wrap every
// operation in external mutual exclusion.
type PriorityTree struct {
	root    *Stream
	streams map[uint32]*Stream

	cfg     TreeConfig
	limiter *priorityUpdateLimiter
	stats   TreeStats
}

// TreeStats counts tree operations since construction.
type TreeStats struct {
	Inserts   uint64
	Removes   uint64
	Blocks    uint64
	Unblocks  uint64
	Schedules uint64
	Deadlocks uint64
	Streams   int
}

// New creates an empty priority tree with the default configuration.
func New() *PriorityTree {
	return NewWithConfig(nil)
}

// NewWithConfig creates an empty priority tree. A nil config means
// DefaultTreeConfig; the config is copied and normalized, so the caller may
// reuse it.
func NewWithConfig(cfg *TreeConfig) *PriorityTree {
	if cfg == nil {
		cfg = DefaultTreeConfig()
	}
	c := *cfg
	c.normalize()

	root := newStream(RootStreamID, 1)
	root.active = false

	t := &PriorityTree{
		root:    root,
		streams: map[uint32]*Stream{RootStreamID: root},
		cfg:     c,
	}
	if c.MaxPriorityUpdatesPerSecond > 0 {
		t.limiter = newPriorityUpdateLimiter(c.MaxPriorityUpdatesPerSecond, c.PriorityRateLimitWindow)
	}
	return t
}

// Insert adds a stream beneath dependsOn (0 for the root) with the given
// decoded weight. If exclusive is set, the stream displaces the parent's
// existing children, which become its own children; this is permitted with
// dependsOn == 0 as well. The new stream starts active.
func (t *PriorityTree) Insert(id, dependsOn uint32, weight uint16, exclusive bool) error {
	if id == RootStreamID || id > MaxStreamID {
		return streamError("insert", id, ErrInvalidStreamID)
	}
	if weight < MinWeight || weight > MaxWeight {
		return streamError("insert", id, ErrInvalidWeight)
	}
	if _, ok := t.streams[id]; ok {
		return streamError("insert", id, ErrDuplicateStream)
	}
	if t.cfg.MaxStreams > 0 && t.Len() >= t.cfg.MaxStreams {
		return streamError("insert", id, ErrTooManyStreams)
	}
	parent, ok := t.streams[dependsOn]
	if !ok {
		return streamError("insert", id, ErrUnknownParent)
	}

	s := newStream(id, weight)
	if exclusive {
		parent.addChildExclusive(s)
	} else {
		parent.addChild(s)
	}
	t.streams[id] = s
	t.stats.Inserts++
	return nil
}

// Remove deletes a stream. Its children are re-parented to its parent, not
// destroyed, and join that parent's queue at the current wavefront.
func (t *PriorityTree) Remove(id uint32) error {
	s, ok := t.streams[id]
	if !ok || id == RootStreamID {
		return streamError("remove", id, ErrUnknownStream)
	}

	delete(t.streams, id)
	s.parent.removeChild(s)
	releaseStream(s)
	t.stats.Removes++
	return nil
}

// Block marks a stream as having no data to send. Its descendants become
// visible to the scheduler.
func (t *PriorityTree) Block(id uint32) error {
	s, ok := t.streams[id]
	if !ok || id == RootStreamID {
		return streamError("block", id, ErrUnknownStream)
	}
	s.active = false
	t.stats.Blocks++
	return nil
}

// Unblock marks a stream as having data to send again.
func (t *PriorityTree) Unblock(id uint32) error {
	s, ok := t.streams[id]
	if !ok || id == RootStreamID {
		return streamError("unblock", id, ErrUnknownStream)
	}
	s.active = true
	t.stats.Unblocks++
	return nil
}

// Next returns the ID of the stream that should transmit the next unit of
// data. It returns ErrDeadlock when no stream reachable from the root is
// active; the tree is usable again as soon as a stream is unblocked or
// inserted.
func (t *PriorityTree) Next() (uint32, error) {
	id, err := t.root.schedule()
	if err != nil {
		t.stats.Deadlocks++
		return 0, ErrDeadlock
	}
	t.stats.Schedules++
	return id, nil
}

// Reprioritize moves a stream to a new parent and weight, preserving its
// active flag. Semantically this is Remove followed by Insert: children
// re-parented by the removal stay with the old parent. All validation runs
// before the first mutation, so a failed call leaves the tree untouched.
//
// Making a stream dependent on one of its own descendants without first
// promoting that descendant is the caller's responsibility to avoid
// (RFC 7540 §5.3.3); the tree applies the remove+insert sequence as given.
func (t *PriorityTree) Reprioritize(id, dependsOn uint32, weight uint16, exclusive bool) error {
	s, ok := t.streams[id]
	if !ok || id == RootStreamID {
		return streamError("reprioritize", id, ErrUnknownStream)
	}
	if id == dependsOn {
		return streamError("reprioritize", id, ErrSelfDependency)
	}
	if weight < MinWeight || weight > MaxWeight {
		return streamError("reprioritize", id, ErrInvalidWeight)
	}
	if _, ok := t.streams[dependsOn]; !ok {
		// The dependency target survives the removal below even when it is a
		// descendant of id, so checking up front is sound.
		return streamError("reprioritize", id, ErrUnknownParent)
	}

	active := s.active
	delete(t.streams, id)
	s.parent.removeChild(s)
	releaseStream(s)

	ns := newStream(id, weight)
	ns.active = active
	parent := t.streams[dependsOn]
	if exclusive {
		parent.addChildExclusive(ns)
	} else {
		parent.addChild(ns)
	}
	t.streams[id] = ns
	return nil
}

// Len returns the number of streams in the tree, excluding the root.
func (t *PriorityTree) Len() int {
	return len(t.streams) - 1
}

// Stats returns a snapshot of the operation counters.
func (t *PriorityTree) Stats() TreeStats {
	st := t.stats
	st.Streams = t.Len()
	return st
}
