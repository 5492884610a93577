package priority

import "container/heap"

// queueEntry pairs a child with its scheduling level. The stream ID is
// duplicated into the entry so ordering never depends on node identity.
type queueEntry struct {
	level int64
	id    uint32
	child *Stream
}

// childQueue is a min-heap of queue entries ordered by level, with the
// stream ID as the tie-break. The child with the lowest level is scheduled
// next; among equal levels the lowest stream ID wins.
type childQueue []queueEntry

func (q childQueue) Len() int { return len(q) }

func (q childQueue) Less(i, j int) bool {
	if q[i].level != q[j].level {
		return q[i].level < q[j].level
	}
	return q[i].id < q[j].id
}

func (q childQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *childQueue) Push(x any) { *q = append(*q, x.(queueEntry)) }

func (q *childQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = queueEntry{}
	*q = old[:n-1]
	return e
}

// push inserts a child at the given level.
func (q *childQueue) push(level int64, c *Stream) {
	heap.Push(q, queueEntry{level: level, id: c.id, child: c})
}

// pop removes and returns the minimum entry. ok is false on an empty queue.
func (q *childQueue) pop() (e queueEntry, ok bool) {
	if len(*q) == 0 {
		return queueEntry{}, false
	}
	return heap.Pop(q).(queueEntry), true
}

// without returns a new heap holding every entry except those referencing c,
// with the surviving entries' levels preserved.
func (q childQueue) without(c *Stream) childQueue {
	out := make(childQueue, 0, len(q))
	for _, e := range q {
		if e.child != c {
			out = append(out, e)
		}
	}
	heap.Init(&out)
	return out
}
