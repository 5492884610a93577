// Package priority implements the HTTP/2 stream priority scheduler
// (RFC 7540 Section 5.3).
//
// A PriorityTree holds the dependency tree of one multiplexed connection.
// The framing layer inserts, removes, blocks, and unblocks streams as
// PRIORITY frames and data-availability events arrive, and calls Next to
// obtain the stream that should transmit the next unit of data. An active
// parent hides its descendants; among active siblings, transmission
// opportunities are distributed proportionally to weight using a weighted
// round-robin with deficit carry, so over a full period each sibling is
// scheduled exactly weight times.
//
//	t := priority.New()
//	t.Insert(1, 0, priority.DefaultWeight, false)
//	t.Insert(3, 0, priority.DefaultWeight, false)
//	t.Insert(5, 1, priority.DefaultWeight, false)
//
//	for {
//	    id, err := t.Next()
//	    if err != nil {
//	        break // priority.ErrDeadlock: every stream is blocked
//	    }
//	    // transmit one unit of data on stream id, then t.Block(id)
//	    // once its data is exhausted
//	}
//
// The tree is a synchronous, in-memory data structure with no background
// tasks. It is owned by a single connection handler and is not safe for
// concurrent use; wrap it in external mutual exclusion if it must be shared.
package priority
