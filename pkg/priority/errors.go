package priority

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by tree operations
var (
	// ErrDuplicateStream indicates an insert with a stream ID already in the tree.
	ErrDuplicateStream = errors.New("priority: stream already in tree")

	// ErrUnknownStream indicates an operation on a stream ID the tree does not
	// hold. Remove, Block, Unblock and Reprioritize treat stream 0 (the
	// synthetic root) as unknown; Insert and ApplyPriority reject it with
	// ErrInvalidStreamID instead.
	ErrUnknownStream = errors.New("priority: stream not in tree")

	// ErrUnknownParent indicates an insert whose dependency target is not in the tree.
	ErrUnknownParent = errors.New("priority: dependency stream not in tree")

	// ErrInvalidWeight indicates a weight outside the decoded range 1-256.
	ErrInvalidWeight = errors.New("priority: weight out of range 1-256")

	// ErrInvalidStreamID indicates a stream ID of 0 or above 2^31-1.
	ErrInvalidStreamID = errors.New("priority: invalid stream ID")

	// ErrSelfDependency indicates a stream depending on itself (RFC 7540 §5.3.1).
	ErrSelfDependency = errors.New("priority: stream cannot depend on itself")

	// ErrTooManyStreams indicates the configured stream limit was reached.
	ErrTooManyStreams = errors.New("priority: stream limit exceeded")

	// ErrRateLimitExceeded indicates too many priority updates in the
	// configured window.
	ErrRateLimitExceeded = errors.New("priority: rate limit exceeded")

	// ErrDeadlock indicates no stream reachable from the root is unblocked;
	// repeated calls to Next cannot make progress until the caller unblocks
	// or inserts a stream.
	ErrDeadlock = errors.New("priority: no unblocked streams to schedule")

	// ErrInvalidPriorityPayload indicates a PRIORITY payload that is not
	// exactly 5 bytes.
	ErrInvalidPriorityPayload = errors.New("priority: malformed PRIORITY payload")

	// ErrInvalidConfig indicates a TreeConfig that fails validation.
	ErrInvalidConfig = errors.New("priority: invalid configuration")
)

// errQueueEmpty signals an exhausted child queue between recursive schedule
// calls. It never escapes the package; Next translates it to ErrDeadlock.
var errQueueEmpty = errors.New("priority: child queue empty")

// StreamError wraps a sentinel error with the stream ID and the operation
// that failed.
type StreamError struct {
	StreamID uint32
	Op       string
	Err      error
}

// Error implements the error interface.
func (e *StreamError) Error() string {
	return fmt.Sprintf("priority: %s stream %d: %v", e.Op, e.StreamID, e.Err)
}

// Unwrap returns the underlying sentinel so errors.Is works on wrapped errors.
func (e *StreamError) Unwrap() error {
	return e.Err
}

// streamError builds a StreamError around a sentinel.
func streamError(op string, id uint32, err error) error {
	return &StreamError{StreamID: id, Op: op, Err: err}
}

// IsDeadlock returns true if the error is or wraps ErrDeadlock.
func IsDeadlock(err error) bool {
	return errors.Is(err, ErrDeadlock)
}

// IsUnknownStream returns true if the error is or wraps ErrUnknownStream.
func IsUnknownStream(err error) bool {
	return errors.Is(err, ErrUnknownStream)
}
