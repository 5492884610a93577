package priority

// Stream identifier limits (RFC 7540 §5.1.1)
const (
	// MaxStreamID is the maximum stream identifier (2^31-1)
	MaxStreamID = 1<<31 - 1

	// RootStreamID identifies the synthetic root of the dependency tree.
	// It carries no data and can never be inserted, removed, or unblocked.
	RootStreamID = 0
)

// Stream weight limits (RFC 7540 §5.3.2)
const (
	// MinWeight is the smallest decoded stream weight
	MinWeight = 1

	// MaxWeight is the largest decoded stream weight. The wire encodes
	// weights as a single byte 0-255 representing 1-256.
	MaxWeight = 256

	// DefaultWeight is assigned to streams without an explicit priority
	DefaultWeight = 16
)

// PriorityPayloadLen is the fixed length of a PRIORITY frame payload
// (RFC 7540 §6.3): a 4-byte dependency word followed by the weight byte.
const PriorityPayloadLen = 5
