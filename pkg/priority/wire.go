package priority

import "encoding/binary"

// PriorityParam carries the decoded priority fields of a PRIORITY frame or
// a HEADERS frame with the PRIORITY flag (RFC 7540 §6.3). The field shape
// matches golang.org/x/net/http2.PriorityParam, so framing layers built on
// either can hand the value across unchanged.
type PriorityParam struct {
	// StreamDep is the stream this one depends on; 0 attaches to the root.
	StreamDep uint32

	// Exclusive is the E bit of the dependency word.
	Exclusive bool

	// Weight is the wire encoding, 0-255 representing 1-256.
	Weight uint8
}

// EffectiveWeight returns the decoded weight in 1-256.
func (p PriorityParam) EffectiveWeight() uint16 {
	return uint16(p.Weight) + 1
}

// ParsePriorityPayload decodes the fixed 5-byte PRIORITY payload:
//
//	+-+-------------------------------------------------------------+
//	|E|                  Stream Dependency (31)                     |
//	+-+-------------+-----------------------------------------------+
//	|   Weight (8)  |
//	+-+-------------+
//
// The reserved interpretation of the top bit is the E flag; the remaining
// 31 bits are the dependency. Performs zero allocations.
func ParsePriorityPayload(b []byte) (PriorityParam, error) {
	if len(b) != PriorityPayloadLen {
		return PriorityParam{}, ErrInvalidPriorityPayload
	}
	dep := binary.BigEndian.Uint32(b[0:4])
	return PriorityParam{
		StreamDep: dep & 0x7fffffff,
		Exclusive: dep&0x80000000 != 0,
		Weight:    b[4],
	}, nil
}

// AppendPriorityPayload appends the 5-byte encoding of p to b and returns
// the extended slice. Dependency IDs above 2^31-1 have the high bit cleared.
func AppendPriorityPayload(b []byte, p PriorityParam) []byte {
	dep := p.StreamDep & 0x7fffffff
	if p.Exclusive {
		dep |= 0x80000000
	}
	var buf [PriorityPayloadLen]byte
	binary.BigEndian.PutUint32(buf[0:4], dep)
	buf[4] = p.Weight
	return append(b, buf[:]...)
}

// ApplyPriority applies a PRIORITY frame received for stream id: a stream
// already in the tree is reprioritized, an unknown one is inserted with the
// carried dependency and weight. Self-dependency is rejected per RFC 7540
// §5.3.1. When the tree was configured with a priority-update rate limit,
// calls beyond the limit fail with ErrRateLimitExceeded.
func (t *PriorityTree) ApplyPriority(id uint32, p PriorityParam) error {
	if id == RootStreamID || id > MaxStreamID {
		return streamError("priority", id, ErrInvalidStreamID)
	}
	if id == p.StreamDep {
		return streamError("priority", id, ErrSelfDependency)
	}
	if t.limiter != nil && !t.limiter.allow() {
		return streamError("priority", id, ErrRateLimitExceeded)
	}

	if _, ok := t.streams[id]; ok {
		return t.Reprioritize(id, p.StreamDep, p.EffectiveWeight(), p.Exclusive)
	}
	return t.Insert(id, p.StreamDep, p.EffectiveWeight(), p.Exclusive)
}
