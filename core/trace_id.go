package core

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// TraceIDMetaField is the record key under which a trace identifier is
// attached to outgoing telemetry records.
const TraceIDMetaField = "trace-id"

type traceIDKind uint8

const (
	traceIDUUID traceIDKind = iota
	traceIDOpaque
)

// TraceID uniquely identifies a single distributed (potentially
// multi-process) trace. It is either backed by a random 128-bit UUID,
// or carries an externally supplied identifier verbatim as an opaque
// string, so that trace ids received from upstream systems survive
// unchanged.
//
// TraceID is a comparable value type: it can be compared with == and
// used as a map key. String and ParseTraceID are guaranteed to
// round-trip.
type TraceID struct {
	kind   traceIDKind
	uuid   uuid.UUID
	opaque string
}

// NewTraceID generates a fresh TraceID backed by a random UUID v4.
func NewTraceID() TraceID {
	return TraceID{kind: traceIDUUID, uuid: uuid.New()}
}

// ParseTraceID parses s into a TraceID. Text in canonical UUID form
// yields a UUID-backed id; any other input, including the empty string,
// is carried as an opaque id. Parsing therefore never fails - every
// string is a valid TraceID.
func ParseTraceID(s string) TraceID {
	if u, err := uuid.Parse(s); err == nil {
		return TraceID{kind: traceIDUUID, uuid: u}
	}
	return TraceID{kind: traceIDOpaque, opaque: s}
}

// TraceIDFromUUID wraps an existing UUID as a TraceID.
func TraceIDFromUUID(u uuid.UUID) TraceID {
	return TraceID{kind: traceIDUUID, uuid: u}
}

// TraceIDFromString wraps s verbatim as an opaque TraceID.
func TraceIDFromString(s string) TraceID {
	return TraceID{kind: traceIDOpaque, opaque: s}
}

// TraceIDFromUint128 builds a UUID-backed TraceID from the two 64-bit
// halves of a 128-bit value. Useful for callers migrating from numeric
// trace identifiers.
func TraceIDFromUint128(hi, lo uint64) TraceID {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], hi)
	binary.BigEndian.PutUint64(b[8:], lo)
	return TraceID{kind: traceIDUUID, uuid: uuid.UUID(b)}
}

// String renders the id in its canonical text form: the lowercase
// hyphenated 36-character layout for UUID-backed ids, or the opaque
// string verbatim. ParseTraceID(x.String()) == x for all x.
func (t TraceID) String() string {
	if t.kind == traceIDUUID {
		return t.uuid.String()
	}
	return t.opaque
}

// UUID returns the backing UUID when the id is UUID-backed.
func (t TraceID) UUID() (uuid.UUID, bool) {
	if t.kind == traceIDUUID {
		return t.uuid, true
	}
	return uuid.UUID{}, false
}

// IsOpaque reports whether the id carries an externally supplied
// opaque string rather than a UUID.
func (t TraceID) IsOpaque() bool {
	return t.kind == traceIDOpaque
}

// SampleKey returns a deterministic 64-bit key for sampling decisions:
// the low 64 bits of the UUID for UUID-backed ids, or the xxhash of
// the raw string for opaque ids. Every span and event of one trace
// yields the same key.
func (t TraceID) SampleKey() uint64 {
	if t.kind == traceIDUUID {
		return binary.BigEndian.Uint64(t.uuid[8:])
	}
	return xxhash.Sum64String(t.opaque)
}
