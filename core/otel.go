package core

import (
	"encoding/binary"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// Interop with OpenTelemetry identifiers, for hosts that run OTel
// instrumentation alongside this pipeline and want records correlated
// across the two.

// TraceIDFromOTel converts an OpenTelemetry trace id into a
// UUID-backed TraceID. The 16 bytes are carried verbatim.
func TraceIDFromOTel(id trace.TraceID) TraceID {
	return TraceIDFromUUID(uuid.UUID(id))
}

// OTelTraceID converts a UUID-backed TraceID into an OpenTelemetry
// trace id. Opaque ids have no 128-bit form and return false.
func (t TraceID) OTelTraceID() (trace.TraceID, bool) {
	u, ok := t.UUID()
	if !ok {
		return trace.TraceID{}, false
	}
	return trace.TraceID(u), true
}

// SpanIDFromOTel converts an OpenTelemetry span id into a SpanID,
// using the id's 64-bit value as the local identifier and an instance
// counter of 1. The all-zero OTel span id is invalid.
func SpanIDFromOTel(id trace.SpanID) (SpanID, error) {
	return NewSpanID(binary.BigEndian.Uint64(id[:]), 1)
}
