package core

import (
	"fmt"
	"net/http"
)

// Header names used to carry trace context across process boundaries.
// The round-trip text encodings of TraceID and SpanID exist exactly so
// that identifiers survive this trip unchanged.
const (
	TraceHeader  = "X-Hivetrace-Trace-Id"
	ParentHeader = "X-Hivetrace-Parent-Id"
)

// TraceContext is the portable portion of a trace's state: the trace
// identifier and the span the downstream process should treat as its
// parent.
type TraceContext struct {
	TraceID TraceID
	// Parent is nil when the sender had no active span.
	Parent *SpanID
}

// Inject writes the trace context into outgoing HTTP headers.
func (tc TraceContext) Inject(h http.Header) {
	h.Set(TraceHeader, tc.TraceID.String())
	if tc.Parent != nil {
		h.Set(ParentHeader, tc.Parent.String())
	}
}

// ExtractTraceContext reads trace context from incoming HTTP headers.
// The second return value is false when no trace header is present.
// A present but malformed parent header is an error; the trace header
// cannot be malformed because every string is a valid TraceID.
func ExtractTraceContext(h http.Header) (TraceContext, bool, error) {
	raw, ok := h[http.CanonicalHeaderKey(TraceHeader)]
	if !ok || len(raw) == 0 {
		return TraceContext{}, false, nil
	}
	tc := TraceContext{TraceID: ParseTraceID(raw[0])}

	if parent := h.Get(ParentHeader); parent != "" {
		id, err := ParseSpanID(parent)
		if err != nil {
			return TraceContext{}, false, fmt.Errorf("extract %s: %w", ParentHeader, err)
		}
		tc.Parent = &id
	}
	return tc, true, nil
}
