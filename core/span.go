package core

import "time"

// Span is a completed unit of work within a trace, handed to the
// telemetry sink when the instrumentation layer closes it. Values are
// immutable once reported.
type Span struct {
	TraceID TraceID
	ID      SpanID
	// Parent is nil for the root span of a trace.
	Parent  *SpanID
	Name    string
	Service string
	Start   time.Time
	End     time.Time
	// Visitor holds the typed fields captured during the span's life.
	Visitor Visitor
}

// Duration returns the span's elapsed time.
func (s *Span) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Event is a point-in-time occurrence attached to a span, sharing the
// span's and trace's identifiers.
type Event struct {
	TraceID TraceID
	SpanID  SpanID
	Name    string
	Service string
	At      time.Time
	Visitor Visitor
}
