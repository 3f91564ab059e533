package core

// Telemetry is the reporting capability consumed by the
// instrumentation layer. Implementations receive completed spans and
// point-in-time events and forward them to a telemetry backend.
//
// ReportSpan and ReportEvent never return errors: telemetry loss must
// not perturb the instrumented application's own control flow, so
// submission failures are handled (logged and dropped) inside the
// implementation.
type Telemetry interface {
	// MkVisitor returns a fresh field visitor, called once per span
	// or event before its fields are captured.
	MkVisitor() Visitor
	// ReportSpan reports a completed span.
	ReportSpan(span *Span)
	// ReportEvent reports a point-in-time event.
	ReportEvent(event *Event)
}

// Visitor accumulates the typed fields of one span or event. The
// instrumentation layer fills it during span/event construction; the
// sink flattens it into an outgoing record via Fields.
type Visitor interface {
	VisitString(key, value string)
	VisitInt64(key string, value int64)
	VisitFloat64(key string, value float64)
	VisitBool(key string, value bool)
	// Visit records a value of any other type.
	Visit(key string, value interface{})
	// Fields returns the accumulated key/value pairs.
	Fields() map[string]interface{}
}

// Submitter is the buffering submission client collaborator. Submit
// hands one flattened record to the client's local buffer and returns;
// batching, transmission, retry and backpressure are entirely the
// submitter's concern.
//
// Submitters are not promised safe for concurrent use. Callers must
// serialize access; the honeycomb sink does so with a mutex.
type Submitter interface {
	Submit(record map[string]interface{}) error
	Close() error
}

// Logger is the minimal leveled logging interface used for telemetry
// diagnostics.
type Logger interface {
	Info(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Debug(msg string, fields map[string]interface{})
}

// NoOpLogger provides a no-op Logger implementation.
type NoOpLogger struct{}

func (n *NoOpLogger) Info(msg string, fields map[string]interface{})  {}
func (n *NoOpLogger) Error(msg string, fields map[string]interface{}) {}
func (n *NoOpLogger) Warn(msg string, fields map[string]interface{})  {}
func (n *NoOpLogger) Debug(msg string, fields map[string]interface{}) {}
