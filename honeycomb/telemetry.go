// Package honeycomb implements the core.Telemetry capability against a
// Honeycomb-style ingestion backend: each reported span or event is
// sampled per trace, flattened into a key/value record, and handed to
// a buffering submission client.
//
// The submission client performs its own batching, transmission and
// retry; this package never blocks on the network and never surfaces
// submission failures to the caller - they are logged to stderr and
// the record is dropped, so telemetry loss cannot perturb the host
// application's control flow.
package honeycomb

import (
	"sync"

	"github.com/hivetrace/hivetrace/core"
)

// Telemetry publishes spans and events to a submission client.
//
// One submitter instance is shared by all reporting goroutines.
// Submitters are not promised safe for concurrent use, so every
// construct-and-submit sequence runs under a mutex; within a single
// goroutine, records are submitted in report order because each call
// completes synchronously.
type Telemetry struct {
	mu        sync.Mutex
	submitter core.Submitter

	// sampleRate is the sampling denominator; nil reports every trace.
	sampleRate *uint64
	logger     core.Logger
}

var _ core.Telemetry = (*Telemetry)(nil)

// New creates a Telemetry sink backed by the libhoney submission
// client configured from cfg. It fails when the API key or dataset is
// missing, or when the sampling denominator is 0.
func New(cfg *core.Config) (*Telemetry, error) {
	sub, err := newLibhoneySubmitter(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithSubmitter(sub, cfg)
}

// NewWithSubmitter creates a Telemetry sink around an explicit
// submission client. Used by alternate backends (redisstream) and by
// tests.
func NewWithSubmitter(sub core.Submitter, cfg *core.Config) (*Telemetry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, core.NewTelemetryError("honeycomb.New", "config", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = core.NewDiagnosticLogger(cfg.ServiceName, cfg.Logging)
	}
	return &Telemetry{
		submitter:  sub,
		sampleRate: cfg.SampleRate,
		logger:     logger,
	}, nil
}

// MkVisitor returns a fresh field visitor for one span or event.
func (t *Telemetry) MkVisitor() core.Visitor {
	return NewFieldVisitor()
}

// ReportSpan reports a completed span. Sampled-out traces return
// without touching the submitter.
func (t *Telemetry) ReportSpan(span *core.Span) {
	if !t.shouldReport(span.TraceID) {
		return
	}
	t.report(spanToRecord(span))
}

// ReportEvent reports a point-in-time event under the same contract as
// ReportSpan.
func (t *Telemetry) ReportEvent(event *core.Event) {
	if !t.shouldReport(event.TraceID) {
		return
	}
	t.report(eventToRecord(event))
}

// shouldReport is the per-trace sampling predicate: deterministic and
// stateless, so every span and event of one trace gets the same
// verdict, in this process and any other.
func (t *Telemetry) shouldReport(id core.TraceID) bool {
	if t.sampleRate == nil {
		return true
	}
	return id.SampleKey()%*t.sampleRate == 0
}

// report submits one flattened record under exclusive access to the
// shared submitter. Failures are terminal at this layer: log and drop.
func (t *Telemetry) report(record map[string]interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.submitter.Submit(record); err != nil {
		t.logger.Error("dropping telemetry record", map[string]interface{}{
			"error":    err.Error(),
			"trace_id": record[core.TraceIDMetaField],
			"span_id":  record[core.SpanIDMetaField],
		})
	}
}

// Close flushes and closes the underlying submission client.
func (t *Telemetry) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.submitter.Close()
}

// Blackhole is a core.Telemetry that discards everything. Useful in
// tests and for disabling export without touching instrumented call
// sites.
type Blackhole struct{}

var _ core.Telemetry = Blackhole{}

func (Blackhole) MkVisitor() core.Visitor { return NewFieldVisitor() }

func (Blackhole) ReportSpan(span *core.Span) {}

func (Blackhole) ReportEvent(event *core.Event) {}
