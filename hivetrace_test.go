package hivetrace

import (
	"testing"
	"time"
)

type recordingSubmitter struct {
	records []map[string]interface{}
}

func (s *recordingSubmitter) Submit(record map[string]interface{}) error {
	s.records = append(s.records, record)
	return nil
}

func (s *recordingSubmitter) Close() error { return nil }

func TestFacadeEndToEnd(t *testing.T) {
	cfg, err := NewConfig(WithServiceName("facade-test"), WithSampleRate(1))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	sub := &recordingSubmitter{}
	tel, err := NewWithSubmitter(sub, cfg)
	if err != nil {
		t.Fatalf("NewWithSubmitter: %v", err)
	}

	traceID := NewTraceID()
	spanID, err := NewSpanID(1, 1)
	if err != nil {
		t.Fatalf("NewSpanID: %v", err)
	}

	visitor := tel.MkVisitor()
	visitor.VisitString("op", "checkout")
	now := time.Now()
	tel.ReportSpan(&Span{
		TraceID: traceID,
		ID:      spanID,
		Name:    "root",
		Service: "facade-test",
		Start:   now.Add(-time.Millisecond),
		End:     now,
		Visitor: visitor,
	})

	if len(sub.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(sub.records))
	}
	record := sub.records[0]
	if record[TraceIDMetaField] != traceID.String() {
		t.Errorf("trace meta field: got %v", record[TraceIDMetaField])
	}
	if record[SpanIDMetaField] != spanID.String() {
		t.Errorf("span meta field: got %v", record[SpanIDMetaField])
	}
	if record["op"] != "checkout" {
		t.Errorf("visitor field missing: %v", record)
	}

	// The identifiers survive a serialization round trip, so they can
	// cross process boundaries through ParseTraceID/ParseSpanID.
	if ParseTraceID(traceID.String()) != traceID {
		t.Error("trace id round trip failed")
	}
	parsed, err := ParseSpanID(spanID.String())
	if err != nil || parsed != spanID {
		t.Errorf("span id round trip failed: %v %v", parsed, err)
	}
}
