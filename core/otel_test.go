package core

import (
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestTraceIDOTelRoundTrip(t *testing.T) {
	otelID := trace.TraceID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10}

	id := TraceIDFromOTel(otelID)
	back, ok := id.OTelTraceID()
	if !ok {
		t.Fatal("expected convertible trace id")
	}
	if back != otelID {
		t.Errorf("got %v, want %v", back, otelID)
	}
}

func TestOpaqueTraceIDHasNoOTelForm(t *testing.T) {
	if _, ok := TraceIDFromString("opaque").OTelTraceID(); ok {
		t.Error("opaque id should not convert to an OTel trace id")
	}
}

func TestSpanIDFromOTel(t *testing.T) {
	id, err := SpanIDFromOTel(trace.SpanID{0, 0, 0, 0, 0, 0, 0, 0x2a})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.LocalID != 0x2a || id.InstanceID != 1 {
		t.Errorf("got %v", id)
	}

	if _, err := SpanIDFromOTel(trace.SpanID{}); err == nil {
		t.Error("expected error for all-zero span id")
	}
}
