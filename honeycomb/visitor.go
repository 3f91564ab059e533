package honeycomb

import (
	"time"

	"github.com/hivetrace/hivetrace/core"
)

// FieldVisitor accumulates the typed fields of one span or event into
// a flat key/value map. A fresh instance is handed out per reported
// span/event via Telemetry.MkVisitor; it is not safe for concurrent
// use and does not need to be, since the instrumentation layer fills
// it from a single goroutine.
type FieldVisitor struct {
	fields map[string]interface{}
}

// NewFieldVisitor creates an empty visitor.
func NewFieldVisitor() *FieldVisitor {
	return &FieldVisitor{fields: make(map[string]interface{})}
}

func (v *FieldVisitor) VisitString(key, value string) { v.fields[key] = value }

func (v *FieldVisitor) VisitInt64(key string, value int64) { v.fields[key] = value }

func (v *FieldVisitor) VisitFloat64(key string, value float64) { v.fields[key] = value }

func (v *FieldVisitor) VisitBool(key string, value bool) { v.fields[key] = value }

func (v *FieldVisitor) Visit(key string, value interface{}) { v.fields[key] = value }

// Fields returns the accumulated key/value pairs.
func (v *FieldVisitor) Fields() map[string]interface{} {
	return v.fields
}

// spanToRecord flattens a completed span into the outgoing record.
// Visitor fields go in first; envelope and meta fields are written
// last so captured fields cannot clobber them.
func spanToRecord(span *core.Span) map[string]interface{} {
	record := make(map[string]interface{}, len(span.Visitor.Fields())+8)
	for k, v := range span.Visitor.Fields() {
		record[k] = v
	}
	record[core.TraceIDMetaField] = span.TraceID.String()
	record[core.SpanIDMetaField] = span.ID.String()
	if span.Parent != nil {
		record["parent-id"] = span.Parent.String()
	}
	record["name"] = span.Name
	record["service_name"] = span.Service
	record["timestamp"] = span.Start.Format(time.RFC3339Nano)
	record["duration_ms"] = float64(span.Duration()) / float64(time.Millisecond)
	return record
}

// eventToRecord flattens a point-in-time event into the outgoing
// record.
func eventToRecord(event *core.Event) map[string]interface{} {
	record := make(map[string]interface{}, len(event.Visitor.Fields())+6)
	for k, v := range event.Visitor.Fields() {
		record[k] = v
	}
	record[core.TraceIDMetaField] = event.TraceID.String()
	record[core.SpanIDMetaField] = event.SpanID.String()
	record["name"] = event.Name
	record["service_name"] = event.Service
	record["timestamp"] = event.At.Format(time.RFC3339Nano)
	return record
}
