package core

import (
	"fmt"
	"strconv"
	"strings"
)

// SpanIDMetaField is the record key under which a span identifier is
// attached to outgoing telemetry records.
const SpanIDMetaField = "span-id"

// SpanID uniquely identifies one span within a process. It combines
// the instrumentation layer's local span identifier with an instance
// counter, so that ids remain unique even when the instrumentation
// layer recycles local identifiers.
//
// String and ParseSpanID are guaranteed to round-trip for all valid
// SpanIDs (both components >= 1).
type SpanID struct {
	LocalID    uint64
	InstanceID uint64
}

// NewSpanID constructs a SpanID from a local identifier and an
// instance counter. Both must be >= 1; 0 is not a valid local
// identifier.
func NewSpanID(localID, instanceID uint64) (SpanID, error) {
	if localID == 0 || instanceID == 0 {
		return SpanID{}, fmt.Errorf("%w: got (%d, %d)", ErrInvalidSpanID, localID, instanceID)
	}
	return SpanID{LocalID: localID, InstanceID: instanceID}, nil
}

// ParseSpanID parses the "<local>-<instance>" text form. It returns
// ErrSpanIDFormat when fewer than two '-'-delimited fields are
// present, or a wrapped *strconv.NumError when a field is not a valid
// base-10 uint64.
func ParseSpanID(s string) (SpanID, error) {
	parts := strings.Split(s, "-")
	if len(parts) < 2 {
		return SpanID{}, ErrSpanIDFormat
	}
	local, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return SpanID{}, fmt.Errorf("parse span id local field: %w", err)
	}
	instance, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return SpanID{}, fmt.Errorf("parse span id instance field: %w", err)
	}
	return SpanID{LocalID: local, InstanceID: instance}, nil
}

// String renders the id as "<local>-<instance>".
func (s SpanID) String() string {
	return fmt.Sprintf("%d-%d", s.LocalID, s.InstanceID)
}
