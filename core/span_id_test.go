package core

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestSpanIDRoundTrip(t *testing.T) {
	values := []uint64{1, 2, 7, 1 << 20, math.MaxUint64}
	for _, local := range values {
		for _, instance := range values {
			id, err := NewSpanID(local, instance)
			if err != nil {
				t.Fatalf("NewSpanID(%d, %d): %v", local, instance, err)
			}
			got, err := ParseSpanID(id.String())
			if err != nil {
				t.Fatalf("ParseSpanID(%q): %v", id.String(), err)
			}
			if got != id {
				t.Errorf("round trip failed: %v -> %q -> %v", id, id.String(), got)
			}
		}
	}
}

func TestSpanIDString(t *testing.T) {
	id := SpanID{LocalID: 12, InstanceID: 34}
	if id.String() != "12-34" {
		t.Errorf("expected \"12-34\", got %q", id.String())
	}
}

func TestParseSpanIDRejectsMissingSeparator(t *testing.T) {
	_, err := ParseSpanID("abc")
	if !errors.Is(err, ErrSpanIDFormat) {
		t.Errorf("expected ErrSpanIDFormat, got %v", err)
	}
}

func TestParseSpanIDRejectsNonNumericFields(t *testing.T) {
	for _, s := range []string{"1-", "-1", "x-1", "1-x"} {
		_, err := ParseSpanID(s)
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) {
			t.Errorf("ParseSpanID(%q): expected numeric parse error, got %v", s, err)
		}
	}
}

func TestParseSpanIDAcceptsZeroAtParseLevel(t *testing.T) {
	// "0-1" is parseable text even though 0 is outside the valid
	// construction domain.
	id, err := ParseSpanID("0-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != (SpanID{LocalID: 0, InstanceID: 1}) {
		t.Errorf("got %v", id)
	}
}

func TestParseSpanIDIgnoresTrailingFields(t *testing.T) {
	// Splitting happens on the first separators; extra fields are
	// ignored, matching the lenient parse of the text form.
	id, err := ParseSpanID("1-2-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != (SpanID{LocalID: 1, InstanceID: 2}) {
		t.Errorf("got %v", id)
	}
}

func TestNewSpanIDRejectsZeroComponents(t *testing.T) {
	for _, c := range []struct{ local, instance uint64 }{{0, 1}, {1, 0}, {0, 0}} {
		if _, err := NewSpanID(c.local, c.instance); !errors.Is(err, ErrInvalidSpanID) {
			t.Errorf("NewSpanID(%d, %d): expected ErrInvalidSpanID, got %v", c.local, c.instance, err)
		}
	}
}
