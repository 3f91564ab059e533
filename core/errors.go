package core

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for comparison using errors.Is().
// These are generic errors that can be wrapped with additional context.
var (
	// Identifier errors
	ErrSpanIDFormat  = errors.New("span id must have the form <local>-<instance>")
	ErrInvalidSpanID = errors.New("span id components must be >= 1")

	// Configuration errors
	ErrInvalidSampleRate = errors.New("sample rate must be >= 1 when set")
	ErrMissingAPIKey     = errors.New("missing API key")
	ErrMissingDataset    = errors.New("missing dataset name")

	// Submission errors
	ErrSubmitFailed    = errors.New("record submission failed")
	ErrSubmitterClosed = errors.New("submitter closed")
)

// TelemetryError provides structured error information with context.
// It implements the error interface and supports error wrapping.
type TelemetryError struct {
	Op   string // Operation that failed (e.g., "honeycomb.Submit")
	Kind string // Error kind (e.g., "config", "submit", "parse")
	Err  error  // Underlying error for wrapping
}

// Error returns the string representation of the error.
func (e *TelemetryError) Error() string {
	if e.Op != "" && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s error", e.Kind)
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *TelemetryError) Unwrap() error {
	return e.Err
}

// NewTelemetryError creates a new TelemetryError.
func NewTelemetryError(op, kind string, err error) *TelemetryError {
	return &TelemetryError{Op: op, Kind: kind, Err: err}
}
