// Package hivetrace is a lightweight meta-package that re-exports the
// commonly used pieces of the telemetry pipeline. Import specific
// packages for anything beyond the basics:
//   - github.com/hivetrace/hivetrace/core - identifiers, contracts, config
//   - github.com/hivetrace/hivetrace/honeycomb - the telemetry sink
//   - github.com/hivetrace/hivetrace/redisstream - Redis Streams submitter
package hivetrace

import (
	"github.com/hivetrace/hivetrace/core"
	"github.com/hivetrace/hivetrace/honeycomb"
)

// Re-export core types
type (
	// Identifier types
	TraceID = core.TraceID
	SpanID  = core.SpanID

	// Envelope types
	Span  = core.Span
	Event = core.Event

	// Contracts
	Telemetry = core.Telemetry
	Visitor   = core.Visitor
	Submitter = core.Submitter
	Logger    = core.Logger

	// Configuration
	Config = core.Config
	Option = core.Option

	// Propagation
	TraceContext = core.TraceContext
)

// Re-export core functions
var (
	NewTraceID        = core.NewTraceID
	ParseTraceID      = core.ParseTraceID
	TraceIDFromString = core.TraceIDFromString
	TraceIDFromUUID   = core.TraceIDFromUUID
	NewSpanID         = core.NewSpanID
	ParseSpanID       = core.ParseSpanID

	NewConfig           = core.NewConfig
	ExtractTraceContext = core.ExtractTraceContext

	// Configuration options
	WithServiceName = core.WithServiceName
	WithAPIKey      = core.WithAPIKey
	WithDataset     = core.WithDataset
	WithAPIHost     = core.WithAPIHost
	WithSampleRate  = core.WithSampleRate
	WithLogger      = core.WithLogger
	WithRedis       = core.WithRedis
	WithConfigFile  = core.WithConfigFile

	// Sinks
	New              = honeycomb.New
	NewWithSubmitter = honeycomb.NewWithSubmitter
)

// Re-export meta field constants
const (
	TraceIDMetaField = core.TraceIDMetaField
	SpanIDMetaField  = core.SpanIDMetaField
)
