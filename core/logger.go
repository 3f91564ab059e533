package core

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// DiagnosticLogger is the built-in Logger for telemetry diagnostics.
// It writes to stderr so that submit-failure reports stay visible even
// when the host application redirects stdout, uses JSON format under
// Kubernetes and text locally, and rate-limits error output to prevent
// log flooding while the telemetry backend is down.
type DiagnosticLogger struct {
	level       string
	serviceName string
	format      string
	output      io.Writer
	mu          sync.Mutex

	// Rate limiting for error logs during sustained failures.
	errorLimiter *RateLimiter
}

// NewDiagnosticLogger creates a logger from the logging configuration.
// An empty format auto-detects: JSON when running under Kubernetes,
// text otherwise.
func NewDiagnosticLogger(serviceName string, cfg LoggingConfig) *DiagnosticLogger {
	level := cfg.Level
	if level == "" {
		level = "INFO"
	}
	format := cfg.Format
	if format == "" {
		format = "text"
		if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
			format = "json"
		}
	}
	return &DiagnosticLogger{
		level:        strings.ToUpper(level),
		serviceName:  serviceName,
		format:       format,
		output:       os.Stderr,
		errorLimiter: NewRateLimiter(time.Second),
	}
}

// SetOutput redirects log output, primarily for tests.
func (l *DiagnosticLogger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

// Info logs informational messages.
func (l *DiagnosticLogger) Info(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

// Warn logs warning messages.
func (l *DiagnosticLogger) Warn(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

// Error logs error messages with rate limiting.
func (l *DiagnosticLogger) Error(msg string, fields map[string]interface{}) {
	if l.errorLimiter != nil && !l.errorLimiter.Allow() {
		return
	}
	l.log("ERROR", msg, fields)
}

// Debug logs debug messages.
func (l *DiagnosticLogger) Debug(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

func (l *DiagnosticLogger) log(level, msg string, fields map[string]interface{}) {
	if !l.shouldLog(level) {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format(time.RFC3339)
	if l.format == "json" {
		l.logJSON(timestamp, level, msg, fields)
	} else {
		l.logText(timestamp, level, msg, fields)
	}
}

func (l *DiagnosticLogger) logJSON(timestamp, level, msg string, fields map[string]interface{}) {
	entry := map[string]interface{}{
		"timestamp": timestamp,
		"level":     level,
		"service":   l.serviceName,
		"component": "hivetrace",
		"message":   msg,
	}
	for k, v := range fields {
		// Avoid overwriting core fields
		if _, reserved := entry[k]; !reserved {
			entry[k] = v
		}
	}
	if data, err := json.Marshal(entry); err == nil {
		fmt.Fprintln(l.output, string(data))
	}
}

func (l *DiagnosticLogger) logText(timestamp, level, msg string, fields map[string]interface{}) {
	var fieldStr strings.Builder
	if err, ok := fields["error"]; ok {
		fieldStr.WriteString(fmt.Sprintf(" error=%q", fmt.Sprint(err)))
	}
	for k, v := range fields {
		if k == "error" {
			continue
		}
		fieldStr.WriteString(fmt.Sprintf(" %s=%v", k, v))
	}
	fmt.Fprintf(l.output, "%s [%s] [hivetrace:%s] %s%s\n",
		timestamp, level, l.serviceName, msg, fieldStr.String())
}

func (l *DiagnosticLogger) shouldLog(level string) bool {
	levels := map[string]int{
		"DEBUG": 0,
		"INFO":  1,
		"WARN":  2,
		"ERROR": 3,
	}
	current, ok1 := levels[l.level]
	message, ok2 := levels[level]
	if !ok1 || !ok2 {
		return true
	}
	return message >= current
}

// RateLimiter is a simple interval rate limiter for error logging.
type RateLimiter struct {
	interval time.Duration
	lastTime time.Time
	mu       sync.Mutex
}

// NewRateLimiter creates a rate limiter allowing one action per
// interval.
func NewRateLimiter(interval time.Duration) *RateLimiter {
	return &RateLimiter{interval: interval}
}

// Allow returns true if an action is allowed based on rate limiting.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if now.Sub(r.lastTime) >= r.interval {
		r.lastTime = now
		return true
	}
	return false
}
