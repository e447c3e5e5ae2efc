// Package diagnostics logs structured, rotating JSON-lines records for the
// three kinds of failure the core can hit that a guest program can't catch
// itself: fatal builtin argument-shape errors, uncaught guest
// exceptions, and module resolve/link failures. Grounded directly on
// storage/audit.go's AuditLogger: a mutex-guarded encoder over a
// lumberjack-rotated writer, one typed record interface per event kind.
package diagnostics

import (
	"fmt"
	"io"
	"sync"
	"time"

	goccy "github.com/goccy/go-json"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Event is the interface every loggable record implements, mirroring
// storage/audit.go's AuditData marker-method pattern.
type Event interface {
	eventKind() string
}

// FatalBuiltinError is logged when a built-in panics a *bpcore.FatalError
// (registry.go's Dispatch does not recover it; cmd/betterpython-netshell's
// per-line handler recovers it and logs this event).
type FatalBuiltinError struct {
	Builtin string `json:"builtin"`
	Message string `json:"message"`
}

func (FatalBuiltinError) eventKind() string { return "fatal_builtin_error" }

// UncaughtException is logged alongside exception.ReportUncaught's stderr
// line, so a postmortem has the rendered value even after the process exits.
type UncaughtException struct {
	Rendered string `json:"rendered"`
}

func (UncaughtException) eventKind() string { return "uncaught_exception" }

// ResolveError is logged when modgraph.ResolveAll or linker.Link fails.
type ResolveError struct {
	Stage   string `json:"stage"` // "resolve" or "link"
	Message string `json:"message"`
}

func (ResolveError) eventKind() string { return "resolve_error" }

// entry is the on-disk record shape; Data carries whichever Event fired.
type entry struct {
	Time string `json:"time"`
	Kind string `json:"kind"`
	Data Event  `json:"data"`
}

// Logger writes diagnostics entries as JSON, one per line, to a
// lumberjack-rotated file.
type Logger struct {
	mu     sync.Mutex
	writer io.WriteCloser
	enc    *goccy.Encoder
}

// NewLogger opens (creating if absent) a rotating diagnostics log at path.
// Rotation sizes mirror storage/audit.go's AuditLogger defaults, since a
// guest program's fatal errors and uncaught exceptions are the same kind
// of "small, occasional, keep a while" record as a security audit log.
func NewLogger(path string) *Logger {
	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    100,
		MaxBackups: 10,
		MaxAge:     365,
		Compress:   true,
	}
	return &Logger{
		writer: writer,
		enc:    goccy.NewEncoder(writer),
	}
}

// Log writes one diagnostics entry. Encoding failure is a bug in this
// package (every Event field is JSON-safe by construction), so it's
// reported rather than silently dropped but does not panic the caller.
func (l *Logger) Log(ev Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enc.Encode(entry{
		Time: time.Now().UTC().Format(time.RFC3339Nano),
		Kind: ev.eventKind(),
		Data: ev,
	})
}

// Logf is a convenience for call sites that only have a formatted message,
// not a typed Event — e.g. an ad hoc resolve failure.
func (l *Logger) Logf(stage, format string, args ...any) error {
	return l.Log(ResolveError{Stage: stage, Message: fmt.Sprintf(format, args...)})
}

// Close closes the underlying rotated file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.writer.Close()
}
