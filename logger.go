package signet

import (
	"log/slog"
	"sync"
)

// Logger captures structured log output from the registry.
type Logger interface {
	With(key string, value any) Logger
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) With(string, any) Logger { return noopLogger{} }
func (noopLogger) Info(string, ...any)     {}
func (noopLogger) Error(string, ...any)    {}

type slogLogger struct {
	l *slog.Logger
}

// NewSlogLogger adapts a *slog.Logger. A nil logger uses slog.Default().
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return slogLogger{l: l}
}

func (s slogLogger) With(key string, value any) Logger {
	return slogLogger{l: s.l.With(key, value)}
}

func (s slogLogger) Info(msg string, args ...any) {
	s.l.Info(msg, args...)
}

func (s slogLogger) Error(msg string, args ...any) {
	s.l.Error(msg, args...)
}

// LogLevel classifies a recorded log entry.
type LogLevel uint8

const (
	LogInfo LogLevel = iota
	LogError
)

func (l LogLevel) String() string {
	if l == LogError {
		return "ERROR"
	}
	return "INFO"
}

// LogEntry is one message kept by a RecordingLogger. Args holds the
// key/value pairs of every With call followed by the call's own args.
type LogEntry struct {
	Level LogLevel
	Msg   string
	Args  []any
}

// RecordingLogger keeps every entry in memory.
type RecordingLogger struct {
	sink *logSink
	with []any
}

type logSink struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewRecordingLogger returns an empty in-memory logger.
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{sink: &logSink{}}
}

func (r *RecordingLogger) With(key string, value any) Logger {
	with := make([]any, 0, len(r.with)+2)
	with = append(with, r.with...)
	with = append(with, key, value)
	return &RecordingLogger{sink: r.sink, with: with}
}

func (r *RecordingLogger) Info(msg string, args ...any) {
	r.record(LogInfo, msg, args)
}

func (r *RecordingLogger) Error(msg string, args ...any) {
	r.record(LogError, msg, args)
}

func (r *RecordingLogger) record(level LogLevel, msg string, args []any) {
	all := make([]any, 0, len(r.with)+len(args))
	all = append(all, r.with...)
	all = append(all, args...)
	r.sink.mu.Lock()
	r.sink.entries = append(r.sink.entries, LogEntry{Level: level, Msg: msg, Args: all})
	r.sink.mu.Unlock()
}

// Entries returns a copy of everything recorded so far, including entries
// written through loggers derived with With.
func (r *RecordingLogger) Entries() []LogEntry {
	r.sink.mu.Lock()
	defer r.sink.mu.Unlock()
	out := make([]LogEntry, len(r.sink.entries))
	copy(out, r.sink.entries)
	return out
}

// Reset forgets every recorded entry.
func (r *RecordingLogger) Reset() {
	r.sink.mu.Lock()
	r.sink.entries = nil
	r.sink.mu.Unlock()
}

var (
	_ Logger = noopLogger{}
	_ Logger = slogLogger{}
	_ Logger = (*RecordingLogger)(nil)
)
