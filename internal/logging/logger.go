package logging

import (
	"fmt"
	"io"
	"log"

	"github.com/rs/zerolog"
)

// Field carries one structured key/value pair to attach to a log line.
type Field struct {
	Key   string
	Value any
}

// String creates a Field carrying a string value.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates a Field carrying an int value.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a Field carrying a uint64 value.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a Field carrying a float64 value.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err creates a Field carrying an error under the conventional "error" key.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err}
}

// Logger is the structured logging interface used throughout bigcalc.
// Components depend on this interface, not on zerolog or log directly, so
// the backend can be swapped (zerolog in production, a plain *log.Logger
// via StdLoggerAdapter, a no-op for tests).
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Debug(msg string, fields ...Field)
	Printf(format string, args ...any)
	Println(args ...any)
}

// ZerologAdapter implements Logger on top of zerolog.Logger.
type ZerologAdapter struct {
	zl zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{zl: zl}
}

// NewLogger constructs the default (zerolog-backed) adapter, writing to w
// and tagging every line with a "component" field.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return NewZerologAdapter(zl)
}

// NewDefaultLogger constructs the default adapter writing to a
// zerolog.ConsoleWriter over stderr, tagged with the "bigcalc" component.
func NewDefaultLogger() *ZerologAdapter {
	zl := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Str("component", "bigcalc").Logger()
	return NewZerologAdapter(zl)
}

func applyFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case int64:
			e = e.Int64(f.Key, v)
		case uint64:
			e = e.Uint64(f.Key, v)
		case float64:
			e = e.Float64(f.Key, v)
		case bool:
			e = e.Bool(f.Key, v)
		case error:
			e = e.AnErr(f.Key, v)
		case nil:
			e = e.Interface(f.Key, nil)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	return e
}

// Info logs an informational message with optional structured fields.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(a.zl.Info(), fields).Msg(msg)
}

// Error logs an error message. err may be nil.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	e := a.zl.Error()
	if err != nil {
		e = e.Err(err)
	}
	applyFields(e, fields).Msg(msg)
}

// Debug logs a debug-level message with optional structured fields.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(a.zl.Debug(), fields).Msg(msg)
}

// Printf logs a formatted message at info level, for call sites migrated
// from fmt.Printf-style logging.
func (a *ZerologAdapter) Printf(format string, args ...any) {
	a.zl.Info().Msg(fmt.Sprintf(format, args...))
}

// Println logs its arguments space-joined at info level.
func (a *ZerologAdapter) Println(args ...any) {
	a.zl.Info().Msg(fmt.Sprintln(args...))
}

// StdLoggerAdapter implements Logger on top of the standard library's
// *log.Logger, for plain-text output with no JSON/console formatting.
type StdLoggerAdapter struct {
	l *log.Logger
}

// NewStdLoggerAdapter wraps an existing *log.Logger.
func NewStdLoggerAdapter(l *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{l: l}
}

func formatFields(fields []Field) string {
	s := ""
	for _, f := range fields {
		s += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	return s
}

// Info logs an informational message with optional structured fields.
func (a *StdLoggerAdapter) Info(msg string, fields ...Field) {
	a.l.Printf("[INFO] %s%s", msg, formatFields(fields))
}

// Error logs an error message. err may be nil.
func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	if err != nil {
		fields = append([]Field{Err(err)}, fields...)
	}
	a.l.Printf("[ERROR] %s%s", msg, formatFields(fields))
}

// Debug logs a debug-level message with optional structured fields.
func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	a.l.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

// Printf logs a formatted message.
func (a *StdLoggerAdapter) Printf(format string, args ...any) {
	a.l.Printf(format, args...)
}

// Println logs its arguments space-joined.
func (a *StdLoggerAdapter) Println(args ...any) {
	a.l.Println(args...)
}

// NopLogger discards everything. Useful as a zero-value-safe default in
// tests and library call sites that don't want to force a dependency on a
// concrete backend.
type NopLogger struct{}

func (NopLogger) Info(string, ...Field)          {}
func (NopLogger) Error(string, error, ...Field)  {}
func (NopLogger) Debug(string, ...Field)         {}
func (NopLogger) Printf(string, ...any)          {}
func (NopLogger) Println(...any)                {}
