// Package logging defines the logging capability consumed by the menu pipeline.
package logging

// Level is the severity of a log record.
type Level int8

const (
	LevelDebug Level = iota - 1
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}
	return "unknown"
}

// Logger records a message at a level with optional key/value pairs.
type Logger interface {
	Log(level Level, msg string, keysAndValues ...any)
}

// Nop is a Logger that discards every record.
var Nop Logger = nop{}

type nop struct{}

func (nop) Log(Level, string, ...any) {}

// OrNop returns l, or Nop when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop
	}
	return l
}
