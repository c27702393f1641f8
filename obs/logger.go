package obs

import (
	"log"
	"os"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the logging interface accepted across netserver.
type Logger interface {
	Logf(level Level, format string, args ...any)
}

// NopLogger discards all logs.
type NopLogger struct{}

func (NopLogger) Logf(Level, string, ...any) {}

// StdLogger adapts the standard library logger. Records below Min are dropped.
type StdLogger struct {
	L   *log.Logger
	Min Level
}

// Default returns a logger writing Info and above records into stderr.
func Default() StdLogger {
	return StdLogger{
		L:   log.New(os.Stderr, "netserver: ", log.LstdFlags),
		Min: Info,
	}
}

func (s StdLogger) Logf(level Level, format string, args ...any) {
	if s.L == nil || level < s.Min {
		return
	}

	s.L.Printf("[%s] "+format, append([]any{level}, args...)...)
}
