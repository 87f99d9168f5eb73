package core

import (
	"fmt"
	"strings"
)

// Level represents the severity of a LogRecord. Levels are totally
// ordered: Debug < Info < Warning < Error < Fatal.
type Level int8

const (
	// Debug is for detailed diagnostic information.
	Debug Level = iota
	// Info is for general informational messages.
	Info
	// Warning is for conditions that deserve attention but are not errors.
	Warning
	// Error is for failures that a component can still recover from.
	Error
	// Fatal is for failures the process cannot meaningfully continue after.
	Fatal
)

// String returns exactly "DEBUG", "INFO", "WARNING", "ERROR" or "FATAL".
func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a case-insensitive level string, tolerating leading
// and trailing whitespace. It fails with ErrConfiguration when s does
// not name a known level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return Debug, nil
	case "INFO":
		return Info, nil
	case "WARNING":
		return Warning, nil
	case "ERROR":
		return Error, nil
	case "FATAL":
		return Fatal, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized log level %q", ErrConfiguration, s)
	}
}
