package appender

import (
	"time"

	"github.com/nilsbrandt/corelog/core"
)

// Appender is the contract a log sink must implement. The dispatcher
// never calls these methods directly; an AppenderWorker calls them,
// one at a time, from the single goroutine it owns for this appender's
// lifetime.
type Appender interface {
	// Name identifies the appender for diagnostics and for the
	// events.Handler's OnAppenderError callback. The appender supplies
	// it itself (the concrete appenders in this module take it from
	// their Config); it is never derived through reflection.
	Name() string

	// Level returns the minimum LogRecord level this appender accepts.
	Level() core.Level
	// SetLevel sets the minimum level. Called once during
	// LogWriter construction, before the worker goroutine starts.
	SetLevel(level core.Level)

	// Setup prepares the appender to accept writes (opening a file,
	// dialing a connection, and so on). It may fail.
	Setup() error
	// Write persists or transmits one record. It may fail.
	Write(record core.LogRecord) error
	// TryRestart is called after a cooldown following a Write or Setup
	// failure. It reports whether the appender believes it can accept
	// writes again.
	TryRestart() bool
	// Teardown releases any resources acquired by Setup. It always
	// runs on every exit path of the owning worker, including after an
	// unrecovered failure.
	Teardown() error

	// LastErrorAt returns the timestamp of the most recent failure,
	// used by the worker to pace restart attempts.
	LastErrorAt() time.Time
	// SetLastErrorAt records the timestamp of a failure.
	SetLastErrorAt(t time.Time)
}
