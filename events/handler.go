package events

import "github.com/nilsbrandt/corelog/core"

// Reason identifies why the dispatcher invoked the events Handler.
// QueueFull is the only reason today — an adapter's private queue was
// at capacity when the dispatcher tried to hand it a record — but the
// type exists so new reasons can be added without changing the
// Handler signature.
type Reason int

const (
	// QueueFull means an appender adapter's queue rejected a record.
	QueueFull Reason = iota
)

// String implements fmt.Stringer.
func (r Reason) String() string {
	switch r {
	case QueueFull:
		return "QueueFull"
	default:
		return "Unknown"
	}
}

// Action is the dispatcher's response to an overflow, chosen by the
// Handler (or defaulted to SkipNewest when none is installed or the
// Handler leaves it unchanged).
type Action int

const (
	// SkipNewest drops the record that triggered the overflow. The
	// appender's queue is left untouched.
	SkipNewest Action = iota
	// DiscardOlder drops one record from the head of the appender's
	// queue. The record that triggered the overflow is still dropped —
	// it is not retried — so the net effect is one new record and one
	// queued record both lost. This mirrors the original source's
	// behavior; spec.md §9 flags it as likely unintended given the
	// option's name, but preserves it for compatibility.
	DiscardOlder
)

// String implements fmt.Stringer.
func (a Action) String() string {
	if a == DiscardOlder {
		return "DiscardOlder"
	}
	return "SkipNewest"
}

// Handler is consulted synchronously, on the dispatcher's own
// goroutine, whenever an appender adapter's queue rejects a record.
// action is pre-set to SkipNewest; the Handler may overwrite it with
// DiscardOlder to request the alternate policy.
//
// Re-entrant calls from a Handler back into the LogWriter that owns
// this dispatcher are undefined — they can deadlock if the main queue
// is full, since the Handler runs on the one goroutine that would
// otherwise drain it. This is a documented contract, not a guarded
// one, matching spec.md §5's own caveat about the original source.
type Handler interface {
	OnAppenderError(appenderName string, failed core.LogRecord, reason Reason, action *Action)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(appenderName string, failed core.LogRecord, reason Reason, action *Action)

// OnAppenderError implements Handler.
func (f HandlerFunc) OnAppenderError(appenderName string, failed core.LogRecord, reason Reason, action *Action) {
	f(appenderName, failed, reason, action)
}
