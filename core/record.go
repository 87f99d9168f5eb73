package core

import (
	"bytes"
	"runtime"
	"strconv"
	"time"
)

// LogRecord is an immutable log event: level, message, tag, the instant
// it was created, and the id of the producing "thread" (goroutine).
// LogRecord is a value type and is safe to copy; Clone exists for
// parity with the spec's ownership model, where the dispatcher hands a
// fresh, independently-owned copy to each appender adapter.
type LogRecord struct {
	Level     Level
	Message   string
	Tag       string
	Timestamp time.Time
	ThreadID  uint64
}

// NewRecord builds a LogRecord, capturing the current time and an
// identifier for the calling goroutine. useCoarseClock selects between
// time.Now() and the cached clock started by StartCoarseClock — callers
// on a hot producer path that can tolerate sub-millisecond timestamp
// jitter should start the coarse clock once and pass true.
func NewRecord(level Level, message, tag string, useCoarseClock bool) LogRecord {
	ts := time.Now()
	if useCoarseClock {
		ts = CoarseNow()
	}
	return LogRecord{
		Level:     level,
		Message:   message,
		Tag:       tag,
		Timestamp: ts,
		ThreadID:  GoroutineID(),
	}
}

// Clone returns an independent copy of r. Because LogRecord holds only
// value fields (no slices, maps or pointers), Clone is a plain copy,
// but it is kept as an explicit operation so call sites read the same
// way the spec's ownership narrative does: the dispatcher clones the
// record once per adapter so each adapter's copy can be freed
// independently of the others and of the dispatcher's original.
func (r LogRecord) Clone() LogRecord {
	return r
}

// LevelAsString returns exactly "DEBUG"|"INFO"|"WARNING"|"ERROR"|"FATAL".
func (r LogRecord) LevelAsString() string {
	return r.Level.String()
}

// goroutineIDPrefix is the fixed text runtime.Stack prints before the
// numeric goroutine id, e.g. "goroutine 37 [running]:".
var goroutineIDPrefix = []byte("goroutine ")

// GoroutineID returns the id of the calling goroutine, parsed out of a
// stack trace. Go deliberately has no public API for this; parsing
// runtime.Stack's header is the standard workaround used by loggers
// that want a stable "which producer logged this" identifier without
// asking every call site to carry one through a context.Value. It is
// not a kernel thread id — goroutines are not pinned to OS threads —
// but it is stable for the life of the goroutine, which is what the
// spec's thread_id field is for: telling concurrent producers apart in
// rendered output.
func GoroutineID() uint64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	buf = buf[:n]
	buf = bytes.TrimPrefix(buf, goroutineIDPrefix)
	if end := bytes.IndexByte(buf, ' '); end >= 0 {
		buf = buf[:end]
	}
	id, err := strconv.ParseUint(string(buf), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
