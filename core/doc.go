// Package core defines the value types shared by every layer of
// corelog: the LogRecord produced by a caller of LogWriter.Log, and
// the Level it is filtered by.
//
// LogRecord is intentionally narrow — level, message, tag, timestamp,
// thread id — because structured (key/value) log records are out of
// scope for this pipeline; the rendering of a LogRecord to bytes is
// delegated to the appender package's Renderer capability, not done
// here.
//
// StartCoarseClock/CoarseNow let a high-throughput producer trade
// timestamp precision (sub-millisecond jitter) for one fewer syscall
// per LogRecord; it is opt-in via NewRecord's useCoarseClock parameter.
package core
