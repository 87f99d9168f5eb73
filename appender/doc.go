// Package appender defines the Appender capability — the contract a
// log sink must implement to be driven by a dispatcher.AppenderWorker
// — and the Renderer capability an appender may use internally to turn
// a core.LogRecord into bytes.
//
// An Appender is accessed from exactly one goroutine (its worker) for
// its entire lifetime after construction, so implementations need no
// internal locking of their own state; they still need to protect any
// resource another goroutine can reach directly, such as a shared
// io.Writer.
//
package appender
