// Package dispatcher implements the two-stage fan-out at the center of
// corelog: Dispatcher is the single consumer of the main queue; for
// each record it fans out to every AppenderAdapter whose appender
// accepts the record's level, applying the configured events.Handler
// when an adapter's queue is full. Each AppenderAdapter owns one
// appender, one private queue.BoundedQueue, and one AppenderWorker —
// the goroutine that drives the appender through its setup/running/
// failure/cooldown/restart/teardown state machine.
//
// This generalizes the teacher's per-handler pattern: handler/
// consolehandler and handler/filehandler each hand-roll their own
// "goroutine + channel + per-level OverflowPolicy" wiring
// (AsyncConsoleHandler.process, AsyncFileHandler.process). Here that
// wiring exists exactly once, in AppenderAdapter and AppenderWorker,
// and drives any Appender regardless of sink type. handler/multi.go's
// MultiHandler.Handle — call every child synchronously, keep the last
// error — becomes Dispatcher.run's per-adapter fan-out loop, routed
// through a bounded queue instead of a direct call so one slow or
// wedged appender cannot stall the others or the producer.
package dispatcher
