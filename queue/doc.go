// Package queue provides BoundedQueue, the fixed-capacity FIFO used at
// both stages of corelog's pipeline: the main queue between producers
// and the dispatcher, and each appender adapter's private queue between
// the dispatcher and its worker.
//
// BoundedQueue never blocks a producer for longer than its configured
// poll interval. A full queue's Enqueue waits at most that long for
// space before returning Rejected; a Dequeue on an idle queue returns
// DequeueTimeout once the caller's timeout elapses, so a consumer can
// check a termination flag without blocking forever. This mirrors the
// teacher's consolehandler/filehandler async handlers, which combine
// a buffered channel with a reusable timer for exactly this reason —
// generalized here into one named type instead of duplicating the
// select/timer dance per handler.
package queue
