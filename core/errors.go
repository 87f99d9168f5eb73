package core

import "errors"

// ErrConfiguration is returned when a LogWriter is built with invalid or
// inconsistent configuration: a mismatched appenders/levels count, or an
// unparseable level string.
var ErrConfiguration = errors.New("corelog: configuration error")

// ErrMainQueueFull is returned by LogWriter.Log when the main queue
// rejects a record because it is at capacity. It is the only error a
// producer can observe from a successful, well-configured LogWriter.
var ErrMainQueueFull = errors.New("corelog: main queue full")
