// Package writer provides LogWriter, the producer-facing façade over
// a dispatcher.Dispatcher. It is grounded on logger/logger.go's
// Builder/Logger split — BuildLogWriter plays the role of Builder.Build,
// validating and wiring configuration once, up front — generalized so
// the handler a Logger wrapped becomes an ordered list of appenders,
// each with its own level, fed through one shared dispatcher instead of
// one handler's own internal fan-out.
package writer
