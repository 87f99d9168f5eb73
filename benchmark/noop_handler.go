package benchmark

import (
	"github.com/nilsbrandt/corelog/appender"
	"github.com/nilsbrandt/corelog/core"
)

// noopAppender discards every record it receives. It exists so the
// dispatcher/adapter/worker machinery can be benchmarked in isolation
// from any real sink's I/O cost.
type noopAppender struct {
	appender.Base
	name string
}

func newNoopAppender(name string) *noopAppender {
	if name == "" {
		name = "noop"
	}
	return &noopAppender{name: name}
}

func (a *noopAppender) Name() string               { return a.name }
func (a *noopAppender) Setup() error               { return nil }
func (a *noopAppender) Write(core.LogRecord) error { return nil }
func (a *noopAppender) TryRestart() bool           { return true }
func (a *noopAppender) Teardown() error            { return nil }
