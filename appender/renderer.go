package appender

import (
	"io"

	"github.com/nilsbrandt/corelog/core"
)

// Renderer turns a LogRecord into bytes. It is invoked only by a
// concrete Appender, on that appender's worker goroutine — the core
// pipeline (queue, dispatcher, worker state machine) never inspects or
// enforces formatting, exactly as the spec requires.
//
// Renderer mirrors the teacher's Formatter/WriterFormatter split (its
// third, BufferFormatter tier has no counterpart here): a plain
// Renderer always works; an appender
// that wants to skip an intermediate byte-slice allocation can also
// implement WriterRenderer.
type Renderer interface {
	// Setup prepares the renderer (e.g. compiling a layout template).
	// Most renderers have nothing to do here.
	Setup() error
	// Teardown releases any resources Setup acquired.
	Teardown() error
	// Render formats one record.
	Render(record core.LogRecord) (string, error)
}

// WriterRenderer is an optional capability a Renderer can implement to
// write directly into an io.Writer, avoiding the string allocation
// Render would otherwise require.
type WriterRenderer interface {
	RenderTo(record core.LogRecord, w io.Writer) error
}
