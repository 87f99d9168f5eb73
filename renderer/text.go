package renderer

import (
	"bytes"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/nilsbrandt/corelog/core"
)

// bufferPool reduces allocations across Render calls. Each Renderer is
// called from one appender's worker goroutine, but the pool is shared
// by every Text and JSON renderer in the process, so calls from
// different workers can reach it concurrently; sync.Pool makes that
// safe.
var bufferPool = &sync.Pool{
	New: func() any {
		buf := new(bytes.Buffer)
		buf.Grow(256)
		return buf
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 {
		return
	}
	bufferPool.Put(buf)
}

// levelBrackets mirrors formatter.TextFormatter's pre-formatted level
// strings, avoiding a WriteString per level component.
var levelBrackets = [...]string{
	core.Debug:   " [DEBUG] ",
	core.Info:    " [INFO] ",
	core.Warning: " [WARNING] ",
	core.Error:   " [ERROR] ",
	core.Fatal:   " [FATAL] ",
}

// Text renders a LogRecord as "<timestamp> [<LEVEL>] <message> [tag:<thread>]\n".
type Text struct {
	// TimestampFormat is a time.Format layout. Empty uses time.RFC3339.
	TimestampFormat string
}

// NewText creates a Text renderer, defaulting TimestampFormat to
// time.RFC3339 when empty.
func NewText(timestampFormat string) *Text {
	if timestampFormat == "" {
		timestampFormat = time.RFC3339
	}
	return &Text{TimestampFormat: timestampFormat}
}

// Setup implements appender.Renderer.
func (t *Text) Setup() error { return nil }

// Teardown implements appender.Renderer.
func (t *Text) Teardown() error { return nil }

// Render implements appender.Renderer.
func (t *Text) Render(record core.LogRecord) (string, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	t.formatToBuffer(record, buf)
	return buf.String(), nil
}

// RenderTo implements appender.WriterRenderer.
func (t *Text) RenderTo(record core.LogRecord, w io.Writer) error {
	buf := getBuffer()
	t.formatToBuffer(record, buf)
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

func (t *Text) formatToBuffer(record core.LogRecord, buf *bytes.Buffer) {
	buf.Write(record.Timestamp.AppendFormat(buf.AvailableBuffer(), t.TimestampFormat))

	if int(record.Level) < len(levelBrackets) {
		buf.WriteString(levelBrackets[record.Level])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	buf.WriteString(record.Message)

	if record.Tag != "" {
		buf.WriteString(" [")
		buf.WriteString(record.Tag)
		buf.WriteString(":")
		buf.WriteString(strconv.FormatUint(record.ThreadID, 10))
		buf.WriteString("]")
	}

	buf.WriteByte('\n')
}
