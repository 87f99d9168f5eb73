package renderer

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/nilsbrandt/corelog/core"
)

// JSON renders a LogRecord as a single-line JSON object, hand-escaping
// strings the way formatter.JSONFormatter does rather than paying for
// encoding/json's reflection over a struct it would have to invent.
type JSON struct {
	// TimestampFormat is a time.Format layout. Empty uses time.RFC3339Nano.
	TimestampFormat string
}

// NewJSON creates a JSON renderer, defaulting TimestampFormat to
// time.RFC3339Nano when empty.
func NewJSON(timestampFormat string) *JSON {
	if timestampFormat == "" {
		timestampFormat = time.RFC3339Nano
	}
	return &JSON{TimestampFormat: timestampFormat}
}

// Setup implements appender.Renderer.
func (j *JSON) Setup() error { return nil }

// Teardown implements appender.Renderer.
func (j *JSON) Teardown() error { return nil }

// Render implements appender.Renderer.
func (j *JSON) Render(record core.LogRecord) (string, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	j.formatToBuffer(record, buf)
	return buf.String(), nil
}

// RenderTo implements appender.WriterRenderer.
func (j *JSON) RenderTo(record core.LogRecord, w io.Writer) error {
	buf := getBuffer()
	j.formatToBuffer(record, buf)
	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

func (j *JSON) formatToBuffer(record core.LogRecord, buf *bytes.Buffer) {
	buf.WriteByte('{')

	buf.WriteString(`"timestamp":"`)
	buf.Write(record.Timestamp.AppendFormat(buf.AvailableBuffer(), j.TimestampFormat))
	buf.WriteByte('"')

	buf.WriteString(`,"level":"`)
	buf.WriteString(record.Level.String())
	buf.WriteByte('"')

	buf.WriteString(`,"message":"`)
	appendJSONString(buf, record.Message)
	buf.WriteByte('"')

	buf.WriteString(`,"tag":"`)
	appendJSONString(buf, record.Tag)
	buf.WriteByte('"')

	buf.WriteString(`,"thread_id":`)
	buf.WriteString(strconv.FormatUint(record.ThreadID, 10))

	buf.WriteString("}\n")
}

// appendJSONString writes a JSON-escaped string, without surrounding
// quotes, to buf. Lifted from formatter.JSONFormatter's
// appendJSONString: scan for the next byte needing escaping, flush the
// clean run before it, repeat.
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
