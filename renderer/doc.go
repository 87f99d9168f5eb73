// Package renderer provides appender.Renderer implementations for
// core.LogRecord: Text, grounded on formatter.TextFormatter's
// pre-formatted level brackets and AppendFormat-into-buffer style, and
// JSON, grounded on formatter.JSONFormatter's hand-rolled escaping.
//
// Both are narrower than their teacher counterparts: LogRecord carries
// five fixed fields, not an open Fields slice, so there is no per-field
// loop and no caller-info branch — Renderer.Render has nothing left to
// conditionally skip.
package renderer
