// Package memory implements an in-process appender.Appender that
// captures records into a slice instead of writing them anywhere,
// for tests and for the in-memory capture scenario the spec's
// end-to-end examples call for. It has no teacher counterpart — the
// teacher's handlers only ever target an io.Writer or a file — so it
// is built directly from the appender.Appender contract, in the same
// single-goroutine-owned style as console.Console and file.File.
package memory

import (
	"sync"

	"github.com/nilsbrandt/corelog/appender"
	"github.com/nilsbrandt/corelog/core"
)

// Config configures a Memory appender.
type Config struct {
	// Name identifies this appender to diagnostics and the events
	// Handler. Defaults to "memory".
	Name string
	// Level is the minimum level this appender accepts.
	Level core.Level
	// Capacity bounds how many records are retained; once reached, the
	// oldest record is dropped to make room for the newest, so a test
	// harness watching this appender cannot grow it without bound. 0
	// means unbounded.
	Capacity int
}

func applyDefaults(cfg *Config) {
	if cfg.Name == "" {
		cfg.Name = "memory"
	}
}

// Memory captures every record it receives into an internal slice.
// Records is safe to call from any goroutine; Setup/Write/TryRestart/
// Teardown are still only ever called from the owning worker, per the
// Appender contract, but a test calling Records concurrently with the
// pipeline needs the lock Memory takes internally.
type Memory struct {
	appender.Base

	name     string
	capacity int

	mu      sync.Mutex
	records []core.LogRecord
}

// New creates a Memory appender from cfg.
func New(cfg Config) *Memory {
	applyDefaults(&cfg)
	m := &Memory{name: cfg.Name, capacity: cfg.Capacity}
	m.SetLevel(cfg.Level)
	return m
}

// Name implements appender.Appender.
func (m *Memory) Name() string { return m.name }

// Setup implements appender.Appender.
func (m *Memory) Setup() error { return nil }

// Write implements appender.Appender.
func (m *Memory) Write(record core.LogRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	if m.capacity > 0 && len(m.records) > m.capacity {
		m.records = m.records[len(m.records)-m.capacity:]
	}
	return nil
}

// TryRestart implements appender.Appender. Memory never fails, so this
// is unreachable in practice, but reports ready for consistency.
func (m *Memory) TryRestart() bool { return true }

// Teardown implements appender.Appender.
func (m *Memory) Teardown() error { return nil }

// Records returns a copy of every record captured so far, oldest first.
func (m *Memory) Records() []core.LogRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]core.LogRecord, len(m.records))
	copy(out, m.records)
	return out
}

// Len returns the number of records currently captured.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// Reset discards every captured record.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
}
