package appender

import (
	"sync/atomic"
	"time"

	"github.com/nilsbrandt/corelog/core"
)

// Base holds the bookkeeping every concrete Appender needs —
// level filter and last-failure timestamp — so implementations only
// have to embed it instead of re-deriving SetLevel/LastErrorAt every
// time. This mirrors the teacher's consoleBase/fileBase pattern of
// sharing behavior through embedding, trimmed to just the state the
// spec says belongs on the Appender side of the contract (the queue,
// worker and overflow stats the teacher also put on that struct now
// belong to dispatcher.AppenderAdapter instead).
//
// Base is accessed only by the appender's worker goroutine, except for
// level, which atomic.Int32 makes safe to read from Level() even if a
// caller holds a reference to the appender outside its worker (the
// façade never does this, but the type should not assume it won't).
type Base struct {
	level       atomic.Int32
	lastErrorAt atomic.Int64 // UnixNano; 0 means never
}

// Level returns the minimum level this appender accepts.
func (b *Base) Level() core.Level {
	return core.Level(b.level.Load())
}

// SetLevel sets the minimum level this appender accepts.
func (b *Base) SetLevel(level core.Level) {
	b.level.Store(int32(level))
}

// LastErrorAt returns the timestamp of the most recent failure, or the
// zero time if there has been none.
func (b *Base) LastErrorAt() time.Time {
	ns := b.lastErrorAt.Load()
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}

// SetLastErrorAt records the timestamp of a failure.
func (b *Base) SetLastErrorAt(t time.Time) {
	b.lastErrorAt.Store(t.UnixNano())
}
