package dispatcher

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/nilsbrandt/corelog/appender"
	"github.com/nilsbrandt/corelog/core"
	"github.com/nilsbrandt/corelog/events"
	"github.com/nilsbrandt/corelog/queue"
)

// DefaultAppenderQueueSize is the default capacity of an adapter's
// private queue.
const DefaultAppenderQueueSize = 50000

// AppenderQueuePollInterval is the poll interval used by an adapter's
// private queue and its worker's dequeue loop.
const AppenderQueuePollInterval = 10 * time.Millisecond

// AppenderAdapter pairs one Appender with its own bounded queue and
// worker goroutine, and mediates every enqueue onto that queue. The
// dispatcher is the sole long-lived owner of an AppenderAdapter.
type AppenderAdapter struct {
	app    appender.Appender
	queue  *queue.BoundedQueue[core.LogRecord]
	worker *AppenderWorker

	consecutiveFailCount atomic.Int64
	stats                events.Stats
}

// NewAppenderAdapter creates an adapter for app with the given queue
// capacity, and starts its worker goroutine immediately.
func NewAppenderAdapter(app appender.Appender, queueCapacity int, diag *zap.Logger) *AppenderAdapter {
	if queueCapacity <= 0 {
		queueCapacity = DefaultAppenderQueueSize
	}
	q := queue.New[core.LogRecord](queueCapacity, AppenderQueuePollInterval)

	a := &AppenderAdapter{
		app:   app,
		queue: q,
	}
	a.worker = NewAppenderWorker(app, q, AppenderQueuePollInterval, diag, &a.stats)
	go a.worker.Run()
	return a
}

// Appender returns the wrapped appender, mainly for the dispatcher's
// level-filter check and for enumeration by the façade.
func (a *AppenderAdapter) Appender() appender.Appender {
	return a.app
}

// Enqueue clones record and attempts to hand it to this adapter's
// queue. The clone exists so the dispatcher's caller can free or reuse
// its own copy regardless of what happens to this one — the spec's
// cloning policy, preserved deliberately (spec.md §9).
func (a *AppenderAdapter) Enqueue(record core.LogRecord) queue.EnqueueResult {
	result := a.queue.Enqueue(record.Clone())
	if result == queue.Accepted {
		a.consecutiveFailCount.Store(0)
		a.stats.IncrementDelivered()
	} else {
		a.consecutiveFailCount.Add(1)
	}
	return result
}

// Stats returns a snapshot of this adapter's delivery counters.
func (a *AppenderAdapter) Stats() events.Snapshot {
	return a.stats.GetSnapshot()
}

// DiscardOldest drops one record from the head of this adapter's
// queue, for the events.DiscardOlder overflow action. It reports
// whether a record was actually discarded (the queue could have
// drained between the dispatcher's rejected Enqueue and this call).
func (a *AppenderAdapter) DiscardOldest() bool {
	_, result := a.queue.Dequeue(0)
	discarded := result == queue.DequeueSignaled
	if discarded {
		a.stats.IncrementDiscardedOlder()
	}
	return discarded
}

// RecordSkippedNewest records a record dropped under the SkipNewest
// overflow action, for diagnostics.
func (a *AppenderAdapter) RecordSkippedNewest() {
	a.stats.IncrementSkippedNewest()
}

// ConsecutiveFailCount returns the number of consecutive rejected
// Enqueue calls since the last accepted one.
func (a *AppenderAdapter) ConsecutiveFailCount() int64 {
	return a.consecutiveFailCount.Load()
}

// Close shuts down the adapter's queue, signals its worker to
// terminate, waits for it to finish (which runs Teardown on the
// appender), and only then returns. The order is strict: shutting the
// queue down first guarantees the worker cannot block on Dequeue
// waiting for a Terminate it hasn't observed yet. It returns whatever
// error the appender's Teardown produced, if any.
func (a *AppenderAdapter) Close() error {
	a.queue.Shutdown()
	a.worker.Terminate()
	return a.worker.Wait()
}
