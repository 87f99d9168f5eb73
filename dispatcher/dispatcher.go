package dispatcher

import (
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/nilsbrandt/corelog/appender"
	"github.com/nilsbrandt/corelog/core"
	"github.com/nilsbrandt/corelog/events"
	"github.com/nilsbrandt/corelog/queue"
)

// DefaultMainQueueSize is the default capacity of the Dispatcher's main
// queue, shared by every producer.
const DefaultMainQueueSize = 50000

// MainQueuePollInterval is the poll interval used by the main queue and
// the Dispatcher's own dequeue loop.
const MainQueuePollInterval = 500 * time.Millisecond

// Dispatcher is the single consumer of the main queue. It owns one
// AppenderAdapter per registered appender and fans every accepted
// record out to each of them in registration order, applying the
// configured events.Handler when an adapter's queue is full.
//
// This generalizes handler/multi.go's MultiHandler.Handle, which calls
// every child handler synchronously and keeps the last error. Here the
// fan-out is still ordered and synchronous from the Dispatcher's own
// goroutine, but each leg is a bounded queue handoff rather than a
// direct call, so one slow or wedged appender cannot stall the others.
type Dispatcher struct {
	queue *queue.BoundedQueue[core.LogRecord]
	diag  *zap.Logger

	mu       sync.Mutex
	adapters []*AppenderAdapter
	handler  events.Handler

	terminated  atomic.Bool
	teardownErr error
	done        chan struct{}
}

// New creates a Dispatcher with the given main queue capacity (0 uses
// DefaultMainQueueSize) and starts its run loop immediately. handler
// may be nil, in which case every overflow defaults to SkipNewest.
func New(queueCapacity int, handler events.Handler, diag *zap.Logger) *Dispatcher {
	if queueCapacity <= 0 {
		queueCapacity = DefaultMainQueueSize
	}
	if diag == nil {
		diag = zap.NewNop()
	}
	d := &Dispatcher{
		queue:   queue.New[core.LogRecord](queueCapacity, MainQueuePollInterval),
		diag:    diag,
		handler: handler,
		done:    make(chan struct{}),
	}
	go d.run()
	return d
}

// Enqueue hands record to the main queue. It returns core.ErrMainQueueFull
// when the queue is at capacity, mirroring the main queue's own
// full-after-poll-interval semantics up to the caller.
func (d *Dispatcher) Enqueue(record core.LogRecord) error {
	if d.queue.Enqueue(record) != queue.Accepted {
		return core.ErrMainQueueFull
	}
	return nil
}

// AddAppender registers app, starting its own queue and worker
// goroutine, and returns the adapter so the caller (the writer façade)
// can enumerate or later remove it.
func (d *Dispatcher) AddAppender(app appender.Appender, queueCapacity int) *AppenderAdapter {
	adapter := NewAppenderAdapter(app, queueCapacity, d.diag)
	d.mu.Lock()
	d.adapters = append(d.adapters, adapter)
	d.mu.Unlock()
	return adapter
}

// RemoveAppender unregisters adapter and tears it down. It is safe to
// call concurrently with the run loop: the run loop takes a short-lived
// lock to snapshot the adapter list on every record.
func (d *Dispatcher) RemoveAppender(adapter *AppenderAdapter) {
	d.mu.Lock()
	for i, a := range d.adapters {
		if a == adapter {
			d.adapters = append(d.adapters[:i], d.adapters[i+1:]...)
			break
		}
	}
	d.mu.Unlock()
	adapter.Close()
}

// Appenders returns a snapshot of the currently registered adapters, in
// registration order.
func (d *Dispatcher) Appenders() []*AppenderAdapter {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*AppenderAdapter, len(d.adapters))
	copy(out, d.adapters)
	return out
}

// Terminate requests a graceful shutdown: the run loop keeps draining
// the main queue until it is empty, then tears every adapter down.
// Terminate does not block; call Wait to block until shutdown finishes.
func (d *Dispatcher) Terminate() {
	d.terminated.Store(true)
	d.queue.Shutdown()
}

// Wait blocks until the run loop has exited and every adapter has been
// torn down, and returns the aggregate of any Teardown errors.
func (d *Dispatcher) Wait() error {
	<-d.done
	return d.teardownErr
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for {
		record, result := d.queue.Dequeue(MainQueuePollInterval)
		switch result {
		case queue.DequeueSignaled:
			d.fanOut(record)
		case queue.DequeueTimeout:
			if d.terminated.Load() {
				d.teardownAll()
				return
			}
		case queue.DequeueShutdown:
			d.teardownAll()
			return
		}
	}
}

func (d *Dispatcher) fanOut(record core.LogRecord) {
	for _, adapter := range d.Appenders() {
		if record.Level < adapter.Appender().Level() {
			continue
		}

		if adapter.Enqueue(record) == queue.Accepted {
			continue
		}

		action := events.SkipNewest
		if d.handler != nil {
			d.handler.OnAppenderError(adapter.Appender().Name(), record, events.QueueFull, &action)
		}

		switch action {
		case events.DiscardOlder:
			adapter.DiscardOldest()
		default:
			adapter.RecordSkippedNewest()
		}
	}
}

// teardownAll closes every remaining adapter and aggregates any
// Teardown errors with multierr, so a single failing sink does not hide
// failures from the others — generalizing handler/multi.go's
// MultiHandler.Handle, which keeps only the last child error.
func (d *Dispatcher) teardownAll() {
	d.mu.Lock()
	adapters := d.adapters
	d.adapters = nil
	d.mu.Unlock()

	var errs error
	for _, adapter := range adapters {
		errs = multierr.Append(errs, adapter.Close())
	}
	d.teardownErr = errs
}
