package writer

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/nilsbrandt/corelog/appender"
	"github.com/nilsbrandt/corelog/core"
	"github.com/nilsbrandt/corelog/dispatcher"
	"github.com/nilsbrandt/corelog/events"
)

// LogWriter is the producer-facing façade: it creates LogRecords,
// enforces the enabled flag and the writer-wide minimum level, and owns
// the dispatcher for its whole lifetime.
type LogWriter struct {
	dispatcher *dispatcher.Dispatcher
	enabled    atomic.Bool
	minLevel   atomic.Int32

	useCoarseClock    bool
	mainQueueCapacity int
	diag              *zap.Logger
}

// Option configures a LogWriter at construction time.
type Option func(*LogWriter)

// WithCoarseClock makes every LogRecord use the cached coarse clock
// (see core.StartCoarseClock) instead of time.Now(), trading timestamp
// precision for lower overhead on a hot producer path. The caller is
// responsible for calling core.StartCoarseClock before logging.
func WithCoarseClock() Option {
	return func(w *LogWriter) { w.useCoarseClock = true }
}

// WithMainQueueCapacity overrides dispatcher.DefaultMainQueueSize.
func WithMainQueueCapacity(capacity int) Option {
	return func(w *LogWriter) { w.mainQueueCapacity = capacity }
}

// WithDiagnostics installs a zap.Logger that receives internal pipeline
// diagnostics (setup retries, unclassified appender panics, teardown
// failures). Defaults to zap.NewNop().
func WithDiagnostics(diag *zap.Logger) Option {
	return func(w *LogWriter) { w.diag = diag }
}

// BuildLogWriter constructs a LogWriter wired to run each of appenders
// through its own level filter and the given eventsHandler. It requires
// len(appenders) == len(perAppenderLevels), else it fails with
// core.ErrConfiguration. The writer's minimum level is computed as the
// minimum across perAppenderLevels, so the producer can reject a record
// no appender would have accepted before it ever reaches the dispatcher.
func BuildLogWriter(appenders []appender.Appender, eventsHandler events.Handler, perAppenderLevels []core.Level, opts ...Option) (*LogWriter, error) {
	if len(appenders) != len(perAppenderLevels) {
		return nil, fmt.Errorf("%w: got %d appenders and %d levels, want equal counts",
			core.ErrConfiguration, len(appenders), len(perAppenderLevels))
	}

	w := &LogWriter{}
	for _, opt := range opts {
		opt(w)
	}

	diag := w.diag
	if diag == nil {
		diag = zap.NewNop()
	}

	w.dispatcher = dispatcher.New(w.mainQueueCapacity, eventsHandler, diag)
	w.enabled.Store(true)

	minLevel := core.Fatal
	for i, app := range appenders {
		level := perAppenderLevels[i]
		app.SetLevel(level)
		if level < minLevel {
			minLevel = level
		}
		w.dispatcher.AddAppender(app, 0)
	}
	if len(appenders) == 0 {
		minLevel = core.Debug
	}
	w.minLevel.Store(int32(minLevel))

	return w, nil
}

// Log creates a LogRecord and enqueues it onto the main queue, provided
// the writer is enabled and level is at least the writer's computed
// minimum level. It fails with core.ErrMainQueueFull if the main queue
// is at capacity.
func (w *LogWriter) Log(level core.Level, message, tag string) error {
	if !w.enabled.Load() {
		return nil
	}
	if level < core.Level(w.minLevel.Load()) {
		return nil
	}

	record := core.NewRecord(level, message, tag, w.useCoarseClock)
	return w.dispatcher.Enqueue(record)
}

// Enable turns logging on. LogWriters are enabled by construction.
func (w *LogWriter) Enable() { w.enabled.Store(true) }

// Disable turns logging off: Log becomes a no-op until Enable is called
// again. Already-queued records continue through the pipeline.
func (w *LogWriter) Disable() { w.enabled.Store(false) }

// Enabled reports whether the writer currently accepts Log calls.
func (w *LogWriter) Enabled() bool { return w.enabled.Load() }

// MinLevel returns the writer's computed minimum level.
func (w *LogWriter) MinLevel() core.Level { return core.Level(w.minLevel.Load()) }

// AddAppender registers a new appender at runtime, with its own level
// and queue capacity (0 uses dispatcher.DefaultAppenderQueueSize). It
// does not recompute MinLevel — the writer's minimum level is fixed at
// construction, matching BuildLogWriter's one-time computation.
func (w *LogWriter) AddAppender(app appender.Appender, level core.Level, queueCapacity int) *dispatcher.AppenderAdapter {
	app.SetLevel(level)
	return w.dispatcher.AddAppender(app, queueCapacity)
}

// DelAppender unregisters and tears down adapter.
func (w *LogWriter) DelAppender(adapter *dispatcher.AppenderAdapter) {
	w.dispatcher.RemoveAppender(adapter)
}

// AppendersCount returns the number of currently registered appenders.
func (w *LogWriter) AppendersCount() int {
	return len(w.dispatcher.Appenders())
}

// AppenderClassNames returns the Name() of every currently registered
// appender, in registration order — a thread-safe snapshot, since
// Dispatcher.Appenders takes a short-lived lock on the adapter list.
func (w *LogWriter) AppenderClassNames() []string {
	adapters := w.dispatcher.Appenders()
	names := make([]string, len(adapters))
	for i, a := range adapters {
		names[i] = a.Appender().Name()
	}
	return names
}

// Close shuts the writer down: it signals the dispatcher to terminate
// gracefully, waits for the main queue to drain, tears down every
// appender, and only then returns.
func (w *LogWriter) Close() error {
	w.dispatcher.Terminate()
	return w.dispatcher.Wait()
}
