package writer

import (
	"fmt"
	"sync"

	"github.com/nilsbrandt/corelog/core"
)

// debug/info/warn/error/fatal and their formatted variants are, per
// spec.md §6, "thin sugar producing log calls" and not part of the core
// contract. They are grounded on logger/default.go's package-level
// convenience wrappers around a process-wide default Logger, adapted to
// LogWriter's (level, message, tag) signature — tag defaults to "".

var (
	defaultMu sync.RWMutex
	defaultW  *LogWriter
)

// Default returns the process-wide default LogWriter, or nil if none
// has been installed with SetDefault.
func Default() *LogWriter {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultW
}

// SetDefault installs w as the process-wide default LogWriter used by
// the package-level Debug/Info/Warn/Error/Fatal helpers.
func SetDefault(w *LogWriter) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultW = w
}

// Debug logs message at core.Debug on the default writer, tagged tag.
func Debug(message, tag string) { logDefault(core.Debug, message, tag) }

// Info logs message at core.Info on the default writer, tagged tag.
func Info(message, tag string) { logDefault(core.Info, message, tag) }

// Warn logs message at core.Warning on the default writer, tagged tag.
func Warn(message, tag string) { logDefault(core.Warning, message, tag) }

// Error logs message at core.Error on the default writer, tagged tag.
func Error(message, tag string) { logDefault(core.Error, message, tag) }

// Fatal logs message at core.Fatal on the default writer, tagged tag.
// Unlike the teacher's Logger.Fatal, it does not call os.Exit — the
// core contract has no such side effect (spec.md §4.7 lists only
// log/enable/disable/add_appender/del_appender as LogWriter operations)
// so exiting the process is left to the caller.
func Fatal(message, tag string) { logDefault(core.Fatal, message, tag) }

// Debugf logs a formatted message at core.Debug on the default writer.
func Debugf(tag, format string, args ...any) {
	logDefault(core.Debug, fmt.Sprintf(format, args...), tag)
}

// Infof logs a formatted message at core.Info on the default writer.
func Infof(tag, format string, args ...any) {
	logDefault(core.Info, fmt.Sprintf(format, args...), tag)
}

// Warnf logs a formatted message at core.Warning on the default writer.
func Warnf(tag, format string, args ...any) {
	logDefault(core.Warning, fmt.Sprintf(format, args...), tag)
}

// Errorf logs a formatted message at core.Error on the default writer.
func Errorf(tag, format string, args ...any) {
	logDefault(core.Error, fmt.Sprintf(format, args...), tag)
}

// Fatalf logs a formatted message at core.Fatal on the default writer.
func Fatalf(tag, format string, args ...any) {
	logDefault(core.Fatal, fmt.Sprintf(format, args...), tag)
}

func logDefault(level core.Level, message, tag string) {
	w := Default()
	if w == nil {
		return
	}
	w.Log(level, message, tag)
}
