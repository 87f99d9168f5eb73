package core

import (
	"sync"
	"sync/atomic"
	"time"
)

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

func init() {
	t := time.Now()
	coarseNow.Store(&t)
}

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 500µs for NewRecord's useCoarseClock path. It is
// safe to call multiple times; the goroutine is started exactly once.
// The goroutine runs for the lifetime of the process, matching
// LogWriter's own lifetime assumption that once opted in, every
// producer keeps calling CoarseNow for as long as the writer is used.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}

// CoarseNow returns the most recently cached time.Time value. A
// producer that calls it before StartCoarseClock gets the time the
// process started instead of a stale or zero value — NewRecord must
// never panic on a timestamp lookup just because a caller forgot to
// opt in the clock first.
func CoarseNow() time.Time {
	return *coarseNow.Load()
}
