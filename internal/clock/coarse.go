// Package clock provides a cached wall clock for hot logging paths.
package clock

import (
	"sync"
	"time"

	"go.uber.org/atomic"
)

const tick = 500 * time.Microsecond

var (
	startOnce sync.Once
	now       atomic.Pointer[time.Time]
)

// Start launches the goroutine that refreshes the cached time every 500µs.
// It is safe to call multiple times; the goroutine is started exactly once
// and runs for the lifetime of the process.
func Start() {
	startOnce.Do(func() {
		t := time.Now()
		now.Store(&t)
		go func() {
			ticker := time.NewTicker(tick)
			for range ticker.C {
				t := time.Now()
				now.Store(&t)
			}
		}()
	})
}

// Now returns the most recently cached time, or time.Now() if Start has not
// been called yet.
func Now() time.Time {
	if t := now.Load(); t != nil {
		return *t
	}
	return time.Now()
}
