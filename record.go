package logkit

import (
	"os"
	"runtime"
	"sync"
	"time"
)

// Record is one log event as seen by transports. It is built once per
// dispatched call and shared read-only by every transport; only the render
// cache is written after construction.
type Record struct {
	Level     int
	LevelName string
	Domain    string
	Time      time.Time

	// Message is a plain or formatted string, an error, a FormatArgs, or any
	// other value kept raw for inspection. Unused when Mon is set.
	Message any
	// Mon holds monitoring key/values; when set it is the message.
	Mon map[string]any

	// Code is an optional tag rendered as "#code"; nil means absent.
	Code  any
	Meta  map[string]any
	Stack Stack

	Hostname string
	PID      int

	cache renderCache
}

// FormatArgs is a template whose substitution is deferred to the renderer so
// that substituted values can be colored per transport.
type FormatArgs struct {
	Template string
	Args     []any
}

// Stack is a captured call stack, innermost frame first.
type Stack []runtime.Frame

// CaptureStack records the calling goroutine's stack, skipping skip frames
// above the caller of CaptureStack.
func CaptureStack(skip int) Stack {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	var st Stack
	for {
		f, more := frames.Next()
		st = append(st, f)
		if !more {
			break
		}
	}
	return st
}

// renderCache memoizes rendered lines per style signature for one record.
// Transports render concurrently, so access is serialized.
type renderCache struct {
	mu    sync.Mutex
	lines map[styleKey]string
}

func (c *renderCache) getOrRender(key styleKey, render func() string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if line, ok := c.lines[key]; ok {
		return line
	}
	line := render()
	if c.lines == nil {
		c.lines = make(map[styleKey]string, 2)
	}
	c.lines[key] = line
	return line
}

var (
	identityOnce sync.Once
	hostname     string
	pid          int
)

func processIdentity() (string, int) {
	identityOnce.Do(func() {
		hostname, _ = os.Hostname()
		if hostname == emptyString {
			hostname = "localhost"
		}
		pid = os.Getpid()
	})
	return hostname, pid
}
