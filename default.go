package logkit

import "sync"

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func newDefaultLogger() *Logger {
	l := New(WithMinLevel(LevelTrace))
	_ = l.AddTransportByName("console", TransportConfig{
		Type:     "console",
		MinLevel: LevelInfo,
		Color:    boolPtr(true),
	})
	return l
}

func boolPtr(b bool) *bool { return &b }

// Default returns the process-wide logger, building it on first use: every
// level enabled and one colored console transport at info and above.
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultOnce.Do(func() {
		if defaultLogger == nil {
			defaultLogger = newDefaultLogger()
		}
	})
	return defaultLogger
}

// SetDefault replaces the process-wide logger. Setting nil makes the next
// Default call build a fresh one.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
	if l == nil {
		defaultOnce = sync.Once{}
	}
}

// ResetDefault closes the process-wide logger and forgets it, so the next
// Default call builds a fresh one.
func ResetDefault() error {
	defaultMu.Lock()
	l := defaultLogger
	defaultLogger = nil
	defaultOnce = sync.Once{}
	defaultMu.Unlock()

	if l == nil {
		return nil
	}
	return l.Close()
}

// Package-level shorthands using the default logger.

// Log logs through the default logger.
func Log(level any, args ...any) { Default().Log(level, args...) }

// Use returns a view of the default logger bound to domain.
func Use(domain string) *BoundLogger { return Default().Use(domain) }

func Trace(args ...any)   { Default().Trace(args...) }
func Debug(args ...any)   { Default().Debug(args...) }
func Verbose(args ...any) { Default().Verbose(args...) }
func Info(args ...any)    { Default().Info(args...) }
func Warning(args ...any) { Default().Warning(args...) }
func Error(args ...any)   { Default().Error(args...) }
func Fatal(args ...any)   { Default().Fatal(args...) }
