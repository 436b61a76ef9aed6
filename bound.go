package logkit

// Emitter is the call surface shared by a Logger and its domain-bound views.
type Emitter interface {
	Log(level any, args ...any)
	Trace(args ...any)
	Debug(args ...any)
	Verbose(args ...any)
	Info(args ...any)
	Warning(args ...any)
	Error(args ...any)
	Fatal(args ...any)
	At(level any) *Event
	Use(domain string) *BoundLogger
}

var (
	_ Emitter = (*Logger)(nil)
	_ Emitter = (*BoundLogger)(nil)
)

// BoundLogger is a view of a Logger with a fixed domain. It reads the
// root's levels and transports at call time, so reconfiguring the root is
// visible through every view.
type BoundLogger struct {
	root   *Logger
	domain string
}

// Use returns a view of l whose calls all carry domain. Calls through the
// view take no domain argument.
func (l *Logger) Use(domain string) *BoundLogger {
	return &BoundLogger{root: l, domain: domain}
}

// Use returns a view of the same root bound to domain instead.
func (b *BoundLogger) Use(domain string) *BoundLogger {
	return &BoundLogger{root: b.root, domain: domain}
}

// Domain returns the bound domain.
func (b *BoundLogger) Domain() string { return b.domain }

// Root returns the logger the view delegates to.
func (b *BoundLogger) Root() *Logger { return b.root }

// Log is Logger.Log without the domain argument.
func (b *BoundLogger) Log(level any, args ...any) {
	rank, name, ok := Levels.Resolve(level)
	if !ok || !b.root.Enabled(rank) {
		return
	}
	b.root.logArgs(rank, name, true, b.domain, args)
}

// Mon emits a monitoring record in the bound domain.
func (b *BoundLogger) Mon(mon map[string]any) {
	if mon == nil || !b.root.Enabled(int(LevelInfo)) {
		return
	}
	_ = b.root.Dispatch(Request{Level: LevelInfo, Domain: b.domain, Mon: mon})
}

// At starts a fluent event in the bound domain.
func (b *BoundLogger) At(level any) *Event {
	e := b.root.At(level)
	if e != nil {
		e.req.Domain = b.domain
	}
	return e
}
