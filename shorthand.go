package logkit

// Log emits a record. level is a Level, an integer rank or a level name;
// args are laid out as
//
//	domain, template, substitutions..., [callback]
//
// The domain slot is positional: pass nil for the default domain. The
// template's verbs decide how many substitutions are consumed; a
// func(error) or func() right after them is called once every transport
// has finished. Any other value in that position is ignored. Malformed
// calls are dropped silently; Log never panics on behalf of a transport.
func (l *Logger) Log(level any, args ...any) {
	rank, name, ok := Levels.Resolve(level)
	if !ok || !l.Enabled(rank) {
		return
	}
	l.logArgs(rank, name, false, emptyString, args)
}

func (l *Logger) logArgs(rank int, name string, bound bool, domain string, args []any) {
	req, n, ok := parseArgs(l.formatEngine(), bound, domain, args)
	if !ok {
		return
	}
	_ = l.dispatch(rank, name, req, n)
}

// Mon emits a monitoring record: each key/value of mon is rendered on its
// own line. It is gated at the info rank.
func (l *Logger) Mon(domain string, mon map[string]any) {
	if mon == nil || !l.Enabled(int(LevelInfo)) {
		return
	}
	_ = l.Dispatch(Request{Level: LevelInfo, Domain: domain, Mon: mon})
}

// Level shorthands. Each checks the level bounds before touching its
// arguments, so a disabled level costs two comparisons.

func (l *Logger) Trace(args ...any) {
	if l.Enabled(int(LevelTrace)) {
		l.logArgs(int(LevelTrace), "trace", false, emptyString, args)
	}
}

func (l *Logger) Debug(args ...any) {
	if l.Enabled(int(LevelDebug)) {
		l.logArgs(int(LevelDebug), "debug", false, emptyString, args)
	}
}

func (l *Logger) Verbose(args ...any) {
	if l.Enabled(int(LevelVerbose)) {
		l.logArgs(int(LevelVerbose), "verbose", false, emptyString, args)
	}
}

func (l *Logger) Info(args ...any) {
	if l.Enabled(int(LevelInfo)) {
		l.logArgs(int(LevelInfo), "info", false, emptyString, args)
	}
}

func (l *Logger) Warning(args ...any) {
	if l.Enabled(int(LevelWarning)) {
		l.logArgs(int(LevelWarning), "warning", false, emptyString, args)
	}
}

func (l *Logger) Error(args ...any) {
	if l.Enabled(int(LevelError)) {
		l.logArgs(int(LevelError), "error", false, emptyString, args)
	}
}

// Fatal logs at the fatal level. It does not exit the process.
func (l *Logger) Fatal(args ...any) {
	if l.Enabled(int(LevelFatal)) {
		l.logArgs(int(LevelFatal), "fatal", false, emptyString, args)
	}
}

func (b *BoundLogger) Trace(args ...any) {
	if b.root.Enabled(int(LevelTrace)) {
		b.root.logArgs(int(LevelTrace), "trace", true, b.domain, args)
	}
}

func (b *BoundLogger) Debug(args ...any) {
	if b.root.Enabled(int(LevelDebug)) {
		b.root.logArgs(int(LevelDebug), "debug", true, b.domain, args)
	}
}

func (b *BoundLogger) Verbose(args ...any) {
	if b.root.Enabled(int(LevelVerbose)) {
		b.root.logArgs(int(LevelVerbose), "verbose", true, b.domain, args)
	}
}

func (b *BoundLogger) Info(args ...any) {
	if b.root.Enabled(int(LevelInfo)) {
		b.root.logArgs(int(LevelInfo), "info", true, b.domain, args)
	}
}

func (b *BoundLogger) Warning(args ...any) {
	if b.root.Enabled(int(LevelWarning)) {
		b.root.logArgs(int(LevelWarning), "warning", true, b.domain, args)
	}
}

func (b *BoundLogger) Error(args ...any) {
	if b.root.Enabled(int(LevelError)) {
		b.root.logArgs(int(LevelError), "error", true, b.domain, args)
	}
}

func (b *BoundLogger) Fatal(args ...any) {
	if b.root.Enabled(int(LevelFatal)) {
		b.root.logArgs(int(LevelFatal), "fatal", true, b.domain, args)
	}
}
