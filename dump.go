package logkit

// Dump logs v at debug level in domain without formatting it first, so
// transports render it through the value inspector: structs, maps and
// slices are shown field by field with their types.
func (l *Logger) Dump(domain string, v any) {
	if !l.Enabled(int(LevelDebug)) {
		return
	}
	_ = l.dispatchRaw(Request{Level: LevelDebug, Domain: domain, Template: v})
}

// Dump logs v at debug level in the bound domain.
func (b *BoundLogger) Dump(v any) {
	b.root.Dump(b.domain, v)
}
