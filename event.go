package logkit

// Event builds a single record fluently, for calls that need a code, meta
// or a stack alongside the message:
//
//	logger.At(logkit.LevelError).Domain("db").Code(503).Meta("table", t).Err(err)
//
// At returns nil when the level is disabled or unknown; every method on a
// nil Event is a no-op, so chains need no guard.
type Event struct {
	l   *Logger
	req Request
}

// At starts an Event at level.
func (l *Logger) At(level any) *Event {
	rank, _, ok := Levels.Resolve(level)
	if !ok || !l.Enabled(rank) {
		return nil
	}
	return &Event{l: l, req: Request{Level: rank}}
}

// Domain sets the record's domain.
func (e *Event) Domain(domain string) *Event {
	if e != nil {
		e.req.Domain = domain
	}
	return e
}

// Code sets the record's code tag.
func (e *Event) Code(code any) *Event {
	if e != nil {
		e.req.Code = code
	}
	return e
}

// Meta adds one user meta key.
func (e *Event) Meta(key string, val any) *Event {
	if e != nil {
		if e.req.Meta == nil {
			e.req.Meta = make(map[string]any)
		}
		e.req.Meta[key] = val
	}
	return e
}

// Fields adds every key of fields to the user meta.
func (e *Event) Fields(fields map[string]any) *Event {
	if e != nil {
		for k, v := range fields {
			e.Meta(k, v)
		}
	}
	return e
}

// Stack attaches the caller's stack to the record.
func (e *Event) Stack() *Event {
	if e != nil {
		e.req.Stack = CaptureStack(1)
	}
	return e
}

// Callback sets the completion callback.
func (e *Event) Callback(cb Callback) *Event {
	if e != nil {
		e.req.Callback = cb
	}
	return e
}

// Msg dispatches v as the message. Strings are used verbatim, without
// template substitution.
func (e *Event) Msg(v any) error {
	if e == nil {
		return nil
	}
	e.req.Template = v
	e.req.Args = nil
	if _, isString := v.(string); isString {
		return e.l.dispatchRaw(e.req)
	}
	return e.l.Dispatch(e.req)
}

// Msgf dispatches template formatted with args.
func (e *Event) Msgf(template string, args ...any) error {
	if e == nil {
		return nil
	}
	e.req.Template = template
	e.req.Args = args
	return e.l.Dispatch(e.req)
}

// Err dispatches err as the message.
func (e *Event) Err(err error) error {
	if e == nil {
		return nil
	}
	e.req.Template = err
	return e.l.Dispatch(e.req)
}

// Mon dispatches a monitoring record.
func (e *Event) Mon(mon map[string]any) error {
	if e == nil || mon == nil {
		return nil
	}
	e.req.Mon = mon
	return e.l.Dispatch(e.req)
}

// dispatchRaw dispatches req without counting its template.
func (l *Logger) dispatchRaw(req Request) error {
	rank, name, ok := Levels.Resolve(req.Level)
	if !ok || !l.Enabled(rank) {
		return nil
	}
	return l.dispatch(rank, name, req, 0)
}
