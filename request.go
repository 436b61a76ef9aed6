package logkit

// Callback receives the aggregated outcome of one dispatch: nil, or an
// error whose per-transport failures TransportErrors extracts.
type Callback = func(error)

// Request is the explicit form of a log call.
type Request struct {
	// Level is a Level, an integer rank or a level name.
	Level any
	// Domain overrides the logger's default domain when non-empty.
	Domain string
	// Template is a fmt template, or any value to be logged raw when it
	// consumes no arguments.
	Template any
	// Args are the template substitutions; extras are ignored.
	Args     []any
	Callback Callback

	Code  any
	Meta  map[string]any
	Stack Stack
	// Mon, when set, makes this a monitoring record and Template is unused.
	Mon map[string]any
}

// parseArgs maps the variadic call layout onto a Request.
//
// Unbound:  domain, template, substitutions..., [callback]
// Bound:    template, substitutions..., [callback]
//
// The unbound domain slot is always consumed; a non-string there selects the
// default domain. The callback position accepts a func(error) or a func();
// any other value there is ignored, as is everything after it. ok is false when no template is given.
func parseArgs(engine FormatEngine, bound bool, boundDomain string, args []any) (req Request, n int, ok bool) {
	t := 1
	if bound {
		t = 0
		req.Domain = boundDomain
	} else if len(args) > 0 {
		if d, isString := args[0].(string); isString {
			req.Domain = d
		}
	}
	if len(args) <= t {
		return Request{}, 0, false
	}

	req.Template = args[t]
	n = engine.Count(req.Template)

	rest := args[t+1:]
	if n >= len(rest) {
		req.Args = rest
		return req, n, true
	}
	req.Args = rest[:n]
	req.Callback = asCallback(rest[n])
	return req, n, true
}

func asCallback(v any) Callback {
	switch cb := v.(type) {
	case Callback:
		return cb
	case func():
		if cb == nil {
			return nil
		}
		return func(error) { cb() }
	}
	return nil
}
