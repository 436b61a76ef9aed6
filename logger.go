package logkit

import (
	"fmt"
	"io"
	"reflect"
	"sync"
	"time"

	"github.com/Station-Manager/logkit/internal/clock"
	"github.com/Station-Manager/logkit/internal/format"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
)

// FormatEngine counts and substitutes template arguments for the dispatcher.
type FormatEngine interface {
	// Count returns how many positional arguments template consumes.
	Count(template any) int
	Format(template string, args ...any) string
}

type defaultEngine struct{}

func (defaultEngine) Count(template any) int                     { return format.Count(template) }
func (defaultEngine) Format(template string, args ...any) string { return format.Format(template, args...) }

// Logger filters, formats and fans records out to its transports.
//
// Level bounds, the default domain and the transport list may be changed
// at any time without tearing, but callers should serialize reconfiguration
// against logging: a record may be dispatched against a half-replaced
// transport list.
type Logger struct {
	minLevel      atomic.Int32
	maxLevel      atomic.Int32
	defaultDomain atomic.String
	transports    atomic.Pointer[[]Transport]

	style           StyleOptions
	registry        *Registry
	engine          FormatEngine
	diag            zerolog.Logger
	coarseClock     bool
	shutdownTimeout time.Duration

	mu       sync.RWMutex
	wg       sync.WaitGroup
	inflight atomic.Int64
	closed   atomic.Bool
}

// Option configures a Logger at construction.
type Option func(*Logger)

// WithMinLevel sets the lowest enabled level. Unresolvable values are ignored.
func WithMinLevel(level any) Option {
	return func(l *Logger) {
		if rank, _, ok := Levels.Resolve(level); ok {
			l.minLevel.Store(int32(rank))
		}
	}
}

// WithMaxLevel sets the highest enabled level. Unresolvable values are ignored.
func WithMaxLevel(level any) Option {
	return func(l *Logger) {
		if rank, _, ok := Levels.Resolve(level); ok {
			l.maxLevel.Store(int32(rank))
		}
	}
}

// WithDefaultDomain sets the domain used when a call names none.
func WithDefaultDomain(domain string) Option {
	return func(l *Logger) {
		if domain != emptyString {
			l.defaultDomain.Store(domain)
		}
	}
}

// WithStyle sets the style new transports inherit.
func WithStyle(style StyleOptions) Option {
	return func(l *Logger) { l.style = style }
}

// WithRegistry sets the registry used to resolve transport type names.
func WithRegistry(r *Registry) Option {
	return func(l *Logger) {
		if r != nil {
			l.registry = r
		}
	}
}

// WithFormatEngine replaces the template engine.
func WithFormatEngine(e FormatEngine) Option {
	return func(l *Logger) {
		if e != nil {
			l.engine = e
		}
	}
}

// WithDiagnostics sets where the logger reports its own problems, such as
// transports skipped during configuration. The default discards them.
func WithDiagnostics(diag zerolog.Logger) Option {
	return func(l *Logger) { l.diag = diag }
}

// WithCoarseClock stamps records from a cached clock refreshed every 500µs
// instead of calling time.Now per record.
func WithCoarseClock() Option {
	return func(l *Logger) {
		clock.Start()
		l.coarseClock = true
	}
}

// WithShutdownTimeout bounds how long Close waits for in-flight dispatches.
func WithShutdownTimeout(d time.Duration) Option {
	return func(l *Logger) {
		if d > 0 {
			l.shutdownTimeout = d
		}
	}
}

// New returns a Logger with no transports, levels info..fatal and the
// "no-domain" default domain.
func New(opts ...Option) *Logger {
	l := &Logger{
		style:           DefaultStyle,
		registry:        DefaultRegistry,
		engine:          defaultEngine{},
		diag:            zerolog.Nop(),
		shutdownTimeout: defaultShutdownTimeout,
	}
	l.minLevel.Store(int32(DefaultMinLevel))
	l.maxLevel.Store(int32(DefaultMaxLevel))
	l.defaultDomain.Store(DefaultDomain)

	for _, opt := range opts {
		opt(l)
	}
	return l
}

// MinLevel returns the lowest enabled rank.
func (l *Logger) MinLevel() int { return int(l.minLevel.Load()) }

// MaxLevel returns the highest enabled rank.
func (l *Logger) MaxLevel() int { return int(l.maxLevel.Load()) }

// DefaultDomain returns the domain used when a call names none.
func (l *Logger) DefaultDomain() string { return l.defaultDomain.Load() }

// Enabled reports whether rank passes the logger's level bounds.
func (l *Logger) Enabled(rank int) bool {
	return rank >= int(l.minLevel.Load()) && rank <= int(l.maxLevel.Load())
}

// Transports returns a snapshot of the attached transports.
func (l *Logger) Transports() []Transport {
	p := l.transports.Load()
	if p == nil {
		return nil
	}
	out := make([]Transport, len(*p))
	copy(out, *p)
	return out
}

// AddTransport appends t to the transport list. Nil transports, including
// typed nil pointers, are ignored.
func (l *Logger) AddTransport(t Transport) {
	if isNilTransport(t) {
		return
	}
	for {
		old := l.transports.Load()
		var cur []Transport
		if old != nil {
			cur = *old
		}
		next := make([]Transport, len(cur), len(cur)+1)
		copy(next, cur)
		next = append(next, t)
		if l.transports.CompareAndSwap(old, &next) {
			return
		}
	}
}

func isNilTransport(t Transport) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// AddTransportByName builds a transport through the registry and attaches
// it. On error nothing is attached.
func (l *Logger) AddTransportByName(name string, cfg TransportConfig) error {
	t, err := l.buildTransport(name, cfg)
	if err != nil {
		return err
	}
	l.AddTransport(t)
	return nil
}

// RemoveAllTransports detaches every transport, closing those that
// implement io.Closer. Close errors are combined.
func (l *Logger) RemoveAllTransports() error {
	var old *[]Transport
	for {
		old = l.transports.Load()
		if l.transports.CompareAndSwap(old, nil) {
			break
		}
	}
	if old == nil {
		return nil
	}

	var err error
	for _, t := range *old {
		if c, ok := t.(io.Closer); ok {
			err = multierr.Append(err, c.Close())
		}
	}
	return err
}

// Close stops accepting records, waits up to the shutdown timeout for
// in-flight dispatches, then detaches and closes all transports. Records
// logged afterwards are dropped and their callbacks receive ErrClosed.
// Calling Close more than once is safe.
func (l *Logger) Close() error {
	l.mu.Lock()
	if l.closed.Load() {
		l.mu.Unlock()
		return nil
	}
	l.closed.Store(true)
	l.mu.Unlock()

	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(l.shutdownTimeout):
		l.diag.Warn().
			Int64("in_flight", l.inflight.Load()).
			Dur("timeout", l.shutdownTimeout).
			Msg("close timed out waiting for in-flight records")
	}

	return l.RemoveAllTransports()
}

// admit registers an in-flight dispatch, or reports false once closed.
func (l *Logger) admit() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed.Load() {
		return false
	}
	l.inflight.Inc()
	l.wg.Add(1)
	return true
}

func (l *Logger) release() {
	l.inflight.Dec()
	l.wg.Done()
}

// formatEngine and transportRegistry keep a struct-literal Logger usable.
func (l *Logger) formatEngine() FormatEngine {
	if l.engine == nil {
		return defaultEngine{}
	}
	return l.engine
}

func (l *Logger) transportRegistry() *Registry {
	if l.registry == nil {
		return DefaultRegistry
	}
	return l.registry
}

func (l *Logger) now() time.Time {
	if l.coarseClock {
		return clock.Now().UTC()
	}
	return time.Now().UTC()
}

// Dispatch resolves req and delivers it to every transport whose range
// includes its level, concurrently. It returns, and passes to
// req.Callback, nil or a multierr aggregate of *TransportError values once
// every transport has completed. Malformed or filtered requests return nil
// without calling the callback. After Close, the callback receives
// ErrClosed and nothing is delivered.
func (l *Logger) Dispatch(req Request) error {
	rank, name, ok := Levels.Resolve(req.Level)
	if !ok || !l.Enabled(rank) {
		return nil
	}
	n := 0
	if req.Mon == nil {
		n = l.formatEngine().Count(req.Template)
	}
	return l.dispatch(rank, name, req, n)
}

func (l *Logger) dispatch(rank int, name string, req Request, n int) error {
	if !l.admit() {
		if req.Callback != nil {
			req.Callback(ErrClosed)
		}
		return ErrClosed
	}
	defer l.release()

	host, procID := processIdentity()
	rec := &Record{
		Level:     rank,
		LevelName: name,
		Domain:    req.Domain,
		Time:      l.now(),
		Code:      req.Code,
		Meta:      req.Meta,
		Stack:     req.Stack,
		Hostname:  host,
		PID:       procID,
	}
	if rec.Domain == emptyString {
		rec.Domain = l.defaultDomain.Load()
	}

	switch {
	case req.Mon != nil:
		rec.LevelName = monLevelName
		rec.Mon = req.Mon
	case n == 0:
		rec.Message = req.Template
	default:
		tmpl, _ := req.Template.(string)
		args := req.Args
		if len(args) > n {
			args = args[:n]
		}
		rec.Message = l.formatEngine().Format(tmpl, args...)
	}

	var ts []Transport
	if p := l.transports.Load(); p != nil {
		ts = *p
	}
	err := fanOut(rec, ts)

	if req.Callback != nil {
		req.Callback(err)
	}
	return err
}

// fanOut emits rec to every gated-in transport concurrently and waits for
// all of them. A single gated-in transport runs on the calling goroutine.
func fanOut(rec *Record, ts []Transport) error {
	errs := make([]error, len(ts))
	gated := make([]int, 0, len(ts))
	for i, t := range ts {
		in, err := admits(i, t, rec.Level)
		if err != nil {
			errs[i] = err
			continue
		}
		if in {
			gated = append(gated, i)
		}
	}

	switch len(gated) {
	case 0:
		return multierr.Combine(errs...)
	case 1:
		i := gated[0]
		errs[i] = emit(i, ts[i], rec)
		return multierr.Combine(errs...)
	}

	var wg sync.WaitGroup
	wg.Add(len(gated))
	for _, i := range gated {
		go func(i int) {
			defer wg.Done()
			errs[i] = emit(i, ts[i], rec)
		}(i)
	}
	wg.Wait()
	return multierr.Combine(errs...)
}

// admits reports whether t's level range includes rank. A panicking level
// getter is reported as that transport's failure.
func admits(i int, t Transport, rank int) (in bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			in = false
			err = &TransportError{
				Index: i,
				Name:  transportName(t),
				Err:   fmt.Errorf("%w: %v", ErrTransportPanic, r),
			}
		}
	}()
	return rank >= t.MinLevel() && rank <= t.MaxLevel(), nil
}

func emit(i int, t Transport, rec *Record) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &TransportError{
				Index: i,
				Name:  transportName(t),
				Err:   fmt.Errorf("%w: %v", ErrTransportPanic, r),
			}
		}
	}()

	if e := t.Emit(rec); e != nil {
		return &TransportError{Index: i, Name: transportName(t), Err: e}
	}
	return nil
}
