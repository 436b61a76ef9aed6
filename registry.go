package logkit

import (
	"strings"
	"sync"
)

// Factory builds a transport for l from cfg.
type Factory func(l *Logger, cfg TransportConfig) (Transport, error)

// Registry maps transport type names to factories. Names are matched
// case-insensitively.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// DefaultRegistry holds the built-in transports: console, file, zerolog and
// zap.
var DefaultRegistry = newBuiltinRegistry()

func newBuiltinRegistry() *Registry {
	r := NewRegistry()
	r.Register("console", NewConsoleTransport)
	r.Register("file", NewFileTransport)
	r.Register("zerolog", NewZerologTransport)
	r.Register("zap", NewZapTransport)
	return r
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, f Factory) {
	if f == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[normalizeName(name)] = f
}

// Lookup returns the factory for name or an *UnknownTransportError.
func (r *Registry) Lookup(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[normalizeName(name)]
	if !ok {
		return nil, &UnknownTransportError{Name: name}
	}
	return f, nil
}

// Names returns the registered type names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
