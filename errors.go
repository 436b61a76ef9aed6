package logkit

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	// ErrTransportPanic marks a transport that panicked while emitting or
	// reporting its level range.
	ErrTransportPanic = errors.New("transport panicked")
	// ErrClosed is passed to callbacks of records logged after Close.
	ErrClosed = errors.New("logger closed")
)

// TransportError is one transport's failure within a dispatch.
type TransportError struct {
	// Index is the transport's position in the attached list.
	Index int
	Name  string
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// TransportErrors splits a dispatch outcome into its per-transport failures.
func TransportErrors(err error) []*TransportError {
	var out []*TransportError
	for _, e := range multierr.Errors(err) {
		var te *TransportError
		if errors.As(e, &te) {
			out = append(out, te)
		}
	}
	return out
}

// UnknownTransportError is returned when a transport type has no registered
// factory.
type UnknownTransportError struct {
	Name string
}

func (e *UnknownTransportError) Error() string {
	return fmt.Sprintf("unknown transport %q", e.Name)
}
