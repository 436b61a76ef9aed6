package logkit

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// ConsoleTransport writes rendered lines to a stream as soon as they are
// emitted.
type ConsoleTransport struct {
	CommonTransport
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleTransport is the "console" factory. Output defaults to stdout;
// color, when not configured, is enabled only for terminals.
func NewConsoleTransport(l *Logger, cfg TransportConfig) (Transport, error) {
	out := streamWriter(cfg)
	ct := NewCommonTransport(l, cfg)
	if cfg.Color == nil {
		ct.Style.Color = isTerminal(out)
	}
	return &ConsoleTransport{CommonTransport: ct, out: out}, nil
}

func (c *ConsoleTransport) Emit(rec *Record) error {
	line := c.Render(rec)

	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := io.WriteString(c.out, line+"\n")
	return err
}

func streamWriter(cfg TransportConfig) io.Writer {
	switch {
	case cfg.Writer != nil:
		return cfg.Writer
	case cfg.Output == "stderr":
		return os.Stderr
	default:
		return os.Stdout
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
