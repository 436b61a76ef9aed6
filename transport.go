package logkit

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Transport is a sink attached to a Logger. Emit is the completion signal:
// it is called once per gated-in record, may block, and reports failure
// through its return value. Transports whose level range excludes a record
// are never called for it. A Transport may also implement io.Closer, in
// which case it is closed when detached.
type Transport interface {
	MinLevel() int
	MaxLevel() int
	Emit(rec *Record) error
}

// TransportConfig describes one transport for AddTransportByName and
// SetConfig. Style fields left nil inherit the logger's style.
type TransportConfig struct {
	Type     string `yaml:"type" validate:"required"`
	MinLevel any    `yaml:"minLevel"`
	MaxLevel any    `yaml:"maxLevel"`

	Color             *bool  `yaml:"color"`
	Indent            *bool  `yaml:"indent"`
	IncludeIDMeta     *bool  `yaml:"includeIdMeta"`
	IncludeCommonMeta *bool  `yaml:"includeCommonMeta"`
	IncludeUserMeta   *bool  `yaml:"includeUserMeta"`
	TimeFormat        string `yaml:"timeFormatter" validate:"omitempty,oneof=dateTimeMs dateTime timeMs time"`

	// Output selects stdout or stderr for stream transports.
	Output string `yaml:"output" validate:"omitempty,oneof=stdout stderr"`

	// File transport settings.
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"maxSizeMB" validate:"gte=0"`
	MaxBackups int    `yaml:"maxBackups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"maxAgeDays" validate:"gte=0"`
	Compress   bool   `yaml:"compress"`

	// Writer overrides Output for stream transports.
	Writer io.Writer `yaml:"-" validate:"-"`
	// Zap is the logger used by the zap transport.
	Zap *zap.Logger `yaml:"-" validate:"-"`
}

// CommonTransport carries the level gate and style every built-in transport
// shares. Embed it and implement Emit.
type CommonTransport struct {
	name     string
	minLevel int
	maxLevel int
	Style    StyleOptions
}

// NewCommonTransport resolves cfg's level range and style against the
// logger's defaults. Unresolvable levels fall back to the full table.
func NewCommonTransport(l *Logger, cfg TransportConfig) CommonTransport {
	ct := CommonTransport{
		name:     cfg.Type,
		minLevel: 0,
		maxLevel: Levels.Len() - 1,
		Style:    DefaultStyle,
	}
	if l != nil {
		ct.Style = l.style
	}

	if rank, _, ok := Levels.Resolve(cfg.MinLevel); ok {
		ct.minLevel = rank
	}
	if rank, _, ok := Levels.Resolve(cfg.MaxLevel); ok {
		ct.maxLevel = rank
	}

	setBool(&ct.Style.Color, cfg.Color)
	setBool(&ct.Style.Indent, cfg.Indent)
	setBool(&ct.Style.IncludeIDMeta, cfg.IncludeIDMeta)
	setBool(&ct.Style.IncludeCommonMeta, cfg.IncludeCommonMeta)
	setBool(&ct.Style.IncludeUserMeta, cfg.IncludeUserMeta)
	if tf, ok := TimeFormatByName(cfg.TimeFormat); ok {
		ct.Style.TimeFormat = tf
	}
	return ct
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func (c *CommonTransport) MinLevel() int { return c.minLevel }
func (c *CommonTransport) MaxLevel() int { return c.maxLevel }

// Name returns the transport type name.
func (c *CommonTransport) Name() string { return c.name }

// Render returns rec rendered with the transport's style.
func (c *CommonTransport) Render(rec *Record) string {
	return RenderText(c.Style, rec)
}

// transportName runs inside recover handlers, so a panicking Name falls
// back to the dynamic type.
func transportName(t Transport) (name string) {
	name = fmt.Sprintf("%T", t)
	defer func() {
		if recover() != nil {
			name = fmt.Sprintf("%T", t)
		}
	}()
	if n, ok := t.(interface{ Name() string }); ok {
		if s := n.Name(); s != emptyString {
			return s
		}
	}
	return name
}
