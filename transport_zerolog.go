package logkit

import (
	"fmt"

	"github.com/Station-Manager/logkit/internal/format"
	"github.com/rs/zerolog"
)

// ZerologTransport forwards records to a zerolog.Logger, mapping domain,
// code and meta onto fields.
type ZerologTransport struct {
	CommonTransport
	logger zerolog.Logger
}

// NewZerologTransport is the "zerolog" factory. It writes JSON to Output
// (stderr by default), or human-readable lines through zerolog's
// ConsoleWriter when color is configured on.
func NewZerologTransport(l *Logger, cfg TransportConfig) (Transport, error) {
	out := streamWriter(cfg)
	if cfg.Writer == nil && cfg.Output == emptyString {
		out = streamWriter(TransportConfig{Output: "stderr"})
	}

	ct := NewCommonTransport(l, cfg)
	if cfg.Color != nil && *cfg.Color {
		out = zerolog.ConsoleWriter{Out: out}
	} else {
		ct.Style.Color = false
	}

	return NewZerologTransportFor(zerolog.New(out), ct), nil
}

// NewZerologTransportFor wraps an existing zerolog.Logger.
func NewZerologTransportFor(logger zerolog.Logger, ct CommonTransport) *ZerologTransport {
	if ct.name == emptyString {
		ct.name = "zerolog"
	}
	return &ZerologTransport{CommonTransport: ct, logger: logger}
}

func (z *ZerologTransport) Emit(rec *Record) error {
	ev := z.logger.WithLevel(zerologLevel(rec))
	if ev == nil {
		return nil
	}

	ev = ev.Time(zerolog.TimestampFieldName, rec.Time).Str("domain", rec.Domain)
	if rec.LevelName != emptyString {
		ev = ev.Str("level_name", rec.LevelName)
	}
	if rec.Code != nil {
		ev = ev.Str("code", fmt.Sprint(rec.Code))
	}
	if len(rec.Meta) > 0 {
		ev = ev.Fields(rec.Meta)
	}
	if rec.Mon != nil {
		ev = ev.Fields(rec.Mon)
	}

	if err, ok := rec.Message.(error); ok && rec.Mon == nil {
		ev.Err(err).Str("error_history", format.ErrorHistory(err)).Msg(emptyString)
		return nil
	}
	ev.Msg(MessageText(z.Style.Color, rec))
	return nil
}

// zerologLevel maps table ranks onto zerolog levels; verbose folds into
// debug and monitoring records log at info.
func zerologLevel(rec *Record) zerolog.Level {
	if rec.Mon != nil {
		return zerolog.InfoLevel
	}
	switch Level(rec.Level) {
	case LevelTrace:
		return zerolog.TraceLevel
	case LevelDebug, LevelVerbose:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarning:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelFatal:
		return zerolog.FatalLevel
	default:
		return zerolog.NoLevel
	}
}
