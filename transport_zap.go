package logkit

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapTransport forwards records to a *zap.Logger. Fatal records are written
// at zap's error level so forwarding never exits the process.
type ZapTransport struct {
	CommonTransport
	logger *zap.Logger
}

// NewZapTransport is the "zap" factory. It uses cfg.Zap when set, otherwise
// a JSON logger on Output (stderr by default).
func NewZapTransport(l *Logger, cfg TransportConfig) (Transport, error) {
	logger := cfg.Zap
	if logger == nil {
		out := streamWriter(cfg)
		if cfg.Writer == nil && cfg.Output == emptyString {
			out = streamWriter(TransportConfig{Output: "stderr"})
		}
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(out),
			zapcore.DebugLevel,
		)
		logger = zap.New(core)
	}

	ct := NewCommonTransport(l, cfg)
	ct.Style.Color = false
	return &ZapTransport{CommonTransport: ct, logger: logger}, nil
}

func (z *ZapTransport) Emit(rec *Record) error {
	ce := z.logger.Check(zapLevel(rec), MessageText(false, rec))
	if ce == nil {
		return nil
	}

	fields := make([]zap.Field, 0, 4+len(rec.Meta))
	fields = append(fields,
		zap.String("domain", rec.Domain),
		zap.String("level_name", rec.LevelName),
	)
	if rec.Code != nil {
		fields = append(fields, zap.String("code", fmt.Sprint(rec.Code)))
	}
	if err, ok := rec.Message.(error); ok && rec.Mon == nil {
		fields = append(fields, zap.Error(err))
	}
	for k, v := range rec.Meta {
		fields = append(fields, zap.Any(k, v))
	}

	ce.Time = rec.Time
	ce.Write(fields...)
	return nil
}

// Close flushes buffered entries.
func (z *ZapTransport) Close() error {
	// Syncing a terminal returns EINVAL on some platforms; a failed flush
	// on detach is not actionable.
	_ = z.logger.Sync()
	return nil
}

func zapLevel(rec *Record) zapcore.Level {
	if rec.Mon != nil {
		return zapcore.InfoLevel
	}
	switch Level(rec.Level) {
	case LevelTrace, LevelDebug, LevelVerbose:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarning:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
