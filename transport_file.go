package logkit

import (
	"io"
	"path/filepath"
	"sync"

	smerrors "github.com/Station-Manager/errors"
	"github.com/Station-Manager/utils"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileTransport appends uncolored rendered lines to a size-rotated file.
type FileTransport struct {
	CommonTransport
	mu     sync.Mutex
	writer *lumberjack.Logger
}

// NewFileTransport is the "file" factory. An empty Path logs to
// "<executable>.log" in the working directory. Color is off unless
// configured.
func NewFileTransport(l *Logger, cfg TransportConfig) (Transport, error) {
	const op smerrors.Op = "logkit.NewFileTransport"

	path := cfg.Path
	if path == emptyString {
		exeName, err := utils.ExecName(true)
		if err != nil {
			return nil, smerrors.New(op).Err(err).Msg(errMsgLogFileName)
		}
		if exeName == emptyString {
			exeName = "app"
		}
		path = exeName + ".log"
	}

	ct := NewCommonTransport(l, cfg)
	if cfg.Color == nil {
		ct.Style.Color = false
	}

	return &FileTransport{
		CommonTransport: ct,
		writer: &lumberjack.Logger{
			Filename:   filepath.Clean(path),
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		},
	}, nil
}

func (f *FileTransport) Emit(rec *Record) error {
	line := f.Render(rec)

	f.mu.Lock()
	defer f.mu.Unlock()
	_, err := io.WriteString(f.writer, line+"\n")
	return err
}

// Path returns the file being written.
func (f *FileTransport) Path() string { return f.writer.Filename }

// Close closes the underlying file.
func (f *FileTransport) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writer.Close()
}
