// Package zaplog backs the pipeline logger with zap and owns the process log sink.
package zaplog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ealfonsov89/menu-maker/pkg/menu/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type adapter struct {
	s *zap.SugaredLogger
}

// New adapts a zap logger to logging.Logger.
func New(l *zap.Logger) logging.Logger {
	return adapter{s: l.Sugar()}
}

func (a adapter) Log(level logging.Level, msg string, keysAndValues ...any) {
	switch level {
	case logging.LevelDebug:
		a.s.Debugw(msg, keysAndValues...)
	case logging.LevelWarn:
		a.s.Warnw(msg, keysAndValues...)
	case logging.LevelError:
		a.s.Errorw(msg, keysAndValues...)
	default:
		a.s.Infow(msg, keysAndValues...)
	}
}

// SinkConfig configures the process log sink.
type SinkConfig struct {
	// File is the side-channel log file. Empty disables it.
	File string
	// Level is the minimum level written, e.g. "info" or "debug".
	Level string
	// Stdout receives the console stream. Defaults to os.Stdout.
	Stdout zapcore.WriteSyncer
}

// NewSink builds a logger writing to stdout and to the configured file.
// The returned close func flushes the logger and closes the file; call it
// once before the process exits.
func NewSink(cfg SinkConfig) (*zap.Logger, func() error, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")

	stdout := cfg.Stdout
	if stdout == nil {
		stdout = zapcore.Lock(os.Stdout)
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), stdout, level),
	}

	var file *os.File
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.Create(cfg.File)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create log file: %w", err)
		}
		file = f
		fileEnc := encCfg
		fileEnc.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(fileEnc), zapcore.AddSync(f), level))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	closeFn := func() error {
		// Sync on stdout fails with EINVAL on some terminals; only the file matters.
		_ = logger.Sync()
		if file != nil {
			return file.Close()
		}
		return nil
	}
	return logger, closeFn, nil
}
