// Package logging configures the command's zap logger.
package logging

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the process-wide logger.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the process-wide logger.
// This must be called before any call to Logger.
func SetLogger(l *zap.Logger) {
	logger = l
}

// New returns a console logger that writes entries at or above
// level to w.
//
// level is one of debug, info, warn, error, dpanic, panic or
// fatal. The empty string means info.
func New(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core, zap.ErrorOutput(zapcore.AddSync(w))), nil
}
