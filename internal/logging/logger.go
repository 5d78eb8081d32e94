// Package logging builds the zap logger used across nidus-extract.
package logging

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/Gleipnir-Technology/nidus-extract/internal/model"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a logger writing to stderr at the configured level and format.
// Output goes to stderr so rendered graphs on stdout stay machine-readable.
func New(cfg model.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	core := zapcore.NewCore(
		newEncoder(cfg.Format),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core), nil
}

// Nop returns a logger that discards everything
func Nop() *zap.Logger {
	return zap.NewNop()
}

// newEncoder creates JSON or console encoder.
func newEncoder(format string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "console" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return zapcore.NewConsoleEncoder(encoderCfg)
	}
	return zapcore.NewJSONEncoder(encoderCfg)
}

// Sync flushes the logger, ignoring the harmless errors returned when
// stderr is a terminal.
func Sync(l *zap.Logger) error {
	err := l.Sync()
	if err != nil && isStdoutSyncError(err) {
		return nil
	}
	return err
}

// isStdoutSyncError checks if error is harmless stdout/stderr sync error.
// On Linux, syncing stdout/stderr returns EINVAL or ENOTTY which are safe to ignore.
func isStdoutSyncError(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.EINVAL || errno == syscall.ENOTTY
	}
	return false
}
