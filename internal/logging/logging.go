// Package logging builds the shared zap logger. The file sink rotates
// via lumberjack so long batch runs over large page sets cannot grow a
// log without bound.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mpopescu/gazex/internal/model"
)

// New constructs a logger per the configuration. The returned closer
// flushes buffered entries and must be called on exit.
func New(cfg model.LoggingConfig) (*zap.Logger, func()) {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	var cores []zapcore.Core

	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    maxSize(cfg.MaxSizeMB),
			MaxBackups: cfg.MaxBackups,
		}
		enc := zap.NewProductionEncoderConfig()
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(enc),
			zapcore.AddSync(rotator),
			level,
		))
	}

	if cfg.Console {
		enc := zap.NewDevelopmentEncoderConfig()
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(enc),
			zapcore.Lock(os.Stderr),
			level,
		))
	}

	if len(cores) == 0 {
		return zap.NewNop(), func() {}
	}

	log := zap.New(zapcore.NewTee(cores...))
	return log, func() { _ = log.Sync() }
}

func maxSize(mb int) int {
	if mb <= 0 {
		return 5
	}
	return mb
}
