// Package logging builds the shared application logger on top of zap.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel parses a log level string, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	switch s {
	case "debug", "DEBUG":
		return zapcore.DebugLevel
	case "info", "INFO":
		return zapcore.InfoLevel
	case "warn", "WARN", "warning", "WARNING":
		return zapcore.WarnLevel
	case "error", "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New creates a sugared logger at the given level. Debug selects the
// development encoder for readable console output.
func New(level zapcore.Level) *zap.SugaredLogger {
	var cfg zap.Config
	if level == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		// Build only fails on an invalid config; a render is not worth
		// aborting over logging.
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

// Discard returns a logger that drops everything. Used in tests.
func Discard() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
