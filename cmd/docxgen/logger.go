package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns the CLI logger. --log-json selects JSON lines at info
// level (debug with --verbose), --verbose alone a human-readable debug
// logger, and otherwise nothing is logged. Output goes to w.
func newLogger(f commonFlags, w io.Writer) *zap.Logger {
	level := zapcore.InfoLevel
	if f.verbose {
		level = zapcore.DebugLevel
	}

	var enc zapcore.Encoder
	switch {
	case f.logJSON:
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case f.verbose:
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	default:
		return zap.NewNop()
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core)
}
