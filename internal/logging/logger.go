// SPDX-License-Identifier: EPL-2.0

// Package logging builds the command-line logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the sugared logger the commands log with. Desugar it to
// hand a *zap.Logger to library packages.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger logs to stderr at Debug in verbose mode and at Info
// otherwise. It falls back to a no-op logger if zap cannot be built.
func NewLogger(verbose bool) *Logger {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.DisableStacktrace = true
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}

	return &Logger{SugaredLogger: l.Sugar()}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}
