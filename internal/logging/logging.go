// SPDX-License-Identifier: MIT

// Package logging builds the CLI's zap logger and carries it through a
// context.Context.
package logging

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel names a logging threshold.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Levels lists the canonical level names, most verbose first.
var Levels = []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}

func (l LogLevel) String() string {
	return string(l)
}

// Valid reports whether l is a known name or alias.
func (l LogLevel) Valid() bool {
	switch l {
	case LogLevelDebug, "trace", LogLevelInfo, "information", "notice",
		LogLevelWarn, "warning", LogLevelError:
		return true
	}

	return false
}

// Zap maps l to a zap level. Unknown names fall back to error.
func (l LogLevel) Zap() zap.AtomicLevel {
	switch l {
	case LogLevelDebug, "trace":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case LogLevelInfo, "information", "notice":
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	case LogLevelWarn, "warning":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	default:
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
}

// Set implements pflag.Value.
func (l *LogLevel) Set(v string) error {
	lv := LogLevel(v)
	if !lv.Valid() {
		return fmt.Errorf("unknown log level %q (want one of %v)", v, Levels)
	}
	*l = lv

	return nil
}

// Type implements pflag.Value.
func (l *LogLevel) Type() string {
	return "level"
}

// New returns a console logger writing to w at level l. Timestamps are
// omitted so output is reproducible.
func New(l LogLevel, w io.Writer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), l.Zap())

	return zap.New(core)
}

type ctxKey struct{}

// WithLogger returns a copy of ctx carrying log.
func WithLogger(ctx context.Context, log *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// FromContext returns the logger stored in ctx, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if log, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok && log != nil {
			return log
		}
	}

	return zap.NewNop()
}
