// SPDX-License-Identifier: Unlicense OR MIT

// Package log holds the logger shared by the app packages.
package log

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(newDefault())
}

// newDefault logs warnings and errors to stderr. Toolkit callbacks
// report dropped events at warn level, so they are visible by
// default.
func newDefault() *zap.Logger {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(ec),
		zapcore.Lock(os.Stderr),
		zap.WarnLevel,
	)
	return zap.New(core).Named("gtkwin")
}

// L returns the current logger.
func L() *zap.Logger {
	return logger.Load()
}

// Named returns a child logger of the current logger.
func Named(name string) *zap.Logger {
	return L().Named(name)
}

// Set replaces the logger. A nil logger disables logging.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}
