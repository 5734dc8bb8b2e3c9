// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"

	"go.uber.org/zap"

	"gtkwin.org/app/internal/log"
)

var (
	// ErrNoDisplay is returned by NewEventLoop when the toolkit cannot
	// connect to a display.
	ErrNoDisplay = errors.New("app: no display available")
	// ErrNotSupported is returned by operations the toolkit cannot
	// perform.
	ErrNotSupported = errors.New("app: operation not supported")
)

// SetLogger replaces the logger used by the event loop and the
// toolkit. The default logger writes warnings and errors to stderr;
// a nil logger disables logging.
func SetLogger(l *zap.Logger) {
	log.Set(l)
}
