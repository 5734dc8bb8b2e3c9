// SPDX-License-Identifier: Unlicense OR MIT

//go:build !linux || nogtk
// +build !linux nogtk

package app

import (
	"fmt"

	"gtkwin.org/app/internal/wm"
)

func newToolkit() (wm.Toolkit, error) {
	return nil, fmt.Errorf("%w: built without gtk", ErrNoDisplay)
}
