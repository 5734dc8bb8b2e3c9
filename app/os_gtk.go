// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux && !nogtk
// +build linux,!nogtk

package app

import (
	"fmt"

	"gtkwin.org/app/internal/gtk"
	"gtkwin.org/app/internal/wm"
)

func newToolkit() (wm.Toolkit, error) {
	tk, err := gtk.New()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoDisplay, err)
	}
	return tk, nil
}
