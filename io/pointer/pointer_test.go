// SPDX-License-Identifier: Unlicense OR MIT

package pointer

import (
	"testing"
)

func TestButtonFromCode(t *testing.T) {
	for _, tc := range []struct {
		code uint
		res  string
	}{
		{1, "Left"},
		{2, "Middle"},
		{3, "Right"},
		{4, "Other(4)"},
		{8, "Other(8)"},
	} {
		t.Run(tc.res, func(t *testing.T) {
			if want, got := tc.res, ButtonFromCode(tc.code).String(); want != got {
				t.Errorf("got %q; want %q", got, want)
			}
		})
	}
	if code, ok := ButtonFromCode(9).Other(); !ok || code != 9 {
		t.Errorf("Other() = %d, %v; want 9, true", code, ok)
	}
	if _, ok := ButtonLeft.Other(); ok {
		t.Error("left button reported as other")
	}
	if ButtonFromCode(1) != ButtonLeft {
		t.Error("code 1 is not comparable to ButtonLeft")
	}
}

func TestCursorName(t *testing.T) {
	for _, tc := range []struct {
		c    Cursor
		name string
	}{
		{CursorDefault, "default"},
		{CursorPointer, "pointer"},
		{CursorNorthWestResize, "nw-resize"},
		{CursorNorthWestSouthEastResize, "nwse-resize"},
		{Cursor(250), "default"},
	} {
		if got := tc.c.Name(); got != tc.name {
			t.Errorf("%d.Name() = %q; want %q", tc.c, got, tc.name)
		}
	}
}
