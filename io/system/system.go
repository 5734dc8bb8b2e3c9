// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains window level events such as
// geometry changes, focus and close requests.
package system

import (
	"gtkwin.org/unit"
)

// CloseRequested is sent when the user asks to close a window, for
// example through the title bar close button. The window is not
// destroyed; use Window.Close to do that.
type CloseRequested struct{}

// Destroyed is the last event for a window.
type Destroyed struct{}

// Focused reports a change of keyboard focus.
type Focused struct {
	Focus bool
}

// Moved reports the outer position of a window.
type Moved struct {
	Position unit.PhysicalPosition
}

// Resized reports the inner size of a window.
type Resized struct {
	Size unit.PhysicalSize
}

// ScaleFactorChanged reports a new scale factor for a window,
// typically after it moved to another monitor.
type ScaleFactorChanged struct {
	ScaleFactor float64
}

// Theme is a window color theme preference.
type Theme uint8

const (
	// ThemeLight prefers the light variant of the toolkit theme.
	ThemeLight Theme = iota
	// ThemeDark prefers the dark variant.
	ThemeDark
)

// Level is the stacking level of a window.
type Level uint8

const (
	LevelNormal Level = iota
	// LevelAlwaysOnBottom keeps the window below other windows.
	LevelAlwaysOnBottom
	// LevelAlwaysOnTop keeps the window above other windows.
	LevelAlwaysOnTop
)

func (CloseRequested) ImplementsEvent()     {}
func (Destroyed) ImplementsEvent()          {}
func (Focused) ImplementsEvent()            {}
func (Moved) ImplementsEvent()              {}
func (Resized) ImplementsEvent()            {}
func (ScaleFactorChanged) ImplementsEvent() {}

func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "Light"
	case ThemeDark:
		return "Dark"
	default:
		panic("unknown Theme")
	}
}

func (l Level) String() string {
	switch l {
	case LevelNormal:
		return "Normal"
	case LevelAlwaysOnBottom:
		return "AlwaysOnBottom"
	case LevelAlwaysOnTop:
		return "AlwaysOnTop"
	default:
		panic("unknown Level")
	}
}
