// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements keyboard events.
//
// A ModifiersChanged event always precedes the Input event whose
// modifier state differs from the previously reported state.
package key

import (
	"strings"
)

// Input is a key press or release.
type Input struct {
	// ScanCode is the hardware key code.
	ScanCode uint32
	// Name of the key, or the empty Name for keys without a mapping.
	Name Name
	// State is the state of the key when the event was fired.
	State State
	// Modifiers is the set of active modifiers.
	Modifiers Modifiers
}

// ModifiersChanged reports a new set of active modifiers.
type ModifiersChanged struct {
	Modifiers Modifiers
}

// State is the state of a key or button during an event.
type State uint8

const (
	// Press is the state of a pressed key.
	Press State = iota
	// Release is the state of a key that has been released.
	Release
)

// Modifiers
type Modifiers uint32

const (
	// ModShift is the shift modifier key.
	ModShift Modifiers = 1 << iota
	// ModCtrl is the ctrl modifier key.
	ModCtrl
	// ModAlt is the alt modifier key.
	ModAlt
	// ModSuper is the "logo" modifier key, often
	// represented by a Windows logo.
	ModSuper
)

// Name is the identifier for a keyboard key.
type Name string

const (
	// Names for special keys.
	NameLeftArrow      Name = "←"
	NameRightArrow     Name = "→"
	NameUpArrow        Name = "↑"
	NameDownArrow      Name = "↓"
	NameReturn         Name = "⏎"
	NameEnter          Name = "⌤"
	NameEscape         Name = "⎋"
	NameHome           Name = "⇱"
	NameEnd            Name = "⇲"
	NameDeleteBackward Name = "⌫"
	NameDeleteForward  Name = "⌦"
	NamePageUp         Name = "⇞"
	NamePageDown       Name = "⇟"
	NameTab            Name = "Tab"
	NameSpace          Name = "Space"
	NameInsert         Name = "Insert"
	NamePrint          Name = "Print"
	NameScrollLock     Name = "ScrollLock"
	NamePause          Name = "Pause"
	NameNumLock        Name = "NumLock"
	NameCapsLock       Name = "CapsLock"
	NameLeftCtrl       Name = "LeftCtrl"
	NameRightCtrl      Name = "RightCtrl"
	NameLeftShift      Name = "LeftShift"
	NameRightShift     Name = "RightShift"
	NameLeftAlt        Name = "LeftAlt"
	NameRightAlt       Name = "RightAlt"
	NameLeftSuper      Name = "LeftSuper"
	NameRightSuper     Name = "RightSuper"
	NameF1             Name = "F1"
	NameF2             Name = "F2"
	NameF3             Name = "F3"
	NameF4             Name = "F4"
	NameF5             Name = "F5"
	NameF6             Name = "F6"
	NameF7             Name = "F7"
	NameF8             Name = "F8"
	NameF9             Name = "F9"
	NameF10            Name = "F10"
	NameF11            Name = "F11"
	NameF12            Name = "F12"
)

// Contain reports whether m contains all modifiers
// in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (Input) ImplementsEvent()            {}
func (ModifiersChanged) ImplementsEvent() {}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, "Ctrl")
	}
	if m.Contain(ModShift) {
		strs = append(strs, "Shift")
	}
	if m.Contain(ModAlt) {
		strs = append(strs, "Alt")
	}
	if m.Contain(ModSuper) {
		strs = append(strs, "Super")
	}
	return strings.Join(strs, "-")
}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("invalid State")
	}
}
