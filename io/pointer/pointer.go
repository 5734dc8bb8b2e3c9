// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements mouse and touchpad events and cursor
// icons.
package pointer

import (
	"fmt"

	"gtkwin.org/io/key"
	"gtkwin.org/unit"
)

// Button is a mouse button.
type Button struct {
	kind buttonKind
	code uint16
}

type buttonKind uint8

const (
	buttonOther buttonKind = iota
	buttonLeft
	buttonMiddle
	buttonRight
)

var (
	ButtonLeft   = Button{kind: buttonLeft}
	ButtonMiddle = Button{kind: buttonMiddle}
	ButtonRight  = Button{kind: buttonRight}
)

// ButtonOther returns the button for a native button code
// without a named button.
func ButtonOther(code uint16) Button {
	return Button{kind: buttonOther, code: code}
}

// ButtonFromCode maps a native button number. Codes 1, 2 and 3
// are the left, middle and right buttons.
func ButtonFromCode(code uint) Button {
	switch code {
	case 1:
		return ButtonLeft
	case 2:
		return ButtonMiddle
	case 3:
		return ButtonRight
	}
	return ButtonOther(uint16(code))
}

// Other returns the native code of a button that is not left,
// middle or right.
func (b Button) Other() (uint16, bool) {
	return b.code, b.kind == buttonOther
}

// Input is a mouse button press or release.
type Input struct {
	Button Button
	State  key.State
}

// Moved is a cursor motion inside a window.
type Moved struct {
	Position unit.PhysicalPosition
}

// Entered is sent when the cursor enters a window.
type Entered struct{}

// Left is sent when the cursor leaves a window.
type Left struct{}

// ScrollDelta is a scroll amount in lines. Positive Y scrolls up.
type ScrollDelta struct {
	X, Y float64
}

// TouchPhase is the phase of a continuous gesture.
type TouchPhase uint8

const (
	PhaseStarted TouchPhase = iota
	PhaseMoved
	PhaseEnded
	PhaseCancelled
)

// Wheel is a scroll event. Smooth scrolling reports PhaseMoved,
// discrete wheel steps report PhaseEnded.
type Wheel struct {
	Delta ScrollDelta
	Phase TouchPhase
}

// Cursor denotes a pre-defined cursor shape.
type Cursor byte

// The cursors correspond to CSS pointer naming.
const (
	// CursorDefault is the default cursor.
	CursorDefault Cursor = iota
	// CursorNone hides the cursor. To show it again, use any other cursor.
	CursorNone
	// CursorText is for selecting and inserting text.
	CursorText
	// CursorVerticalText is for selecting and inserting vertical text.
	CursorVerticalText
	// CursorPointer is for a link.
	// Usually displayed as a pointing hand.
	CursorPointer
	// CursorCrosshair is for a precise location.
	CursorCrosshair
	// CursorAllScroll is for indicating scrolling in all directions.
	CursorAllScroll
	// CursorColResize is for vertical resize.
	CursorColResize
	// CursorRowResize is for horizontal resize.
	CursorRowResize
	// CursorGrab is for content that can be grabbed (dragged to be moved).
	CursorGrab
	// CursorGrabbing is for content that is being grabbed.
	CursorGrabbing
	// CursorNotAllowed is shown when the request action cannot be carried out.
	CursorNotAllowed
	// CursorWait is shown when the program is busy and user cannot interact.
	CursorWait
	// CursorProgress is shown when the program is busy, but the user can still interact.
	CursorProgress
	CursorHelp
	CursorMove
	CursorContextMenu
	CursorCell
	CursorAlias
	CursorCopy
	CursorNoDrop
	CursorZoomIn
	CursorZoomOut
	CursorNorthWestResize
	CursorNorthEastResize
	CursorSouthWestResize
	CursorSouthEastResize
	CursorNorthSouthResize
	CursorEastWestResize
	CursorWestResize
	CursorEastResize
	CursorNorthResize
	CursorSouthResize
	CursorNorthEastSouthWestResize
	CursorNorthWestSouthEastResize
)

var cursorNames = [...]string{
	CursorDefault:                  "default",
	CursorNone:                     "none",
	CursorText:                     "text",
	CursorVerticalText:             "vertical-text",
	CursorPointer:                  "pointer",
	CursorCrosshair:                "crosshair",
	CursorAllScroll:                "all-scroll",
	CursorColResize:                "col-resize",
	CursorRowResize:                "row-resize",
	CursorGrab:                     "grab",
	CursorGrabbing:                 "grabbing",
	CursorNotAllowed:               "not-allowed",
	CursorWait:                     "wait",
	CursorProgress:                 "progress",
	CursorHelp:                     "help",
	CursorMove:                     "move",
	CursorContextMenu:              "context-menu",
	CursorCell:                     "cell",
	CursorAlias:                    "alias",
	CursorCopy:                     "copy",
	CursorNoDrop:                   "no-drop",
	CursorZoomIn:                   "zoom-in",
	CursorZoomOut:                  "zoom-out",
	CursorNorthWestResize:          "nw-resize",
	CursorNorthEastResize:          "ne-resize",
	CursorSouthWestResize:          "sw-resize",
	CursorSouthEastResize:          "se-resize",
	CursorNorthSouthResize:         "ns-resize",
	CursorEastWestResize:           "ew-resize",
	CursorWestResize:               "w-resize",
	CursorEastResize:               "e-resize",
	CursorNorthResize:              "n-resize",
	CursorSouthResize:              "s-resize",
	CursorNorthEastSouthWestResize: "nesw-resize",
	CursorNorthWestSouthEastResize: "nwse-resize",
}

// Name returns the CSS cursor name understood by
// gdk_cursor_new_from_name. CursorNone has no named cursor; the
// toolkit uses a blank cursor for it.
func (c Cursor) Name() string {
	if int(c) < len(cursorNames) {
		return cursorNames[c]
	}
	return cursorNames[CursorDefault]
}

func (c Cursor) String() string {
	if int(c) < len(cursorNames) {
		return cursorNames[c]
	}
	return fmt.Sprintf("Cursor(%d)", uint8(c))
}

func (b Button) String() string {
	switch b.kind {
	case buttonLeft:
		return "Left"
	case buttonMiddle:
		return "Middle"
	case buttonRight:
		return "Right"
	default:
		return fmt.Sprintf("Other(%d)", b.code)
	}
}

func (p TouchPhase) String() string {
	switch p {
	case PhaseStarted:
		return "Started"
	case PhaseMoved:
		return "Moved"
	case PhaseEnded:
		return "Ended"
	case PhaseCancelled:
		return "Cancelled"
	default:
		panic("unknown TouchPhase")
	}
}

func (Input) ImplementsEvent()   {}
func (Moved) ImplementsEvent()   {}
func (Entered) ImplementsEvent() {}
func (Left) ImplementsEvent()    {}
func (Wheel) ImplementsEvent()   {}
