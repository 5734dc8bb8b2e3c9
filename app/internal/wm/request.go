// SPDX-License-Identifier: Unlicense OR MIT

package wm

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"gtkwin.org/app/internal/log"
	"gtkwin.org/io/event"
	"gtkwin.org/io/pointer"
)

// Request is a window operation funneled to the toolkit thread.
// Requests are applied in the order they were sent.
type Request interface {
	implementsRequest()
}

// Envelope addresses a Request to a window.
type Envelope struct {
	Window  event.WindowID
	Request Request
}

type (
	Title struct{ Title string }
	// Position moves the window to a logical position.
	Position struct{ X, Y int }
	// Size resizes the window to a logical size.
	Size            struct{ W, H int }
	SizeConstraints struct{ Min, Max *image.Point }
	Visible         struct{ Visible bool }
	// Focus presents the window to the user.
	Focus          struct{}
	Resizable      struct{ Resizable bool }
	Closable       struct{ Closable bool }
	Minimized      struct{ Minimized bool }
	Maximized      struct{ Maximized bool }
	DragWindow     struct{}
	FullscreenMode struct{ Fullscreen *Fullscreen }
	Decorations    struct{ Decorated bool }
	AlwaysOnBottom struct{ Enabled bool }
	AlwaysOnTop    struct{ Enabled bool }
	// WindowIcon sets the icon, or does nothing if Icon is nil.
	WindowIcon    struct{ Icon *Icon }
	UserAttention struct{ Urgent bool }
	SkipTaskbar   struct{ Skip bool }
	CursorIcon    struct{ Cursor pointer.Cursor }
	// CursorPosition warps the pointer to a logical position relative
	// to the window.
	CursorPosition     struct{ X, Y int }
	CursorIgnoreEvents struct{ Ignore bool }
	// WireUpEvents connects the input signals of the window.
	WireUpEvents struct {
		Transparent bool
		CursorMoved bool
	}
	VisibleOnAllWorkspaces struct{ Visible bool }
	Destroy                struct{}
)

func (Title) implementsRequest()                  {}
func (Position) implementsRequest()               {}
func (Size) implementsRequest()                   {}
func (SizeConstraints) implementsRequest()        {}
func (Visible) implementsRequest()                {}
func (Focus) implementsRequest()                  {}
func (Resizable) implementsRequest()              {}
func (Closable) implementsRequest()               {}
func (Minimized) implementsRequest()              {}
func (Maximized) implementsRequest()              {}
func (DragWindow) implementsRequest()             {}
func (FullscreenMode) implementsRequest()         {}
func (Decorations) implementsRequest()            {}
func (AlwaysOnBottom) implementsRequest()         {}
func (AlwaysOnTop) implementsRequest()            {}
func (WindowIcon) implementsRequest()             {}
func (UserAttention) implementsRequest()          {}
func (SkipTaskbar) implementsRequest()            {}
func (CursorIcon) implementsRequest()             {}
func (CursorPosition) implementsRequest()         {}
func (CursorIgnoreEvents) implementsRequest()     {}
func (WireUpEvents) implementsRequest()           {}
func (VisibleOnAllWorkspaces) implementsRequest() {}
func (Destroy) implementsRequest()                {}

// Dispatcher applies requests to native windows and wires their
// callbacks to the event and redraw queues.
type Dispatcher struct {
	Events Sender[event.Event]
	Draws  Sender[event.WindowID]
}

// Apply performs r on w.
func (d *Dispatcher) Apply(w Window, r Request) {
	switch r := r.(type) {
	case Title:
		w.SetTitle(r.Title)
	case Position:
		w.Move(r.X, r.Y)
	case Size:
		w.Resize(r.W, r.H)
	case SizeConstraints:
		w.SetSizeConstraints(r.Min, r.Max)
	case Visible:
		w.SetVisible(r.Visible)
	case Focus:
		w.Present()
	case Resizable:
		w.SetResizable(r.Resizable)
	case Closable:
		w.SetDeletable(r.Closable)
	case Minimized:
		w.SetMinimized(r.Minimized)
	case Maximized:
		w.SetMaximized(r.Maximized)
	case DragWindow:
		w.BeginMoveDrag()
	case FullscreenMode:
		w.SetFullscreen(r.Fullscreen)
	case Decorations:
		w.SetDecorated(r.Decorated)
	case AlwaysOnBottom:
		w.SetKeepBelow(r.Enabled)
	case AlwaysOnTop:
		w.SetKeepAbove(r.Enabled)
	case WindowIcon:
		if r.Icon != nil {
			w.SetIcon(r.Icon)
		}
	case UserAttention:
		w.SetUrgent(r.Urgent)
	case SkipTaskbar:
		w.SetSkipTaskbar(r.Skip)
	case CursorIcon:
		w.SetCursor(r.Cursor)
	case CursorPosition:
		w.WarpCursor(r.X, r.Y)
	case CursorIgnoreEvents:
		w.SetCursorPassthrough(r.Ignore)
	case WireUpEvents:
		h := NewHandler(w.ID(), d.Events, d.Draws)
		w.WireUp(h, WireUp{Transparent: r.Transparent, CursorMoved: r.CursorMoved})
	case VisibleOnAllWorkspaces:
		w.SetVisibleOnAllWorkspaces(r.Visible)
	case Destroy:
		w.Destroy()
	default:
		panic(fmt.Sprintf("wm: unknown request %T", r))
	}
	if ce := log.L().Check(zap.DebugLevel, "applied window request"); ce != nil {
		ce.Write(zap.Stringer("window", w.ID()), zap.String("request", fmt.Sprintf("%T", r)))
	}
}
