// SPDX-License-Identifier: Unlicense OR MIT

// Package wm defines the interface between the event loop and the
// native toolkit, the window requests funneled to the toolkit thread
// and the translation of native callbacks into events.
//
// Unless noted otherwise, methods of Toolkit and Window must only be
// called on the toolkit thread.
package wm

import (
	"image"
	"time"

	"gtkwin.org/io/event"
	"gtkwin.org/io/pointer"
)

// Toolkit is the native toolkit owning the main loop.
type Toolkit interface {
	// Iterate runs one iteration of the native main loop. If block is
	// set, Iterate waits for native activity, or until deadline if
	// deadline is not the zero time.
	Iterate(block bool, deadline time.Time)
	// Wakeup makes a blocked Iterate return. Wakeup may be called
	// from any goroutine.
	Wakeup()
	// NewWindow allocates a native window with a fresh id.
	NewWindow() (Window, error)
	// SetTheme changes the process wide theme preference.
	SetTheme(t Theme)
	Monitors() []Monitor
	PrimaryMonitor() (Monitor, bool)
	IsWayland() bool
	DisplayHandle() DisplayHandle
}

// Window is a native window.
type Window interface {
	ID() event.WindowID

	// Observe installs the callbacks that keep o up to date. It is
	// called once, during construction.
	Observe(o Observer)
	// WireUp connects the input and window signals to h.
	WireUp(h *Handler, opts WireUp)

	Position() (x, y int)
	Size() (w, h int)
	ScaleFactor() int
	IsMaximized() bool
	IsVisible() bool
	IsDecorated() bool
	IsResizable() bool
	Monitor() (Monitor, bool)
	Handle() WindowHandle

	SetTitle(title string)
	SetDefaultSize(w, h int)
	Move(x, y int)
	Resize(w, h int)
	// SetSizeConstraints sets the minimum and maximum logical size.
	// A nil bound removes the constraint.
	SetSizeConstraints(min, max *image.Point)
	SetVisible(visible bool)
	Present()
	SetAcceptFocus(accept bool)
	SetResizable(resizable bool)
	SetDeletable(deletable bool)
	SetMinimized(minimized bool)
	SetMaximized(maximized bool)
	BeginMoveDrag()
	SetFullscreen(f *Fullscreen)
	SetDecorated(decorated bool)
	SetKeepBelow(below bool)
	SetKeepAbove(above bool)
	SetIcon(icon *Icon)
	SetUrgent(urgent bool)
	SetSkipTaskbar(skip bool)
	SetCursor(c pointer.Cursor)
	WarpCursor(x, y int)
	SetCursorPassthrough(passthrough bool)
	SetVisibleOnAllWorkspaces(visible bool)
	SetRGBAVisual()
	SetAppPaintable(paintable bool)
	SetDoubleBuffered(buffered bool)
	AddDefaultVBox()
	SetWMClass(general, instance string)
	Destroy()
}

// Observer receives the window state notifications installed during
// window construction. The methods are called on the toolkit thread.
type Observer interface {
	// Configured reports the logical position and size.
	Configured(x, y, w, h int)
	StateChanged(maximized, minimized bool)
	ScaleChanged(scale int)
	// Destroyed is called when the native window is gone.
	Destroyed()
}

// WireUp configures the signals connected by Window.WireUp.
type WireUp struct {
	// Transparent clears the background in the draw handler.
	Transparent bool
	// CursorMoved enables cursor motion events.
	CursorMoved bool
}

// Fullscreen selects borderless fullscreen mode.
type Fullscreen struct {
	// Monitor is the index of the target monitor, or -1 for the
	// monitor the window is on.
	Monitor int
}

// Icon is a straight alpha RGBA image, 4 bytes per pixel without
// row padding.
type Icon struct {
	Width, Height int
	Pix           []byte
}

// Theme mirrors system.Theme without importing it in toolkit code.
type Theme uint8

const (
	ThemeLight Theme = iota
	ThemeDark
)

// Monitor is a snapshot of a monitor in logical coordinates.
type Monitor struct {
	Index  int
	Name   string
	Bounds image.Rectangle
	Scale  int
	// RefreshRate in millihertz, or 0 if unknown.
	RefreshRate int
}

// HandleKind is the display protocol of a raw handle.
type HandleKind uint8

const (
	HandleNone HandleKind = iota
	HandleXlib
	HandleWayland
)

// DisplayHandle is a raw display connection for interop with rendering
// libraries. For Xlib, Display is a Display* and Screen the default
// screen number. For Wayland, Display is a wl_display*.
type DisplayHandle struct {
	Kind    HandleKind
	Display uintptr
	Screen  int
}

// WindowHandle is a raw window. For Xlib, Window is the XID. For
// Wayland, Surface is a wl_surface*.
type WindowHandle struct {
	Kind    HandleKind
	Window  uint64
	Surface uintptr
}

// Sender is the sending side of a queue.
type Sender[T any] interface {
	Send(v T) error
}
