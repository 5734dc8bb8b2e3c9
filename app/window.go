// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"gtkwin.org/app/internal/log"
	"gtkwin.org/app/internal/wm"
	"gtkwin.org/io/event"
	"gtkwin.org/io/pointer"
	"gtkwin.org/io/system"
	"gtkwin.org/unit"
)

// Window is a native window. Its setters may be called from any
// goroutine: they queue a request for the toolkit thread and return
// immediately. Getters read a cached copy of the window state, except
// where noted.
type Window struct {
	id     event.WindowID
	target *WindowTarget
	// native is only accessed on the toolkit thread.
	native wm.Window
	theme  system.Theme
	st     cachedState
}

// cachedState is updated by toolkit callbacks and read from any
// goroutine. The geometry is in logical pixels.
type cachedState struct {
	scale      atomic.Int32
	x, y       atomic.Int32
	w, h       atomic.Int32
	maximized  atomic.Bool
	minimized  atomic.Bool
	fullscreen atomic.Pointer[Fullscreen]
	cursor     atomic.Uint32
	title      atomic.Pointer[string]

	onDestroy func()
}

// Fullscreen selects borderless fullscreen mode on the monitor with
// index Monitor, or the current monitor if Monitor is negative.
type Fullscreen = wm.Fullscreen

// DisplayHandle is a raw display connection.
type DisplayHandle = wm.DisplayHandle

// WindowHandle is a raw window handle.
type WindowHandle = wm.WindowHandle

// HandleKind is the display protocol of a raw handle.
type HandleKind = wm.HandleKind

const (
	HandleNone    = wm.HandleNone
	HandleXlib    = wm.HandleXlib
	HandleWayland = wm.HandleWayland
)

func (s *cachedState) Configured(x, y, w, h int) {
	s.x.Store(int32(x))
	s.y.Store(int32(y))
	s.w.Store(int32(w))
	s.h.Store(int32(h))
}

func (s *cachedState) StateChanged(maximized, minimized bool) {
	s.maximized.Store(maximized)
	s.minimized.Store(minimized)
}

func (s *cachedState) ScaleChanged(scale int) {
	s.scale.Store(int32(scale))
}

func (s *cachedState) Destroyed() {
	if s.onDestroy != nil {
		s.onDestroy()
	}
}

// NewWindow creates a window configured by options. The window is
// shown unless the Visible(false) option is given.
func (t *WindowTarget) NewWindow(options ...Option) (*Window, error) {
	t.checkThread()
	cnf := wm.DefaultConfig()
	for _, o := range options {
		o(&cnf)
	}
	nw, err := t.tk.NewWindow()
	if err != nil {
		log.L().Error("window creation failed", zap.Error(err))
		return nil, fmt.Errorf("app: new window: %w", err)
	}
	id := nw.ID()
	t.register(nw)
	wm.Build(t.tk, nw, &cnf)

	w := &Window{id: id, target: t, native: nw}
	if cnf.Theme != nil {
		w.theme = *cnf.Theme
	}
	x, y := nw.Position()
	width, height := nw.Size()
	w.st.Configured(x, y, width, height)
	w.st.StateChanged(nw.IsMaximized(), false)
	w.st.ScaleChanged(nw.ScaleFactor())
	w.st.fullscreen.Store(cnf.Fullscreen)
	w.st.title.Store(&cnf.Title)
	w.st.onDestroy = func() { t.forget(id) }
	nw.Observe(&w.st)

	t.send(id, wm.WireUpEvents{
		Transparent: cnf.Transparent && cnf.TransparentDraw,
		CursorMoved: cnf.CursorMoved,
	})
	t.redraw(id)
	log.L().Debug("window created", zap.Stringer("window", id), zap.String("title", cnf.Title))
	return w, nil
}

// ID returns the identifier carried by the events of the window. Ids
// are not reused.
func (w *Window) ID() event.WindowID {
	return w.id
}

// ScaleFactor returns the ratio of physical to logical pixels.
func (w *Window) ScaleFactor() float64 {
	if s := w.st.scale.Load(); s > 0 {
		return float64(s)
	}
	return 1
}

func (w *Window) logicalPosition() unit.LogicalPosition {
	return unit.LogicalPosition{X: float64(w.st.x.Load()), Y: float64(w.st.y.Load())}
}

func (w *Window) logicalSize() unit.LogicalSize {
	return unit.LogicalSize{Width: float64(w.st.w.Load()), Height: float64(w.st.h.Load())}
}

// InnerPosition returns the position of the client area.
func (w *Window) InnerPosition() unit.PhysicalPosition {
	return w.logicalPosition().Physical(w.ScaleFactor())
}

// OuterPosition returns the position of the window including
// decorations. GTK reports the same position for both.
func (w *Window) OuterPosition() unit.PhysicalPosition {
	return w.InnerPosition()
}

// InnerSize returns the size of the client area.
func (w *Window) InnerSize() unit.PhysicalSize {
	return w.logicalSize().Physical(w.ScaleFactor())
}

// OuterSize returns the size of the window including decorations. GTK
// reports the same size for both.
func (w *Window) OuterSize() unit.PhysicalSize {
	return w.InnerSize()
}

func (w *Window) IsMaximized() bool {
	return w.st.maximized.Load()
}

func (w *Window) IsMinimized() bool {
	return w.st.minimized.Load()
}

// Fullscreen returns the fullscreen mode, or nil if the window is not
// fullscreen.
func (w *Window) Fullscreen() *Fullscreen {
	return w.st.fullscreen.Load()
}

func (w *Window) Title() string {
	return *w.st.title.Load()
}

// Theme returns the preferred theme the window was created with.
func (w *Window) Theme() system.Theme {
	return w.theme
}

// IsVisible reads the native window and must be called on the toolkit
// thread.
func (w *Window) IsVisible() bool {
	w.target.checkThread()
	return w.native.IsVisible()
}

// IsDecorated reads the native window and must be called on the
// toolkit thread.
func (w *Window) IsDecorated() bool {
	w.target.checkThread()
	return w.native.IsDecorated()
}

// IsResizable reads the native window and must be called on the
// toolkit thread.
func (w *Window) IsResizable() bool {
	w.target.checkThread()
	return w.native.IsResizable()
}

// CurrentMonitor returns the monitor with the largest part of the
// window. It must be called on the toolkit thread.
func (w *Window) CurrentMonitor() (Monitor, bool) {
	w.target.checkThread()
	m, ok := w.native.Monitor()
	if !ok {
		return Monitor{}, false
	}
	return newMonitor(m), true
}

// WindowHandle returns the raw native window. It must be called on the
// toolkit thread, after the window is shown.
func (w *Window) WindowHandle() WindowHandle {
	w.target.checkThread()
	return w.native.Handle()
}

func (w *Window) send(r wm.Request) {
	w.target.send(w.id, r)
}

func (w *Window) SetTitle(title string) {
	w.st.title.Store(&title)
	w.send(wm.Title{Title: title})
}

// SetOuterPosition moves the window.
func (w *Window) SetOuterPosition(p unit.Position) {
	x, y := p.Logical(w.ScaleFactor()).Ints()
	w.send(wm.Position{X: x, Y: y})
}

// SetInnerSize resizes the client area.
func (w *Window) SetInnerSize(s unit.Size) {
	width, height := s.Logical(w.ScaleFactor()).Ints()
	w.send(wm.Size{W: width, H: height})
}

// SetSizeConstraints limits the inner size. A nil bound removes the
// limit.
func (w *Window) SetSizeConstraints(min, max unit.Size) {
	scale := w.ScaleFactor()
	w.send(wm.SizeConstraints{Min: toPoint(min, scale), Max: toPoint(max, scale)})
}

func (w *Window) SetVisible(visible bool) {
	w.send(wm.Visible{Visible: visible})
}

// Focus brings the window to the front and gives it the keyboard
// focus.
func (w *Window) Focus() {
	w.send(wm.Focus{})
}

func (w *Window) SetResizable(resizable bool) {
	w.send(wm.Resizable{Resizable: resizable})
}

// SetClosable controls the close button of the window decorations.
func (w *Window) SetClosable(closable bool) {
	w.send(wm.Closable{Closable: closable})
}

func (w *Window) SetMinimized(minimized bool) {
	w.send(wm.Minimized{Minimized: minimized})
}

func (w *Window) SetMaximized(maximized bool) {
	w.send(wm.Maximized{Maximized: maximized})
}

// DragWindow starts moving the window with the primary pointer
// button, typically in response to a press on a custom title bar.
func (w *Window) DragWindow() {
	w.send(wm.DragWindow{})
}

// SetFullscreen enters fullscreen mode, or leaves it if f is nil.
func (w *Window) SetFullscreen(f *Fullscreen) {
	if f != nil {
		c := *f
		f = &c
	}
	w.st.fullscreen.Store(f)
	w.send(wm.FullscreenMode{Fullscreen: f})
}

func (w *Window) SetDecorations(decorated bool) {
	w.send(wm.Decorations{Decorated: decorated})
}

func (w *Window) SetAlwaysOnBottom(enabled bool) {
	w.send(wm.AlwaysOnBottom{Enabled: enabled})
}

func (w *Window) SetAlwaysOnTop(enabled bool) {
	w.send(wm.AlwaysOnTop{Enabled: enabled})
}

// SetWindowIcon sets the window icon. A nil icon is ignored.
func (w *Window) SetWindowIcon(icon *Icon) {
	if icon == nil {
		return
	}
	w.send(wm.WindowIcon{Icon: &icon.icon})
}

// RequestUserAttention marks the window urgent, or clears the mark.
func (w *Window) RequestUserAttention(urgent bool) {
	w.send(wm.UserAttention{Urgent: urgent})
}

func (w *Window) SetSkipTaskbar(skip bool) {
	w.send(wm.SkipTaskbar{Skip: skip})
}

func (w *Window) SetCursorIcon(c pointer.Cursor) {
	w.st.cursor.Store(uint32(c))
	w.send(wm.CursorIcon{Cursor: c})
}

// SetCursorVisible hides the cursor over the window, or restores the
// last cursor set by SetCursorIcon.
func (w *Window) SetCursorVisible(visible bool) {
	c := pointer.CursorNone
	if visible {
		c = pointer.Cursor(w.st.cursor.Load())
	}
	w.send(wm.CursorIcon{Cursor: c})
}

// SetCursorPosition warps the pointer to a position relative to the
// window.
func (w *Window) SetCursorPosition(p unit.Position) {
	x, y := p.Logical(w.ScaleFactor()).Ints()
	w.send(wm.CursorPosition{X: x, Y: y})
}

// SetIgnoreCursorEvents makes the window transparent to pointer input.
func (w *Window) SetIgnoreCursorEvents(ignore bool) {
	w.send(wm.CursorIgnoreEvents{Ignore: ignore})
}

// SetCursorGrab is not supported by the toolkit and returns
// ErrNotSupported.
func (w *Window) SetCursorGrab(grab bool) error {
	return fmt.Errorf("%w: cursor grab", ErrNotSupported)
}

func (w *Window) SetVisibleOnAllWorkspaces(visible bool) {
	w.send(wm.VisibleOnAllWorkspaces{Visible: visible})
}

// RequestRedraw queues a RedrawRequested event for the window.
func (w *Window) RequestRedraw() {
	w.target.redraw(w.id)
}

// Close destroys the window. The last event of the window is a
// system.Destroyed event.
func (w *Window) Close() {
	w.send(wm.Destroy{})
}
