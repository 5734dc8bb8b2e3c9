// SPDX-License-Identifier: Unlicense OR MIT

// Package wmtest implements an in-memory toolkit for testing the event
// loop without a display.
package wmtest

import (
	"fmt"
	"image"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"gtkwin.org/app/internal/wm"
	"gtkwin.org/io/event"
	"gtkwin.org/io/pointer"
)

// Iteration records a call to Toolkit.Iterate.
type Iteration struct {
	Block    bool
	Deadline time.Time
}

// Toolkit is a fake wm.Toolkit. Its fields must only be changed before
// the toolkit is used or from OnIterate.
type Toolkit struct {
	// OnIterate, if set, runs at every Iterate call, simulating native
	// activity.
	OnIterate func(block bool, deadline time.Time)
	// Err is returned by NewWindow if set.
	Err      error
	Wayland  bool
	Displays []wm.Monitor
	Primary  int
	Theme    *wm.Theme

	Iterations []Iteration
	Windows    []*Window

	nextID  uint64
	wakeups atomic.Int64
}

var _ wm.Toolkit = (*Toolkit)(nil)

func (t *Toolkit) Iterate(block bool, deadline time.Time) {
	t.Iterations = append(t.Iterations, Iteration{Block: block, Deadline: deadline})
	if t.OnIterate != nil {
		t.OnIterate(block, deadline)
	}
}

func (t *Toolkit) Wakeup() {
	t.wakeups.Add(1)
}

// Wakeups returns the number of Wakeup calls.
func (t *Toolkit) Wakeups() int {
	return int(t.wakeups.Load())
}

func (t *Toolkit) NewWindow() (wm.Window, error) {
	if t.Err != nil {
		return nil, t.Err
	}
	t.nextID++
	w := &Window{
		id:        event.WindowID(t.nextID),
		Scale:     1,
		Decorated: true,
		Resizable: true,
		Cursor:    pointer.CursorDefault,
	}
	t.Windows = append(t.Windows, w)
	return w, nil
}

func (t *Toolkit) SetTheme(th wm.Theme) {
	t.Theme = &th
}

func (t *Toolkit) Monitors() []wm.Monitor {
	return append([]wm.Monitor(nil), t.Displays...)
}

func (t *Toolkit) PrimaryMonitor() (wm.Monitor, bool) {
	for _, m := range t.Displays {
		if m.Index == t.Primary {
			return m, true
		}
	}
	return wm.Monitor{}, false
}

func (t *Toolkit) IsWayland() bool {
	return t.Wayland
}

func (t *Toolkit) DisplayHandle() wm.DisplayHandle {
	if t.Wayland {
		return wm.DisplayHandle{Kind: wm.HandleWayland, Display: 0x1000}
	}
	return wm.DisplayHandle{Kind: wm.HandleXlib, Display: 0x1000}
}

// Window is a fake wm.Window recording the operations applied to it.
type Window struct {
	mu    sync.Mutex
	id    event.WindowID
	calls []string

	X, Y, W, H  int
	Scale       int
	Maximized   bool
	Minimized   bool
	Visible     bool
	Decorated   bool
	Resizable   bool
	Cursor      pointer.Cursor
	Destroyed   bool
	Observer    wm.Observer
	Handler     *wm.Handler
	WireUpOpts  wm.WireUp
	MonitorInfo *wm.Monitor
}

var _ wm.Window = (*Window)(nil)

func (w *Window) record(name string, args ...interface{}) {
	strs := make([]string, len(args))
	for i, a := range args {
		strs[i] = fmt.Sprint(a)
	}
	w.mu.Lock()
	w.calls = append(w.calls, name+"("+strings.Join(strs, ", ")+")")
	w.mu.Unlock()
}

// Calls returns the recorded operations, such as "SetTitle(hello)".
func (w *Window) Calls() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.calls...)
}

// Reset forgets the recorded operations.
func (w *Window) Reset() {
	w.mu.Lock()
	w.calls = nil
	w.mu.Unlock()
}

// Configure simulates a configure notification from the window
// manager.
func (w *Window) Configure(x, y, width, height int) {
	w.X, w.Y, w.W, w.H = x, y, width, height
	if w.Observer != nil {
		w.Observer.Configured(x, y, width, height)
	}
	if w.Handler != nil {
		w.Handler.Configured(x, y, width, height, w.Scale)
	}
}

func (w *Window) ID() event.WindowID { return w.id }

func (w *Window) Observe(o wm.Observer) {
	w.record("Observe")
	w.Observer = o
}

func (w *Window) WireUp(h *wm.Handler, opts wm.WireUp) {
	w.record("WireUp", opts.Transparent, opts.CursorMoved)
	w.Handler = h
	w.WireUpOpts = opts
}

func (w *Window) Position() (int, int) { return w.X, w.Y }
func (w *Window) Size() (int, int)     { return w.W, w.H }
func (w *Window) ScaleFactor() int     { return w.Scale }
func (w *Window) IsMaximized() bool    { return w.Maximized }
func (w *Window) IsVisible() bool      { return w.Visible }
func (w *Window) IsDecorated() bool    { return w.Decorated }
func (w *Window) IsResizable() bool    { return w.Resizable }

func (w *Window) Monitor() (wm.Monitor, bool) {
	if w.MonitorInfo == nil {
		return wm.Monitor{}, false
	}
	return *w.MonitorInfo, true
}

func (w *Window) Handle() wm.WindowHandle {
	return wm.WindowHandle{Kind: wm.HandleXlib, Window: uint64(w.id)}
}

func (w *Window) SetTitle(title string) { w.record("SetTitle", title) }

func (w *Window) SetDefaultSize(width, height int) { w.record("SetDefaultSize", width, height) }

func (w *Window) Move(x, y int) {
	w.record("Move", x, y)
	w.X, w.Y = x, y
}

func (w *Window) Resize(width, height int) {
	w.record("Resize", width, height)
	w.W, w.H = width, height
}

func (w *Window) SetSizeConstraints(min, max *image.Point) {
	w.record("SetSizeConstraints", pointString(min), pointString(max))
}

func pointString(p *image.Point) string {
	if p == nil {
		return "nil"
	}
	return p.String()
}

func (w *Window) SetVisible(visible bool) {
	w.record("SetVisible", visible)
	w.Visible = visible
}

func (w *Window) Present()                   { w.record("Present") }
func (w *Window) SetAcceptFocus(accept bool) { w.record("SetAcceptFocus", accept) }

func (w *Window) SetResizable(resizable bool) {
	w.record("SetResizable", resizable)
	w.Resizable = resizable
}

func (w *Window) SetDeletable(deletable bool) { w.record("SetDeletable", deletable) }

func (w *Window) SetMinimized(minimized bool) {
	w.record("SetMinimized", minimized)
	w.Minimized = minimized
}

func (w *Window) SetMaximized(maximized bool) {
	w.record("SetMaximized", maximized)
	w.Maximized = maximized
}

func (w *Window) BeginMoveDrag() { w.record("BeginMoveDrag") }

func (w *Window) SetFullscreen(f *wm.Fullscreen) {
	if f == nil {
		w.record("SetFullscreen", "nil")
		return
	}
	w.record("SetFullscreen", f.Monitor)
}

func (w *Window) SetDecorated(decorated bool) {
	w.record("SetDecorated", decorated)
	w.Decorated = decorated
}

func (w *Window) SetKeepBelow(below bool) { w.record("SetKeepBelow", below) }
func (w *Window) SetKeepAbove(above bool) { w.record("SetKeepAbove", above) }

func (w *Window) SetIcon(icon *wm.Icon) {
	w.record("SetIcon", fmt.Sprintf("%dx%d", icon.Width, icon.Height))
}

func (w *Window) SetUrgent(urgent bool)    { w.record("SetUrgent", urgent) }
func (w *Window) SetSkipTaskbar(skip bool) { w.record("SetSkipTaskbar", skip) }

func (w *Window) SetCursor(c pointer.Cursor) {
	w.record("SetCursor", c.Name())
	w.Cursor = c
}

func (w *Window) WarpCursor(x, y int)                    { w.record("WarpCursor", x, y) }
func (w *Window) SetCursorPassthrough(passthrough bool)  { w.record("SetCursorPassthrough", passthrough) }
func (w *Window) SetVisibleOnAllWorkspaces(visible bool) { w.record("SetVisibleOnAllWorkspaces", visible) }
func (w *Window) SetRGBAVisual()                         { w.record("SetRGBAVisual") }
func (w *Window) SetAppPaintable(paintable bool)         { w.record("SetAppPaintable", paintable) }
func (w *Window) SetDoubleBuffered(buffered bool)        { w.record("SetDoubleBuffered", buffered) }
func (w *Window) AddDefaultVBox()                        { w.record("AddDefaultVBox") }

func (w *Window) SetWMClass(general, instance string) {
	w.record("SetWMClass", general, instance)
}

// Destroy emits the destroy notifications like the native toolkit.
func (w *Window) Destroy() {
	w.record("Destroy")
	if w.Destroyed {
		return
	}
	w.Destroyed = true
	if w.Handler != nil {
		w.Handler.Destroyed()
	}
	if w.Observer != nil {
		w.Observer.Destroyed()
	}
}
