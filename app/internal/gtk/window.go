// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux && !nogtk
// +build linux,!nogtk

package gtk

import (
	"image"

	"github.com/gotk3/gotk3/cairo"
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"
	"go.uber.org/zap"

	"gtkwin.org/app/internal/log"
	"gtkwin.org/app/internal/wm"
	"gtkwin.org/io/event"
	"gtkwin.org/io/pointer"
	"gtkwin.org/io/system"
)

type window struct {
	id  event.WindowID
	win *gtk.Window
	// cursor is the last requested cursor, restored when the pointer
	// leaves a resize edge.
	cursor pointer.Cursor
	edge   system.Edge
}

var _ wm.Window = (*window)(nil)

func newWindow(id event.WindowID, win *gtk.Window) *window {
	return &window{id: id, win: win, edge: system.EdgeNone}
}

func (w *window) ID() event.WindowID {
	return w.id
}

func (w *window) Observe(o wm.Observer) {
	w.win.Connect("configure-event", func(_ *gtk.Window, ev *gdk.Event) bool {
		o.Configured(configureGeometry(ev))
		return false
	})
	w.win.Connect("window-state-event", func(_ *gtk.Window, ev *gdk.Event) bool {
		_, state := windowState(ev)
		o.StateChanged(state&wm.StateMaximized != 0, state&wm.StateIconified != 0)
		return false
	})
	w.win.Connect("notify::scale-factor", func() {
		o.ScaleChanged(w.win.GetScaleFactor())
	})
	w.win.Connect("destroy", func() {
		o.Destroyed()
	})
}

func (w *window) WireUp(h *wm.Handler, opts wm.WireUp) {
	w.win.AddEvents(inputMask)

	w.win.Connect("delete-event", func() bool {
		h.CloseRequested()
		// Closing is up to the application.
		return true
	})
	w.win.Connect("destroy", func() {
		h.Destroyed()
	})
	// Cursors set before the window is mapped have no native window.
	w.win.Connect("realize", func() {
		w.applyCursor(w.cursor)
	})
	w.win.Connect("focus-in-event", func() bool {
		h.Focus(true)
		return false
	})
	w.win.Connect("focus-out-event", func() bool {
		h.Focus(false)
		return false
	})
	w.win.Connect("enter-notify-event", func() bool {
		h.Entered()
		return false
	})
	w.win.Connect("leave-notify-event", func() bool {
		h.Left()
		return false
	})
	w.win.Connect("motion-notify-event", func(_ *gtk.Window, ev *gdk.Event) bool {
		w.updateEdgeCursor(ev)
		if opts.CursorMoved {
			x, y := coords(ev)
			h.CursorMoved(x, y, w.win.GetScaleFactor())
		}
		return false
	})
	w.win.Connect("button-press-event", func(_ *gtk.Window, ev *gdk.Event) bool {
		b := gdk.EventButtonNewFromEvent(ev)
		if b.Button() == gdk.BUTTON_PRIMARY {
			w.beginResize(ev, b.Time())
		}
		h.Button(uint(b.Button()), true)
		return false
	})
	w.win.Connect("button-release-event", func(_ *gtk.Window, ev *gdk.Event) bool {
		h.Button(eventButton(ev), false)
		return false
	})
	w.win.Connect("touch-event", func(_ *gtk.Window, ev *gdk.Event) bool {
		if eventType(ev) == eventTouchBegin {
			w.beginResize(ev, eventTime(ev))
		}
		return false
	})
	w.win.Connect("scroll-event", func(_ *gtk.Window, ev *gdk.Event) bool {
		h.Scroll(scrollDelta(gdk.EventScrollNewFromEvent(ev)))
		return false
	})
	keyHandler := func(pressed bool) func(*gtk.Window, *gdk.Event) bool {
		return func(_ *gtk.Window, ev *gdk.Event) bool {
			k := gdk.EventKeyNewFromEvent(ev)
			h.Key(uint32(k.KeyVal()), uint32(k.HardwareKeyCode()), uint32(k.State()), pressed)
			return false
		}
	}
	w.win.Connect("key-press-event", keyHandler(true))
	w.win.Connect("key-release-event", keyHandler(false))
	w.win.Connect("draw", func(_ *gtk.Window, cr *cairo.Context) bool {
		h.Draw()
		if opts.Transparent {
			clearBackground(cr)
		}
		return false
	})
	w.win.Connect("configure-event", func(_ *gtk.Window, ev *gdk.Event) bool {
		x, y, width, height := configureGeometry(ev)
		h.Configured(x, y, width, height, w.win.GetScaleFactor())
		return false
	})
	w.win.Connect("window-state-event", func(_ *gtk.Window, ev *gdk.Event) bool {
		changed, _ := windowState(ev)
		x, y := w.win.GetPosition()
		width, height := w.win.GetSize()
		h.StateChanged(changed, x, y, width, height, w.win.GetScaleFactor())
		return false
	})
	w.win.Connect("notify::scale-factor", func() {
		h.ScaleChanged(w.win.GetScaleFactor())
	})
}

// clearBackground makes the window background fully transparent.
func clearBackground(cr *cairo.Context) {
	cr.SetSourceRGBA(0, 0, 0, 0)
	cr.SetOperator(cairo.OPERATOR_SOURCE)
	cr.Paint()
	cr.SetOperator(cairo.OPERATOR_OVER)
}

func scrollDelta(s *gdk.EventScroll) (dx, dy float64, smooth bool) {
	switch s.Direction() {
	case gdk.SCROLL_SMOOTH:
		return s.DeltaX(), s.DeltaY(), true
	case gdk.SCROLL_UP:
		return 0, -1, false
	case gdk.SCROLL_DOWN:
		return 0, 1, false
	case gdk.SCROLL_LEFT:
		return -1, 0, false
	case gdk.SCROLL_RIGHT:
		return 1, 0, false
	}
	return 0, 0, false
}

// edgeAt returns the borderless resize edge under the pointer of ev.
func (w *window) edgeAt(ev *gdk.Event) (edge system.Edge, rootX, rootY int) {
	rx, ry := rootCoords(ev)
	x, y, width, height := windowBounds(w.win)
	b := system.Bounds{Left: x, Top: y, Right: x + width, Bottom: y + height}
	rootX, rootY = int(rx), int(ry)
	edge = wm.BorderlessEdge(w.win.GetDecorated(), w.win.GetResizable(), b, rootX, rootY, w.win.GetScaleFactor())
	return edge, rootX, rootY
}

func (w *window) updateEdgeCursor(ev *gdk.Event) {
	if w.win.GetDecorated() || !w.win.GetResizable() || w.win.IsMaximized() {
		return
	}
	edge, _, _ := w.edgeAt(ev)
	if edge == w.edge {
		return
	}
	w.edge = edge
	if edge == system.EdgeNone {
		w.applyCursor(w.cursor)
	} else {
		w.applyCursor(edge.Cursor())
	}
}

func (w *window) beginResize(ev *gdk.Event, time uint32) {
	edge, x, y := w.edgeAt(ev)
	if edge == system.EdgeNone {
		return
	}
	w.win.BeginResizeDrag(gdk.WindowEdge(edge), gdk.BUTTON_PRIMARY, x, y, time)
}

func (w *window) Position() (int, int) {
	return w.win.GetPosition()
}

func (w *window) Size() (int, int) {
	return w.win.GetSize()
}

func (w *window) ScaleFactor() int {
	return w.win.GetScaleFactor()
}

func (w *window) IsMaximized() bool { return w.win.IsMaximized() }
func (w *window) IsVisible() bool   { return w.win.IsVisible() }
func (w *window) IsDecorated() bool { return w.win.GetDecorated() }
func (w *window) IsResizable() bool { return w.win.GetResizable() }

func (w *window) Monitor() (wm.Monitor, bool) {
	i := windowMonitor(w.win)
	if i < 0 {
		return wm.Monitor{}, false
	}
	return monitorAt(i)
}

func (w *window) Handle() wm.WindowHandle {
	return windowHandle(w.win)
}

func (w *window) SetTitle(title string) {
	w.win.SetTitle(title)
}

func (w *window) SetDefaultSize(width, height int) {
	w.win.SetDefaultSize(width, height)
}

func (w *window) Move(x, y int) {
	w.win.Move(x, y)
}

func (w *window) Resize(width, height int) {
	w.win.Resize(width, height)
}

func (w *window) SetSizeConstraints(min, max *image.Point) {
	setSizeHints(w.win, min, max)
}

func (w *window) SetVisible(visible bool) {
	if visible {
		w.win.ShowAll()
	} else {
		w.win.Hide()
	}
}

func (w *window) Present() {
	w.win.Present()
}

func (w *window) SetAcceptFocus(accept bool) {
	w.win.SetAcceptFocus(accept)
}

func (w *window) SetResizable(resizable bool) {
	w.win.SetResizable(resizable)
}

func (w *window) SetDeletable(deletable bool) {
	w.win.SetDeletable(deletable)
}

func (w *window) SetMinimized(minimized bool) {
	if minimized {
		w.win.Iconify()
	} else {
		w.win.Deiconify()
	}
}

func (w *window) SetMaximized(maximized bool) {
	if maximized {
		w.win.Maximize()
	} else {
		w.win.Unmaximize()
	}
}

func (w *window) BeginMoveDrag() {
	x, y, ok := pointerPosition()
	if !ok {
		return
	}
	w.win.BeginMoveDrag(gdk.BUTTON_PRIMARY, x, y, currentTime)
}

func (w *window) SetFullscreen(f *wm.Fullscreen) {
	switch {
	case f == nil:
		w.win.Unfullscreen()
	case f.Monitor < 0:
		w.win.Fullscreen()
	default:
		fullscreenOnMonitor(w.win, f.Monitor)
	}
}

func (w *window) SetDecorated(decorated bool) {
	w.win.SetDecorated(decorated)
}

func (w *window) SetKeepBelow(below bool) {
	w.win.SetKeepBelow(below)
}

func (w *window) SetKeepAbove(above bool) {
	w.win.SetKeepAbove(above)
}

func (w *window) SetIcon(icon *wm.Icon) {
	pb, err := gdk.PixbufNew(gdk.COLORSPACE_RGB, true, 8, icon.Width, icon.Height)
	if err != nil {
		log.L().Warn("create icon pixbuf", zap.Error(err))
		return
	}
	pix := pb.GetPixels()
	stride := pb.GetRowstride()
	row := icon.Width * 4
	for y := 0; y < icon.Height; y++ {
		copy(pix[y*stride:y*stride+row], icon.Pix[y*row:(y+1)*row])
	}
	w.win.SetIcon(pb)
}

func (w *window) SetUrgent(urgent bool) {
	w.win.SetUrgencyHint(urgent)
}

func (w *window) SetSkipTaskbar(skip bool) {
	w.win.SetSkipTaskbarHint(skip)
	w.win.SetSkipPagerHint(skip)
}

func (w *window) SetCursor(c pointer.Cursor) {
	w.cursor = c
	if w.edge == system.EdgeNone {
		w.applyCursor(c)
	}
}

func (w *window) applyCursor(c pointer.Cursor) {
	if !setCursor(w.win, c.Name()) {
		log.L().Debug("unknown cursor", zap.Stringer("cursor", c))
	}
}

func (w *window) WarpCursor(x, y int) {
	warpPointer(w.win, x, y)
}

func (w *window) SetCursorPassthrough(passthrough bool) {
	setPassthrough(w.win, passthrough)
}

func (w *window) SetVisibleOnAllWorkspaces(visible bool) {
	if visible {
		w.win.Stick()
	} else {
		w.win.Unstick()
	}
}

func (w *window) SetRGBAVisual() {
	screen, err := gdk.ScreenGetDefault()
	if err != nil {
		log.L().Warn("no default screen", zap.Error(err))
		return
	}
	visual, err := screen.GetRGBAVisual()
	if err != nil || visual == nil {
		log.L().Warn("no RGBA visual", zap.Error(err))
		return
	}
	w.win.SetVisual(visual)
}

func (w *window) SetAppPaintable(paintable bool) {
	w.win.SetAppPaintable(paintable)
}

func (w *window) SetDoubleBuffered(buffered bool) {
	setDoubleBuffered(w.win, buffered)
}

func (w *window) AddDefaultVBox() {
	box, err := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 0)
	if err != nil {
		log.L().Warn("create default box", zap.Error(err))
		return
	}
	w.win.Add(box)
}

func (w *window) SetWMClass(general, instance string) {
	setWMClass(w.win, general, instance)
}

func (w *window) Destroy() {
	w.win.Destroy()
}
