// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"

	"gtkwin.org/app/internal/wm"
	"gtkwin.org/io/system"
	"gtkwin.org/unit"
)

// Option configures a window at construction.
type Option func(cnf *wm.Config)

// Title sets the title of the window.
func Title(t string) Option {
	return func(cnf *wm.Config) {
		cnf.Title = t
	}
}

// Size sets the inner size of the window.
func Size(s unit.Size) Option {
	return func(cnf *wm.Config) {
		cnf.Size = s
	}
}

// MinSize sets the minimum inner size of the window.
func MinSize(s unit.Size) Option {
	return func(cnf *wm.Config) {
		cnf.MinSize = s
	}
}

// MaxSize sets the maximum inner size of the window.
func MaxSize(s unit.Size) Option {
	return func(cnf *wm.Config) {
		cnf.MaxSize = s
	}
}

// Position sets the outer position of the window. Wayland compositors
// ignore it.
func Position(p unit.Position) Option {
	return func(cnf *wm.Config) {
		cnf.Position = p
	}
}

func Resizable(resizable bool) Option {
	return func(cnf *wm.Config) {
		cnf.Resizable = resizable
	}
}

// Closable controls the close button of the decorations.
func Closable(closable bool) Option {
	return func(cnf *wm.Config) {
		cnf.Closable = closable
	}
}

// Decorated controls whether the window manager draws a title bar and
// borders. Undecorated resizable windows can be resized from a band
// along their edges.
func Decorated(decorated bool) Option {
	return func(cnf *wm.Config) {
		cnf.Decorated = decorated
	}
}

// Transparent requests a window with an alpha channel. The background
// is cleared before every draw unless TransparentDraw(false) is given.
func Transparent(transparent bool) Option {
	return func(cnf *wm.Config) {
		cnf.Transparent = transparent
	}
}

// TransparentDraw controls the automatic background clearing of
// transparent windows.
func TransparentDraw(clear bool) Option {
	return func(cnf *wm.Config) {
		cnf.TransparentDraw = clear
	}
}

func Visible(visible bool) Option {
	return func(cnf *wm.Config) {
		cnf.Visible = visible
	}
}

// Focused controls whether the window accepts the focus when shown.
func Focused(focused bool) Option {
	return func(cnf *wm.Config) {
		cnf.Focused = focused
	}
}

func Maximized(maximized bool) Option {
	return func(cnf *wm.Config) {
		cnf.Maximized = maximized
	}
}

// FullscreenOn starts the window in fullscreen mode on monitor, or on
// the current monitor if monitor is negative.
func FullscreenOn(monitor int) Option {
	return func(cnf *wm.Config) {
		cnf.Fullscreen = &Fullscreen{Monitor: monitor}
	}
}

// WindowLevel sets the stacking level of the window.
func WindowLevel(l system.Level) Option {
	return func(cnf *wm.Config) {
		cnf.Level = l
	}
}

// WindowIcon sets the window icon.
func WindowIcon(icon *Icon) Option {
	return func(cnf *wm.Config) {
		if icon != nil {
			cnf.Icon = &icon.icon
		}
	}
}

// PreferredTheme selects the light or dark variant of the toolkit
// theme. The preference applies to every window of the process.
func PreferredTheme(t system.Theme) Option {
	return func(cnf *wm.Config) {
		cnf.Theme = &t
	}
}

func SkipTaskbar(skip bool) Option {
	return func(cnf *wm.Config) {
		cnf.SkipTaskbar = skip
	}
}

func VisibleOnAllWorkspaces(visible bool) Option {
	return func(cnf *wm.Config) {
		cnf.VisibleOnAllWorkspaces = visible
	}
}

// DoubleBuffered controls toolkit double buffering on X11. Renderers
// that present their own buffers disable it.
func DoubleBuffered(buffered bool) Option {
	return func(cnf *wm.Config) {
		cnf.DoubleBuffered = buffered
	}
}

// RGBAVisual requests an RGBA visual without making the window
// transparent.
func RGBAVisual(rgba bool) Option {
	return func(cnf *wm.Config) {
		cnf.RGBAVisual = rgba
	}
}

// AppPaintable makes the application responsible for painting the
// window background.
func AppPaintable(paintable bool) Option {
	return func(cnf *wm.Config) {
		cnf.AppPaintable = paintable
	}
}

// DefaultVBox controls whether the window gets an empty vertical box
// as its child.
func DefaultVBox(vbox bool) Option {
	return func(cnf *wm.Config) {
		cnf.DefaultVBox = vbox
	}
}

// CursorMoved controls the delivery of pointer.Moved events.
func CursorMoved(enabled bool) Option {
	return func(cnf *wm.Config) {
		cnf.CursorMoved = enabled
	}
}

// Name sets the X11 WM_CLASS of the window.
func Name(general, instance string) Option {
	return func(cnf *wm.Config) {
		cnf.WMClass = &[2]string{general, instance}
	}
}

func toPoint(s unit.Size, scale float64) *image.Point {
	if s == nil {
		return nil
	}
	w, h := s.Logical(scale).Ints()
	return &image.Point{X: w, Y: h}
}
