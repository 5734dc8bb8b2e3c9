// SPDX-License-Identifier: Unlicense OR MIT

package wm

import (
	"image"

	"gtkwin.org/io/system"
	"gtkwin.org/unit"
)

// Config describes the attributes of a window at construction.
type Config struct {
	// Title is the window title.
	Title string
	// Size is the inner size, or nil for the default size.
	Size unit.Size
	// MinSize and MaxSize constrain the inner size if not nil.
	MinSize unit.Size
	MaxSize unit.Size
	// Position is the outer position, or nil to let the window manager
	// decide.
	Position   unit.Position
	Resizable  bool
	Closable   bool
	Decorated  bool
	Visible    bool
	Focused    bool
	Maximized  bool
	Fullscreen *Fullscreen
	Level      system.Level
	Icon       *Icon
	// Theme is the preferred theme, or nil for the system default.
	Theme *system.Theme
	// Transparent requests an RGBA visual and a paintable background.
	Transparent bool

	// TransparentDraw clears the background of transparent windows
	// before every draw.
	TransparentDraw bool
	DoubleBuffered  bool
	RGBAVisual      bool
	AppPaintable    bool
	DefaultVBox     bool
	// CursorMoved enables cursor motion events.
	CursorMoved            bool
	SkipTaskbar            bool
	VisibleOnAllWorkspaces bool
	// WMClass is the general and instance name, if set.
	WMClass *[2]string
}

// DefaultSize is the inner size of windows without an explicit size.
var DefaultSize = unit.LogicalSize{Width: 800, Height: 600}

// DefaultConfig returns the attributes of a window with no options.
func DefaultConfig() Config {
	return Config{
		Title:           "gtkwin window",
		Resizable:       true,
		Closable:        true,
		Decorated:       true,
		Visible:         true,
		Focused:         true,
		TransparentDraw: true,
		DoubleBuffered:  true,
		AppPaintable:    true,
		DefaultVBox:     true,
		CursorMoved:     true,
	}
}

// Build applies the static attributes of cnf to a newly allocated
// window. Size and state are set before the visual is chosen, and the
// window is mapped last.
func Build(tk Toolkit, w Window, cnf *Config) {
	scale := float64(w.ScaleFactor())

	size := cnf.Size
	if size == nil {
		size = DefaultSize
	}
	width, height := size.Logical(scale).Ints()
	w.SetDefaultSize(1, 1)
	w.Resize(width, height)

	if cnf.Maximized {
		w.SetMaximized(true)
	}
	w.SetResizable(cnf.Resizable)
	w.SetDeletable(cnf.Closable)
	if min, max := logicalPoint(cnf.MinSize, scale), logicalPoint(cnf.MaxSize, scale); min != nil || max != nil {
		w.SetSizeConstraints(min, max)
	}
	if cnf.Position != nil {
		w.Move(cnf.Position.Logical(scale).Ints())
	}

	if cnf.RGBAVisual || cnf.Transparent {
		w.SetRGBAVisual()
	}
	if cnf.AppPaintable || cnf.Transparent {
		w.SetAppPaintable(true)
	}
	if !cnf.DoubleBuffered && !tk.IsWayland() {
		w.SetDoubleBuffered(false)
	}
	if cnf.DefaultVBox {
		w.AddDefaultVBox()
	}
	if c := cnf.WMClass; c != nil {
		w.SetWMClass(c[0], c[1])
	}

	w.SetTitle(cnf.Title)
	if cnf.Fullscreen != nil {
		w.SetFullscreen(cnf.Fullscreen)
	}
	w.SetAcceptFocus(cnf.Focused)
	w.SetDecorated(cnf.Decorated)

	switch cnf.Level {
	case system.LevelAlwaysOnBottom:
		w.SetKeepBelow(true)
	case system.LevelAlwaysOnTop:
		w.SetKeepAbove(true)
	}
	if cnf.SkipTaskbar {
		w.SetSkipTaskbar(true)
	}
	if cnf.VisibleOnAllWorkspaces {
		w.SetVisibleOnAllWorkspaces(true)
	}
	if cnf.Icon != nil {
		w.SetIcon(cnf.Icon)
	}
	if t := cnf.Theme; t != nil {
		switch *t {
		case system.ThemeDark:
			tk.SetTheme(ThemeDark)
		default:
			tk.SetTheme(ThemeLight)
		}
	}
	// Map or hide the window with its final attributes.
	w.SetVisible(cnf.Visible)
}

func logicalPoint(s unit.Size, scale float64) *image.Point {
	if s == nil {
		return nil
	}
	w, h := s.Logical(scale).Ints()
	return &image.Point{X: w, Y: h}
}
