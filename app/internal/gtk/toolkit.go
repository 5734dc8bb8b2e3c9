// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux && !nogtk
// +build linux,!nogtk

package gtk

import (
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
	"go.uber.org/zap"

	"gtkwin.org/app/internal/log"
	"gtkwin.org/app/internal/wm"
	"gtkwin.org/io/event"
)

var (
	initialized atomic.Bool
	// lastID is the id of the last window created in the process.
	lastID atomic.Uint64
)

// Toolkit is the GTK 3 implementation of wm.Toolkit. It must be used
// from the thread that called New.
type Toolkit struct{}

var _ wm.Toolkit = (*Toolkit)(nil)

// New initializes GTK on the calling thread.
func New() (*Toolkit, error) {
	if !initialized.Load() {
		if err := gtk.InitCheck(nil); err != nil {
			return nil, fmt.Errorf("gtk: init: %w", err)
		}
		initialized.Store(true)
	}
	tk := new(Toolkit)
	log.L().Debug("gtk initialized", zap.Bool("wayland", tk.IsWayland()))
	return tk, nil
}

// Iterate runs one iteration of the GTK main loop. A blocking
// iteration with a deadline is bounded by a one-shot timeout source.
func (t *Toolkit) Iterate(block bool, deadline time.Time) {
	if !block || deadline.IsZero() {
		gtk.MainIterationDo(block)
		return
	}
	d := time.Until(deadline)
	if d <= 0 {
		gtk.MainIterationDo(false)
		return
	}
	ms := uint(math.Ceil(float64(d) / float64(time.Millisecond)))
	fired := false
	src := glib.TimeoutAdd(ms, func() bool {
		fired = true
		return false
	})
	gtk.MainIterationDo(true)
	if !fired {
		glib.SourceRemove(src)
	}
}

// Wakeup interrupts a blocking Iterate. It is safe for concurrent use.
func (t *Toolkit) Wakeup() {
	wakeup()
}

func (t *Toolkit) NewWindow() (wm.Window, error) {
	win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return nil, fmt.Errorf("gtk: create window: %w", err)
	}
	return newWindow(event.WindowID(lastID.Add(1)), win), nil
}

func (t *Toolkit) SetTheme(th wm.Theme) {
	settings, err := gtk.SettingsGetDefault()
	if err != nil {
		log.L().Warn("no gtk settings", zap.Error(err))
		return
	}
	if err := settings.SetProperty("gtk-application-prefer-dark-theme", th == wm.ThemeDark); err != nil {
		log.L().Warn("set theme preference", zap.Error(err))
	}
	if th != wm.ThemeLight {
		return
	}
	v, err := settings.GetProperty("gtk-theme-name")
	if err != nil {
		return
	}
	if name, ok := v.(string); ok {
		if light := wm.LightThemeName(name); light != name {
			if err := settings.SetProperty("gtk-theme-name", light); err != nil {
				log.L().Warn("set theme name", zap.String("theme", light), zap.Error(err))
			}
		}
	}
}

func (t *Toolkit) Monitors() []wm.Monitor {
	n := monitorCount()
	mons := make([]wm.Monitor, 0, n)
	for i := 0; i < n; i++ {
		if m, ok := monitorAt(i); ok {
			mons = append(mons, m)
		}
	}
	return mons
}

func (t *Toolkit) PrimaryMonitor() (wm.Monitor, bool) {
	i := primaryMonitor()
	if i < 0 {
		return wm.Monitor{}, false
	}
	return monitorAt(i)
}

func (t *Toolkit) IsWayland() bool {
	return isWayland()
}

func (t *Toolkit) DisplayHandle() wm.DisplayHandle {
	return displayHandle()
}
