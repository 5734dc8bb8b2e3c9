// SPDX-License-Identifier: Unlicense OR MIT

// Command window opens a window configured by a TOML file and logs its
// events.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gtkwin.org/app"
	"gtkwin.org/io/event"
	"gtkwin.org/io/key"
	"gtkwin.org/io/pointer"
	"gtkwin.org/io/system"
	"gtkwin.org/unit"
)

var (
	configPath = flag.String("config", "", "TOML configuration `file`")
	debug      = flag.Bool("debug", false, "log toolkit activity")
)

const quit = "quit"

func main() {
	flag.Parse()
	cnf, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := newLogger(cnf.Debug || *debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()
	app.SetLogger(logger)

	l, err := app.NewEventLoop[string]()
	if errors.Is(err, app.ErrNoDisplay) {
		logger.Fatal("cannot open a window", zap.Error(err))
	}
	if err != nil {
		logger.Fatal("event loop", zap.Error(err))
	}
	w, err := l.Target().NewWindow(cnf.Window.options()...)
	if err != nil {
		logger.Fatal("create window", zap.Error(err))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	proxy := l.Proxy()
	go func() {
		s := <-sig
		logger.Info("received signal", zap.Stringer("signal", s))
		if err := proxy.Send(quit); err != nil {
			logger.Warn("loop already closed", zap.Error(err))
		}
	}()

	code := l.RunReturn(handler(logger, cnf, w))
	logger.Sync()
	os.Exit(code)
}

func newLogger(debug bool) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	if !debug {
		zc.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return zc.Build()
}

func handler(logger *zap.Logger, cnf config, w *app.Window) app.Callback {
	var cursor unit.PhysicalPosition
	return func(e event.Event, t *app.WindowTarget, cf *app.ControlFlow) {
		switch e := e.(type) {
		case event.NewEvents:
			if _, ok := e.Cause.(event.Init); ok {
				logger.Info("started", zap.Bool("wayland", t.IsWayland()), zap.Int("monitors", len(t.AvailableMonitors())))
			}
			switch cnf.Loop.Mode {
			case "poll":
				cf.SetPoll()
			case "wait":
				cf.SetWait()
			case "wait_until":
				_, resumed := e.Cause.(event.ResumeTimeReached)
				if resumed {
					logger.Debug("tick")
				}
				if _, ok := cf.Deadline(); !ok || resumed {
					cf.SetWaitUntil(time.Now().Add(cnf.tick()))
				}
			}
		case event.UserEvent[string]:
			if e.Value == quit {
				cf.SetExit(0)
			}
		case event.WindowEvent:
			if m, ok := e.Event.(pointer.Moved); ok {
				cursor = m.Position
			}
			windowEvent(logger, w, e, cf, cursor)
		case event.RedrawRequested:
			logger.Debug("redraw", zap.Stringer("window", e.Window))
		case event.LoopDestroyed:
			logger.Info("exiting")
		}
	}
}

func windowEvent(logger *zap.Logger, w *app.Window, e event.WindowEvent, cf *app.ControlFlow, cursor unit.PhysicalPosition) {
	switch ev := e.Event.(type) {
	case system.CloseRequested:
		w.Close()
	case system.Destroyed:
		cf.SetExit(0)
	case system.Resized:
		logger.Debug("resized", zap.Stringer("size", ev.Size))
		w.RequestRedraw()
	case key.Input:
		if ev.State != key.Press {
			return
		}
		switch ev.Name {
		case key.NameEscape:
			w.Close()
		case "F":
			if w.Fullscreen() == nil {
				w.SetFullscreen(&app.Fullscreen{Monitor: -1})
			} else {
				w.SetFullscreen(nil)
			}
		case "M":
			w.SetMaximized(!w.IsMaximized())
		}
	case pointer.Input:
		// Undecorated windows are moved by dragging their content.
		if ev.Button != pointer.ButtonLeft || ev.State != key.Press || w.IsDecorated() {
			return
		}
		if startsDrag(cursor, w.InnerSize(), w.ScaleFactor(), w.IsResizable()) {
			w.DragWindow()
		}
	}
}

// startsDrag reports whether a press at p moves an undecorated window
// of size sz. Presses in the resize band are left to the toolkit.
func startsDrag(p unit.PhysicalPosition, sz unit.PhysicalSize, scale float64, resizable bool) bool {
	if !resizable {
		return true
	}
	inset := int(math.Round(system.BorderlessResizeInset * scale))
	b := system.Bounds{Right: int(sz.Width), Bottom: int(sz.Height)}
	return system.HitTest(b, p.X, p.Y, inset) == system.EdgeNone
}
