// SPDX-License-Identifier: Unlicense OR MIT

package wm

import (
	"fmt"

	"go.uber.org/zap"

	"gtkwin.org/app/internal/log"
	"gtkwin.org/io/event"
	"gtkwin.org/io/key"
	"gtkwin.org/io/pointer"
	"gtkwin.org/io/system"
	"gtkwin.org/unit"
)

// GDK modifier masks.
const (
	gdkShiftMask   = 1 << 0
	gdkControlMask = 1 << 2
	gdkMod1Mask    = 1 << 3
	gdkSuperMask   = 1 << 26
)

// GDK window state bits.
const (
	StateIconified = 1 << 1
	StateMaximized = 1 << 2
)

// ModifiersFromState converts a GDK modifier mask.
func ModifiersFromState(state uint32) key.Modifiers {
	var m key.Modifiers
	if state&gdkShiftMask != 0 {
		m |= key.ModShift
	}
	if state&gdkControlMask != 0 {
		m |= key.ModCtrl
	}
	if state&gdkMod1Mask != 0 {
		m |= key.ModAlt
	}
	if state&gdkSuperMask != 0 {
		m |= key.ModSuper
	}
	return m
}

// Handler translates the native callbacks of a window into events.
// Its methods are called on the toolkit thread. Events that cannot be
// delivered because the loop has shut down are logged and dropped.
type Handler struct {
	id     event.WindowID
	events Sender[event.Event]
	draws  Sender[event.WindowID]
	mods   key.Modifiers
}

func NewHandler(id event.WindowID, events Sender[event.Event], draws Sender[event.WindowID]) *Handler {
	return &Handler{id: id, events: events, draws: draws}
}

func (h *Handler) ID() event.WindowID {
	return h.id
}

func (h *Handler) send(e event.Event) {
	if err := h.events.Send(event.WindowEvent{Window: h.id, Event: e}); err != nil {
		log.L().Warn("dropped window event",
			zap.Stringer("window", h.id),
			zap.String("event", fmt.Sprintf("%T", e)),
			zap.Error(err),
		)
	}
}

// Configured reports a logical position and size as a Moved and
// Resized pair.
func (h *Handler) Configured(x, y, w, ht, scale int) {
	s := scaleFactor(scale)
	h.send(system.Moved{Position: unit.LogicalPosition{X: float64(x), Y: float64(y)}.Physical(s)})
	h.send(system.Resized{Size: unit.LogicalSize{Width: float64(w), Height: float64(ht)}.Physical(s)})
}

// StateChanged reports geometry after the window was minimized,
// maximized or restored. Other state changes are ignored.
func (h *Handler) StateChanged(changed uint32, x, y, w, ht, scale int) {
	if changed&(StateIconified|StateMaximized) == 0 {
		return
	}
	h.Configured(x, y, w, ht, scale)
}

func (h *Handler) ScaleChanged(scale int) {
	h.send(system.ScaleFactorChanged{ScaleFactor: scaleFactor(scale)})
}

// scaleFactor converts a toolkit scale. The toolkit reports 0 for
// windows without a surface, which counts as 1.
func scaleFactor(scale int) float64 {
	if scale < 1 {
		return 1
	}
	return float64(scale)
}

func (h *Handler) Focus(focused bool) {
	h.send(system.Focused{Focus: focused})
}

func (h *Handler) CloseRequested() {
	h.send(system.CloseRequested{})
}

func (h *Handler) Destroyed() {
	h.send(system.Destroyed{})
}

func (h *Handler) Entered() {
	h.send(pointer.Entered{})
}

func (h *Handler) Left() {
	h.send(pointer.Left{})
}

// CursorMoved reports the pointer at logical window coordinates.
func (h *Handler) CursorMoved(x, y float64, scale int) {
	p := unit.LogicalPosition{X: x, Y: y}.Physical(scaleFactor(scale))
	h.send(pointer.Moved{Position: p})
}

func (h *Handler) Button(code uint, pressed bool) {
	st := key.Release
	if pressed {
		st = key.Press
	}
	h.send(pointer.Input{Button: pointer.ButtonFromCode(code), State: st})
}

// Scroll reports a scroll by (dx, dy) in GDK's direction, where
// positive values scroll down and right. Smooth scrolls are in
// progress; discrete steps end immediately.
func (h *Handler) Scroll(dx, dy float64, smooth bool) {
	phase := pointer.PhaseEnded
	if smooth {
		phase = pointer.PhaseMoved
	}
	h.send(pointer.Wheel{
		Delta: pointer.ScrollDelta{X: -dx, Y: -dy},
		Phase: phase,
	})
}

// Key reports a key press or release. A ModifiersChanged event
// precedes it if the modifier state differs from the last reported
// state.
func (h *Handler) Key(keyval, scancode, state uint32, pressed bool) {
	mods := ModifiersFromState(state)
	if mods != h.mods {
		h.mods = mods
		h.send(key.ModifiersChanged{Modifiers: mods})
	}
	st := key.Release
	if pressed {
		st = key.Press
	}
	name, _ := key.NameFromKeysym(keyval)
	h.send(key.Input{
		ScanCode:  scancode,
		Name:      name,
		State:     st,
		Modifiers: mods,
	})
}

// Draw requests a RedrawRequested event for the window.
func (h *Handler) Draw() {
	if err := h.draws.Send(h.id); err != nil {
		log.L().Warn("dropped redraw", zap.Stringer("window", h.id), zap.Error(err))
	}
}

// BorderlessEdge returns the resize edge under the logical point (x, y)
// of a window with bounds b, or EdgeNone if the window is decorated or
// not resizable.
func BorderlessEdge(decorated, resizable bool, b system.Bounds, x, y, scale int) system.Edge {
	if decorated || !resizable {
		return system.EdgeNone
	}
	return system.HitTest(b, x, y, system.BorderlessResizeInset*scale)
}
