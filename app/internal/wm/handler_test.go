// SPDX-License-Identifier: Unlicense OR MIT

package wm_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"gtkwin.org/app/internal/queue"
	"gtkwin.org/app/internal/wm"
	"gtkwin.org/io/event"
	"gtkwin.org/io/key"
	"gtkwin.org/io/pointer"
	"gtkwin.org/io/system"
	"gtkwin.org/unit"
)

const (
	shiftMask   = 1 << 0
	controlMask = 1 << 2
	superMask   = 1 << 26
)

func newHandler(id event.WindowID) (*wm.Handler, *queue.Queue[event.Event], *queue.Queue[event.WindowID]) {
	events := queue.New[event.Event](nil)
	draws := queue.New[event.WindowID](nil)
	return wm.NewHandler(id, events, draws), events, draws
}

func drain[T any](q *queue.Queue[T]) []T {
	var all []T
	for {
		v, ok := q.TryRecv()
		if !ok {
			return all
		}
		all = append(all, v)
	}
}

// windowEvents unwraps the window events for id.
func windowEvents(t *testing.T, id event.WindowID, evs []event.Event) []event.Event {
	t.Helper()
	var res []event.Event
	for _, e := range evs {
		we, ok := e.(event.WindowEvent)
		if !ok {
			t.Fatalf("got %T, want event.WindowEvent", e)
		}
		if we.Window != id {
			t.Fatalf("event for window %v, want %v", we.Window, id)
		}
		res = append(res, we.Event)
	}
	return res
}

func TestKeyModifiersChanged(t *testing.T) {
	h, events, _ := newHandler(3)
	h.Key('a', 38, shiftMask, true)
	h.Key('a', 38, shiftMask, false)
	h.Key(0xffe3, 37, shiftMask|controlMask, true)
	h.Key(0xff08, 22, 0, true)

	want := []event.Event{
		key.ModifiersChanged{Modifiers: key.ModShift},
		key.Input{ScanCode: 38, Name: "A", State: key.Press, Modifiers: key.ModShift},
		key.Input{ScanCode: 38, Name: "A", State: key.Release, Modifiers: key.ModShift},
		key.ModifiersChanged{Modifiers: key.ModShift | key.ModCtrl},
		key.Input{ScanCode: 37, Name: key.NameLeftCtrl, State: key.Press, Modifiers: key.ModShift | key.ModCtrl},
		key.ModifiersChanged{Modifiers: 0},
		key.Input{ScanCode: 22, Name: key.NameDeleteBackward, State: key.Press},
	}
	got := windowEvents(t, 3, drain(events))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("key events mismatch (-want +got):\n%s", diff)
	}
}

func TestModifiersFromState(t *testing.T) {
	// Lock masks and mouse buttons do not count as modifiers.
	const lockMask, button1Mask = 1 << 1, 1 << 8
	got := wm.ModifiersFromState(superMask | lockMask | button1Mask)
	if got != key.ModSuper {
		t.Errorf("ModifiersFromState = %v, want %v", got, key.ModSuper)
	}
}

func TestScroll(t *testing.T) {
	h, events, _ := newHandler(1)
	h.Scroll(0, 1, false)
	h.Scroll(0.5, -2, true)
	want := []event.Event{
		pointer.Wheel{Delta: pointer.ScrollDelta{X: 0, Y: -1}, Phase: pointer.PhaseEnded},
		pointer.Wheel{Delta: pointer.ScrollDelta{X: -0.5, Y: 2}, Phase: pointer.PhaseMoved},
	}
	got := windowEvents(t, 1, drain(events))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scroll events mismatch (-want +got):\n%s", diff)
	}
}

func TestButtons(t *testing.T) {
	h, events, _ := newHandler(1)
	h.Button(1, true)
	h.Button(3, false)
	h.Button(8, true)
	got := windowEvents(t, 1, drain(events))
	want := []pointer.Input{
		{Button: pointer.ButtonLeft, State: key.Press},
		{Button: pointer.ButtonRight, State: key.Release},
		{Button: pointer.ButtonOther(8), State: key.Press},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i, e := range got {
		if e != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, e, want[i])
		}
	}
}

func TestConfiguredPair(t *testing.T) {
	h, events, _ := newHandler(2)
	h.Configured(10, 20, 300, 200, 2)
	// Only minimize and maximize changes report geometry.
	h.StateChanged(1<<4, 10, 20, 300, 200, 2)
	h.StateChanged(wm.StateMaximized, 0, 0, 1920, 1080, 1)

	want := []event.Event{
		system.Moved{Position: unit.PhysicalPosition{X: 20, Y: 40}},
		system.Resized{Size: unit.PhysicalSize{Width: 600, Height: 400}},
		system.Moved{Position: unit.PhysicalPosition{X: 0, Y: 0}},
		system.Resized{Size: unit.PhysicalSize{Width: 1920, Height: 1080}},
	}
	got := windowEvents(t, 2, drain(events))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("geometry events mismatch (-want +got):\n%s", diff)
	}
}

func TestUnscaledSurface(t *testing.T) {
	h, events, _ := newHandler(3)
	h.Configured(5, 6, 70, 80, 0)
	h.CursorMoved(1.5, 2, 0)
	h.ScaleChanged(-1)

	want := []event.Event{
		system.Moved{Position: unit.PhysicalPosition{X: 5, Y: 6}},
		system.Resized{Size: unit.PhysicalSize{Width: 70, Height: 80}},
		pointer.Moved{Position: unit.PhysicalPosition{X: 2, Y: 2}},
		system.ScaleFactorChanged{ScaleFactor: 1},
	}
	got := windowEvents(t, 3, drain(events))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unscaled events mismatch (-want +got):\n%s", diff)
	}
}

func TestLifecycleEvents(t *testing.T) {
	h, events, _ := newHandler(4)
	h.Focus(true)
	h.Entered()
	h.CursorMoved(1.5, 2, 2)
	h.Left()
	h.CloseRequested()
	h.Destroyed()
	h.ScaleChanged(2)
	want := []event.Event{
		system.Focused{Focus: true},
		pointer.Entered{},
		pointer.Moved{Position: unit.PhysicalPosition{X: 3, Y: 4}},
		pointer.Left{},
		system.CloseRequested{},
		system.Destroyed{},
		system.ScaleFactorChanged{ScaleFactor: 2},
	}
	got := windowEvents(t, 4, drain(events))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawAfterClose(t *testing.T) {
	h, events, draws := newHandler(5)
	h.Draw()
	events.Close()
	draws.Close()
	// Must not panic.
	h.Draw()
	h.Focus(false)
	if got := drain(draws); !cmp.Equal(got, []event.WindowID{5}) {
		t.Errorf("draws = %v, want [5]", got)
	}
	if n := len(drain(events)); n != 0 {
		t.Errorf("got %d events after close, want 0", n)
	}
}

func TestBorderlessEdge(t *testing.T) {
	b := system.Bounds{Left: 100, Top: 100, Right: 300, Bottom: 250}
	tests := []struct {
		decorated, resizable bool
		x, y, scale          int
		want                 system.Edge
	}{
		{false, true, 102, 102, 1, system.EdgeNorthWest},
		{false, true, 108, 200, 1, system.EdgeNone},
		{false, true, 108, 200, 2, system.EdgeWest},
		{false, true, 299, 249, 1, system.EdgeSouthEast},
		{true, true, 102, 102, 1, system.EdgeNone},
		{false, false, 102, 102, 1, system.EdgeNone},
	}
	for _, tst := range tests {
		got := wm.BorderlessEdge(tst.decorated, tst.resizable, b, tst.x, tst.y, tst.scale)
		if got != tst.want {
			t.Errorf("BorderlessEdge(%v, %v, (%d,%d), scale %d) = %v, want %v",
				tst.decorated, tst.resizable, tst.x, tst.y, tst.scale, got, tst.want)
		}
	}
}
