// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gtkwin.org/app/internal/log"
	"gtkwin.org/app/internal/queue"
	"gtkwin.org/app/internal/wm"
	"gtkwin.org/io/event"
)

// WindowTarget creates windows and queries the display. Except for
// WindowIDs, its methods must be called on the toolkit thread.
type WindowTarget struct {
	tk  wm.Toolkit
	tid int

	events   *queue.Queue[event.Event]
	draws    *queue.Queue[event.WindowID]
	requests *queue.Queue[wm.Envelope]
	disp     *wm.Dispatcher

	// native maps live ids to windows. Toolkit thread only.
	native map[event.WindowID]wm.Window
	// live is replaced, never mutated, by the toolkit thread.
	live atomic.Pointer[map[event.WindowID]struct{}]
}

func newWindowTarget(tk wm.Toolkit) *WindowTarget {
	t := &WindowTarget{
		tk:       tk,
		tid:      threadID(),
		events:   queue.New[event.Event](tk.Wakeup),
		draws:    queue.New[event.WindowID](tk.Wakeup),
		requests: queue.New[wm.Envelope](tk.Wakeup),
		native:   make(map[event.WindowID]wm.Window),
	}
	t.disp = &wm.Dispatcher{Events: t.events, Draws: t.draws}
	t.live.Store(&map[event.WindowID]struct{}{})
	return t
}

func (t *WindowTarget) checkThread() {
	if tid := threadID(); tid != t.tid {
		panic(fmt.Sprintf("app: toolkit used from thread %d, want thread %d", tid, t.tid))
	}
}

func (t *WindowTarget) register(w wm.Window) {
	id := w.ID()
	t.native[id] = w
	old := *t.live.Load()
	live := make(map[event.WindowID]struct{}, len(old)+1)
	for k := range old {
		live[k] = struct{}{}
	}
	live[id] = struct{}{}
	t.live.Store(&live)
}

func (t *WindowTarget) forget(id event.WindowID) {
	delete(t.native, id)
	old := *t.live.Load()
	live := make(map[event.WindowID]struct{}, len(old))
	for k := range old {
		if k != id {
			live[k] = struct{}{}
		}
	}
	t.live.Store(&live)
	log.L().Debug("window destroyed", zap.Stringer("window", id))
}

// WindowIDs returns the ids of the windows that are not destroyed, in
// creation order. It may be called from any goroutine.
func (t *WindowTarget) WindowIDs() []event.WindowID {
	ids := maps.Keys(*t.live.Load())
	slices.Sort(ids)
	return ids
}

// send queues a request for the window id. The queue wakes up the
// loop.
func (t *WindowTarget) send(id event.WindowID, r wm.Request) {
	if err := t.requests.Send(wm.Envelope{Window: id, Request: r}); err != nil {
		log.L().Warn("dropped window request",
			zap.Stringer("window", id),
			zap.String("request", fmt.Sprintf("%T", r)),
			zap.Error(err),
		)
	}
}

func (t *WindowTarget) redraw(id event.WindowID) {
	if err := t.draws.Send(id); err != nil {
		log.L().Warn("dropped redraw", zap.Stringer("window", id), zap.Error(err))
	}
}

// flushRequests applies the queued window requests in order.
func (t *WindowTarget) flushRequests() {
	for {
		env, ok := t.requests.TryRecv()
		if !ok {
			return
		}
		w, ok := t.native[env.Window]
		if !ok {
			log.L().Debug("request for destroyed window",
				zap.Stringer("window", env.Window),
				zap.String("request", fmt.Sprintf("%T", env.Request)),
			)
			continue
		}
		t.disp.Apply(w, env.Request)
	}
}

func (t *WindowTarget) close() {
	t.events.Close()
	t.draws.Close()
	t.requests.Close()
}

// AvailableMonitors returns the monitors of the display in the
// toolkit's order.
func (t *WindowTarget) AvailableMonitors() []Monitor {
	t.checkThread()
	mons := t.tk.Monitors()
	slices.SortFunc(mons, func(a, b wm.Monitor) bool {
		return a.Index < b.Index
	})
	res := make([]Monitor, len(mons))
	for i, m := range mons {
		res[i] = newMonitor(m)
	}
	return res
}

// PrimaryMonitor returns the primary monitor, if the display has one.
func (t *WindowTarget) PrimaryMonitor() (Monitor, bool) {
	t.checkThread()
	m, ok := t.tk.PrimaryMonitor()
	if !ok {
		return Monitor{}, false
	}
	return newMonitor(m), true
}

// IsWayland reports whether the display is a Wayland compositor.
func (t *WindowTarget) IsWayland() bool {
	t.checkThread()
	return t.tk.IsWayland()
}

// DisplayHandle returns the raw display connection.
func (t *WindowTarget) DisplayHandle() DisplayHandle {
	t.checkThread()
	return t.tk.DisplayHandle()
}
