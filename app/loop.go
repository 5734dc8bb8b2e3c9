// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"gtkwin.org/app/internal/log"
	"gtkwin.org/app/internal/wm"
	"gtkwin.org/io/event"
)

// Callback receives the events of an EventLoop.
type Callback func(e event.Event, t *WindowTarget, cf *ControlFlow)

// EventLoop runs the native main loop and delivers its events. T is
// the type of user events sent through an EventLoopProxy.
type EventLoop[T any] struct {
	target *WindowTarget
	// now is replaced in tests.
	now func() time.Time
	ran atomic.Bool
}

type loopState uint8

const (
	stateNewStart loopState = iota
	stateEventQueue
	stateDrawQueue
)

// NewEventLoop initializes the native toolkit on the calling thread
// and locks the calling goroutine to it. It returns an error wrapping
// ErrNoDisplay if no display is available.
func NewEventLoop[T any]() (*EventLoop[T], error) {
	runtime.LockOSThread()
	tk, err := newToolkit()
	if err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	return newEventLoop[T](tk), nil
}

// MustNewEventLoop is like NewEventLoop but panics on error.
func MustNewEventLoop[T any]() *EventLoop[T] {
	l, err := NewEventLoop[T]()
	if err != nil {
		panic(err)
	}
	return l
}

func newEventLoop[T any](tk wm.Toolkit) *EventLoop[T] {
	runtime.LockOSThread()
	return &EventLoop[T]{
		target: newWindowTarget(tk),
		now:    time.Now,
	}
}

// Target returns the window target of the loop.
func (l *EventLoop[T]) Target() *WindowTarget {
	return l.target
}

// Proxy returns a proxy for sending user events to the loop from any
// goroutine.
func (l *EventLoop[T]) Proxy() *EventLoopProxy[T] {
	return &EventLoopProxy[T]{events: l.target.events}
}

// Run is like RunReturn but exits the process with the exit code.
func (l *EventLoop[T]) Run(fn Callback) {
	os.Exit(l.RunReturn(fn))
}

// RunReturn runs the loop until the callback sets an exit code, and
// returns the code. The loop can only run once; afterwards, proxies
// and windows of the loop report it as closed.
func (l *EventLoop[T]) RunReturn(fn Callback) int {
	t := l.target
	t.checkThread()
	if !l.ran.CompareAndSwap(false, true) {
		panic("app: event loop already ran")
	}
	defer t.close()

	var (
		cf    ControlFlow
		latch exitLatch
	)
	dispatch := func(e event.Event) {
		if latch.set {
			// The callback cannot undo an exit.
			pinned := latch.flow()
			fn(e, t, &pinned)
			return
		}
		cf.latch = &latch
		fn(e, t, &cf)
		if latch.set {
			cf = latch.flow()
		}
	}

	state := stateNewStart
	first := true
	for {
		block := false
		var deadline time.Time
		if code, exiting := cf.Exiting(); exiting {
			dispatch(event.LoopDestroyed{})
			log.L().Debug("event loop exited", zap.Int("code", code))
			return code
		}
		switch state {
		case stateNewStart:
			var cause event.StartCause
			if first {
				first = false
				cause = event.Init{}
			} else {
				cause, block, deadline = l.startCause(&cf)
			}
			if cause != nil {
				dispatch(event.NewEvents{Cause: cause})
				state = stateEventQueue
			}
		case stateEventQueue:
			e, ok := t.events.TryRecv()
			switch {
			case !ok:
				dispatch(event.MainEventsCleared{})
				state = stateDrawQueue
			case isLoopDestroyed(e):
				log.L().Warn("loop destroyed by queued event")
				latch = exitLatch{set: true, code: 1}
				cf = latch.flow()
			default:
				dispatch(e)
			}
		case stateDrawQueue:
			if id, ok := t.draws.TryRecv(); ok {
				dispatch(event.RedrawRequested{Window: id})
			}
			dispatch(event.RedrawEventsCleared{})
			state = stateNewStart
		}
		t.flushRequests()
		t.tk.Iterate(block, deadline)
	}
}

// startCause decides how a new iteration starts. A nil cause means the
// loop must wait for native activity, until deadline if it is not
// zero.
func (l *EventLoop[T]) startCause(cf *ControlFlow) (cause event.StartCause, block bool, deadline time.Time) {
	start := l.now()
	switch cf.mode {
	case flowWait:
		if !l.target.events.Empty() {
			return event.WaitCancelled{Start: start}, false, time.Time{}
		}
		return nil, true, time.Time{}
	case flowWaitUntil:
		switch {
		case !start.Before(cf.deadline):
			return event.ResumeTimeReached{Start: start, RequestedResume: cf.deadline}, false, time.Time{}
		case !l.target.events.Empty():
			return event.WaitCancelled{Start: start, RequestedResume: cf.deadline}, false, time.Time{}
		}
		return nil, true, cf.deadline
	default:
		return event.Poll{}, false, time.Time{}
	}
}

func isLoopDestroyed(e event.Event) bool {
	_, ok := e.(event.LoopDestroyed)
	return ok
}
