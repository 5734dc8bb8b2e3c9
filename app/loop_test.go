// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"gtkwin.org/app/internal/wm/wmtest"
	"gtkwin.org/io/event"
)

// describe names an event for comparing event sequences.
func describe(e event.Event) string {
	switch e := e.(type) {
	case event.NewEvents:
		switch e.Cause.(type) {
		case event.Init:
			return "NewEvents(Init)"
		case event.Poll:
			return "NewEvents(Poll)"
		case event.WaitCancelled:
			return "NewEvents(WaitCancelled)"
		case event.ResumeTimeReached:
			return "NewEvents(ResumeTimeReached)"
		}
	case event.MainEventsCleared:
		return "MainEventsCleared"
	case event.RedrawRequested:
		return fmt.Sprintf("RedrawRequested(%d)", e.Window)
	case event.RedrawEventsCleared:
		return "RedrawEventsCleared"
	case event.LoopDestroyed:
		return "LoopDestroyed"
	case event.UserEvent[int]:
		return fmt.Sprintf("User(%d)", e.Value)
	case event.WindowEvent:
		return fmt.Sprintf("Window(%d, %T)", e.Window, e.Event)
	}
	return fmt.Sprintf("%T", e)
}

type recorder struct {
	events []event.Event
}

func (r *recorder) names() []string {
	names := make([]string, len(r.events))
	for i, e := range r.events {
		names[i] = describe(e)
	}
	return names
}

// checkOrdering verifies the per-iteration event order and that
// LoopDestroyed is delivered once, last.
func checkOrdering(t *testing.T, evs []event.Event) {
	t.Helper()
	const (
		wantNew = iota
		inPayload
		afterMain
		afterRedraw
	)
	state := wantNew
	for i, e := range evs {
		if _, ok := e.(event.LoopDestroyed); ok {
			if i != len(evs)-1 {
				t.Fatalf("event %d: LoopDestroyed is not the last event", i)
			}
			return
		}
		switch e.(type) {
		case event.NewEvents:
			if state != wantNew {
				t.Fatalf("event %d: NewEvents inside an iteration", i)
			}
			state = inPayload
		case event.MainEventsCleared:
			if state != inPayload {
				t.Fatalf("event %d: unexpected MainEventsCleared", i)
			}
			state = afterMain
		case event.RedrawRequested:
			if state != afterMain {
				t.Fatalf("event %d: unexpected RedrawRequested", i)
			}
			state = afterRedraw
		case event.RedrawEventsCleared:
			if state != afterMain && state != afterRedraw {
				t.Fatalf("event %d: unexpected RedrawEventsCleared", i)
			}
			state = wantNew
		default:
			if state != inPayload {
				t.Fatalf("event %d: payload %s outside the event queue", i, describe(e))
			}
		}
	}
	t.Fatal("no LoopDestroyed event")
}

func TestLifecycleOrdering(t *testing.T) {
	tk := new(wmtest.Toolkit)
	l := newEventLoop[int](tk)
	p := l.Proxy()
	p.Send(1)
	p.Send(2)

	var rec recorder
	cleared := 0
	code := l.RunReturn(func(e event.Event, _ *WindowTarget, cf *ControlFlow) {
		rec.events = append(rec.events, e)
		if _, ok := e.(event.RedrawEventsCleared); ok {
			cleared++
			if cleared == 2 {
				cf.SetExit(3)
			}
		}
	})
	if code != 3 {
		t.Errorf("RunReturn = %d, want 3", code)
	}
	want := []string{
		"NewEvents(Init)", "User(1)", "User(2)", "MainEventsCleared", "RedrawEventsCleared",
		"NewEvents(Poll)", "MainEventsCleared", "RedrawEventsCleared",
		"LoopDestroyed",
	}
	if diff := cmp.Diff(want, rec.names()); diff != "" {
		t.Errorf("event sequence mismatch (-want +got):\n%s", diff)
	}
	for i, it := range tk.Iterations {
		if it.Block {
			t.Errorf("iteration %d blocked while polling", i)
		}
	}
}

func TestRandomControlFlow(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		now := time.Unix(1000, 0)
		tk := new(wmtest.Toolkit)
		l := newEventLoop[int](tk)
		l.now = func() time.Time { return now }
		p := l.Proxy()
		draws := l.target.draws
		tk.OnIterate = func(block bool, deadline time.Time) {
			if !block {
				return
			}
			// Simulate native activity ending the wait.
			switch {
			case !deadline.IsZero() && rnd.Intn(2) == 0:
				now = deadline
			case rnd.Intn(2) == 0:
				draws.Send(event.WindowID(rnd.Intn(3) + 1))
			default:
				p.Send(rnd.Int())
			}
		}
		var rec recorder
		n := 0
		code := l.RunReturn(func(e event.Event, _ *WindowTarget, cf *ControlFlow) {
			rec.events = append(rec.events, e)
			n++
			if n > 200 {
				cf.SetExit(5)
			}
			switch rnd.Intn(6) {
			case 0:
				cf.SetPoll()
			case 1:
				cf.SetWait()
			case 2:
				cf.SetWaitUntil(now.Add(time.Duration(rnd.Intn(3)-1) * time.Second))
			case 3:
				p.Send(n)
			case 4:
				draws.Send(event.WindowID(n))
			}
		})
		if code != 5 {
			t.Errorf("seed %d: RunReturn = %d, want 5", seed, code)
		}
		checkOrdering(t, rec.events)
	}
}

func TestStickyExit(t *testing.T) {
	tk := new(wmtest.Toolkit)
	l := newEventLoop[int](tk)
	l.Proxy().Send(1)
	var rec recorder
	code := l.RunReturn(func(e event.Event, _ *WindowTarget, cf *ControlFlow) {
		rec.events = append(rec.events, e)
		switch e.(type) {
		case event.NewEvents:
			cf.SetExit(7)
			cf.SetPoll()
			cf.SetWait()
			cf.SetExit(8)
		case event.LoopDestroyed:
			cf.SetWaitUntil(time.Now())
			if code, ok := cf.Exiting(); !ok || code != 7 {
				t.Errorf("control flow in LoopDestroyed = %v, want ExitWithCode(7)", cf)
			}
		}
	})
	if code != 7 {
		t.Errorf("RunReturn = %d, want 7", code)
	}
	want := []string{"NewEvents(Init)", "LoopDestroyed"}
	if diff := cmp.Diff(want, rec.names()); diff != "" {
		t.Errorf("event sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestExitSurvivesReassignment(t *testing.T) {
	tk := new(wmtest.Toolkit)
	l := newEventLoop[int](tk)
	var rec recorder
	code := l.RunReturn(func(e event.Event, _ *WindowTarget, cf *ControlFlow) {
		rec.events = append(rec.events, e)
		if len(rec.events) > 50 {
			t.Fatal("loop did not exit")
		}
		if _, ok := e.(event.NewEvents); ok {
			cf.SetExit(4)
			*cf = ControlFlow{}
			cf.SetWait()
			cf.SetExit(6)
		}
	})
	if code != 4 {
		t.Errorf("RunReturn = %d, want 4", code)
	}
	want := []string{"NewEvents(Init)", "LoopDestroyed"}
	if diff := cmp.Diff(want, rec.names()); diff != "" {
		t.Errorf("event sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestRedrawOnePerIteration(t *testing.T) {
	tk := new(wmtest.Toolkit)
	l := newEventLoop[int](tk)
	for id := 1; id <= 3; id++ {
		l.target.draws.Send(event.WindowID(id))
	}
	var redraws []string
	iterations := 0
	l.RunReturn(func(e event.Event, _ *WindowTarget, cf *ControlFlow) {
		switch e.(type) {
		case event.RedrawRequested:
			redraws = append(redraws, fmt.Sprintf("%d:%s", iterations, describe(e)))
		case event.RedrawEventsCleared:
			iterations++
			if iterations == 4 {
				cf.SetExit(0)
			}
		}
	})
	want := []string{"0:RedrawRequested(1)", "1:RedrawRequested(2)", "2:RedrawRequested(3)"}
	if diff := cmp.Diff(want, redraws); diff != "" {
		t.Errorf("redraws mismatch (-want +got):\n%s", diff)
	}
}

func TestWaitBlocks(t *testing.T) {
	tk := new(wmtest.Toolkit)
	l := newEventLoop[int](tk)
	p := l.Proxy()
	tk.OnIterate = func(block bool, _ time.Time) {
		if block {
			p.Send(42)
		}
	}
	var rec recorder
	l.RunReturn(func(e event.Event, _ *WindowTarget, cf *ControlFlow) {
		rec.events = append(rec.events, e)
		switch e := e.(type) {
		case event.NewEvents:
			if c, ok := e.Cause.(event.WaitCancelled); ok && !c.RequestedResume.IsZero() {
				t.Errorf("WaitCancelled with a resume time: %v", c.RequestedResume)
			}
			cf.SetWait()
		case event.UserEvent[int]:
			cf.SetExit(0)
		}
	})
	want := []string{
		"NewEvents(Init)", "MainEventsCleared", "RedrawEventsCleared",
		"NewEvents(WaitCancelled)", "User(42)",
		"LoopDestroyed",
	}
	if diff := cmp.Diff(want, rec.names()); diff != "" {
		t.Errorf("event sequence mismatch (-want +got):\n%s", diff)
	}
	blocked := 0
	for _, it := range tk.Iterations {
		if it.Block {
			blocked++
			if !it.Deadline.IsZero() {
				t.Errorf("Wait blocked with deadline %v", it.Deadline)
			}
		}
	}
	if blocked != 1 {
		t.Errorf("blocked %d times, want 1", blocked)
	}
}

func TestWaitIgnoresPendingRedraws(t *testing.T) {
	tests := []struct {
		name  string
		wait  func(cf *ControlFlow, now time.Time)
		cause string
	}{
		{"Wait", func(cf *ControlFlow, _ time.Time) { cf.SetWait() }, "NewEvents(WaitCancelled)"},
		{"WaitUntil", func(cf *ControlFlow, now time.Time) { cf.SetWaitUntil(now.Add(time.Minute)) }, "NewEvents(ResumeTimeReached)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Unix(1000, 0)
			tk := new(wmtest.Toolkit)
			l := newEventLoop[int](tk)
			l.now = func() time.Time { return now }
			for id := 1; id <= 3; id++ {
				l.target.draws.Send(event.WindowID(id))
			}
			p := l.Proxy()
			tk.OnIterate = func(block bool, deadline time.Time) {
				if !block {
					return
				}
				// Redraws 2 and 3 are still queued.
				if deadline.IsZero() {
					p.Send(9)
				} else {
					now = deadline
				}
			}
			var rec recorder
			l.RunReturn(func(e event.Event, _ *WindowTarget, cf *ControlFlow) {
				rec.events = append(rec.events, e)
				if e, ok := e.(event.NewEvents); ok {
					if _, ok := e.Cause.(event.Init); ok {
						tt.wait(cf, now)
					} else {
						cf.SetExit(0)
					}
				}
			})
			want := []string{
				"NewEvents(Init)", "MainEventsCleared", "RedrawRequested(1)", "RedrawEventsCleared",
				tt.cause, "LoopDestroyed",
			}
			if diff := cmp.Diff(want, rec.names()); diff != "" {
				t.Errorf("event sequence mismatch (-want +got):\n%s", diff)
			}
			blocked := 0
			for _, it := range tk.Iterations {
				if it.Block {
					blocked++
				}
			}
			if blocked != 1 {
				t.Errorf("blocked %d times, want 1", blocked)
			}
		})
	}
}

func TestWaitUntilResumes(t *testing.T) {
	now := time.Unix(1000, 0)
	resume := now.Add(time.Second)
	tk := new(wmtest.Toolkit)
	l := newEventLoop[int](tk)
	l.now = func() time.Time { return now }
	tk.OnIterate = func(block bool, deadline time.Time) {
		if block {
			if !deadline.Equal(resume) {
				t.Errorf("blocked until %v, want %v", deadline, resume)
			}
			now = deadline
		}
	}
	var rec recorder
	l.RunReturn(func(e event.Event, _ *WindowTarget, cf *ControlFlow) {
		rec.events = append(rec.events, e)
		ne, ok := e.(event.NewEvents)
		if !ok {
			return
		}
		switch c := ne.Cause.(type) {
		case event.Init:
			cf.SetWaitUntil(resume)
		case event.ResumeTimeReached:
			want := event.ResumeTimeReached{Start: resume, RequestedResume: resume}
			if !c.Start.Equal(want.Start) || !c.RequestedResume.Equal(want.RequestedResume) {
				t.Errorf("cause = %+v, want %+v", c, want)
			}
			cf.SetExit(0)
		}
	})
	want := []string{
		"NewEvents(Init)", "MainEventsCleared", "RedrawEventsCleared",
		"NewEvents(ResumeTimeReached)",
		"LoopDestroyed",
	}
	if diff := cmp.Diff(want, rec.names()); diff != "" {
		t.Errorf("event sequence mismatch (-want +got):\n%s", diff)
	}
	blocked := 0
	for _, it := range tk.Iterations {
		if it.Block {
			blocked++
		}
	}
	if blocked != 1 {
		t.Errorf("blocked %d times, want 1", blocked)
	}
}

func TestWaitUntilCancelled(t *testing.T) {
	now := time.Unix(1000, 0)
	resume := now.Add(time.Minute)
	tk := new(wmtest.Toolkit)
	l := newEventLoop[int](tk)
	l.now = func() time.Time { return now }
	p := l.Proxy()
	tk.OnIterate = func(block bool, _ time.Time) {
		if block {
			p.Send(1)
		}
	}
	var cause event.StartCause
	l.RunReturn(func(e event.Event, _ *WindowTarget, cf *ControlFlow) {
		ne, ok := e.(event.NewEvents)
		if !ok {
			return
		}
		if _, ok := ne.Cause.(event.Init); ok {
			cf.SetWaitUntil(resume)
			return
		}
		cause = ne.Cause
		cf.SetExit(0)
	})
	want := event.WaitCancelled{Start: now, RequestedResume: resume}
	if diff := cmp.Diff(event.StartCause(want), cause); diff != "" {
		t.Errorf("cause mismatch (-want +got):\n%s", diff)
	}
}

func TestLoopDestroyedSentinel(t *testing.T) {
	tk := new(wmtest.Toolkit)
	l := newEventLoop[int](tk)
	l.target.events.Send(event.LoopDestroyed{})
	l.Proxy().Send(1)
	var rec recorder
	code := l.RunReturn(func(e event.Event, _ *WindowTarget, cf *ControlFlow) {
		rec.events = append(rec.events, e)
	})
	if code != 1 {
		t.Errorf("RunReturn = %d, want 1", code)
	}
	want := []string{"NewEvents(Init)", "LoopDestroyed"}
	if diff := cmp.Diff(want, rec.names()); diff != "" {
		t.Errorf("event sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestProxyAfterExit(t *testing.T) {
	tk := new(wmtest.Toolkit)
	l := newEventLoop[string](tk)
	p := l.Proxy()
	if err := p.Send("before"); err != nil {
		t.Fatal(err)
	}
	if n := tk.Wakeups(); n != 1 {
		t.Errorf("Send woke the loop %d times, want 1", n)
	}
	l.RunReturn(func(e event.Event, _ *WindowTarget, cf *ControlFlow) {
		cf.SetExit(0)
	})
	err := p.Send("after")
	var closed *EventLoopClosedError[string]
	if !errors.As(err, &closed) {
		t.Fatalf("Send after exit = %v, want EventLoopClosedError", err)
	}
	if closed.Value != "after" {
		t.Errorf("undelivered value = %q, want %q", closed.Value, "after")
	}
}

func TestRunTwice(t *testing.T) {
	l := newEventLoop[int](new(wmtest.Toolkit))
	exit := func(_ event.Event, _ *WindowTarget, cf *ControlFlow) { cf.SetExit(0) }
	l.RunReturn(exit)
	defer func() {
		if recover() == nil {
			t.Error("second RunReturn did not panic")
		}
	}()
	l.RunReturn(exit)
}

func TestRunFromOtherThread(t *testing.T) {
	l := newEventLoop[int](new(wmtest.Toolkit))
	done := make(chan interface{})
	go func() {
		defer func() { done <- recover() }()
		l.RunReturn(func(_ event.Event, _ *WindowTarget, cf *ControlFlow) { cf.SetExit(0) })
	}()
	if r := <-done; r == nil {
		t.Error("RunReturn on another thread did not panic")
	}
}
