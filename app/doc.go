// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app runs a native GTK event loop and manages its windows.

# Event loop

An EventLoop delivers every event through a single callback, invoked on
the thread that created the loop:

	loop := app.MustNewEventLoop[string]()
	w, err := loop.Target().NewWindow(app.Title("hello"))
	...
	loop.Run(func(e event.Event, t *app.WindowTarget, cf *app.ControlFlow) {
		cf.SetWait()
		switch e := e.(type) {
		case event.WindowEvent:
			if _, ok := e.Event.(system.CloseRequested); ok {
				cf.SetExit(0)
			}
		case event.RedrawRequested:
			// Draw e.Window.
		}
	})

Every iteration of the loop starts with a NewEvents event, followed by
the pending window and user events, a MainEventsCleared event, at most
one RedrawRequested event and a RedrawEventsCleared event. The
ControlFlow set by the callback decides whether the next iteration
starts immediately, waits for native activity, waits until a deadline,
or ends the loop. Once the loop is told to exit, it stays in that
state; the last event delivered is LoopDestroyed.

# Threads

GTK must only be used from the thread that initialized it. NewEventLoop
locks the calling goroutine to its thread, and the loop, window
construction and the WindowTarget must be used from that goroutine.
Window methods and EventLoopProxy.Send may be called from any goroutine:
they queue a request for the loop and wake it up.

# Build tags

The nogtk tag builds the package without GTK. NewEventLoop then fails
with ErrNoDisplay.
*/
package app
