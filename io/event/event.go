// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the event types delivered by an event loop.
//
// Every iteration of a loop delivers events in a fixed order:
//
//	NewEvents, payload events..., MainEventsCleared,
//	at most one RedrawRequested, RedrawEventsCleared
//
// LoopDestroyed is delivered exactly once, last.
package event

import (
	"fmt"
	"time"
)

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// WindowID identifies a window among the live windows of one
// event loop. It is never reused while events referencing it may
// still be queued.
type WindowID uint64

// StartCause describes why a new loop iteration started.
type StartCause interface {
	implementsStartCause()
}

// Init is the cause of the very first NewEvents of a loop.
type Init struct{}

// Poll is the cause of an iteration when the control flow is
// set to poll.
type Poll struct{}

// WaitCancelled is the cause of an iteration that started because
// events arrived before the requested resume time, if any.
type WaitCancelled struct {
	Start time.Time
	// RequestedResume is the zero time when the loop was waiting
	// without deadline.
	RequestedResume time.Time
}

// ResumeTimeReached is the cause of an iteration that started
// because the wait deadline passed.
type ResumeTimeReached struct {
	Start           time.Time
	RequestedResume time.Time
}

// NewEvents starts an iteration.
type NewEvents struct {
	Cause StartCause
}

// MainEventsCleared is sent after all queued payload events of an
// iteration have been delivered.
type MainEventsCleared struct{}

// RedrawRequested asks the application to redraw a window.
type RedrawRequested struct {
	Window WindowID
}

// RedrawEventsCleared ends an iteration.
type RedrawEventsCleared struct{}

// LoopDestroyed is the last event of a loop.
//
// A LoopDestroyed found in the event queue is not delivered; it forces
// the loop to exit with code 1.
type LoopDestroyed struct{}

// WindowEvent carries an event for a particular window. Event is one
// of the payload types in the io/system, io/key and io/pointer
// packages.
type WindowEvent struct {
	Window WindowID
	Event  Event
}

// UserEvent carries a value sent through an event loop proxy.
type UserEvent[T any] struct {
	Value T
}

func (w WindowID) String() string {
	return fmt.Sprintf("window(%d)", uint64(w))
}

func (NewEvents) ImplementsEvent()           {}
func (MainEventsCleared) ImplementsEvent()   {}
func (RedrawRequested) ImplementsEvent()     {}
func (RedrawEventsCleared) ImplementsEvent() {}
func (LoopDestroyed) ImplementsEvent()       {}
func (WindowEvent) ImplementsEvent()         {}
func (UserEvent[T]) ImplementsEvent()        {}

func (Init) implementsStartCause()              {}
func (Poll) implementsStartCause()              {}
func (WaitCancelled) implementsStartCause()     {}
func (ResumeTimeReached) implementsStartCause() {}
