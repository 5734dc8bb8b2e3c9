// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"fmt"

	"gtkwin.org/app/internal/queue"
	"gtkwin.org/io/event"
)

// EventLoopProxy sends user events to an EventLoop. It is safe for
// concurrent use.
type EventLoopProxy[T any] struct {
	events *queue.Queue[event.Event]
}

// EventLoopClosedError is returned by EventLoopProxy.Send after the
// loop has returned. It carries the undelivered value.
type EventLoopClosedError[T any] struct {
	Value T
}

func (e *EventLoopClosedError[T]) Error() string {
	return fmt.Sprintf("app: event loop closed, dropped %T", e.Value)
}

// Send queues a UserEvent carrying v. The event queue wakes up the
// loop.
func (p *EventLoopProxy[T]) Send(v T) error {
	if err := p.events.Send(event.UserEvent[T]{Value: v}); err != nil {
		return &EventLoopClosedError[T]{Value: v}
	}
	return nil
}
