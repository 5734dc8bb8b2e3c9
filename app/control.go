// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"fmt"
	"time"
)

type flowMode uint8

const (
	flowPoll flowMode = iota
	flowWait
	flowWaitUntil
	flowExit
)

// ControlFlow tells the event loop what to do after the current
// iteration. The zero value polls.
//
// Once SetExit is called the loop exits and the other setters have no
// effect.
type ControlFlow struct {
	mode     flowMode
	deadline time.Time
	code     int
	// latch records the first exit for the running loop.
	latch *exitLatch
}

// exitLatch holds the exit code of a loop once the callback asked to
// exit. It survives assignments to the ControlFlow.
type exitLatch struct {
	set  bool
	code int
}

func (l *exitLatch) flow() ControlFlow {
	return ControlFlow{mode: flowExit, code: l.code}
}

// SetPoll makes the loop start the next iteration immediately.
func (c *ControlFlow) SetPoll() {
	c.set(ControlFlow{mode: flowPoll})
}

// SetWait makes the loop wait for native activity or new events before
// the next iteration.
func (c *ControlFlow) SetWait() {
	c.set(ControlFlow{mode: flowWait})
}

// SetWaitUntil is like SetWait but the loop resumes at t at the latest.
func (c *ControlFlow) SetWaitUntil(t time.Time) {
	c.set(ControlFlow{mode: flowWaitUntil, deadline: t})
}

// SetExit ends the loop with the exit code code.
func (c *ControlFlow) SetExit(code int) {
	c.set(ControlFlow{mode: flowExit, code: code})
	if l := c.latch; l != nil && !l.set {
		l.set, l.code = true, c.code
	}
}

func (c *ControlFlow) set(n ControlFlow) {
	if c.mode == flowExit {
		return
	}
	n.latch = c.latch
	*c = n
}

// Exiting reports whether the loop is exiting, and with which code.
func (c *ControlFlow) Exiting() (code int, ok bool) {
	return c.code, c.mode == flowExit
}

// Deadline returns the time set by SetWaitUntil.
func (c *ControlFlow) Deadline() (time.Time, bool) {
	return c.deadline, c.mode == flowWaitUntil
}

// Waiting reports whether the loop waits without a deadline.
func (c *ControlFlow) Waiting() bool {
	return c.mode == flowWait
}

func (c ControlFlow) String() string {
	switch c.mode {
	case flowPoll:
		return "Poll"
	case flowWait:
		return "Wait"
	case flowWaitUntil:
		return fmt.Sprintf("WaitUntil(%s)", c.deadline.Format(time.RFC3339Nano))
	case flowExit:
		return fmt.Sprintf("ExitWithCode(%d)", c.code)
	}
	return fmt.Sprintf("ControlFlow(%d)", c.mode)
}
