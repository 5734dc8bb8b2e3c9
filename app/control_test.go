// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"testing"
	"time"
)

func TestControlFlow(t *testing.T) {
	var cf ControlFlow
	if got := cf.String(); got != "Poll" {
		t.Errorf("zero ControlFlow = %s, want Poll", got)
	}
	cf.SetWait()
	if !cf.Waiting() {
		t.Errorf("%s is not waiting", cf)
	}
	deadline := time.Unix(100, 0)
	cf.SetWaitUntil(deadline)
	if d, ok := cf.Deadline(); !ok || !d.Equal(deadline) {
		t.Errorf("Deadline() = %v, %v; want %v, true", d, ok, deadline)
	}
	if cf.Waiting() {
		t.Error("WaitUntil reported as Wait")
	}
}

func TestControlFlowExitIsSticky(t *testing.T) {
	var cf ControlFlow
	cf.SetExit(3)
	cf.SetPoll()
	cf.SetWait()
	cf.SetWaitUntil(time.Now())
	cf.SetExit(4)
	code, ok := cf.Exiting()
	if !ok || code != 3 {
		t.Errorf("Exiting() = %d, %v; want 3, true", code, ok)
	}
	if got := cf.String(); got != "ExitWithCode(3)" {
		t.Errorf("String() = %s", got)
	}
}
