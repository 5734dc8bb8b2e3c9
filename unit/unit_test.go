// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"gtkwin.org/unit"
)

func TestLogicalToPhysical(t *testing.T) {
	{
		exp := unit.PhysicalPosition{X: 20, Y: -6}
		got := unit.LogicalPosition{X: 10, Y: -3}.Physical(2)
		if got != exp {
			t.Errorf("position conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := unit.PhysicalSize{Width: 1600, Height: 1200}
		got := unit.LogicalSize{Width: 800, Height: 600}.Physical(2)
		if got != exp {
			t.Errorf("size conversion mismatch %v != %v", exp, got)
		}
	}

	{
		exp := unit.LogicalSize{Width: 400, Height: 300}
		got := unit.PhysicalSize{Width: 800, Height: 600}.Logical(2)
		if got != exp {
			t.Errorf("size conversion mismatch %v != %v", exp, got)
		}
	}
}

func TestNegativeSizeClamps(t *testing.T) {
	got := unit.LogicalSize{Width: -5, Height: 3}.Physical(1)
	if exp := (unit.PhysicalSize{Width: 0, Height: 3}); got != exp {
		t.Errorf("got %v, want %v", got, exp)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, scale := range []float64{1, 2, 3} {
		p := unit.PhysicalPosition{X: 30, Y: 60}
		if got := p.Logical(scale).Physical(scale); got != p {
			t.Errorf("scale %v: round trip %v != %v", scale, got, p)
		}
	}
}

func TestInvalidScalePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero scale factor")
		}
	}()
	unit.LogicalSize{Width: 1, Height: 1}.Physical(0)
}
