// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"gtkwin.org/app/internal/wm"
	"gtkwin.org/unit"
)

// Monitor is a snapshot of a monitor.
type Monitor struct {
	// Name is the monitor model, if known.
	Name        string
	Position    unit.PhysicalPosition
	Size        unit.PhysicalSize
	ScaleFactor float64
	// RefreshRateMillihertz is 0 if unknown.
	RefreshRateMillihertz uint32
}

func newMonitor(m wm.Monitor) Monitor {
	scale := float64(m.Scale)
	if scale < 1 {
		scale = 1
	}
	b := m.Bounds
	mon := Monitor{
		Name:        m.Name,
		Position:    unit.LogicalPosition{X: float64(b.Min.X), Y: float64(b.Min.Y)}.Physical(scale),
		Size:        unit.LogicalSize{Width: float64(b.Dx()), Height: float64(b.Dy())}.Physical(scale),
		ScaleFactor: scale,
	}
	if m.RefreshRate > 0 {
		mon.RefreshRateMillihertz = uint32(m.RefreshRate)
	}
	return mon
}
