// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements logical and physical window coordinates.

Logical values are in device independent pixels as reported by the
toolkit. Physical values are in device pixels of the underlying
display. The two are related by the integer scale factor of the
monitor a window is on.

Window geometry is cached in logical units and converted to physical
units on demand, so a changed scale factor is reflected without
waiting for a new geometry notification.

*/
package unit

import (
	"fmt"
	"math"
)

// LogicalPosition is a position in device independent pixels.
type LogicalPosition struct {
	X, Y float64
}

// PhysicalPosition is a position in device pixels.
type PhysicalPosition struct {
	X, Y int
}

// LogicalSize is a size in device independent pixels.
type LogicalSize struct {
	Width, Height float64
}

// PhysicalSize is a size in device pixels.
type PhysicalSize struct {
	Width, Height uint32
}

// Position is either a LogicalPosition or a PhysicalPosition.
type Position interface {
	Logical(scale float64) LogicalPosition
	Physical(scale float64) PhysicalPosition
}

// Size is either a LogicalSize or a PhysicalSize.
type Size interface {
	Logical(scale float64) LogicalSize
	Physical(scale float64) PhysicalSize
}

// ValidScale reports whether scale can be used for conversions.
func ValidScale(scale float64) bool {
	return scale > 0 && !math.IsInf(scale, 0) && !math.IsNaN(scale)
}

func checkScale(scale float64) {
	if !ValidScale(scale) {
		panic(fmt.Sprintf("unit: invalid scale factor %v", scale))
	}
}

func (p LogicalPosition) Logical(scale float64) LogicalPosition {
	return p
}

func (p LogicalPosition) Physical(scale float64) PhysicalPosition {
	checkScale(scale)
	return PhysicalPosition{
		X: int(math.Round(p.X * scale)),
		Y: int(math.Round(p.Y * scale)),
	}
}

func (p PhysicalPosition) Logical(scale float64) LogicalPosition {
	checkScale(scale)
	return LogicalPosition{
		X: float64(p.X) / scale,
		Y: float64(p.Y) / scale,
	}
}

func (p PhysicalPosition) Physical(scale float64) PhysicalPosition {
	return p
}

func (s LogicalSize) Logical(scale float64) LogicalSize {
	return s
}

func (s LogicalSize) Physical(scale float64) PhysicalSize {
	checkScale(scale)
	return PhysicalSize{
		Width:  roundU32(s.Width * scale),
		Height: roundU32(s.Height * scale),
	}
}

func (s PhysicalSize) Logical(scale float64) LogicalSize {
	checkScale(scale)
	return LogicalSize{
		Width:  float64(s.Width) / scale,
		Height: float64(s.Height) / scale,
	}
}

func (s PhysicalSize) Physical(scale float64) PhysicalSize {
	return s
}

// Ints rounds the position to whole logical pixels, the unit of
// toolkit calls such as gtk_window_move.
func (p LogicalPosition) Ints() (x, y int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// Ints rounds the size to whole logical pixels.
func (s LogicalSize) Ints() (w, h int) {
	return int(math.Round(s.Width)), int(math.Round(s.Height))
}

func roundU32(v float64) uint32 {
	if v <= 0 {
		return 0
	}
	if v >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(math.Round(v))
}

func (p LogicalPosition) String() string {
	return fmt.Sprintf("(%g,%g)dp", p.X, p.Y)
}

func (p PhysicalPosition) String() string {
	return fmt.Sprintf("(%d,%d)px", p.X, p.Y)
}

func (s LogicalSize) String() string {
	return fmt.Sprintf("%gx%gdp", s.Width, s.Height)
}

func (s PhysicalSize) String() string {
	return fmt.Sprintf("%dx%dpx", s.Width, s.Height)
}
