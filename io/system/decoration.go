// SPDX-License-Identifier: Unlicense OR MIT

package system

import (
	"gtkwin.org/io/pointer"
)

// BorderlessResizeInset is the width in logical pixels of the band
// along the edges of an undecorated window where a press starts an
// interactive resize. Scale it by the window scale factor.
const BorderlessResizeInset = 5

// Edge is a window edge or corner. The values match GdkWindowEdge.
type Edge int

const (
	EdgeNorthWest Edge = iota
	EdgeNorth
	EdgeNorthEast
	EdgeWest
	EdgeEast
	EdgeSouthWest
	EdgeSouth
	EdgeSouthEast
	// EdgeNone means the point is not on an edge. It is never passed
	// to the toolkit.
	EdgeNone Edge = -1
)

// Bounds are window bounds in root coordinates. Right and Bottom
// are exclusive.
type Bounds struct {
	Left, Top, Right, Bottom int
}

const (
	hitLeft   = 0b0001
	hitRight  = 0b0010
	hitTop    = 0b0100
	hitBottom = 0b1000
)

// HitTest classifies the point (x, y) against a band of width inset
// along the edges of b. Corners are the union of two edge tests.
func HitTest(b Bounds, x, y, inset int) Edge {
	var res int
	if x < b.Left+inset {
		res |= hitLeft
	}
	if x >= b.Right-inset {
		res |= hitRight
	}
	if y < b.Top+inset {
		res |= hitTop
	}
	if y >= b.Bottom-inset {
		res |= hitBottom
	}
	switch res {
	case hitLeft:
		return EdgeWest
	case hitRight:
		return EdgeEast
	case hitTop:
		return EdgeNorth
	case hitBottom:
		return EdgeSouth
	case hitTop | hitLeft:
		return EdgeNorthWest
	case hitTop | hitRight:
		return EdgeNorthEast
	case hitBottom | hitLeft:
		return EdgeSouthWest
	case hitBottom | hitRight:
		return EdgeSouthEast
	}
	return EdgeNone
}

// Cursor returns the resize cursor for the edge.
func (e Edge) Cursor() pointer.Cursor {
	switch e {
	case EdgeNorthWest:
		return pointer.CursorNorthWestResize
	case EdgeSouthEast:
		return pointer.CursorSouthEastResize
	case EdgeNorthEast:
		return pointer.CursorNorthEastResize
	case EdgeSouthWest:
		return pointer.CursorSouthWestResize
	case EdgeWest:
		return pointer.CursorWestResize
	case EdgeEast:
		return pointer.CursorEastResize
	case EdgeNorth:
		return pointer.CursorNorthResize
	case EdgeSouth:
		return pointer.CursorSouthResize
	}
	return pointer.CursorDefault
}

func (e Edge) String() string {
	switch e {
	case EdgeNorthWest:
		return "NorthWest"
	case EdgeNorth:
		return "North"
	case EdgeNorthEast:
		return "NorthEast"
	case EdgeWest:
		return "West"
	case EdgeEast:
		return "East"
	case EdgeSouthWest:
		return "SouthWest"
	case EdgeSouth:
		return "South"
	case EdgeSouthEast:
		return "SouthEast"
	case EdgeNone:
		return "None"
	}
	return "Edge(?)"
}
