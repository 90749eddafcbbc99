// SPDX-License-Identifier: Unlicense OR MIT

// Package layout implements the constraint based layout shared by
// every widget: Limits handed from parent to child, the Node tree
// resolved by a layout pass, and the alignment rules used to anchor
// content inside resolved bounds.
package layout

import (
	"github.com/latticeui/lattice/f32"
)

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Alignment is the placement of content along one axis of
// a containing space. Start is the left or top edge, End the
// right or bottom edge.
type Alignment uint8

const (
	Start Alignment = iota
	End
	Middle
)

const (
	Horizontal Axis = iota
	Vertical
)

// Padding is the space around the content of a widget.
type Padding struct {
	Top, Right, Bottom, Left float32
}

// UniformPadding returns a Padding with a single value applied to all
// edges.
func UniformPadding(v float32) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns the sum of the left and right padding.
func (p Padding) Horizontal() float32 {
	return p.Left + p.Right
}

// Vertical returns the sum of the top and bottom padding.
func (p Padding) Vertical() float32 {
	return p.Top + p.Bottom
}

// Size returns the total space taken by p.
func (p Padding) Size() f32.Size {
	return f32.Size{Width: p.Horizontal(), Height: p.Vertical()}
}

// Offset returns the position of padded content.
func (p Padding) Offset() f32.Point {
	return f32.Point{X: p.Left, Y: p.Top}
}

// Hash writes p to h.
func (p Padding) Hash(h *Hasher) {
	h.Float32(p.Top)
	h.Float32(p.Right)
	h.Float32(p.Bottom)
	h.Float32(p.Left)
}

// Anchor returns the point content is anchored to inside bounds.
// Start maps to the origin edge, Middle to the center and End to the
// far edge of each axis. Every text bearing widget resolves its
// drawing position through Anchor.
func Anchor(bounds f32.Rectangle, horizontal, vertical Alignment) f32.Point {
	var p f32.Point
	switch horizontal {
	case Start:
		p.X = bounds.Min.X
	case Middle:
		p.X = bounds.CenterX()
	case End:
		p.X = bounds.Max.X
	}
	switch vertical {
	case Start:
		p.Y = bounds.Min.Y
	case Middle:
		p.Y = bounds.CenterY()
	case End:
		p.Y = bounds.Max.Y
	}
	return p
}

// Align returns the offset of content of the given extent placed in
// space according to a.
func (a Alignment) Align(space, extent float32) float32 {
	switch a {
	case Middle:
		return (space - extent) / 2
	case End:
		return space - extent
	default:
		return 0
	}
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func axisMain(a Axis, sz f32.Size) float32 {
	if a == Horizontal {
		return sz.Width
	}
	return sz.Height
}

func axisCross(a Axis, sz f32.Size) float32 {
	if a == Horizontal {
		return sz.Height
	}
	return sz.Width
}

func axisPoint(a Axis, main, cross float32) f32.Point {
	if a == Horizontal {
		return f32.Point{X: main, Y: cross}
	}
	return f32.Point{X: cross, Y: main}
}

func axisSize(a Axis, main, cross float32) f32.Size {
	if a == Horizontal {
		return f32.Size{Width: main, Height: cross}
	}
	return f32.Size{Width: cross, Height: main}
}
