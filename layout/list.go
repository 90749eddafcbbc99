// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "github.com/latticeui/lattice/f32"

// List lays out content larger than its own bounds along an axis,
// to be scrolled into view.
type List struct {
	Axis Axis
	// ScrollToEnd instructs the list to stay scrolled to the far end
	// position once reached.
	ScrollToEnd bool
	// Alignment is the cross axis alignment of the content.
	Alignment Alignment
}

// Position is a List scroll position.
type Position struct {
	// BeforeEnd tracks whether the List position is before the very
	// end. "Before end" is used instead of "at end" so that the zero
	// value of a Position struct is useful.
	//
	// When ScrollToEnd is true and BeforeEnd is false, Offset is
	// ignored and the content is scrolled to the end.
	BeforeEnd bool
	// Offset is the distance from the start edge of the content to
	// the start edge of the list.
	Offset float32
}

// Layout lays out content with an unbounded main axis. The list takes
// the size of the content, within limits.
func (l List) Layout(limits Limits, content func(Limits) Node) Node {
	max := limits.Max()
	cross := axisCross(l.Axis, max)
	cs := NewLimits(f32.Size{}, axisSize(l.Axis, Inf, cross))
	n := content(cs)
	size := limits.Resolve(n.Size())
	off := axisPoint(l.Axis, 0, l.Alignment.Align(axisCross(l.Axis, size), axisCross(l.Axis, n.Size())))
	return WithChildren(size, Child{Offset: off, Node: n})
}

// Scroll returns the position p clamped to the content of a list of
// the given main axis extent.
func (l List) Scroll(p Position, extent, content float32) Position {
	end := max(content-extent, 0)
	if l.ScrollToEnd && !p.BeforeEnd {
		p.Offset = end
	}
	p.Offset = min(max(p.Offset, 0), end)
	p.BeforeEnd = p.Offset < end
	return p
}

// Delta returns the offset of content scrolled to p, along the axis
// of l.
func (l List) Delta(p Position) f32.Point {
	return axisPoint(l.Axis, -p.Offset, 0)
}
