// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/renderer"
	"github.com/latticeui/lattice/text"
)

// ScrollState is the persistent state of a Scrollable.
type ScrollState struct {
	// Position is the scroll position. It may lie past the content
	// until clamped with Scrollable.Clamp; drawing always uses the
	// clamped position.
	Position layout.Position
}

// ScrollBy moves the scroll position by d.
func (s *ScrollState) ScrollBy(d float32) {
	s.Position.Offset += d
	if d < 0 {
		s.Position.BeforeEnd = true
	}
}

// Scrollable shows a window into content that may be larger along
// its axis. The scroll position is applied when drawing and never
// affects layout.
type Scrollable struct {
	State   *ScrollState
	Content Widget
	Axis    layout.Axis
	// Width and Height are the sizing policies.
	Width, Height layout.Length
	// ScrollToEnd keeps the content scrolled to its end once the end
	// is reached.
	ScrollToEnd bool
	// Alignment is the cross axis alignment of the content.
	Alignment layout.Alignment
}

func (s Scrollable) Sizing() (layout.Length, layout.Length) {
	return s.Width, s.Height
}

func (s Scrollable) list() layout.List {
	return layout.List{Axis: s.Axis, ScrollToEnd: s.ScrollToEnd, Alignment: s.Alignment}
}

func (s Scrollable) Layout(r text.Renderer, l layout.Limits) layout.Node {
	l = l.Width(s.Width).Height(s.Height)
	return s.list().Layout(l, func(l layout.Limits) layout.Node {
		if s.Content == nil {
			return layout.Node{}
		}
		return s.Content.Layout(r, l)
	})
}

// Scrolled returns the scroll position of s clamped to n, a node
// returned by Layout. The state is left untouched.
func (s Scrollable) Scrolled(n layout.Node) layout.Position {
	var pos layout.Position
	if s.State != nil {
		pos = s.State.Position
	}
	size := n.Size()
	content := n.Children()[0].Node.Size()
	extent, total := size.Width, content.Width
	if s.Axis == layout.Vertical {
		extent, total = size.Height, content.Height
	}
	return s.list().Scroll(pos, extent, total)
}

// Clamp stores the position clamped to n into the state, so later
// scrolling starts from a position within the content. Hosts call it
// after layout, never while drawing.
func (s Scrollable) Clamp(n layout.Node) {
	if s.State != nil {
		s.State.Position = s.Scrolled(n)
	}
}

func (s Scrollable) Draw(r text.Renderer, st renderer.Style, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) {
	if s.Content == nil {
		return
	}
	pos := s.Scrolled(*l.Node())
	bounds := l.Bounds()
	visible := bounds.Intersect(viewport)
	r.Clip(bounds, func() {
		s.Content.Draw(r, st, l.Child(0).Offset(s.list().Delta(pos)), cursor, visible)
	})
}

func (s Scrollable) Hash(h *layout.Hasher) {
	h.Kind("widget.Scrollable")
	h.Int(int(s.Axis))
	s.Width.Hash(h)
	s.Height.Hash(h)
	h.Int(int(s.Alignment))
	h.Bool(s.Content != nil)
	if s.Content != nil {
		s.Content.Hash(h)
	}
}
