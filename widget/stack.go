// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/renderer"
	"github.com/latticeui/lattice/text"
)

// Stack draws its children on top of each other, the last child on
// top. Children filling both axes take the size of the largest child
// that does not.
type Stack struct {
	Children []Widget
	// Width and Height are the sizing policies.
	Width, Height layout.Length
	// Horizontal and Vertical align children smaller than the stack.
	Horizontal, Vertical layout.Alignment
}

func (s Stack) Sizing() (layout.Length, layout.Length) {
	return s.Width, s.Height
}

func (s Stack) Layout(r text.Renderer, l layout.Limits) layout.Node {
	l = l.Width(s.Width).Height(s.Height)
	children := make([]layout.StackChild, len(s.Children))
	for i, w := range s.Children {
		w := w
		cw, ch := w.Sizing()
		children[i] = layout.StackChild{
			Expand: cw.FillFactor() > 0 && ch.FillFactor() > 0,
			Layout: func(l layout.Limits) layout.Node {
				return w.Layout(r, l)
			},
		}
	}
	return layout.Stack{Horizontal: s.Horizontal, Vertical: s.Vertical}.Layout(l, children...)
}

func (s Stack) Draw(r text.Renderer, st renderer.Style, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) {
	for i, w := range s.Children {
		w.Draw(r, st, l.Child(i), cursor, viewport)
	}
}

func (s Stack) Hash(h *layout.Hasher) {
	h.Kind("widget.Stack")
	s.Width.Hash(h)
	s.Height.Hash(h)
	h.Int(int(s.Horizontal))
	h.Int(int(s.Vertical))
	h.Int(len(s.Children))
	for _, w := range s.Children {
		w.Hash(h)
	}
}
