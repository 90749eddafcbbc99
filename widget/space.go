// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/renderer"
	"github.com/latticeui/lattice/text"
)

// Space is an empty widget taking up space.
type Space struct {
	Width, Height layout.Length
}

func (s Space) Sizing() (layout.Length, layout.Length) {
	return s.Width, s.Height
}

func (s Space) Layout(_ text.Renderer, l layout.Limits) layout.Node {
	l = l.Width(s.Width).Height(s.Height)
	return layout.NewNode(l.Resolve(f32.Size{}))
}

func (Space) Draw(text.Renderer, renderer.Style, layout.Layout, f32.Point, f32.Rectangle) {}

func (s Space) Hash(h *layout.Hasher) {
	h.Kind("widget.Space")
	s.Width.Hash(h)
	s.Height.Hash(h)
}
