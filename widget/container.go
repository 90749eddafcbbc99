// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/renderer"
	"github.com/latticeui/lattice/text"
)

// Container aligns a single content widget inside its padded bounds.
type Container struct {
	Content Widget
	// Width and Height are the sizing policies.
	Width, Height layout.Length
	// MaxWidth and MaxHeight bound the container. Zero means unbounded.
	MaxWidth, MaxHeight float32
	Padding             layout.Padding
	// Horizontal and Vertical align the content.
	Horizontal, Vertical layout.Alignment
	// Background fills the container unless it is the zero color.
	Background color.NRGBA
}

func (c Container) Sizing() (layout.Length, layout.Length) {
	return c.Width, c.Height
}

func (c Container) Layout(r text.Renderer, l layout.Limits) layout.Node {
	if c.MaxWidth > 0 {
		l = l.MaxWidth(c.MaxWidth)
	}
	if c.MaxHeight > 0 {
		l = l.MaxHeight(c.MaxHeight)
	}
	l = l.Width(c.Width).Height(c.Height)
	var content layout.Node
	if c.Content != nil {
		content = c.Content.Layout(r, l.Pad(c.Padding).Loose())
	}
	size := l.Resolve(content.Size().Add(c.Padding.Size()))
	space := size.Sub(c.Padding.Size())
	off := c.Padding.Offset().Add(f32.Pt(
		c.Horizontal.Align(space.Width, content.Size().Width),
		c.Vertical.Align(space.Height, content.Size().Height),
	))
	return layout.WithChildren(size, layout.Child{Offset: off, Node: content})
}

func (c Container) Draw(r text.Renderer, s renderer.Style, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) {
	if c.Background != (color.NRGBA{}) {
		r.FillQuad(renderer.Quad{Bounds: l.Bounds()}, c.Background)
	}
	if c.Content != nil {
		c.Content.Draw(r, s, l.Child(0), cursor, viewport)
	}
}

func (c Container) Hash(h *layout.Hasher) {
	h.Kind("widget.Container")
	c.Width.Hash(h)
	c.Height.Hash(h)
	h.Float32(c.MaxWidth)
	h.Float32(c.MaxHeight)
	c.Padding.Hash(h)
	h.Int(int(c.Horizontal))
	h.Int(int(c.Vertical))
	h.Bool(c.Content != nil)
	if c.Content != nil {
		c.Content.Hash(h)
	}
}
