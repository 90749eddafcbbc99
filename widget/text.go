// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/font"
	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/renderer"
	"github.com/latticeui/lattice/text"
	"github.com/latticeui/lattice/unit"
)

// Text is a widget for laying out and drawing a paragraph of text.
// Lines wider than the available width are wrapped.
type Text struct {
	Content string
	// Size is the text size. Zero means the renderer default.
	Size unit.Sp
	// Color of the text. The zero value means the style text color.
	Color color.NRGBA
	Font  font.Font
	// Width and Height are the sizing policies.
	Width, Height layout.Length
	// Horizontal and Vertical align the text inside its bounds.
	Horizontal, Vertical layout.Alignment
}

func (t Text) Sizing() (layout.Length, layout.Length) {
	return t.Width, t.Height
}

func (t Text) Layout(r text.Renderer, l layout.Limits) layout.Node {
	l = l.Width(t.Width).Height(t.Height)
	size := t.Size
	if size == 0 {
		size = r.DefaultSize()
	}
	w, h := r.Measure(t.Content, size, t.Font, l.Max())
	return layout.NewNode(l.Resolve(f32.Sz(w, h)))
}

func (t Text) Draw(r text.Renderer, s renderer.Style, l layout.Layout, _ f32.Point, _ f32.Rectangle) {
	DrawText(r, s, l, t.Content, t.Font, t.Size, t.Color, t.Horizontal, t.Vertical)
}

func (t Text) Hash(h *layout.Hasher) {
	h.Kind("widget.Text")
	h.String(t.Content)
	h.Float32(float32(t.Size))
	t.Font.Hash(h)
	t.Width.Hash(h)
	t.Height.Hash(h)
}

// DrawText draws text in the bounds of l the same way for every text
// bearing widget:
//
//   - If size is zero, the default text size of the renderer is used.
//   - If c is the zero color, the style text color is used.
//   - The alignments position the text around the anchor point of the
//     bounds, see layout.Anchor. They never move the bounds.
func DrawText(r text.Renderer, s renderer.Style, l layout.Layout, content string, f font.Font, size unit.Sp, c color.NRGBA, horizontal, vertical layout.Alignment) {
	r.FillText(resolveText(r, s, l, content, f, size, c, horizontal, vertical))
}

func resolveText(r text.Renderer, s renderer.Style, l layout.Layout, content string, f font.Font, size unit.Sp, c color.NRGBA, horizontal, vertical layout.Alignment) text.Text {
	bounds := l.Bounds()
	anchor := layout.Anchor(bounds, horizontal, vertical)
	if size == 0 {
		size = r.DefaultSize()
	}
	if c == (color.NRGBA{}) {
		c = s.TextColor
	}
	return text.Text{
		Content:    content,
		Size:       size,
		Bounds:     f32.Rectangle{Min: anchor, Max: anchor.Add(f32.Pt(bounds.Dx(), bounds.Dy()))},
		Color:      c,
		Font:       f,
		Horizontal: horizontal,
		Vertical:   vertical,
	}
}
