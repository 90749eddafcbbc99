// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/renderer"
	"github.com/latticeui/lattice/text"
)

// ButtonState is the persistent state of a Button.
type ButtonState struct {
	// Pressed reports whether the button is held down.
	Pressed bool
}

// ButtonStyle is the appearance of a Button. It never affects
// layout.
type ButtonStyle struct {
	Background   color.NRGBA
	Hovered      color.NRGBA
	Pressed      color.NRGBA
	BorderRadius float32
	BorderWidth  float32
	BorderColor  color.NRGBA
	// TextColor overrides the style text color for the content.
	// The zero value keeps the ambient text color.
	TextColor color.NRGBA
}

// DefaultButtonStyle is a light gray button.
var DefaultButtonStyle = ButtonStyle{
	Background:   color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
	Hovered:      color.NRGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff},
	Pressed:      color.NRGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff},
	BorderRadius: 4,
	BorderWidth:  1,
	BorderColor:  color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff},
}

// Button is a clickable area around a single content widget.
type Button struct {
	State   *ButtonState
	Content Widget
	// Width and Height are the sizing policies.
	Width, Height layout.Length
	// MinWidth and MinHeight are lower bounds of the button size.
	MinWidth, MinHeight float32
	// Padding surrounds the content.
	Padding layout.Padding
	Style   ButtonStyle
}

func (b Button) Sizing() (layout.Length, layout.Length) {
	return b.Width, b.Height
}

func (b Button) Layout(r text.Renderer, l layout.Limits) layout.Node {
	l = l.MinWidth(b.MinWidth).MinHeight(b.MinHeight).Width(b.Width).Height(b.Height)
	var content layout.Node
	if b.Content != nil {
		content = b.Content.Layout(r, l.Pad(b.Padding))
	}
	size := l.Resolve(content.Size().Add(b.Padding.Size()))
	return layout.WithChildren(size, layout.Child{Offset: b.Padding.Offset(), Node: content})
}

func (b Button) Draw(r text.Renderer, s renderer.Style, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) {
	bounds := l.Bounds()
	bg := b.Style.Background
	switch {
	case b.State != nil && b.State.Pressed:
		bg = b.Style.Pressed
	case cursor.In(bounds):
		bg = b.Style.Hovered
	}
	r.FillQuad(renderer.Quad{
		Bounds:       bounds,
		BorderRadius: b.Style.BorderRadius,
		BorderWidth:  b.Style.BorderWidth,
		BorderColor:  b.Style.BorderColor,
	}, bg)
	if b.Content == nil {
		return
	}
	if b.Style.TextColor != (color.NRGBA{}) {
		s.TextColor = b.Style.TextColor
	}
	r.Clip(bounds, func() {
		b.Content.Draw(r, s, l.Child(0), cursor, viewport)
	})
}

func (b Button) Hash(h *layout.Hasher) {
	h.Kind("widget.Button")
	b.Width.Hash(h)
	b.Height.Hash(h)
	h.Float32(b.MinWidth)
	h.Float32(b.MinHeight)
	b.Padding.Hash(h)
	h.Bool(b.Content != nil)
	if b.Content != nil {
		b.Content.Hash(h)
	}
}
