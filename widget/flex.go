// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/renderer"
	"github.com/latticeui/lattice/text"
)

// Column lays out its children vertically.
type Column struct {
	Children []Widget
	// Spacing is the space between children.
	Spacing float32
	Padding layout.Padding
	// Width and Height are the sizing policies.
	Width, Height layout.Length
	// MaxWidth and MaxHeight bound the column. Zero means unbounded.
	MaxWidth, MaxHeight float32
	// Alignment is the horizontal alignment of the children.
	Alignment layout.Alignment
}

// Row lays out its children horizontally.
type Row struct {
	Children []Widget
	// Spacing is the space between children.
	Spacing float32
	Padding layout.Padding
	// Width and Height are the sizing policies.
	Width, Height layout.Length
	// MaxWidth and MaxHeight bound the row. Zero means unbounded.
	MaxWidth, MaxHeight float32
	// Alignment is the vertical alignment of the children.
	Alignment layout.Alignment
}

// flex is the common implementation of Column and Row.
type flex struct {
	kind                string
	axis                layout.Axis
	children            []Widget
	spacing             float32
	padding             layout.Padding
	width, height       layout.Length
	maxWidth, maxHeight float32
	alignment           layout.Alignment
}

func (c Column) flex() flex {
	return flex{
		kind: "widget.Column", axis: layout.Vertical,
		children: c.Children, spacing: c.Spacing, padding: c.Padding,
		width: c.Width, height: c.Height,
		maxWidth: c.MaxWidth, maxHeight: c.MaxHeight,
		alignment: c.Alignment,
	}
}

func (c Row) flex() flex {
	return flex{
		kind: "widget.Row", axis: layout.Horizontal,
		children: c.Children, spacing: c.Spacing, padding: c.Padding,
		width: c.Width, height: c.Height,
		maxWidth: c.MaxWidth, maxHeight: c.MaxHeight,
		alignment: c.Alignment,
	}
}

func (c Column) Sizing() (layout.Length, layout.Length) {
	return c.Width, c.Height
}

func (c Column) Layout(r text.Renderer, l layout.Limits) layout.Node {
	return c.flex().layout(r, l)
}

func (c Column) Draw(r text.Renderer, s renderer.Style, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) {
	c.flex().draw(r, s, l, cursor, viewport)
}

func (c Column) Hash(h *layout.Hasher) {
	c.flex().hash(h)
}

func (c Row) Sizing() (layout.Length, layout.Length) {
	return c.Width, c.Height
}

func (c Row) Layout(r text.Renderer, l layout.Limits) layout.Node {
	return c.flex().layout(r, l)
}

func (c Row) Draw(r text.Renderer, s renderer.Style, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) {
	c.flex().draw(r, s, l, cursor, viewport)
}

func (c Row) Hash(h *layout.Hasher) {
	c.flex().hash(h)
}

func (f flex) layout(r text.Renderer, l layout.Limits) layout.Node {
	if f.maxWidth > 0 {
		l = l.MaxWidth(f.maxWidth)
	}
	if f.maxHeight > 0 {
		l = l.MaxHeight(f.maxHeight)
	}
	l = l.Width(f.width).Height(f.height)
	children := make([]layout.FlexChild, len(f.children))
	for i, w := range f.children {
		w := w
		cw, ch := w.Sizing()
		children[i] = layout.FlexChild{
			Width:  cw,
			Height: ch,
			Layout: func(l layout.Limits) layout.Node {
				return w.Layout(r, l)
			},
		}
	}
	return layout.Flex{
		Axis:      f.axis,
		Spacing:   f.spacing,
		Padding:   f.padding,
		Alignment: f.alignment,
	}.Layout(l, children...)
}

func (f flex) draw(r text.Renderer, s renderer.Style, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) {
	for i, w := range f.children {
		cl := l.Child(i)
		if !cl.Bounds().Overlaps(viewport) {
			continue
		}
		w.Draw(r, s, cl, cursor, viewport)
	}
}

func (f flex) hash(h *layout.Hasher) {
	h.Kind(f.kind)
	f.width.Hash(h)
	f.height.Hash(h)
	h.Float32(f.maxWidth)
	h.Float32(f.maxHeight)
	h.Float32(f.spacing)
	f.padding.Hash(h)
	h.Int(int(f.alignment))
	h.Int(len(f.children))
	for _, w := range f.children {
		w.Hash(h)
	}
}
