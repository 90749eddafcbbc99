// SPDX-License-Identifier: Unlicense OR MIT

// Package text defines the text capability of renderers: measuring
// content for layout and filling it when drawing. Shaper implements
// measurement and line breaking for OpenType fonts.
package text

import (
	"image/color"
	"strings"

	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/font"
	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/renderer"
	"github.com/latticeui/lattice/unit"
)

// Renderer is a renderer able to measure and draw text.
type Renderer interface {
	renderer.Renderer
	// DefaultSize is the text size used when a widget sets none.
	DefaultSize() unit.Sp
	// Measure returns the size in dp of content laid out in bounds.
	// Lines wider than bounds.Width are wrapped at spaces.
	Measure(content string, size unit.Sp, f font.Font, bounds f32.Size) (width, height float32)
	// FillText draws t.
	FillText(t Text)
}

// Text is a text drawing primitive.
type Text struct {
	Content string
	// Size is the resolved text size.
	Size unit.Sp
	// Bounds is the text area. Its origin is the anchor point
	// the text is aligned to, and its size the layout bounds.
	Bounds f32.Rectangle
	Color  color.NRGBA
	Font   font.Font
	// Horizontal and Vertical align the text around the anchor.
	Horizontal layout.Alignment
	Vertical   layout.Alignment
	// SingleLine disables wrapping. Only explicit line breaks start
	// new lines.
	SingleLine bool
}

// WrapWidth returns the width lines of t are wrapped at.
func (t Text) WrapWidth() float32 {
	if t.SingleLine {
		return layout.Inf
	}
	return t.Bounds.Dx()
}

// Origin returns the top left corner of a text block of the given size
// aligned around the anchor of t.
func (t Text) Origin(block f32.Size) f32.Point {
	p := t.Bounds.Min
	switch t.Horizontal {
	case layout.Middle:
		p.X -= block.Width / 2
	case layout.End:
		p.X -= block.Width
	}
	switch t.Vertical {
	case layout.Middle:
		p.Y -= block.Height / 2
	case layout.End:
		p.Y -= block.Height
	}
	return p
}

// Wrap breaks content into lines. Explicit line breaks are kept and
// lines wider than maxWidth, as reported by measure, are broken at
// spaces. A single word wider than maxWidth is never broken.
func Wrap(content string, maxWidth float32, measure func(string) float32) []string {
	var lines []string
	for _, para := range strings.Split(content, "\n") {
		if measure(para) <= maxWidth {
			lines = append(lines, para)
			continue
		}
		words := strings.Split(para, " ")
		cur := words[0]
		for _, w := range words[1:] {
			cand := cur + " " + w
			if measure(cand) > maxWidth {
				lines = append(lines, cur)
				cur = w
				continue
			}
			cur = cand
		}
		lines = append(lines, cur)
	}
	return lines
}
