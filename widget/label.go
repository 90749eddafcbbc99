// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/font"
	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/renderer"
	"github.com/latticeui/lattice/text"
	"github.com/latticeui/lattice/unit"
)

// LabelState is the persistent state of a Label.
type LabelState struct {
	// Marked is the mnemonic currently activated, or zero.
	Marked rune
	// Hovered reports whether the pointer is over the label.
	Hovered bool
}

// Label is a single line of text with an optional mnemonic. A label
// never wraps its text.
type Label struct {
	State *LabelState
	Text  string
	// Mnemonic is the access key of the label, underlined when marked
	// or hovered. Zero means none.
	Mnemonic rune
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

func (l Label) Sizing() (layout.Length, layout.Length) {
	return l.Width, l.Height
}

func (l Label) Layout(r text.Renderer, c layout.Limits) layout.Node {
	c = c.Width(l.Width).Height(l.Height)
	size := l.textSize(r)
	bounds := f32.Sz(layout.Inf, c.Max().Height)
	w, h := r.Measure(l.Text, size, l.Font, bounds)
	return layout.NewNode(c.Resolve(f32.Sz(w, h)))
}

// Draw draws the text on a single line. Text larger than the layout
// bounds is clipped to them.
func (l Label) Draw(r text.Renderer, s renderer.Style, lt layout.Layout, _ f32.Point, _ f32.Rectangle) {
	t := resolveText(r, s, lt, l.Text, l.Font, l.Size, l.Color, l.Horizontal, l.Vertical)
	t.SingleLine = true
	unbounded := f32.Sz(layout.Inf, layout.Inf)
	tw, th := r.Measure(l.Text, t.Size, l.Font, unbounded)
	bounds := lt.Bounds()
	draw := func() {
		r.FillText(t)
		l.drawMnemonic(r, t, f32.Sz(tw, th))
	}
	if tw > bounds.Dx() || th > bounds.Dy() {
		r.Clip(bounds, draw)
		return
	}
	draw()
}

// drawMnemonic underlines the mnemonic of a marked label drawn as t,
// a text block of the given size.
func (l Label) drawMnemonic(r text.Renderer, t text.Text, block f32.Size) {
	if !l.marked() {
		return
	}
	i := mnemonicIndex(l.Text, l.Mnemonic)
	if i < 0 {
		return
	}
	unbounded := f32.Sz(layout.Inf, layout.Inf)
	prefix, _ := r.Measure(l.Text[:i], t.Size, l.Font, unbounded)
	_, n := utf8.DecodeRuneInString(l.Text[i:])
	glyph, _ := r.Measure(l.Text[i:i+n], t.Size, l.Font, unbounded)
	origin := t.Origin(block)
	thickness := max(float32(t.Size)/16, 1)
	underline := f32.Rect(origin.X+prefix, origin.Y+block.Height-thickness, glyph, thickness)
	r.FillQuad(renderer.Quad{Bounds: underline}, t.Color)
}

func (l Label) Hash(h *layout.Hasher) {
	h.Kind("widget.Label")
	h.String(l.Text)
	h.Rune(l.Mnemonic)
	h.Float32(float32(l.Size))
	l.Font.Hash(h)
	l.Width.Hash(h)
	l.Height.Hash(h)
}

func (l Label) marked() bool {
	if l.Mnemonic == 0 || l.State == nil {
		return false
	}
	return l.State.Hovered || unicode.ToLower(l.State.Marked) == unicode.ToLower(l.Mnemonic)
}

func (l Label) textSize(r text.Renderer) unit.Sp {
	if l.Size == 0 {
		return r.DefaultSize()
	}
	return l.Size
}

// mnemonicIndex returns the byte index of the first occurrence of m in
// s, ignoring case, or -1.
func mnemonicIndex(s string, m rune) int {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.ToLower(r) == unicode.ToLower(m)
	})
}
