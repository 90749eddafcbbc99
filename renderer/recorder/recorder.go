// SPDX-License-Identifier: Unlicense OR MIT

// Package recorder implements a renderer that records every drawing
// primitive instead of drawing it. Text is measured with fixed
// monospace metrics: every rune advances half the text size and every
// line is as tall as the text size.
package recorder

import (
	"fmt"
	"image/color"
	"io"
	"unicode/utf8"

	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/font"
	"github.com/latticeui/lattice/renderer"
	"github.com/latticeui/lattice/text"
	"github.com/latticeui/lattice/unit"
)

// Kind identifies a recorded primitive.
type Kind uint8

const (
	KindQuad Kind = iota
	KindText
	KindPushClip
	KindPopClip
)

// Op is a recorded primitive.
type Op struct {
	Kind Kind
	// Quad and Background are set for KindQuad.
	Quad       renderer.Quad
	Background color.NRGBA
	// Text is set for KindText.
	Text text.Text
	// Clip is set for KindPushClip.
	Clip f32.Rectangle
}

// Recorder records primitives. The zero value uses a default text
// size of 20.
type Recorder struct {
	// Size is the default text size.
	Size unit.Sp
	// Ops are the primitives recorded since the last Reset.
	Ops []Op
	// Measurements counts the calls to Measure since the last Reset.
	Measurements int
}

// New returns an empty Recorder.
func New() *Recorder {
	return new(Recorder)
}

// Reset discards recorded primitives and measurement counts.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.Measurements = 0
}

func (r *Recorder) DefaultSize() unit.Sp {
	if r.Size == 0 {
		return 20
	}
	return r.Size
}

func (r *Recorder) Measure(content string, size unit.Sp, _ font.Font, bounds f32.Size) (float32, float32) {
	r.Measurements++
	advance := float32(size) / 2
	measure := func(s string) float32 {
		return float32(utf8.RuneCountInString(s)) * advance
	}
	lines := text.Wrap(content, bounds.Width, measure)
	var width float32
	for _, l := range lines {
		width = max(width, measure(l))
	}
	return width, float32(len(lines)) * float32(size)
}

func (r *Recorder) FillText(t text.Text) {
	r.Ops = append(r.Ops, Op{Kind: KindText, Text: t})
}

func (r *Recorder) FillQuad(q renderer.Quad, background color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: KindQuad, Quad: q, Background: background})
}

func (r *Recorder) Clip(bounds f32.Rectangle, draw func()) {
	r.Ops = append(r.Ops, Op{Kind: KindPushClip, Clip: bounds})
	draw()
	r.Ops = append(r.Ops, Op{Kind: KindPopClip})
}

// Texts returns the recorded text primitives.
func (r *Recorder) Texts() []text.Text {
	var ts []text.Text
	for _, op := range r.Ops {
		if op.Kind == KindText {
			ts = append(ts, op.Text)
		}
	}
	return ts
}

// Quads returns the recorded quads.
func (r *Recorder) Quads() []Op {
	var qs []Op
	for _, op := range r.Ops {
		if op.Kind == KindQuad {
			qs = append(qs, op)
		}
	}
	return qs
}

// Dump writes a line per recorded primitive.
func (r *Recorder) Dump(w io.Writer) error {
	depth := 0
	for _, op := range r.Ops {
		if op.Kind == KindPopClip {
			depth--
		}
		indent := fmt.Sprintf("%*s", depth*2, "")
		var err error
		switch op.Kind {
		case KindQuad:
			_, err = fmt.Fprintf(w, "%squad %v %v\n", indent, op.Quad.Bounds, op.Background)
		case KindText:
			_, err = fmt.Fprintf(w, "%stext %q %v at %v\n", indent, op.Text.Content, op.Text.Size, op.Text.Bounds.Min)
		case KindPushClip:
			_, err = fmt.Fprintf(w, "%sclip %v\n", indent, op.Clip)
			depth++
		case KindPopClip:
			_, err = fmt.Fprintf(w, "%send\n", indent)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (k Kind) String() string {
	switch k {
	case KindQuad:
		return "Quad"
	case KindText:
		return "Text"
	case KindPushClip:
		return "PushClip"
	case KindPopClip:
		return "PopClip"
	default:
		panic("unreachable")
	}
}

var _ text.Renderer = (*Recorder)(nil)
