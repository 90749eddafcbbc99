// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"math"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/font"
)

// A Line contains the measurements of a line of text.
type Line struct {
	Text string
	// Width is the width of the line.
	Width fixed.Int26_6
	// Ascent is the height above the baseline.
	Ascent fixed.Int26_6
	// Descent is the height below the baseline, including
	// the line gap.
	Descent fixed.Int26_6
}

// A Layout contains the measurements of a body of text as
// a list of Lines.
type Layout struct {
	Lines []Line
}

// Shaper lays out text using a collection of font faces. Layouts are
// cached and reused when the same text is laid out with the same
// parameters.
//
// If a font matches no face in the collection, Shaper falls back to a
// face of the same typeface, then to the first face.
//
// A Shaper is not safe for concurrent use.
type Shaper struct {
	faces   font.Collection
	layouts layoutCache
	opened  faceCache
}

// NewShaper returns a Shaper for the faces of collection.
func NewShaper(collection font.Collection) *Shaper {
	return &Shaper{
		faces:   collection,
		layouts: newLayoutCache(),
		opened:  newFaceCache(),
	}
}

// Layout lays out str with a text size of ppem pixels, breaking lines
// wider than maxWidth pixels.
func (s *Shaper) Layout(f font.Font, ppem fixed.Int26_6, maxWidth float32, str string) Layout {
	key := layoutKey{ppem: ppem, maxWidth: toFixed(maxWidth), str: str, font: f}
	if l, ok := s.layouts.Get(key); ok {
		return l
	}
	face := s.Face(f, ppem)
	m := face.Metrics()
	measure := func(str string) float32 {
		return fromFixed(xfont.MeasureString(face, str))
	}
	lines := Wrap(str, maxWidth, measure)
	l := Layout{Lines: make([]Line, len(lines))}
	for i, txt := range lines {
		l.Lines[i] = Line{
			Text:    txt,
			Width:   xfont.MeasureString(face, txt),
			Ascent:  m.Ascent,
			Descent: m.Height - m.Ascent,
		}
	}
	s.layouts.Put(key, l)
	return l
}

// Face returns the face for f at ppem pixels. The face is owned by s.
func (s *Shaper) Face(f font.Font, ppem fixed.Int26_6) xfont.Face {
	key := faceKey{ppem: ppem, font: f}
	if face, ok := s.opened.Get(key); ok {
		return face
	}
	face, err := opentype.NewFace(s.lookup(f).SFNT, &opentype.FaceOptions{
		Size:    float64(ppem) / 64,
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
	if err != nil {
		// Sizes are always positive and fonts are already parsed.
		panic(err)
	}
	s.opened.Put(key, face)
	return face
}

func (s *Shaper) lookup(f font.Font) font.Face {
	face, ok := s.faces.Lookup(f)
	if !ok {
		panic("text: Shaper has no faces")
	}
	return face
}

// Size returns the dimensions of l in pixels.
func (l Layout) Size() f32.Size {
	var width fixed.Int26_6
	var h fixed.Int26_6
	for _, line := range l.Lines {
		h += line.Ascent + line.Descent
		if line.Width > width {
			width = line.Width
		}
	}
	return f32.Size{Width: float32(width.Ceil()), Height: float32(h.Ceil())}
}

func toFixed(v float32) fixed.Int26_6 {
	if v > math.MaxInt32/64 {
		return math.MaxInt32
	}
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
