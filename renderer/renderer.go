// SPDX-License-Identifier: Unlicense OR MIT

// Package renderer defines the primitive drawing capability a backend
// provides to widgets, and the ambient style passed to every draw.
package renderer

import (
	"image/color"

	"github.com/latticeui/lattice/f32"
)

// Renderer is the set of drawing primitives every backend implements.
// Text drawing and measurement are added by text.Renderer.
type Renderer interface {
	// FillQuad fills q with background.
	FillQuad(q Quad, background color.NRGBA)
	// Clip runs draw with every primitive clipped to bounds.
	Clip(bounds f32.Rectangle, draw func())
}

// Quad is a rectangle with optionally rounded corners and a border.
type Quad struct {
	Bounds       f32.Rectangle
	BorderRadius float32
	BorderWidth  float32
	BorderColor  color.NRGBA
}

// Style is the ambient style supplied to widgets when drawing. It is
// never consulted during layout.
type Style struct {
	// TextColor is the color of text that does not set its own.
	TextColor color.NRGBA
}

// DefaultStyle draws black text.
var DefaultStyle = Style{
	TextColor: color.NRGBA{A: 0xff},
}
