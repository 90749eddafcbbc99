// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype parses OpenType and TrueType font files into faces
// usable by text.Shaper.
package opentype

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/latticeui/lattice/font"
)

// Parse parses a single font file. The typeface of the face is the
// family name of the font, and its style and weight are read from the
// subfamily name.
func Parse(src []byte) (font.Face, error) {
	f, err := opentype.Parse(src)
	if err != nil {
		return font.Face{}, fmt.Errorf("opentype: parsing font: %w", err)
	}
	return newFace(f), nil
}

// ParseCollection parses a font collection file. Single font files
// are supported and result in a collection of one face.
func ParseCollection(src []byte) (font.Collection, error) {
	c, err := opentype.ParseCollection(src)
	if err != nil {
		return nil, fmt.Errorf("opentype: parsing collection: %w", err)
	}
	out := make(font.Collection, c.NumFonts())
	for i := range out {
		f, err := c.Font(i)
		if err != nil {
			return nil, fmt.Errorf("opentype: reading font %d of collection: %w", i, err)
		}
		out[i] = newFace(f)
	}
	return out, nil
}

func newFace(f *sfnt.Font) font.Face {
	var buf sfnt.Buffer
	family, _ := f.Name(&buf, sfnt.NameIDFamily)
	sub, _ := f.Name(&buf, sfnt.NameIDSubfamily)
	style, weight := describe(sub)
	return font.Face{
		Font: font.Font{Typeface: font.Typeface(family), Style: style, Weight: weight},
		SFNT: f,
	}
}

// describe derives style and weight from a subfamily name such as
// "Bold Italic". Unknown weights are Normal.
func describe(subfamily string) (font.Style, font.Weight) {
	style := font.Regular
	var rest []string
	for _, w := range strings.Fields(subfamily) {
		if s, err := font.ParseStyle(w); err == nil && s == font.Italic {
			style = s
			continue
		}
		rest = append(rest, w)
	}
	weight, err := font.ParseWeight(strings.Join(rest, ""))
	if err != nil {
		weight = font.Normal
	}
	return style, weight
}
