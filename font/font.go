// SPDX-License-Identifier: Unlicense OR MIT

/*
Package font describes fonts by their attributes and holds the parsed
faces text measurement chooses from.

The attributes of a Font change the measured size of text and are
therefore part of the fingerprint of every text bearing widget, see
Font.Hash.
*/
package font

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/sfnt"

	"github.com/latticeui/lattice/layout"
)

// Font specifies a particular typeface variant, style and weight.
// The zero Font is the regular default typeface.
type Font struct {
	Typeface Typeface
	Variant  Variant
	Style    Style
	// Weight is the text weight. If zero, Normal is used instead.
	Weight Weight
}

// Typeface identifies a particular typeface design. The empty
// string denotes the default typeface.
type Typeface string

// Variant denotes a typeface variant such as "Mono" or "Smallcaps".
type Variant string

// Style is the font style.
type Style uint8

// Weight is a font weight, in CSS units subtracted 400 so the zero value
// is normal text weight.
type Weight int

const (
	Regular Style = iota
	Italic
)

const (
	Thin       Weight = -300
	ExtraLight Weight = -200
	Light      Weight = -100
	Normal     Weight = 0
	Medium     Weight = 100
	SemiBold   Weight = 200
	Bold       Weight = 300
	ExtraBold  Weight = 400
	Black      Weight = 500
)

var weightNames = map[Weight]string{
	Thin:       "Thin",
	ExtraLight: "ExtraLight",
	Light:      "Light",
	Normal:     "Normal",
	Medium:     "Medium",
	SemiBold:   "SemiBold",
	Bold:       "Bold",
	ExtraBold:  "ExtraBold",
	Black:      "Black",
}

// Hash writes f to h.
func (f Font) Hash(h *layout.Hasher) {
	h.String(string(f.Typeface))
	h.String(string(f.Variant))
	h.Int(int(f.Style))
	h.Int(int(f.Weight))
}

// String formats f as its typeface followed by the attributes that
// differ from the default, such as "Go Mono Bold Italic".
func (f Font) String() string {
	parts := []string{string(f.Typeface)}
	if f.Typeface == "" {
		parts[0] = "Default"
	}
	if f.Variant != "" {
		parts = append(parts, string(f.Variant))
	}
	if f.Weight != Normal {
		parts = append(parts, f.Weight.String())
	}
	if f.Style != Regular {
		parts = append(parts, f.Style.String())
	}
	return strings.Join(parts, " ")
}

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		panic("unreachable")
	}
}

// ParseStyle parses a style name, ignoring case. The empty string is
// Regular; Oblique is an alias of Italic.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "", "regular", "normal":
		return Regular, nil
	case "italic", "oblique":
		return Italic, nil
	}
	return Regular, fmt.Errorf("font: invalid style %q", s)
}

func (w Weight) String() string {
	if n, ok := weightNames[w]; ok {
		return n
	}
	return fmt.Sprintf("Weight(%d)", int(w)+400)
}

// CSSWeight converts a CSS font weight such as 700 to a Weight. Zero
// means Normal.
func CSSWeight(v int) Weight {
	if v == 0 {
		return Normal
	}
	return Weight(v - 400)
}

// ParseWeight parses a weight name such as "SemiBold" or "semi bold".
// Regular and Book are aliases of Normal.
func ParseWeight(s string) (Weight, error) {
	key := strings.NewReplacer(" ", "", "-", "").Replace(strings.ToLower(s))
	switch key {
	case "", "regular", "book":
		return Normal, nil
	case "demibold":
		return SemiBold, nil
	case "heavy":
		return Black, nil
	}
	for w, n := range weightNames {
		if strings.ToLower(n) == key {
			return w, nil
		}
	}
	return Normal, fmt.Errorf("font: invalid weight %q", s)
}

// Face is a parsed font file together with the Font it provides.
type Face struct {
	Font Font
	SFNT *sfnt.Font
}

// Collection is a list of faces, searched in order.
type Collection []Face

// Lookup returns the face providing f. Without an exact match it
// falls back to the first face of the same typeface, then to the
// first face. It reports false only for an empty collection.
func (c Collection) Lookup(f Font) (Face, bool) {
	if len(c) == 0 {
		return Face{}, false
	}
	fallback := c[0]
	found := false
	for _, face := range c {
		if face.Font == f {
			return face, true
		}
		if !found && face.Font.Typeface == f.Typeface {
			fallback, found = face, true
		}
	}
	return fallback, true
}
