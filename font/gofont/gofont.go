// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont exports the Go fonts as a font collection.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"

	"github.com/latticeui/lattice/font"
	"github.com/latticeui/lattice/font/opentype"
)

var faces = []struct {
	font font.Font
	ttf  []byte
}{
	{font.Font{}, goregular.TTF},
	{font.Font{Style: font.Italic}, goitalic.TTF},
	{font.Font{Weight: font.Bold}, gobold.TTF},
	{font.Font{Style: font.Italic, Weight: font.Bold}, gobolditalic.TTF},
	{font.Font{Weight: font.Medium}, gomedium.TTF},
	{font.Font{Weight: font.Medium, Style: font.Italic}, gomediumitalic.TTF},
	{font.Font{Variant: "Mono"}, gomono.TTF},
	{font.Font{Variant: "Mono", Weight: font.Bold}, gomonobold.TTF},
	{font.Font{Variant: "Mono", Weight: font.Bold, Style: font.Italic}, gomonobolditalic.TTF},
	{font.Font{Variant: "Mono", Style: font.Italic}, gomonoitalic.TTF},
	{font.Font{Variant: "Smallcaps"}, gosmallcaps.TTF},
	{font.Font{Variant: "Smallcaps", Style: font.Italic}, gosmallcapsitalic.TTF},
}

var (
	once       sync.Once
	collection font.Collection
)

// Regular returns a collection of only the Go regular font face.
func Regular() font.Collection {
	return Collection()[:1:1]
}

// Collection returns a collection of all available Go font faces, all
// of the "Go" typeface. Mono and Smallcaps faces are variants. The
// regular face is first.
func Collection() font.Collection {
	once.Do(func() {
		collection = make(font.Collection, len(faces))
		for i, f := range faces {
			face, err := opentype.Parse(f.ttf)
			if err != nil {
				panic(fmt.Errorf("gofont: %v", err))
			}
			face.Font = f.font
			face.Font.Typeface = "Go"
			collection[i] = face
		}
	})
	// Ensure that any outside appends will not reuse the backing store.
	return collection[:len(collection):len(collection)]
}
