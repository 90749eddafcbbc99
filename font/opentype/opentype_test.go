// SPDX-License-Identifier: Unlicense OR MIT

package opentype

import (
	"testing"

	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/latticeui/lattice/font"
)

func TestParse(t *testing.T) {
	face, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if face.SFNT == nil {
		t.Fatal("nil font")
	}
	if got, want := face.Font, (font.Font{Typeface: "Go"}); got != want {
		t.Errorf("font %v, want %v", got, want)
	}
}

func TestParseSubfamily(t *testing.T) {
	face, err := Parse(gobolditalic.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := face.Font, (font.Font{Typeface: "Go", Style: font.Italic, Weight: font.Bold}); got != want {
		t.Errorf("font %v, want %v", got, want)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		in     string
		style  font.Style
		weight font.Weight
	}{
		{"Regular", font.Regular, font.Normal},
		{"Italic", font.Italic, font.Normal},
		{"Semi Bold Italic", font.Italic, font.SemiBold},
		{"Black", font.Regular, font.Black},
		{"Condensed", font.Regular, font.Normal},
	}
	for _, test := range tests {
		s, w := describe(test.in)
		if s != test.style || w != test.weight {
			t.Errorf("%q: got %v %v, want %v %v", test.in, s, w, test.style, test.weight)
		}
	}
}

func TestParseCollectionSingle(t *testing.T) {
	faces, err := ParseCollection(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if len(faces) != 1 {
		t.Fatalf("got %d faces, want 1", len(faces))
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("not a font")); err == nil {
		t.Error("expected error for invalid font data")
	}
}
