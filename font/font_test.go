// SPDX-License-Identifier: Unlicense OR MIT

package font

import (
	"testing"

	"github.com/latticeui/lattice/layout"
)

func TestHash(t *testing.T) {
	sum := func(f Font) uint64 {
		h := layout.NewHasher()
		f.Hash(h)
		return h.Sum64()
	}
	base := Font{Typeface: "Go"}
	if sum(base) != sum(base) {
		t.Fatal("hash is not deterministic")
	}
	for _, f := range []Font{
		{Typeface: "Noto"},
		{Typeface: "Go", Variant: "Mono"},
		{Typeface: "Go", Style: Italic},
		{Typeface: "Go", Weight: Bold},
	} {
		if sum(f) == sum(base) {
			t.Errorf("%v hashes like %v", f, base)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		f    Font
		want string
	}{
		{Font{}, "Default"},
		{Font{Typeface: "Go", Variant: "Mono", Weight: Bold, Style: Italic}, "Go Mono Bold Italic"},
		{Font{Typeface: "Go", Weight: CSSWeight(650)}, "Go Weight(650)"},
	}
	for _, test := range tests {
		if got := test.f.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}

func TestParseWeight(t *testing.T) {
	tests := map[string]Weight{
		"":          Normal,
		"Regular":   Normal,
		"semi bold": SemiBold,
		"ExtraBold": ExtraBold,
		"Demi-Bold": SemiBold,
		"thin":      Thin,
	}
	for in, want := range tests {
		got, err := ParseWeight(in)
		if err != nil || got != want {
			t.Errorf("ParseWeight(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseWeight("chunky"); err == nil {
		t.Error("expected an error for an unknown weight")
	}
	if got := CSSWeight(700); got != Bold {
		t.Errorf("CSSWeight(700) = %v, want Bold", got)
	}
	if got := CSSWeight(0); got != Normal {
		t.Errorf("CSSWeight(0) = %v, want Normal", got)
	}
}

func TestParseStyle(t *testing.T) {
	if s, err := ParseStyle("Oblique"); err != nil || s != Italic {
		t.Errorf("Oblique parsed as %v, %v", s, err)
	}
	if s, err := ParseStyle(""); err != nil || s != Regular {
		t.Errorf("empty style parsed as %v, %v", s, err)
	}
	if _, err := ParseStyle("slanted"); err == nil {
		t.Error("expected an error for an unknown style")
	}
}

func TestLookup(t *testing.T) {
	c := Collection{
		{Font: Font{Typeface: "Go"}},
		{Font: Font{Typeface: "Go", Weight: Bold}},
		{Font: Font{Typeface: "Noto"}},
	}
	tests := []struct {
		f    Font
		want Font
	}{
		{Font{Typeface: "Go", Weight: Bold}, Font{Typeface: "Go", Weight: Bold}},
		{Font{Typeface: "Noto", Style: Italic}, Font{Typeface: "Noto"}},
		{Font{Typeface: "Missing"}, Font{Typeface: "Go"}},
	}
	for _, test := range tests {
		face, ok := c.Lookup(test.f)
		if !ok || face.Font != test.want {
			t.Errorf("Lookup(%v) = %v, want %v", test.f, face.Font, test.want)
		}
	}
	if _, ok := Collection(nil).Lookup(Font{}); ok {
		t.Error("empty collection found a face")
	}
}
