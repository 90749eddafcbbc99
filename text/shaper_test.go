// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"testing"

	"golang.org/x/image/math/fixed"

	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/font"
	"github.com/latticeui/lattice/font/gofont"
	"github.com/latticeui/lattice/layout"
)

func TestShaperEmptyString(t *testing.T) {
	s := NewShaper(gofont.Regular())
	l := s.Layout(font.Font{}, fixed.I(16), layout.Inf, "")
	if len(l.Lines) != 1 {
		t.Fatalf("got %d lines for empty string, want 1", len(l.Lines))
	}
	sz := l.Size()
	if sz.Width != 0 || sz.Height <= 0 {
		t.Errorf("empty string size %v, want zero width and a line of height", sz)
	}
}

func TestShaperWraps(t *testing.T) {
	s := NewShaper(gofont.Regular())
	str := "the quick brown fox jumps over the lazy dog"
	single := s.Layout(font.Font{}, fixed.I(16), layout.Inf, str)
	if len(single.Lines) != 1 {
		t.Fatalf("unbounded layout has %d lines, want 1", len(single.Lines))
	}
	width := single.Size().Width
	wrapped := s.Layout(font.Font{}, fixed.I(16), width/2, str)
	if len(wrapped.Lines) < 2 {
		t.Fatalf("wrapped layout has %d lines, want at least 2", len(wrapped.Lines))
	}
	if got := wrapped.Size().Width; got > width/2+1 {
		t.Errorf("wrapped width %v exceeds %v", got, width/2)
	}
}

func TestShaperCache(t *testing.T) {
	s := NewShaper(gofont.Regular())
	s.Layout(font.Font{}, fixed.I(12), 100, "cached")
	s.Layout(font.Font{}, fixed.I(12), 100, "cached")
	if n := s.layouts.Len(); n != 1 {
		t.Errorf("cache holds %d layouts, want 1", n)
	}
}

func TestShaperFallback(t *testing.T) {
	s := NewShaper(gofont.Collection())
	bold := s.Layout(font.Font{Typeface: "Go", Weight: font.Bold}, fixed.I(20), layout.Inf, "Wide")
	missing := s.Layout(font.Font{Typeface: "Missing"}, fixed.I(20), layout.Inf, "Wide")
	if bold.Size().Width <= 0 || missing.Size().Width <= 0 {
		t.Errorf("expected non-empty layouts, got %v and %v", bold.Size(), missing.Size())
	}
}

func TestWrap(t *testing.T) {
	measure := func(s string) float32 { return float32(len(s)) }
	tests := []struct {
		in    string
		width float32
		want  []string
	}{
		{"a b c", 10, []string{"a b c"}},
		{"aa bb cc", 5, []string{"aa bb", "cc"}},
		{"one\ntwo", 10, []string{"one", "two"}},
		{"enormous", 3, []string{"enormous"}},
	}
	for _, test := range tests {
		got := Wrap(test.in, test.width, measure)
		if len(got) != len(test.want) {
			t.Errorf("Wrap(%q, %v) = %q, want %q", test.in, test.width, got, test.want)
			continue
		}
		for i := range got {
			if got[i] != test.want[i] {
				t.Errorf("Wrap(%q, %v) = %q, want %q", test.in, test.width, got, test.want)
				break
			}
		}
	}
}

func TestTextOrigin(t *testing.T) {
	txt := Text{
		Bounds:     f32.Rect(60, 20, 100, 20),
		Horizontal: layout.Middle,
		Vertical:   layout.Middle,
	}
	if got, want := txt.Origin(f32.Sz(40, 10)), f32.Pt(40, 15); got != want {
		t.Errorf("origin %v, want %v", got, want)
	}
}
