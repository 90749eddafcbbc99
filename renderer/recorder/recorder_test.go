// SPDX-License-Identifier: Unlicense OR MIT

package recorder

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/font"
	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/renderer"
	"github.com/latticeui/lattice/text"
)

func TestMeasure(t *testing.T) {
	r := New()
	w, h := r.Measure("hello world", 20, font.Font{}, f32.Sz(layout.Inf, layout.Inf))
	if w != 110 || h != 20 {
		t.Errorf("got %vx%v, want 110x20", w, h)
	}
	w, h = r.Measure("hello world", 20, font.Font{}, f32.Sz(60, layout.Inf))
	if w != 50 || h != 40 {
		t.Errorf("wrapped: got %vx%v, want 50x40", w, h)
	}
	if r.Measurements != 2 {
		t.Errorf("counted %d measurements, want 2", r.Measurements)
	}
	r.Reset()
	if r.Measurements != 0 {
		t.Error("Reset kept the measurement count")
	}
}

func TestDefaultSize(t *testing.T) {
	r := New()
	if got := r.DefaultSize(); got != 20 {
		t.Errorf("default size %v, want 20", got)
	}
	r.Size = 12
	if got := r.DefaultSize(); got != 12 {
		t.Errorf("default size %v, want 12", got)
	}
}

func TestDump(t *testing.T) {
	r := New()
	red := color.NRGBA{R: 0xff, A: 0xff}
	r.FillQuad(renderer.Quad{Bounds: f32.Rect(0, 0, 10, 10)}, red)
	r.Clip(f32.Rect(0, 0, 5, 5), func() {
		r.FillText(text.Text{Content: "hi", Size: 20, Bounds: f32.Rect(1, 2, 3, 4)})
	})
	if n := len(r.Quads()); n != 1 {
		t.Errorf("%d quads, want 1", n)
	}
	if n := len(r.Texts()); n != 1 {
		t.Errorf("%d texts, want 1", n)
	}
	var buf bytes.Buffer
	if err := r.Dump(&buf); err != nil {
		t.Fatal(err)
	}
	want := "quad (0,0)-(10,10) {255 0 0 255}\n" +
		"clip (0,0)-(5,5)\n" +
		"  text \"hi\" 20sp at (1,2)\n" +
		"end\n"
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}
