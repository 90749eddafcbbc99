// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"strings"
	"testing"

	"github.com/latticeui/lattice/f32"
)

func TestAnchor(t *testing.T) {
	bounds := f32.Rect(10, 10, 100, 20)
	tests := []struct {
		h, v Alignment
		want f32.Point
	}{
		{Middle, Start, f32.Pt(60, 10)},
		{End, End, f32.Pt(110, 30)},
		{Start, Middle, f32.Pt(10, 20)},
		{Start, Start, f32.Pt(10, 10)},
	}
	for _, test := range tests {
		if got := Anchor(bounds, test.h, test.v); got != test.want {
			t.Errorf("Anchor(%v, %v, %v) = %v, want %v", bounds, test.h, test.v, got, test.want)
		}
	}
}

func TestAlign(t *testing.T) {
	if got := Middle.Align(100, 20); got != 40 {
		t.Errorf("middle: %v", got)
	}
	if got := End.Align(100, 20); got != 80 {
		t.Errorf("end: %v", got)
	}
	if got := Start.Align(100, 20); got != 0 {
		t.Errorf("start: %v", got)
	}
}

func TestLayoutCursor(t *testing.T) {
	leaf := NewNode(f32.Sz(10, 10))
	inner := WithChildren(f32.Sz(30, 30), Child{Offset: f32.Pt(5, 6), Node: leaf})
	root := WithChildren(f32.Sz(100, 100), Child{Offset: f32.Pt(20, 10), Node: inner})

	l := NewLayout(&root, f32.Pt(1, 1))
	if l.Len() != 1 {
		t.Fatalf("root children %d, want 1", l.Len())
	}
	got := l.Child(0).Child(0).Bounds()
	if want := f32.Rect(26, 17, 10, 10); got != want {
		t.Errorf("leaf bounds %v, want %v", got, want)
	}
}

func TestFprint(t *testing.T) {
	root := WithChildren(f32.Sz(20, 10), Child{Offset: f32.Pt(2, 3), Node: NewNode(f32.Sz(4, 5))})
	var b strings.Builder
	if err := Fprint(&b, root); err != nil {
		t.Fatal(err)
	}
	want := "(0,0) 20x10\n  (2,3) 4x5\n"
	if got := b.String(); got != want {
		t.Errorf("Fprint:\n%s\nwant:\n%s", got, want)
	}
}

func TestStack(t *testing.T) {
	leaf := func(w, h float32) func(Limits) Node {
		return func(l Limits) Node {
			return NewNode(l.Resolve(f32.Sz(w, h)))
		}
	}
	n := Stack{Horizontal: End, Vertical: Middle}.Layout(UpTo(f32.Sz(100, 100)),
		StackChild{Layout: leaf(40, 10)},
		StackChild{Layout: leaf(10, 30)},
		StackChild{Expand: true, Layout: leaf(0, 0)},
	)
	if got, want := n.Size(), f32.Sz(40, 30); got != want {
		t.Fatalf("size %v, want %v", got, want)
	}
	cs := n.Children()
	if got, want := cs[0].Offset, f32.Pt(0, 10); got != want {
		t.Errorf("first offset %v, want %v", got, want)
	}
	if got, want := cs[1].Offset, f32.Pt(30, 0); got != want {
		t.Errorf("second offset %v, want %v", got, want)
	}
	if got, want := cs[2].Node.Size(), f32.Sz(40, 30); got != want {
		t.Errorf("expanded size %v, want %v", got, want)
	}
}

func TestList(t *testing.T) {
	l := List{Axis: Vertical}
	var got Limits
	n := l.Layout(UpTo(f32.Sz(50, 100)), func(cs Limits) Node {
		got = cs
		return NewNode(f32.Sz(20, 500))
	})
	if !isInf(got.Max().Height) || got.Max().Width != 50 {
		t.Errorf("content limits %v, want unbounded height", got.Max())
	}
	if got, want := n.Size(), f32.Sz(20, 100); got != want {
		t.Errorf("size %v, want %v", got, want)
	}

	for _, test := range []struct {
		list List
		in   Position
		want Position
	}{
		{l, Position{Offset: -5}, Position{Offset: 0, BeforeEnd: true}},
		{l, Position{Offset: 50}, Position{Offset: 50, BeforeEnd: true}},
		{l, Position{Offset: 900}, Position{Offset: 400}},
		{List{Axis: Vertical, ScrollToEnd: true}, Position{}, Position{Offset: 400}},
		{List{Axis: Vertical, ScrollToEnd: true}, Position{Offset: 10, BeforeEnd: true}, Position{Offset: 10, BeforeEnd: true}},
	} {
		if got := test.list.Scroll(test.in, 100, 500); got != test.want {
			t.Errorf("Scroll(%+v) = %+v, want %+v", test.in, got, test.want)
		}
	}
	if got, want := (List{Axis: Horizontal}).Delta(Position{Offset: 7}), f32.Pt(-7, 0); got != want {
		t.Errorf("Delta = %v, want %v", got, want)
	}
}
