// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/renderer"
	"github.com/latticeui/lattice/text"
)

// Widget is a node of the user interface tree.
type Widget interface {
	// Sizing returns the width and height policies of the widget.
	// It is constant for a given widget.
	Sizing() (width, height layout.Length)
	// Layout resolves the widget under l. The size of the returned
	// node always lies within l.
	Layout(r text.Renderer, l layout.Limits) layout.Node
	// Draw draws the widget in l, the layout previously returned by
	// Layout. Cursor is the pointer position and viewport the visible
	// area, both in absolute coordinates.
	Draw(r text.Renderer, s renderer.Style, l layout.Layout, cursor f32.Point, viewport f32.Rectangle)
	// Hash writes the kind of the widget and every field affecting
	// its layout to h, followed by the hash of its children in order.
	Hash(h *layout.Hasher)
}

// Fingerprint returns the structural fingerprint of the tree rooted
// at w.
func Fingerprint(w Widget) uint64 {
	h := layout.NewHasher()
	w.Hash(h)
	return h.Sum64()
}

// Walk calls fn for w and every widget below it, parents first. Depth
// is zero for w. Widgets of this package are descended into whether
// held by value or by pointer; other widgets are descended into when
// they implement Parent.
func Walk(w Widget, fn func(w Widget, depth int)) {
	walk(w, 0, fn)
}

// Parent is implemented by widgets of other packages holding child
// widgets, to make them visible to Walk.
type Parent interface {
	Widget
	Children() []Widget
}

func walk(w Widget, depth int, fn func(Widget, int)) {
	if w == nil {
		return
	}
	fn(w, depth)
	for _, c := range children(w) {
		walk(c, depth+1, fn)
	}
}

func children(w Widget) []Widget {
	switch w := w.(type) {
	case Column:
		return w.Children
	case *Column:
		return w.Children
	case Row:
		return w.Children
	case *Row:
		return w.Children
	case Stack:
		return w.Children
	case *Stack:
		return w.Children
	case Button:
		return []Widget{w.Content}
	case *Button:
		return []Widget{w.Content}
	case Container:
		return []Widget{w.Content}
	case *Container:
		return []Widget{w.Content}
	case Cached:
		return []Widget{w.Content}
	case *Cached:
		return []Widget{w.Content}
	case Scrollable:
		return []Widget{w.Content}
	case *Scrollable:
		return []Widget{w.Content}
	case Parent:
		return w.Children()
	}
	return nil
}
