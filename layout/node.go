// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"io"
	"strings"

	"github.com/latticeui/lattice/f32"
)

// Node is the result of laying out a widget: its resolved size and
// the positioned nodes of its children, in child order.
type Node struct {
	size     f32.Size
	children []Child
}

// Child is a child node and its offset relative to its parent.
type Child struct {
	Offset f32.Point
	Node   Node
}

// NewNode returns a leaf node of the given size.
func NewNode(size f32.Size) Node {
	return Node{size: size}
}

// WithChildren returns a node of the given size containing children.
func WithChildren(size f32.Size, children ...Child) Node {
	return Node{size: size, children: children}
}

// Size returns the resolved size of n.
func (n Node) Size() f32.Size {
	return n.size
}

// Bounds returns the bounds of n relative to its own origin.
func (n Node) Bounds() f32.Rectangle {
	return f32.Rectangle{Max: f32.Point{X: n.size.Width, Y: n.size.Height}}
}

// Children returns the positioned children of n. The slice must not
// be modified.
func (n Node) Children() []Child {
	return n.children
}

// Layout is a read-only cursor over a Node tree, carrying the absolute
// position accumulated from the ancestors of the node.
type Layout struct {
	node     *Node
	position f32.Point
}

// NewLayout returns the layout of root positioned at origin.
func NewLayout(root *Node, origin f32.Point) Layout {
	return Layout{node: root, position: origin}
}

// Position returns the absolute position of the node.
func (l Layout) Position() f32.Point {
	return l.position
}

// Bounds returns the absolute bounds of the node.
func (l Layout) Bounds() f32.Rectangle {
	return l.node.Bounds().Add(l.position)
}

// Offset returns the cursor moved by d.
func (l Layout) Offset(d f32.Point) Layout {
	l.position = l.position.Add(d)
	return l
}

// Node returns the node under the cursor.
func (l Layout) Node() *Node {
	return l.node
}

// Len returns the number of children.
func (l Layout) Len() int {
	return len(l.node.children)
}

// Child returns the layout of the i'th child.
func (l Layout) Child(i int) Layout {
	c := &l.node.children[i]
	return Layout{node: &c.Node, position: l.position.Add(c.Offset)}
}

// Fprint writes an indented description of the tree rooted at n.
func Fprint(w io.Writer, n Node) error {
	return fprint(w, n, f32.Point{}, 0)
}

func fprint(w io.Writer, n Node, off f32.Point, depth int) error {
	if _, err := fmt.Fprintf(w, "%s%v %v\n", strings.Repeat("  ", depth), off, n.size); err != nil {
		return err
	}
	for _, c := range n.children {
		if err := fprint(w, c.Node, c.Offset, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (n Node) String() string {
	var b strings.Builder
	Fprint(&b, n)
	return b.String()
}
