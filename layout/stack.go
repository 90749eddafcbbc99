// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "github.com/latticeui/lattice/f32"

// Stack lays out child elements on top of each other,
// according to an alignment direction.
type Stack struct {
	// Horizontal and Vertical align children smaller than
	// the stack.
	Horizontal, Vertical Alignment
}

// StackChild is the descriptor for a Stack child.
type StackChild struct {
	// Expand makes the child exactly as large as the largest
	// non-expanded child, or lays it out with loose limits when every
	// child is expanded.
	Expand bool
	// Layout lays out the child under the given limits.
	Layout func(Limits) Node
}

// Layout a list of children. Children not expanded are laid out
// first, with loose limits; expanded children are then laid out to
// the size of the largest of them. Children are drawn in order, the
// last on top.
func (s Stack) Layout(limits Limits, children ...StackChild) Node {
	loose := limits.Loose()
	nodes := make([]Node, len(children))
	var maxSZ f32.Size
	rigid := false
	for i, c := range children {
		if c.Expand {
			continue
		}
		rigid = true
		nodes[i] = c.Layout(loose)
		maxSZ = maxSZ.Max(nodes[i].Size())
	}
	expanded := loose
	if rigid {
		expanded = Exact(maxSZ.Min(loose.Max()))
	}
	for i, c := range children {
		if !c.Expand {
			continue
		}
		nodes[i] = c.Layout(expanded)
		maxSZ = maxSZ.Max(nodes[i].Size())
	}
	size := limits.Resolve(maxSZ)
	positioned := make([]Child, len(nodes))
	for i, n := range nodes {
		sz := n.Size()
		positioned[i] = Child{
			Offset: f32.Pt(
				s.Horizontal.Align(size.Width, sz.Width),
				s.Vertical.Align(size.Height, sz.Height),
			),
			Node: n,
		}
	}
	return WithChildren(size, positioned...)
}
