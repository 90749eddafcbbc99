// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"github.com/latticeui/lattice/f32"
)

// Flex lays out child elements along an axis,
// according to alignment and fill weights.
type Flex struct {
	// Axis is the main axis, either Horizontal or Vertical.
	Axis Axis
	// Spacing is the space between consecutive children.
	Spacing float32
	// Padding surrounds the children.
	Padding Padding
	// Alignment is the alignment in the cross axis.
	Alignment Alignment
}

// FlexChild is the descriptor for a Flex child.
type FlexChild struct {
	// Width and Height are the sizing policies of the child.
	Width, Height Length
	// Layout lays out the child under the given limits.
	Layout func(Limits) Node
}

// Layout a list of children. Children are positioned in the specified
// order, but children that do not fill the main axis are laid out
// before filling children, which then share the remaining space by
// weight. The returned node is resolved against limits.
func (f Flex) Layout(limits Limits, children ...FlexChild) Node {
	inner := limits.Pad(f.Padding)
	var spacing float32
	if n := len(children); n > 1 {
		spacing = f.Spacing * float32(n-1)
	}
	mainMax := axisMain(f.Axis, inner.Max())
	crossMax := axisCross(f.Axis, inner.Max())
	nodes := make([]Node, len(children))
	size := spacing
	var totalWeight int
	// Lay out rigid children.
	for i, child := range children {
		if w := f.fillFactor(child); w > 0 {
			totalWeight += int(w)
			continue
		}
		rem := max(mainMax-size, 0)
		cs := NewLimits(f32.Size{}, axisSize(f.Axis, rem, crossMax))
		nodes[i] = child.Layout(cs)
		size += axisMain(f.Axis, nodes[i].Size())
	}
	rigidSize := size
	// fraction is the rounding error from a fill weighting.
	var fraction float32
	// Lay out filling children.
	for i, child := range children {
		w := f.fillFactor(child)
		if w == 0 {
			continue
		}
		var cs Limits
		if isInf(mainMax) {
			cs = NewLimits(f32.Size{}, axisSize(f.Axis, Inf, crossMax))
		} else {
			var share float32
			if mainMax > rigidSize {
				childSize := (mainMax-rigidSize)*float32(w)/float32(totalWeight) + fraction
				share = float32(int(childSize + .5))
				fraction = childSize - share
				if rem := mainMax - size; share > rem {
					share = max(rem, 0)
				}
			}
			cs = NewLimits(axisSize(f.Axis, share, 0), axisSize(f.Axis, share, crossMax))
		}
		nodes[i] = child.Layout(cs)
		size += axisMain(f.Axis, nodes[i].Size())
	}
	var maxCross float32
	for _, n := range nodes {
		if c := axisCross(f.Axis, n.Size()); c > maxCross {
			maxCross = c
		}
	}
	intrinsic := axisSize(f.Axis, size, maxCross).Add(f.Padding.Size())
	resolved := limits.Resolve(intrinsic)
	crossSpace := max(axisCross(f.Axis, resolved.Sub(f.Padding.Size())), maxCross)
	positioned := make([]Child, len(nodes))
	var main float32
	for i, n := range nodes {
		cross := f.Alignment.Align(crossSpace, axisCross(f.Axis, n.Size()))
		off := axisPoint(f.Axis, main, cross).Add(f.Padding.Offset())
		positioned[i] = Child{Offset: off, Node: n}
		main += axisMain(f.Axis, n.Size()) + f.Spacing
	}
	return WithChildren(resolved, positioned...)
}

func (f Flex) fillFactor(c FlexChild) uint16 {
	if f.Axis == Horizontal {
		return c.Width.FillFactor()
	}
	return c.Height.FillFactor()
}
