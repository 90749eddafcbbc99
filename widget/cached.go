// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/renderer"
	"github.com/latticeui/lattice/text"
)

// CacheState is the persistent state of a Cached boundary: the
// fingerprint and limits of the last layout and its result.
type CacheState struct {
	fingerprint uint64
	limits      layout.Limits
	node        layout.Node
	valid       bool

	// Hits and Misses count reused and computed layouts.
	Hits, Misses int
}

// Invalidate forces the next layout to be computed.
func (c *CacheState) Invalidate() {
	c.valid = false
}

// Cached is a layout cache boundary. It reuses the layout of its
// content while the fingerprint of the content and the limits are
// unchanged from the previous layout. A nil State disables caching.
type Cached struct {
	State   *CacheState
	Content Widget
}

func (c Cached) Sizing() (layout.Length, layout.Length) {
	return c.Content.Sizing()
}

func (c Cached) Layout(r text.Renderer, l layout.Limits) layout.Node {
	if c.State == nil {
		return c.Content.Layout(r, l)
	}
	fp := Fingerprint(c.Content)
	st := c.State
	if st.valid && st.fingerprint == fp && st.limits == l {
		st.Hits++
		return st.node
	}
	st.Misses++
	st.node = c.Content.Layout(r, l)
	st.fingerprint = fp
	st.limits = l
	st.valid = true
	return st.node
}

func (c Cached) Draw(r text.Renderer, s renderer.Style, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) {
	c.Content.Draw(r, s, l, cursor, viewport)
}

func (c Cached) Hash(h *layout.Hasher) {
	h.Kind("widget.Cached")
	c.Content.Hash(h)
}
