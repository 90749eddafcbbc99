// SPDX-License-Identifier: Unlicense OR MIT

/*
Package ui runs the frames of a user interface.

A frame starts from a widget tree rebuilt from application state. Build
computes the fingerprint of the tree and compares it, together with
the limits, to the Cache left by the previous frame. When both match
the cached layout is reused, otherwise the tree is laid out again.
Drawing always happens.

	var cache ui.Cache
	for frame := range frames {
		root := view(model)
		u := ui.Build(root, cache, r, layout.UpTo(windowSize))
		u.Draw(r, style, cursor)
		cache = u.Into()
	}

A Cache is a plain value and may be dropped at any time; an empty
Cache always leads to a fresh layout.
*/
package ui
