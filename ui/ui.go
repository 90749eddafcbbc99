// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"log/slog"
	"time"

	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/internal/logging"
	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/renderer"
	"github.com/latticeui/lattice/text"
	"github.com/latticeui/lattice/widget"
)

// Status describes how the layout of a frame was obtained.
type Status uint8

const (
	// Fresh means the tree was laid out.
	Fresh Status = iota
	// Reused means the layout of the previous frame was reused.
	Reused
)

// Cache is the layout of a previous frame. The zero value is empty.
type Cache struct {
	fingerprint uint64
	limits      layout.Limits
	node        layout.Node
	valid       bool
}

// Fingerprint returns the fingerprint of the cached tree and whether
// the cache holds a layout at all.
func (c Cache) Fingerprint() (uint64, bool) {
	return c.fingerprint, c.valid
}

// Observer is notified of the outcome of every Build.
type Observer interface {
	// LayoutCached is called when a cached layout is reused.
	LayoutCached(fingerprint uint64)
	// LayoutComputed is called after a layout pass that took d.
	LayoutComputed(fingerprint uint64, d time.Duration)
}

// Option configures Build.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	observers []Observer
}

// WithLogger logs the outcome of every frame at debug level to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithObserver reports the outcome of every frame to o, in addition
// to observers given by earlier options.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observers = append(opts.observers, o)
	}
}

// UserInterface is a widget tree and its layout for one frame.
type UserInterface struct {
	root        widget.Widget
	limits      layout.Limits
	node        layout.Node
	fingerprint uint64
	status      Status
}

// Build hashes root, then either reuses the layout held by cache or
// lays out root under limits.
func Build(root widget.Widget, cache Cache, r text.Renderer, limits layout.Limits, opts ...Option) *UserInterface {
	o := options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	u := &UserInterface{
		root:        root,
		limits:      limits,
		fingerprint: widget.Fingerprint(root),
	}
	if cache.valid && cache.fingerprint == u.fingerprint && cache.limits == limits {
		u.node = cache.node
		u.status = Reused
		o.logger.Debug("layout reused", "fingerprint", u.fingerprint)
		for _, obs := range o.observers {
			obs.LayoutCached(u.fingerprint)
		}
		return u
	}
	start := time.Now()
	u.node = root.Layout(r, limits)
	d := time.Since(start)
	u.status = Fresh
	o.logger.Debug("layout computed", "fingerprint", u.fingerprint, "size", u.node.Size(), "duration", d)
	for _, obs := range o.observers {
		obs.LayoutComputed(u.fingerprint, d)
	}
	return u
}

// Status reports whether the layout of u was reused.
func (u *UserInterface) Status() Status {
	return u.status
}

// Fingerprint returns the structural fingerprint of the tree.
func (u *UserInterface) Fingerprint() uint64 {
	return u.fingerprint
}

// Root returns the layout node of the root widget.
func (u *UserInterface) Root() layout.Node {
	return u.node
}

// Layout returns a cursor over the layout of u, at the origin.
func (u *UserInterface) Layout() layout.Layout {
	return layout.NewLayout(&u.node, f32.Point{})
}

// Draw draws the tree. The viewport is the largest size allowed by
// the limits passed to Build.
func (u *UserInterface) Draw(r text.Renderer, s renderer.Style, cursor f32.Point) {
	max := u.limits.Max()
	viewport := f32.Rectangle{Max: f32.Pt(max.Width, max.Height)}
	u.root.Draw(r, s, u.Layout(), cursor, viewport)
}

// Into returns the cache for the next frame.
func (u *UserInterface) Into() Cache {
	return Cache{
		fingerprint: u.fingerprint,
		limits:      u.limits,
		node:        u.node,
		valid:       true,
	}
}

func (s Status) String() string {
	switch s {
	case Fresh:
		return "Fresh"
	case Reused:
		return "Reused"
	default:
		panic("unreachable")
	}
}
