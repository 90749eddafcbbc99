// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"

	"github.com/latticeui/lattice/f32"
)

// Inf is the unbounded maximum of a Limits dimension.
var Inf = float32(math.Inf(1))

// Limits represent the acceptable range of sizes a parent
// hands to a child during layout. Limits are immutable; every
// narrowing method returns new Limits.
type Limits struct {
	min, max f32.Size
}

// NewLimits returns the limits between min and max. Negative and NaN
// minimums are raised to zero, NaN maximums are unbounded and max is
// raised to min where it would be smaller.
func NewLimits(min, max f32.Size) Limits {
	min = f32.Sz(orZero(min.Width), orZero(min.Height))
	max = f32.Sz(orInf(max.Width), orInf(max.Height)).Max(min)
	return Limits{min: min, max: max}
}

func orInf(v float32) float32 {
	if v != v {
		return Inf
	}
	return v
}

// Exact returns the limits that can only be satisfied by size.
func Exact(size f32.Size) Limits {
	return NewLimits(size, size)
}

// UpTo returns the limits from zero to max.
func UpTo(max f32.Size) Limits {
	return NewLimits(f32.Size{}, max)
}

// Width narrows the horizontal range according to the policy l.
func (c Limits) Width(l Length) Limits {
	c.min.Width, c.max.Width = narrow(c.min.Width, c.max.Width, l)
	return c
}

// Height narrows the vertical range according to the policy l.
func (c Limits) Height(l Length) Limits {
	c.min.Height, c.max.Height = narrow(c.min.Height, c.max.Height, l)
	return c
}

func narrow(lo, hi float32, l Length) (float32, float32) {
	switch l.kind {
	case lengthFill:
		if !isInf(hi) {
			lo = hi
		}
	case lengthUnits:
		v := clamp(l.v, lo, hi)
		lo, hi = v, v
	case lengthFraction:
		if !isInf(hi) {
			v := clamp(hi*l.v, lo, hi)
			lo, hi = v, v
		}
	case lengthBounded:
		lo = clamp(max(lo, l.v), lo, hi)
		hi = max(min(hi, l.hi), lo)
	}
	return lo, hi
}

// MinWidth raises the minimum width to at least w, never above the
// maximum width.
func (c Limits) MinWidth(w float32) Limits {
	c.min.Width = min(max(c.min.Width, w), c.max.Width)
	return c
}

// MaxWidth lowers the maximum width to at most w, never below the
// minimum width.
func (c Limits) MaxWidth(w float32) Limits {
	c.max.Width = max(min(c.max.Width, w), c.min.Width)
	return c
}

// MinHeight raises the minimum height to at least h, never above
// the maximum height.
func (c Limits) MinHeight(h float32) Limits {
	c.min.Height = min(max(c.min.Height, h), c.max.Height)
	return c
}

// MaxHeight lowers the maximum height to at most h, never below the
// minimum height.
func (c Limits) MaxHeight(h float32) Limits {
	c.max.Height = max(min(c.max.Height, h), c.min.Height)
	return c
}

// Pad shrinks both bounds by the space taken by p.
func (c Limits) Pad(p Padding) Limits {
	ps := p.Size()
	return NewLimits(c.min.Sub(ps), c.max.Sub(ps))
}

// Loose returns c with a zero minimum.
func (c Limits) Loose() Limits {
	c.min = f32.Size{}
	return c
}

// Min returns the smallest size satisfying c.
func (c Limits) Min() f32.Size {
	return c.min
}

// Max returns the largest size satisfying c. Text and other
// intrinsically sized content is measured against Max.
func (c Limits) Max() f32.Size {
	return c.max
}

// Resolve clamps a desired size into the range of c.
func (c Limits) Resolve(size f32.Size) f32.Size {
	return f32.Size{
		Width:  clamp(size.Width, c.min.Width, c.max.Width),
		Height: clamp(size.Height, c.min.Height, c.max.Height),
	}
}

// Contains reports whether size lies within c.
func (c Limits) Contains(size f32.Size) bool {
	return c.min.Width <= size.Width && size.Width <= c.max.Width &&
		c.min.Height <= size.Height && size.Height <= c.max.Height
}

// Hash writes c to h.
func (c Limits) Hash(h *Hasher) {
	h.Float32(c.min.Width)
	h.Float32(c.min.Height)
	h.Float32(c.max.Width)
	h.Float32(c.max.Height)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo || v != v {
		return lo
	} else if v > hi {
		return hi
	}
	return v
}

func isInf(v float32) bool {
	return math.IsInf(float64(v), 1)
}
