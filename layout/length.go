// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "fmt"

// Length is the sizing policy a widget declares for one axis.
// The zero Length is Shrink.
type Length struct {
	kind    lengthKind
	portion uint16
	v, hi   float32
}

type lengthKind uint8

const (
	lengthShrink lengthKind = iota
	lengthFill
	lengthUnits
	lengthFraction
	lengthBounded
)

var (
	// Shrink sizes a widget to its content.
	Shrink = Length{}
	// Fill takes all the space available.
	Fill = FillPortion(1)
)

// FillPortion takes all the space available when alone, and shares
// the remaining space of a Row or Column with other filling siblings
// in proportion to n.
func FillPortion(n uint16) Length {
	if n == 0 {
		n = 1
	}
	return Length{kind: lengthFill, portion: n}
}

// Units is a fixed size in dp. NaN is treated as zero.
func Units(v float32) Length {
	return Length{kind: lengthUnits, v: orZero(v)}
}

// Fraction is the fraction f of the maximum available space, with f
// in [0, 1]. NaN is treated as zero.
func Fraction(f float32) Length {
	return Length{kind: lengthFraction, v: min(orZero(f), 1)}
}

// Bounded sizes a widget to its content, but never smaller than lo or
// larger than hi. A NaN lo is zero and a NaN hi is unbounded.
func Bounded(lo, hi float32) Length {
	lo = orZero(lo)
	if hi != hi {
		hi = Inf
	}
	return Length{kind: lengthBounded, v: lo, hi: max(hi, lo)}
}

// orZero returns v, or zero when v is negative or NaN.
func orZero(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	return v
}

// FillFactor returns the weight of a filling Length, or zero for every
// other policy.
func (l Length) FillFactor() uint16 {
	if l.kind != lengthFill {
		return 0
	}
	return l.portion
}

// IsShrink reports whether l sizes to content.
func (l Length) IsShrink() bool {
	return l.kind == lengthShrink
}

// Hash writes l to h.
func (l Length) Hash(h *Hasher) {
	h.Uint64(uint64(l.kind))
	h.Uint64(uint64(l.portion))
	h.Float32(l.v)
	h.Float32(l.hi)
}

func (l Length) String() string {
	switch l.kind {
	case lengthShrink:
		return "Shrink"
	case lengthFill:
		if l.portion == 1 {
			return "Fill"
		}
		return fmt.Sprintf("FillPortion(%d)", l.portion)
	case lengthUnits:
		return fmt.Sprintf("Units(%g)", l.v)
	case lengthFraction:
		return fmt.Sprintf("Fraction(%g)", l.v)
	case lengthBounded:
		return fmt.Sprintf("Bounded(%g, %g)", l.v, l.hi)
	default:
		panic("unreachable")
	}
}
