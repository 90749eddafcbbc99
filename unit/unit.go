// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device. Layout limits and node sizes are
expressed in dp.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

Finally, pixels, or px, is the unit for display dependent pixels. Only
backends convert to pixels, through a Metric.
*/
package unit

import "fmt"

// Dp represents device independent pixels. 1 dp will
// have the same apparent size across platforms and
// display resolutions.
type Dp float32

// Sp is like Dp but for font sizes.
type Sp float32

// Metric converts Dp and Sp values to pixels. The zero value
// maps one dp and one sp to one pixel.
type Metric struct {
	// PxPerDp is the device pixels per dp.
	PxPerDp float32
	// PxPerSp is the device pixels per sp.
	PxPerSp float32
}

// Dp converts v to pixels.
func (c Metric) Dp(v Dp) float32 {
	return float32(v) * nonZero(c.PxPerDp)
}

// Sp converts v to pixels.
func (c Metric) Sp(v Sp) float32 {
	return float32(v) * nonZero(c.PxPerSp)
}

// DpToSp converts v dp to sp.
func (c Metric) DpToSp(v Dp) Sp {
	return Sp(float32(v) * nonZero(c.PxPerDp) / nonZero(c.PxPerSp))
}

// SpToDp converts v sp to dp.
func (c Metric) SpToDp(v Sp) Dp {
	return Dp(float32(v) * nonZero(c.PxPerSp) / nonZero(c.PxPerDp))
}

// PxToSp converts v pixels to sp.
func (c Metric) PxToSp(v float32) Sp {
	return Sp(v / nonZero(c.PxPerSp))
}

// PxToDp converts v pixels to dp.
func (c Metric) PxToDp(v float32) Dp {
	return Dp(v / nonZero(c.PxPerDp))
}

func (v Dp) String() string {
	return fmt.Sprintf("%gdp", float32(v))
}

func (v Sp) String() string {
	return fmt.Sprintf("%gsp", float32(v))
}

func nonZero(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}
