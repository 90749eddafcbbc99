// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/latticeui/lattice/layout"
)

// ParseLength parses a sizing policy:
//
//	shrink    layout.Shrink, also the empty string
//	fill      layout.Fill
//	fill:3    layout.FillPortion(3)
//	120       layout.Units(120)
//	50%       layout.Fraction(0.5)
//	10..200   layout.Bounded(10, 200)
func ParseLength(s string) (layout.Length, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "" || s == "shrink":
		return layout.Shrink, nil
	case s == "fill":
		return layout.Fill, nil
	case strings.HasPrefix(s, "fill:"):
		n, err := strconv.ParseUint(s[len("fill:"):], 10, 16)
		if err != nil || n == 0 {
			return layout.Length{}, fmt.Errorf("invalid fill portion %q", s)
		}
		return layout.FillPortion(uint16(n)), nil
	case strings.HasSuffix(s, "%"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 32)
		if err != nil || !(v >= 0 && v <= 100) {
			return layout.Length{}, fmt.Errorf("invalid fraction %q", s)
		}
		return layout.Fraction(float32(v / 100)), nil
	case strings.Contains(s, ".."):
		lo, hi, _ := strings.Cut(s, "..")
		l, err1 := strconv.ParseFloat(lo, 32)
		h, err2 := strconv.ParseFloat(hi, 32)
		if err1 != nil || err2 != nil || !(l >= 0 && h >= l) || math.IsInf(l, 0) || math.IsNaN(h) {
			return layout.Length{}, fmt.Errorf("invalid bounds %q", s)
		}
		return layout.Bounded(float32(l), float32(h)), nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil || !(v >= 0) || math.IsInf(v, 0) {
		return layout.Length{}, fmt.Errorf("invalid length %q", s)
	}
	return layout.Units(float32(v)), nil
}

// ParseAlignment parses start, middle or end. Left and top are
// aliases of start, center of middle, right and bottom of end.
func ParseAlignment(s string) (layout.Alignment, error) {
	switch strings.ToLower(s) {
	case "", "start", "left", "top":
		return layout.Start, nil
	case "middle", "center":
		return layout.Middle, nil
	case "end", "right", "bottom":
		return layout.End, nil
	default:
		return 0, fmt.Errorf("invalid alignment %q", s)
	}
}
