// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Color is a color written as #rrggbb or #rrggbbaa. The zero Color is
// written as the empty string and means unset.
type Color struct {
	R, G, B, A uint8
}

func (c Color) MarshalText() ([]byte, error) {
	if c == (Color{}) {
		return nil, nil
	}
	if c.A == 0xff {
		return []byte(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), nil
	}
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		*c = Color{}
		return nil
	}
	digits, ok := strings.CutPrefix(s, "#")
	if !ok || (len(digits) != 6 && len(digits) != 8) {
		return fmt.Errorf("config: invalid color %q", s)
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return fmt.Errorf("config: invalid color %q: %w", s, err)
	}
	*c = Color{R: b[0], G: b[1], B: b[2], A: 0xff}
	if len(b) == 4 {
		c.A = b[3]
	}
	return nil
}

func (c Color) String() string {
	b, _ := c.MarshalText()
	return string(b)
}
