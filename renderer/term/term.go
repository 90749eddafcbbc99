// SPDX-License-Identifier: Unlicense OR MIT

// Package term implements a renderer drawing into a grid of terminal
// cells. Each cell is one dp wide and one dp tall unless Cell is set,
// and every line of text is one cell tall whatever its size. Wide
// runes take two cells.
package term

import (
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/font"
	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/renderer"
	"github.com/latticeui/lattice/text"
	"github.com/latticeui/lattice/unit"
)

type cell struct {
	r      rune
	fg, bg color.NRGBA
	// wide marks the cell covered by the right half of a wide rune.
	wide bool
}

type rect struct {
	x0, y0, x1, y1 int
}

// Screen is a grid of cells.
type Screen struct {
	// Cell is the size of a cell in dp. The zero value means 1x1.
	Cell  f32.Size
	w, h  int
	cells []cell
	clips []rect
}

var _ text.Renderer = (*Screen)(nil)

// New returns a blank screen of w columns and h rows.
func New(w, h int) *Screen {
	s := &Screen{w: w, h: h, cells: make([]cell, w*h)}
	s.Clear()
	return s
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = cell{r: ' '}
	}
}

// Size returns the size of the screen in dp.
func (s *Screen) Size() f32.Size {
	c := s.cell()
	return f32.Sz(float32(s.w)*c.Width, float32(s.h)*c.Height)
}

// DefaultSize returns 1; text size is ignored by terminals.
func (s *Screen) DefaultSize() unit.Sp {
	return 1
}

func (s *Screen) Measure(content string, _ unit.Sp, _ font.Font, bounds f32.Size) (float32, float32) {
	c := s.cell()
	lines := s.wrap(content, bounds.Width)
	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	return float32(width) * c.Width, float32(len(lines)) * c.Height
}

func (s *Screen) FillText(t text.Text) {
	c := s.cell()
	lines := s.wrap(t.Content, t.WrapWidth())
	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	block := f32.Sz(float32(width)*c.Width, float32(len(lines))*c.Height)
	o := t.Origin(block)
	x0, y := s.col(o.X), s.row(o.Y)
	for _, l := range lines {
		x := x0 + int(t.Horizontal.Align(float32(width), float32(runewidth.StringWidth(l))))
		for _, r := range l {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			s.setRune(x, y, r, t.Color)
			if w == 2 {
				if cl := s.at(x+1, y); cl != nil {
					cl.r, cl.wide = 0, true
				}
			}
			x += w
		}
		y++
	}
}

func (s *Screen) FillQuad(q renderer.Quad, background color.NRGBA) {
	r := s.rect(q.Bounds)
	if background.A > 0 {
		for y := r.y0; y < r.y1; y++ {
			for x := r.x0; x < r.x1; x++ {
				if cl := s.at(x, y); cl != nil {
					cl.bg = background
				}
			}
		}
	}
	if q.BorderWidth <= 0 || r.x1-r.x0 < 2 || r.y1-r.y0 < 2 {
		return
	}
	corners := [4]rune{'┌', '┐', '└', '┘'}
	if q.BorderRadius > 0 {
		corners = [4]rune{'╭', '╮', '╰', '╯'}
	}
	x1, y1 := r.x1-1, r.y1-1
	for x := r.x0 + 1; x < x1; x++ {
		s.setRune(x, r.y0, '─', q.BorderColor)
		s.setRune(x, y1, '─', q.BorderColor)
	}
	for y := r.y0 + 1; y < y1; y++ {
		s.setRune(r.x0, y, '│', q.BorderColor)
		s.setRune(x1, y, '│', q.BorderColor)
	}
	s.setRune(r.x0, r.y0, corners[0], q.BorderColor)
	s.setRune(x1, r.y0, corners[1], q.BorderColor)
	s.setRune(r.x0, y1, corners[2], q.BorderColor)
	s.setRune(x1, y1, corners[3], q.BorderColor)
}

func (s *Screen) Clip(bounds f32.Rectangle, f func()) {
	s.clips = append(s.clips, s.rect(bounds))
	defer func() {
		s.clips = s.clips[:len(s.clips)-1]
	}()
	f()
}

// String returns the screen as plain text, one line per row, without
// trailing spaces.
func (s *Screen) String() string {
	var b strings.Builder
	for y := 0; y < s.h; y++ {
		var line strings.Builder
		for x := 0; x < s.w; x++ {
			if cl := s.cells[y*s.w+x]; !cl.wide {
				line.WriteRune(cl.r)
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Render writes the screen to w with colors in profile. Runs of cells
// of the same colors share one escape sequence.
func (s *Screen) Render(w io.Writer, p termenv.Profile) error {
	var b strings.Builder
	for y := 0; y < s.h; y++ {
		row := s.cells[y*s.w : (y+1)*s.w]
		for x := 0; x < len(row); {
			start := row[x]
			var run strings.Builder
			for ; x < len(row) && row[x].fg == start.fg && row[x].bg == start.bg; x++ {
				if !row[x].wide {
					run.WriteRune(row[x].r)
				}
			}
			style := p.String(run.String())
			if start.fg.A > 0 {
				style = style.Foreground(p.FromColor(start.fg))
			}
			if start.bg.A > 0 {
				style = style.Background(p.FromColor(start.bg))
			}
			b.WriteString(style.String())
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (s *Screen) setRune(x, y int, r rune, fg color.NRGBA) {
	if cl := s.at(x, y); cl != nil {
		cl.r, cl.fg, cl.wide = r, fg, false
	}
}

// at returns the cell at (x, y), or nil if it is outside the screen
// or the current clip.
func (s *Screen) at(x, y int) *cell {
	c := s.clip()
	if x < c.x0 || x >= c.x1 || y < c.y0 || y >= c.y1 {
		return nil
	}
	return &s.cells[y*s.w+x]
}

func (s *Screen) clip() rect {
	if n := len(s.clips); n > 0 {
		return s.clips[n-1]
	}
	return rect{x1: s.w, y1: s.h}
}

func (s *Screen) rect(b f32.Rectangle) rect {
	r := rect{x0: s.col(b.Min.X), y0: s.row(b.Min.Y), x1: s.col(b.Max.X), y1: s.row(b.Max.Y)}
	c := s.clip()
	r.x0, r.y0 = max(r.x0, c.x0), max(r.y0, c.y0)
	r.x1, r.y1 = min(r.x1, c.x1), min(r.y1, c.y1)
	return r
}

func (s *Screen) wrap(content string, width float32) []string {
	cols := width
	if width != layout.Inf {
		cols = width / s.cell().Width
	}
	return text.Wrap(content, cols, func(l string) float32 {
		return float32(runewidth.StringWidth(l))
	})
}

func (s *Screen) col(v float32) int {
	return toCell(v / s.cell().Width)
}

func (s *Screen) row(v float32) int {
	return toCell(v / s.cell().Height)
}

func (s *Screen) cell() f32.Size {
	c := s.Cell
	if c.Width <= 0 {
		c.Width = 1
	}
	if c.Height <= 0 {
		c.Height = 1
	}
	return c
}

func toCell(v float32) int {
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(math.Round(float64(v)))
}
