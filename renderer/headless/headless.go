// SPDX-License-Identifier: Unlicense OR MIT

/*
Package headless implements a renderer drawing into an image in
memory. It needs no display and is suitable for tests, thumbnails and
server side rendering.

Quads are rasterized with anti-aliasing, including their rounded
corners and borders. Text is measured and drawn with the faces of a
text.Shaper.
*/
package headless

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/font"
	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/renderer"
	"github.com/latticeui/lattice/text"
	"github.com/latticeui/lattice/unit"
)

// DefaultTextSize is the text size of widgets that set none.
const DefaultTextSize unit.Sp = 16

// Renderer draws into an RGBA image. Coordinates passed to the
// renderer are in dp and scaled to pixels by its Metric.
type Renderer struct {
	img    *image.RGBA
	shaper *text.Shaper
	metric unit.Metric
	clips  []image.Rectangle
	// TextSize is the default text size. Zero means
	// DefaultTextSize.
	TextSize unit.Sp
}

var _ text.Renderer = (*Renderer)(nil)

// New returns a renderer for an image of size pixels. The image is
// initially transparent.
func New(size image.Point, shaper *text.Shaper, m unit.Metric) *Renderer {
	return &Renderer{
		img:    image.NewRGBA(image.Rectangle{Max: size}),
		shaper: shaper,
		metric: m,
	}
}

// Image returns the image drawn into.
func (r *Renderer) Image() *image.RGBA {
	return r.img
}

// Size returns the size of the image in dp.
func (r *Renderer) Size() f32.Size {
	b := r.img.Bounds()
	return f32.Sz(
		float32(r.metric.PxToDp(float32(b.Dx()))),
		float32(r.metric.PxToDp(float32(b.Dy()))),
	)
}

// Fill replaces the contents of the image with c.
func (r *Renderer) Fill(c color.NRGBA) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// EncodePNG writes the image in PNG format to w.
func (r *Renderer) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("headless: encode png: %w", err)
	}
	return nil
}

func (r *Renderer) DefaultSize() unit.Sp {
	if r.TextSize == 0 {
		return DefaultTextSize
	}
	return r.TextSize
}

func (r *Renderer) Measure(content string, size unit.Sp, f font.Font, bounds f32.Size) (float32, float32) {
	l := r.shaper.Layout(f, r.ppem(size), r.px(bounds.Width), content)
	sz := l.Size()
	return float32(r.metric.PxToDp(sz.Width)), float32(r.metric.PxToDp(sz.Height))
}

// wrapSlack absorbs the rounding of widths converted from pixels to dp
// and back, so text drawn in its measured bounds keeps its lines.
const wrapSlack = 1.0 / 64

func (r *Renderer) FillText(t text.Text) {
	clip := r.clip()
	if clip.Empty() {
		return
	}
	ppem := r.ppem(t.Size)
	l := r.shaper.Layout(t.Font, ppem, r.px(t.WrapWidth())+wrapSlack, t.Content)
	block := l.Size()
	// Text.Origin works in the coordinate space of its bounds, here
	// pixels.
	t.Bounds = r.rect(t.Bounds)
	origin := t.Origin(block)
	dst, ok := r.img.SubImage(clip).(*image.RGBA)
	if !ok {
		return
	}
	d := xfont.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(t.Color),
		Face: r.shaper.Face(t.Font, ppem),
	}
	y := fixed.Int26_6(origin.Y * 64)
	for _, line := range l.Lines {
		x := origin.X + t.Horizontal.Align(block.Width, fromFixed(line.Width))
		y += line.Ascent
		d.Dot = fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: y}
		d.DrawString(line.Text)
		y += line.Descent
	}
}

func (r *Renderer) FillQuad(q renderer.Quad, background color.NRGBA) {
	b := r.rect(q.Bounds)
	bounds := image.Rect(
		int(math.Floor(float64(b.Min.X))), int(math.Floor(float64(b.Min.Y))),
		int(math.Ceil(float64(b.Max.X))), int(math.Ceil(float64(b.Max.Y))),
	).Intersect(r.clip())
	if bounds.Empty() {
		return
	}
	radius := r.px(q.BorderRadius)
	width := r.px(q.BorderWidth)
	inner := inset(b, width)
	if background.A > 0 {
		r.fill(bounds, background, func(z *vector.Rasterizer, off f32.Point) {
			roundRect(z, inner.Sub(off), max(radius-width, 0), false)
		})
	}
	if width > 0 && q.BorderColor.A > 0 {
		r.fill(bounds, q.BorderColor, func(z *vector.Rasterizer, off f32.Point) {
			roundRect(z, b.Sub(off), radius, false)
			roundRect(z, inner.Sub(off), max(radius-width, 0), true)
		})
	}
}

func (r *Renderer) Clip(bounds f32.Rectangle, f func()) {
	b := r.rect(bounds)
	rect := image.Rect(
		int(math.Floor(float64(b.Min.X))), int(math.Floor(float64(b.Min.Y))),
		int(math.Ceil(float64(b.Max.X))), int(math.Ceil(float64(b.Max.Y))),
	).Intersect(r.clip())
	r.clips = append(r.clips, rect)
	defer func() {
		r.clips = r.clips[:len(r.clips)-1]
	}()
	f()
}

// fill paints c through the paths added by path, rasterized over
// bounds. Paths are offset so that bounds.Min is the rasterizer
// origin.
func (r *Renderer) fill(bounds image.Rectangle, c color.NRGBA, path func(z *vector.Rasterizer, off f32.Point)) {
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Over
	path(z, f32.Pt(float32(bounds.Min.X), float32(bounds.Min.Y)))
	src := image.NewUniform(c)
	z.Draw(r.img, bounds, src, image.Point{})
}

func (r *Renderer) clip() image.Rectangle {
	if n := len(r.clips); n > 0 {
		return r.clips[n-1]
	}
	return r.img.Bounds()
}

func (r *Renderer) px(v float32) float32 {
	if v == layout.Inf {
		return v
	}
	return r.metric.Dp(unit.Dp(v))
}

func (r *Renderer) rect(b f32.Rectangle) f32.Rectangle {
	return f32.Rectangle{
		Min: f32.Pt(r.px(b.Min.X), r.px(b.Min.Y)),
		Max: f32.Pt(r.px(b.Max.X), r.px(b.Max.Y)),
	}
}

func (r *Renderer) ppem(size unit.Sp) fixed.Int26_6 {
	return fixed.Int26_6(r.metric.Sp(size)*64 + .5)
}

func inset(b f32.Rectangle, d float32) f32.Rectangle {
	r := f32.Rectangle{
		Min: b.Min.Add(f32.Pt(d, d)),
		Max: b.Max.Sub(f32.Pt(d, d)),
	}
	if r.Empty() {
		return f32.Rectangle{Min: b.Center(), Max: b.Center()}
	}
	return r
}

// roundRect adds the outline of a rectangle with corners of the given
// radius to z. Reversed outlines subtract from the coverage of
// outlines in the normal direction.
func roundRect(z *vector.Rasterizer, b f32.Rectangle, radius float32, reverse bool) {
	if b.Empty() {
		return
	}
	radius = min(radius, b.Dx()/2, b.Dy()/2)
	x0, y0, x1, y1 := b.Min.X, b.Min.Y, b.Max.X, b.Max.Y
	// c is the distance of cubic control points approximating a
	// quarter circle.
	c := radius * (1 - 0.5522847)
	type segment struct {
		to           f32.Point
		ctrl0, ctrl1 f32.Point
		curve        bool
	}
	start := f32.Pt(x0+radius, y0)
	segs := []segment{
		{to: f32.Pt(x1-radius, y0)},
		{to: f32.Pt(x1, y0+radius), ctrl0: f32.Pt(x1-c, y0), ctrl1: f32.Pt(x1, y0+c), curve: true},
		{to: f32.Pt(x1, y1-radius)},
		{to: f32.Pt(x1-radius, y1), ctrl0: f32.Pt(x1, y1-c), ctrl1: f32.Pt(x1-c, y1), curve: true},
		{to: f32.Pt(x0+radius, y1)},
		{to: f32.Pt(x0, y1-radius), ctrl0: f32.Pt(x0+c, y1), ctrl1: f32.Pt(x0, y1-c), curve: true},
		{to: f32.Pt(x0, y0+radius)},
		{to: start, ctrl0: f32.Pt(x0, y0+c), ctrl1: f32.Pt(x0+c, y0), curve: true},
	}
	if !reverse {
		z.MoveTo(start.X, start.Y)
		for _, s := range segs {
			if s.curve {
				z.CubeTo(s.ctrl0.X, s.ctrl0.Y, s.ctrl1.X, s.ctrl1.Y, s.to.X, s.to.Y)
			} else {
				z.LineTo(s.to.X, s.to.Y)
			}
		}
		z.ClosePath()
		return
	}
	// Walk the segments backwards, swapping the control points of
	// curves.
	z.MoveTo(start.X, start.Y)
	for i := len(segs) - 1; i >= 0; i-- {
		s := segs[i]
		from := start
		if i > 0 {
			from = segs[i-1].to
		}
		if s.curve {
			z.CubeTo(s.ctrl1.X, s.ctrl1.Y, s.ctrl0.X, s.ctrl0.Y, from.X, from.Y)
		} else {
			z.LineTo(from.X, from.Y)
		}
	}
	z.ClosePath()
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
