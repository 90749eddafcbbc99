// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/font"
	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/state"
	"github.com/latticeui/lattice/widget"
)

const sample = `
viewport: {width: 320, height: 200}
cursor: {x: 40, y: 30}
root:
  kind: column
  spacing: 8
  padding: 12
  alignment: center
  children:
    - kind: label
      text: File
      mnemonic: F
      marked: f
    - kind: button
      id: ok
      padding: [4, 12]
      min_width: 80
      pressed: true
      content: {kind: text, content: OK, color: "#ff0000", width: fill}
    - kind: row
      children:
        - {kind: space, width: "fill:2"}
        - kind: container
          width: 50%
          height: 10..40
          horizontal: right
          background: "#00ff00"
          content: {kind: text, content: x, font: {style: italic, weight: 700}}
    - kind: cached
      content: {kind: text, content: cached, size: 14}
`

func TestParse(t *testing.T) {
	s := state.NewStore()
	doc, err := Parse([]byte(sample), NewDecoder(s, widget.DefaultButtonStyle))
	require.NoError(t, err)

	assert.Equal(t, f32.Sz(320, 200), doc.Viewport)
	assert.Equal(t, f32.Pt(40, 30), doc.Cursor)

	col, ok := doc.Root.(widget.Column)
	require.True(t, ok, "root is %T", doc.Root)
	assert.Equal(t, float32(8), col.Spacing)
	assert.Equal(t, layout.UniformPadding(12), col.Padding)
	assert.Equal(t, layout.Middle, col.Alignment)
	require.Len(t, col.Children, 4)

	label := col.Children[0].(widget.Label)
	assert.Equal(t, 'F', label.Mnemonic)
	require.NotNil(t, label.State)
	assert.Equal(t, 'f', label.State.Marked)

	btn := col.Children[1].(widget.Button)
	assert.Equal(t, layout.Padding{Top: 4, Right: 12, Bottom: 4, Left: 12}, btn.Padding)
	assert.Equal(t, float32(80), btn.MinWidth)
	assert.True(t, btn.State.Pressed)
	assert.Same(t, btn.State, state.Get[widget.ButtonState](s, "ok"))
	txt := btn.Content.(widget.Text)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, txt.Color)
	assert.Equal(t, layout.Fill, txt.Width)

	row := col.Children[2].(widget.Row)
	assert.Equal(t, layout.FillPortion(2), row.Children[0].(widget.Space).Width)
	c := row.Children[1].(widget.Container)
	assert.Equal(t, layout.Fraction(.5), c.Width)
	assert.Equal(t, layout.Bounded(10, 40), c.Height)
	assert.Equal(t, layout.End, c.Horizontal)
	assert.Equal(t, color.NRGBA{G: 0xff, A: 0xff}, c.Background)
	f := c.Content.(widget.Text).Font
	assert.Equal(t, font.Italic, f.Style)
	assert.Equal(t, font.Bold, f.Weight)

	cached := col.Children[3].(widget.Cached)
	assert.Same(t, cached.State, state.Get[widget.CacheState](s, "root/3"))
	assert.Equal(t, 3, s.Len())
}

func TestParseKeepsState(t *testing.T) {
	s := state.NewStore()
	d := NewDecoder(s, widget.DefaultButtonStyle)
	first, err := Parse([]byte(sample), d)
	require.NoError(t, err)
	second, err := Parse([]byte(sample), d)
	require.NoError(t, err)
	a := first.Root.(widget.Column).Children[3].(widget.Cached).State
	b := second.Root.(widget.Column).Children[3].(widget.Cached).State
	assert.Same(t, a, b)
	assert.Equal(t, widget.Fingerprint(first.Root), widget.Fingerprint(second.Root))
}

const scrollSample = `
root:
  kind: stack
  horizontal: center
  children:
    - {kind: container, width: fill, height: fill, background: "#202020"}
    - kind: scrollable
      id: log
      height: 40
      offset: 15
      scroll_to_end: true
      content:
        kind: column
        children:
          - {kind: text, content: one}
          - {kind: text, content: two}
`

func TestParseStackScrollable(t *testing.T) {
	s := state.NewStore()
	d := NewDecoder(s, widget.DefaultButtonStyle)
	doc, err := Parse([]byte(scrollSample), d)
	require.NoError(t, err)

	stack, ok := doc.Root.(widget.Stack)
	require.True(t, ok, "root is %T", doc.Root)
	assert.Equal(t, layout.Middle, stack.Horizontal)
	require.Len(t, stack.Children, 2)

	sc := stack.Children[1].(widget.Scrollable)
	assert.Equal(t, layout.Vertical, sc.Axis)
	assert.True(t, sc.ScrollToEnd)
	assert.Equal(t, layout.Units(40), sc.Height)
	assert.Same(t, sc.State, state.Get[widget.ScrollState](s, "log"))
	assert.Equal(t, float32(15), sc.State.Position.Offset)
	assert.Len(t, sc.Content.(widget.Column).Children, 2)

	// The initial offset applies once; later scrolling is kept.
	sc.State.ScrollBy(5)
	doc, err = Parse([]byte(scrollSample), d)
	require.NoError(t, err)
	again := doc.Root.(widget.Stack).Children[1].(widget.Scrollable)
	assert.Equal(t, float32(20), again.State.Position.Offset)

	_, err = Parse([]byte("root: {kind: scrollable, axis: diagonal, content: {kind: space}}"), nil)
	assert.ErrorContains(t, err, "invalid axis")
}

func TestParseDefaults(t *testing.T) {
	doc, err := Parse([]byte("root: {kind: text, content: hi}"), nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultViewport, doc.Viewport)
	assert.Equal(t, layout.UpTo(DefaultViewport), doc.Limits())
}

func TestParseErrors(t *testing.T) {
	for name, test := range map[string]struct {
		doc  string
		want string
	}{
		"no root":       {"viewport: {width: 1}", "missing root"},
		"unknown field": {"root: {kind: text, contents: hi}", "contents"},
		"bad length":    {"root: {kind: space, width: wide}", "invalid length"},
		"bad color":     {"root: {kind: text, color: red}", "invalid color"},
		"bad padding":   {"root: {kind: button, padding: [1, 2, 3]}", "padding"},
		"bad mnemonic":  {"root: {kind: label, mnemonic: ab}", "mnemonic"},
		"nested path":   {"root: {kind: column, children: [{kind: space}, {kind: nope}]}", "root/1"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(test.doc), nil)
			assert.ErrorContains(t, err, test.want)
		})
	}
	_, err := Parse([]byte("root: {kind: column, children: [{kind: slider}]}"), nil)
	assert.ErrorIs(t, err, ErrUnknownKind)
	var perr *PathError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, state.ID("root/0"), perr.Path)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"root": {"kind": "text", "content": "json"}}`), 0o644))
	doc, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "json", doc.Root.(widget.Text).Content)

	_, err = Load(filepath.Join(dir, "scene.txt"), nil)
	assert.ErrorContains(t, err, "unsupported extension")
	_, err = Load(filepath.Join(dir, "missing.yaml"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseLength(t *testing.T) {
	for in, want := range map[string]layout.Length{
		"":        layout.Shrink,
		"shrink":  layout.Shrink,
		"Fill":    layout.Fill,
		"fill:3":  layout.FillPortion(3),
		"120":     layout.Units(120),
		"25%":     layout.Fraction(.25),
		"10..200": layout.Bounded(10, 200),
		"10..inf": layout.Bounded(10, layout.Inf),
	} {
		got, err := ParseLength(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"fill:0", "fill:x", "150%", "-3", "20..10", "big", "nan", "inf", "nan%", "10..nan", "nan..5", "inf..inf"} {
		_, err := ParseLength(in)
		assert.Error(t, err, in)
	}
}
