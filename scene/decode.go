// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"errors"
	"fmt"
	"image/color"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/latticeui/lattice/config"
	"github.com/latticeui/lattice/font"
	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/state"
	"github.com/latticeui/lattice/unit"
	"github.com/latticeui/lattice/widget"
)

// ErrUnknownKind is returned for widget descriptions of an unknown
// kind.
var ErrUnknownKind = errors.New("unknown widget kind")

// Node is the description of a widget: a map holding its kind and
// fields, as decoded from YAML or JSON.
type Node = map[string]any

type textNode struct {
	Content    string
	Size       unit.Sp
	Color      color.NRGBA
	Font       fontNode
	Width      layout.Length
	Height     layout.Length
	Horizontal layout.Alignment
	Vertical   layout.Alignment
}

type fontNode struct {
	Typeface string
	Variant  string
	Style    string
	// Weight is in CSS units. Zero means normal.
	Weight int
}

type labelNode struct {
	ID         string
	Text       string
	Mnemonic   string
	Size       unit.Sp
	Color      color.NRGBA
	Font       fontNode
	Width      layout.Length
	Height     layout.Length
	Horizontal layout.Alignment
	Vertical   layout.Alignment
	Hovered    bool
	Marked     string
}

type buttonNode struct {
	ID        string
	Content   Node
	Width     layout.Length
	Height    layout.Length
	MinWidth  float32 `mapstructure:"min_width"`
	MinHeight float32 `mapstructure:"min_height"`
	Padding   layout.Padding
	Pressed   bool
}

type flexNode struct {
	Children  []Node
	Spacing   float32
	Padding   layout.Padding
	Width     layout.Length
	Height    layout.Length
	MaxWidth  float32 `mapstructure:"max_width"`
	MaxHeight float32 `mapstructure:"max_height"`
	Alignment layout.Alignment
}

type spaceNode struct {
	Width  layout.Length
	Height layout.Length
}

type containerNode struct {
	Content    Node
	Width      layout.Length
	Height     layout.Length
	MaxWidth   float32 `mapstructure:"max_width"`
	MaxHeight  float32 `mapstructure:"max_height"`
	Padding    layout.Padding
	Horizontal layout.Alignment
	Vertical   layout.Alignment
	Background color.NRGBA
}

type stackNode struct {
	Children   []Node
	Width      layout.Length
	Height     layout.Length
	Horizontal layout.Alignment
	Vertical   layout.Alignment
}

type scrollableNode struct {
	ID      string
	Content Node
	// Axis is "vertical" or "horizontal". Empty means vertical.
	Axis        string
	Width       layout.Length
	Height      layout.Length
	ScrollToEnd bool `mapstructure:"scroll_to_end"`
	Alignment   layout.Alignment
	// Offset scrolls the content by that many units on first sight.
	Offset float32
}

type cachedNode struct {
	ID      string
	Content Node
}

// Decoder turns Nodes into widgets. Stateful widgets borrow their
// state from Store, keyed by their explicit id or else by their
// position in the tree.
type Decoder struct {
	Store *state.Store
	// ButtonStyle is the style given to buttons.
	ButtonStyle widget.ButtonStyle
}

// Decode returns the widget described by n.
func (d *Decoder) Decode(n Node) (widget.Widget, error) {
	if d.Store == nil {
		d.Store = state.NewStore()
	}
	return d.decode(n, "root")
}

func (d *Decoder) decode(n Node, path state.ID) (widget.Widget, error) {
	if n == nil {
		return nil, &PathError{Path: path, Err: errors.New("missing widget")}
	}
	fields := make(Node, len(n))
	for k, v := range n {
		fields[k] = v
	}
	kind, _ := fields["kind"].(string)
	delete(fields, "kind")
	w, err := d.decodeKind(kind, fields, path)
	if err != nil {
		var perr *PathError
		if errors.As(err, &perr) {
			return nil, err
		}
		return nil, &PathError{Path: path, Err: err}
	}
	return w, nil
}

// PathError records the widget that failed to decode.
type PathError struct {
	Path state.ID
	Err  error
}

func (e *PathError) Error() string {
	return string(e.Path) + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func (d *Decoder) decodeKind(kind string, fields Node, path state.ID) (widget.Widget, error) {
	switch kind {
	case "text":
		var n textNode
		if err := decodeFields(fields, &n); err != nil {
			return nil, err
		}
		f, err := n.Font.font()
		if err != nil {
			return nil, err
		}
		return widget.Text{
			Content: n.Content, Size: n.Size, Color: n.Color, Font: f,
			Width: n.Width, Height: n.Height,
			Horizontal: n.Horizontal, Vertical: n.Vertical,
		}, nil
	case "label":
		var n labelNode
		if err := decodeFields(fields, &n); err != nil {
			return nil, err
		}
		f, err := n.Font.font()
		if err != nil {
			return nil, err
		}
		mnemonic, err := singleRune(n.Mnemonic)
		if err != nil {
			return nil, fmt.Errorf("mnemonic: %w", err)
		}
		marked, err := singleRune(n.Marked)
		if err != nil {
			return nil, fmt.Errorf("marked: %w", err)
		}
		st := state.Get[widget.LabelState](d.Store, d.id(n.ID, path))
		st.Hovered = st.Hovered || n.Hovered
		if marked != 0 {
			st.Marked = marked
		}
		return widget.Label{
			State: st, Text: n.Text, Mnemonic: mnemonic,
			Size: n.Size, Color: n.Color, Font: f,
			Width: n.Width, Height: n.Height,
			Horizontal: n.Horizontal, Vertical: n.Vertical,
		}, nil
	case "button":
		var n buttonNode
		if err := decodeFields(fields, &n); err != nil {
			return nil, err
		}
		var content widget.Widget
		if n.Content != nil {
			c, err := d.decode(n.Content, path.Child("content"))
			if err != nil {
				return nil, err
			}
			content = c
		}
		st := state.Get[widget.ButtonState](d.Store, d.id(n.ID, path))
		st.Pressed = st.Pressed || n.Pressed
		return widget.Button{
			State: st, Content: content,
			Width: n.Width, Height: n.Height,
			MinWidth: n.MinWidth, MinHeight: n.MinHeight,
			Padding: n.Padding, Style: d.ButtonStyle,
		}, nil
	case "column", "row":
		var n flexNode
		if err := decodeFields(fields, &n); err != nil {
			return nil, err
		}
		children, err := d.decodeChildren(n.Children, path)
		if err != nil {
			return nil, err
		}
		if kind == "row" {
			return widget.Row{
				Children: children, Spacing: n.Spacing, Padding: n.Padding,
				Width: n.Width, Height: n.Height,
				MaxWidth: n.MaxWidth, MaxHeight: n.MaxHeight,
				Alignment: n.Alignment,
			}, nil
		}
		return widget.Column{
			Children: children, Spacing: n.Spacing, Padding: n.Padding,
			Width: n.Width, Height: n.Height,
			MaxWidth: n.MaxWidth, MaxHeight: n.MaxHeight,
			Alignment: n.Alignment,
		}, nil
	case "space":
		var n spaceNode
		if err := decodeFields(fields, &n); err != nil {
			return nil, err
		}
		return widget.Space{Width: n.Width, Height: n.Height}, nil
	case "container":
		var n containerNode
		if err := decodeFields(fields, &n); err != nil {
			return nil, err
		}
		var content widget.Widget
		if n.Content != nil {
			c, err := d.decode(n.Content, path.Child("content"))
			if err != nil {
				return nil, err
			}
			content = c
		}
		return widget.Container{
			Content: content, Width: n.Width, Height: n.Height,
			MaxWidth: n.MaxWidth, MaxHeight: n.MaxHeight, Padding: n.Padding,
			Horizontal: n.Horizontal, Vertical: n.Vertical,
			Background: n.Background,
		}, nil
	case "stack":
		var n stackNode
		if err := decodeFields(fields, &n); err != nil {
			return nil, err
		}
		children, err := d.decodeChildren(n.Children, path)
		if err != nil {
			return nil, err
		}
		return widget.Stack{
			Children: children, Width: n.Width, Height: n.Height,
			Horizontal: n.Horizontal, Vertical: n.Vertical,
		}, nil
	case "scrollable":
		var n scrollableNode
		if err := decodeFields(fields, &n); err != nil {
			return nil, err
		}
		var axis layout.Axis
		switch n.Axis {
		case "", "vertical":
			axis = layout.Vertical
		case "horizontal":
			axis = layout.Horizontal
		default:
			return nil, fmt.Errorf("invalid axis %q", n.Axis)
		}
		content, err := d.decode(n.Content, path.Child("content"))
		if err != nil {
			return nil, err
		}
		id := d.id(n.ID, path)
		_, seen := state.Lookup[widget.ScrollState](d.Store, id)
		st := state.Get[widget.ScrollState](d.Store, id)
		if !seen && n.Offset != 0 {
			st.ScrollBy(n.Offset)
		}
		return widget.Scrollable{
			State: st, Content: content, Axis: axis,
			Width: n.Width, Height: n.Height,
			ScrollToEnd: n.ScrollToEnd, Alignment: n.Alignment,
		}, nil
	case "cached":
		var n cachedNode
		if err := decodeFields(fields, &n); err != nil {
			return nil, err
		}
		content, err := d.decode(n.Content, path.Child("content"))
		if err != nil {
			return nil, err
		}
		return widget.Cached{
			State:   state.Get[widget.CacheState](d.Store, d.id(n.ID, path)),
			Content: content,
		}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
}

func (d *Decoder) decodeChildren(nodes []Node, path state.ID) ([]widget.Widget, error) {
	children := make([]widget.Widget, len(nodes))
	for i, c := range nodes {
		w, err := d.decode(c, path.Index(i))
		if err != nil {
			return nil, err
		}
		children[i] = w
	}
	return children, nil
}

func (d *Decoder) id(explicit string, path state.ID) state.ID {
	if explicit != "" {
		return state.ID(explicit)
	}
	return path
}

func decodeFields(fields Node, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			lengthHook, alignmentHook, colorHook, paddingHook,
		),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(fields)
}

var (
	lengthType    = reflect.TypeOf(layout.Length{})
	alignmentType = reflect.TypeOf(layout.Alignment(0))
	colorType     = reflect.TypeOf(color.NRGBA{})
	paddingType   = reflect.TypeOf(layout.Padding{})
)

func lengthHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != lengthType {
		return data, nil
	}
	return ParseLength(fmt.Sprint(data))
}

func alignmentHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != alignmentType || from.Kind() != reflect.String {
		return data, nil
	}
	return ParseAlignment(data.(string))
}

func colorHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != colorType || from.Kind() != reflect.String {
		return data, nil
	}
	var c config.Color
	if err := c.UnmarshalText([]byte(data.(string))); err != nil {
		return nil, err
	}
	return color.NRGBA(c), nil
}

// paddingHook accepts a single number for uniform padding, or a list
// of two (vertical, horizontal) or four (top, right, bottom, left)
// numbers.
func paddingHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != paddingType {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Int, reflect.Int64, reflect.Float32, reflect.Float64:
		v := reflect.ValueOf(data).Convert(reflect.TypeOf(float64(0))).Float()
		return layout.UniformPadding(float32(v)), nil
	case reflect.Slice:
		var vs []float32
		if err := mapstructure.WeakDecode(data, &vs); err != nil {
			return nil, err
		}
		switch len(vs) {
		case 2:
			return layout.Padding{Top: vs[0], Right: vs[1], Bottom: vs[0], Left: vs[1]}, nil
		case 4:
			return layout.Padding{Top: vs[0], Right: vs[1], Bottom: vs[2], Left: vs[3]}, nil
		}
		return nil, fmt.Errorf("padding needs 2 or 4 values, got %d", len(vs))
	}
	return data, nil
}

func (n fontNode) font() (font.Font, error) {
	style, err := font.ParseStyle(n.Style)
	if err != nil {
		return font.Font{}, err
	}
	return font.Font{
		Typeface: font.Typeface(n.Typeface),
		Variant:  font.Variant(n.Variant),
		Style:    style,
		Weight:   font.CSSWeight(n.Weight),
	}, nil
}

func singleRune(s string) (rune, error) {
	rs := []rune(s)
	switch len(rs) {
	case 0:
		return 0, nil
	case 1:
		return rs[0], nil
	}
	return 0, fmt.Errorf("want a single character, got %q", s)
}
