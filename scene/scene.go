// SPDX-License-Identifier: Unlicense OR MIT

// Package scene loads widget trees from YAML or JSON documents.
//
// A document describes the viewport, the pointer position and the
// root widget. Every widget is a map with a kind and the fields of the
// widget of that kind:
//
//	viewport: {width: 320, height: 200}
//	cursor: {x: 40, y: 30}
//	root:
//	  kind: column
//	  spacing: 8
//	  padding: 12
//	  children:
//	    - kind: label
//	      text: File
//	      mnemonic: F
//	    - kind: button
//	      id: ok
//	      padding: [4, 12]
//	      content: {kind: text, content: OK}
//
// Lengths are written as described by ParseLength, alignments as
// described by ParseAlignment and colors as #rrggbb or #rrggbbaa.
package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/latticeui/lattice/f32"
	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/state"
	"github.com/latticeui/lattice/widget"
)

// DefaultViewport is the viewport of documents that do not set one.
var DefaultViewport = f32.Sz(640, 480)

// Document is a loaded scene.
type Document struct {
	// Viewport is the size available to the root widget.
	Viewport f32.Size
	// Cursor is the pointer position.
	Cursor f32.Point
	Root   widget.Widget
}

type document struct {
	Viewport struct {
		Width  float32 `yaml:"width"`
		Height float32 `yaml:"height"`
	} `yaml:"viewport"`
	Cursor struct {
		X float32 `yaml:"x"`
		Y float32 `yaml:"y"`
	} `yaml:"cursor"`
	Root Node `yaml:"root"`
}

// Load reads the document at path. JSON documents are accepted as
// well, being valid YAML.
func Load(path string, d *Decoder) (*Document, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("scene: %s: unsupported extension %q", path, ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	doc, err := Parse(data, d)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	return doc, nil
}

// Parse parses a document. A nil Decoder decodes with a new state
// store and the default button style.
func Parse(data []byte, d *Decoder) (*Document, error) {
	var raw document
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw.Root == nil {
		return nil, fmt.Errorf("missing root widget")
	}
	if d == nil {
		d = &Decoder{ButtonStyle: widget.DefaultButtonStyle}
	}
	root, err := d.Decode(raw.Root)
	if err != nil {
		return nil, err
	}
	doc := &Document{
		Viewport: f32.Sz(raw.Viewport.Width, raw.Viewport.Height),
		Cursor:   f32.Pt(raw.Cursor.X, raw.Cursor.Y),
		Root:     root,
	}
	if doc.Viewport.Width <= 0 {
		doc.Viewport.Width = DefaultViewport.Width
	}
	if doc.Viewport.Height <= 0 {
		doc.Viewport.Height = DefaultViewport.Height
	}
	return doc, nil
}

// Limits returns the limits of the root widget.
func (d *Document) Limits() layout.Limits {
	return layout.UpTo(d.Viewport)
}

// NewDecoder returns a Decoder binding state to s.
func NewDecoder(s *state.Store, style widget.ButtonStyle) *Decoder {
	return &Decoder{Store: s, ButtonStyle: style}
}
