// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"math"

	"github.com/latticeui/lattice/font/gofont"
	"github.com/latticeui/lattice/renderer/headless"
	"github.com/latticeui/lattice/renderer/recorder"
	"github.com/latticeui/lattice/renderer/term"
	"github.com/latticeui/lattice/scene"
	"github.com/latticeui/lattice/text"
	"github.com/latticeui/lattice/unit"
)

// backends are the names accepted by the --backend flag.
var backends = []string{"headless", "term", "recorder"}

// newBackend returns the renderer named name, sized for doc.
func (a *app) newBackend(name string, doc *scene.Document) (text.Renderer, error) {
	switch name {
	case "headless":
		m := a.cfg.Metric()
		size := image.Pt(
			int(math.Ceil(float64(m.Dp(unit.Dp(doc.Viewport.Width))))),
			int(math.Ceil(float64(m.Dp(unit.Dp(doc.Viewport.Height))))),
		)
		return headless.New(size, text.NewShaper(gofont.Collection()), m), nil
	case "term":
		return term.New(int(doc.Viewport.Width), int(doc.Viewport.Height)), nil
	case "recorder":
		return recorder.New(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q, want one of %v", name, backends)
	}
}
