// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	lru "github.com/hashicorp/golang-lru/v2"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/latticeui/lattice/font"
)

// layoutKey holds every input that influences a text layout.
type layoutKey struct {
	ppem     fixed.Int26_6
	maxWidth fixed.Int26_6
	str      string
	font     font.Font
}

type faceKey struct {
	ppem fixed.Int26_6
	font font.Font
}

const maxSize = 1000

type layoutCache struct {
	c *lru.Cache[layoutKey, Layout]
}

type faceCache struct {
	c *lru.Cache[faceKey, xfont.Face]
}

func newLayoutCache() layoutCache {
	c, err := lru.New[layoutKey, Layout](maxSize)
	if err != nil {
		panic(err)
	}
	return layoutCache{c: c}
}

func newFaceCache() faceCache {
	c, err := lru.NewWithEvict[faceKey, xfont.Face](maxSize/10, func(_ faceKey, f xfont.Face) {
		f.Close()
	})
	if err != nil {
		panic(err)
	}
	return faceCache{c: c}
}

func (l layoutCache) Get(k layoutKey) (Layout, bool) {
	return l.c.Get(k)
}

func (l layoutCache) Put(k layoutKey, lt Layout) {
	l.c.Add(k, lt)
}

func (l layoutCache) Len() int {
	return l.c.Len()
}

func (f faceCache) Get(k faceKey) (xfont.Face, bool) {
	return f.c.Get(k)
}

func (f faceCache) Put(k faceKey, face xfont.Face) {
	f.c.Add(k, face)
}
