// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hasher accumulates the structural fingerprint of a widget tree.
// Widgets write a kind marker followed by every field that affects
// their layout. Writes are order sensitive and self delimiting, so
// different sequences of values never produce the same input stream.
type Hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

const kindTag = 0x6b696e64ffffffff

// NewHasher returns an empty Hasher.
func NewHasher() *Hasher {
	return &Hasher{d: xxhash.New()}
}

// Kind writes the marker distinguishing one kind of widget from all
// others.
func (h *Hasher) Kind(name string) {
	h.Uint64(kindTag)
	h.String(name)
}

// String writes a length prefixed string.
func (h *Hasher) String(s string) {
	h.Uint64(uint64(len(s)))
	h.digest().WriteString(s)
}

// Uint64 writes v.
func (h *Hasher) Uint64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	h.digest().Write(h.buf[:])
}

// Int writes v.
func (h *Hasher) Int(v int) {
	h.Uint64(uint64(v))
}

// Rune writes r.
func (h *Hasher) Rune(r rune) {
	h.Uint64(uint64(r))
}

// Bool writes b.
func (h *Hasher) Bool(b bool) {
	var v uint64
	if b {
		v = 1
	}
	h.Uint64(v)
}

// Float32 writes the bits of v.
func (h *Hasher) Float32(v float32) {
	h.Uint64(uint64(math.Float32bits(v)))
}

// Sum64 returns the fingerprint of everything written so far.
func (h *Hasher) Sum64() uint64 {
	return h.digest().Sum64()
}

// Reset discards everything written.
func (h *Hasher) Reset() {
	h.digest().Reset()
}

func (h *Hasher) digest() *xxhash.Digest {
	if h.d == nil {
		h.d = xxhash.New()
	}
	return h.d
}
