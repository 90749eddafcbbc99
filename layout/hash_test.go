// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "testing"

func TestHasherDeterministic(t *testing.T) {
	sum := func() uint64 {
		h := NewHasher()
		h.Kind("label")
		h.String("hello")
		Fill.Hash(h)
		UniformPadding(4).Hash(h)
		return h.Sum64()
	}
	if a, b := sum(), sum(); a != b {
		t.Errorf("fingerprints differ: %x != %x", a, b)
	}
}

func TestHasherSelfDelimiting(t *testing.T) {
	h1 := NewHasher()
	h1.String("ab")
	h1.String("c")
	h2 := NewHasher()
	h2.String("a")
	h2.String("bc")
	if h1.Sum64() == h2.Sum64() {
		t.Error("concatenation ambiguity in string writes")
	}
}

func TestHasherKind(t *testing.T) {
	h1 := NewHasher()
	h1.Kind("text")
	h1.String("x")
	h2 := NewHasher()
	h2.Kind("label")
	h2.String("x")
	if h1.Sum64() == h2.Sum64() {
		t.Error("different kinds produced the same fingerprint")
	}
}

func TestLengthHash(t *testing.T) {
	lengths := []Length{Shrink, Fill, FillPortion(2), Units(10), Fraction(.5), Bounded(1, 2)}
	seen := make(map[uint64]Length)
	for _, l := range lengths {
		h := NewHasher()
		l.Hash(h)
		sum := h.Sum64()
		if prev, ok := seen[sum]; ok {
			t.Errorf("%v and %v hash equal", prev, l)
		}
		seen[sum] = l
	}
}

func TestHasherZeroValue(t *testing.T) {
	var h Hasher
	h.Int(1)
	want := NewHasher()
	want.Int(1)
	if h.Sum64() != want.Sum64() {
		t.Error("zero Hasher differs from NewHasher")
	}
}
