// SPDX-License-Identifier: Unlicense OR MIT

package state

import "testing"

type counter struct {
	n int
}

func TestPath(t *testing.T) {
	if got, want := Path("root", "toolbar", "save"), ID("root/toolbar/save"); got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
	if got, want := ID("").Child("a").Index(2), ID("a/2"); got != want {
		t.Errorf("Child.Index = %q, want %q", got, want)
	}
}

func TestGetStable(t *testing.T) {
	var s Store
	a := Get[counter](&s, "a")
	a.n = 3
	if b := Get[counter](&s, "a"); b != a || b.n != 3 {
		t.Errorf("Get returned a different state for the same id")
	}
	if c := Get[counter](&s, "c"); c == a {
		t.Errorf("Get returned the same state for different ids")
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestGetReplacesOtherType(t *testing.T) {
	s := NewStore()
	Get[counter](s, "a").n = 1
	if v := Get[bool](s, "a"); *v {
		t.Errorf("new state is not the zero value")
	}
	if _, ok := Lookup[counter](s, "a"); ok {
		t.Errorf("old state survived a type change")
	}
}

func TestSweep(t *testing.T) {
	s := NewStore()
	s.Begin()
	Get[counter](s, "kept").n = 1
	Get[counter](s, "dropped")
	Get[counter](s, "retained")
	if n := s.End(); n != 0 {
		t.Fatalf("first frame dropped %d entries", n)
	}

	s.Begin()
	Get[counter](s, "kept")
	s.Retain("retained", "missing")
	if n := s.End(); n != 1 {
		t.Errorf("dropped %d entries, want 1", n)
	}
	if _, ok := Lookup[counter](s, "dropped"); ok {
		t.Errorf("unused state survived the frame")
	}
	if v, ok := Lookup[counter](s, "kept"); !ok || v.n != 1 {
		t.Errorf("used state lost: %v %v", v, ok)
	}
	if _, ok := Lookup[counter](s, "retained"); !ok {
		t.Errorf("retained state dropped")
	}
}

func TestDelete(t *testing.T) {
	s := NewStore()
	Get[counter](s, "a")
	s.Delete("a")
	if s.Len() != 0 {
		t.Errorf("Len = %d after Delete", s.Len())
	}
}
