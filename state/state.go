// SPDX-License-Identifier: Unlicense OR MIT

// Package state stores the persistent state of widgets across frames.
//
// Widget trees are rebuilt every frame, so stateful widgets borrow
// their state from a Store by pointer. The Store owns the state and
// keeps it alive while the widget keeps appearing:
//
//	s.Begin()
//	btn := widget.Button{State: state.Get[widget.ButtonState](s, state.Path("toolbar", "save"))}
//	...
//	s.End() // drops state not requested during the frame
package state

import (
	"strconv"
	"strings"
)

// ID identifies a piece of state. Explicit ids are any string; Path
// builds ids from the position of a widget in its tree.
type ID string

// Path returns the ID of the path parts joined by slashes.
func Path(parts ...string) ID {
	return ID(strings.Join(parts, "/"))
}

// Child returns the ID of part below id.
func (id ID) Child(part string) ID {
	if id == "" {
		return ID(part)
	}
	return id + "/" + ID(part)
}

// Index returns the ID of the i'th child below id.
func (id ID) Index(i int) ID {
	return id.Child(strconv.Itoa(i))
}

// Store maps IDs to state values. The zero value is an empty Store
// ready to use. A Store is not safe for concurrent use.
type Store struct {
	entries map[ID]*entry
	frame   uint64
}

type entry struct {
	value any
	// frame is the last frame the entry was requested in.
	frame uint64
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return new(Store)
}

// Get returns the state of type T for id, creating the zero T on first
// use. The same pointer is returned for the same id until the state is
// dropped. State of another type stored under id is replaced.
func Get[T any](s *Store, id ID) *T {
	if s.entries == nil {
		s.entries = make(map[ID]*entry)
	}
	e, ok := s.entries[id]
	if ok {
		if v, ok := e.value.(*T); ok {
			e.frame = s.frame
			return v
		}
	}
	v := new(T)
	s.entries[id] = &entry{value: v, frame: s.frame}
	return v
}

// Lookup returns the state of type T for id without creating it.
func Lookup[T any](s *Store, id ID) (*T, bool) {
	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	v, ok := e.value.(*T)
	return v, ok
}

// Begin starts a frame. State requested with Get or kept with Retain
// until the matching End survives the frame.
func (s *Store) Begin() {
	s.frame++
}

// Retain keeps the state of ids alive in the current frame without
// requesting it.
func (s *Store) Retain(ids ...ID) {
	for _, id := range ids {
		if e, ok := s.entries[id]; ok {
			e.frame = s.frame
		}
	}
}

// End ends a frame and drops the state not requested since Begin. It
// returns the number of entries dropped.
func (s *Store) End() int {
	n := 0
	for id, e := range s.entries {
		if e.frame != s.frame {
			delete(s.entries, id)
			n++
		}
	}
	return n
}

// Delete drops the state of id.
func (s *Store) Delete(id ID) {
	delete(s.entries, id)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}
