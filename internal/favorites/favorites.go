// internal/favorites/favorites.go
//
// A visitor's favorite games ("My Morning Menu").
//
// The set lives in the visitor's own storage (browser cookie, local SQLite
// file) under a single entry holding a JSON array of game ids. The store
// is owned by the session that created it and passed explicitly; there is
// no package-level state.
//
// Failure policy: reading never fails (absent or malformed data is an empty
// set) and writing is best effort.

package favorites

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/eabrahm-wq/GameDirectory/internal/store"
)

// Key is the storage entry holding the favorites array.
const Key = "daily-mind-games:favorites"

// Set is an ordered list of game ids without duplicates. Values are never
// modified in place by this package.
type Set []string

// Contains reports whether id is in the set.
func (s Set) Contains(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Equal reports whether both sets hold the same ids, in any order.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for _, v := range s {
		if !o.Contains(v) {
			return false
		}
	}
	return true
}

// Toggle returns a new set with id removed if present, or appended if not.
// s itself is left untouched.
func Toggle(s Set, id string) Set {
	if s.Contains(id) {
		out := make(Set, 0, len(s)-1)
		for _, v := range s {
			if v != id {
				out = append(out, v)
			}
		}
		return out
	}
	out := make(Set, len(s), len(s)+1)
	copy(out, s)
	return append(out, id)
}

// Decode parses a stored value. Anything other than a JSON array yields an
// empty set; non-string elements and repeats are dropped.
func Decode(raw string) Set {
	if raw == "" {
		return Set{}
	}
	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return Set{}
	}
	out := make(Set, 0, len(items))
	for _, it := range items {
		if id, ok := it.(string); ok && !out.Contains(id) {
			out = append(out, id)
		}
	}
	return out
}

// Encode renders s as a JSON array. A nil set encodes as [].
func Encode(s Set) string {
	if s == nil {
		s = Set{}
	}
	b, _ := json.Marshal([]string(s))
	return string(b)
}

// Store loads and saves the favorites entry in a backend. A Store with a nil
// backend models a context without visitor storage: Load is always empty
// and Save does nothing.
type Store struct {
	backend store.Store
}

// NewStore wraps backend, which may be nil.
func NewStore(backend store.Store) *Store {
	return &Store{backend: backend}
}

// Load returns the persisted set, or an empty set when there is none.
func (s *Store) Load(ctx context.Context) Set {
	if s == nil || s.backend == nil {
		return Set{}
	}
	raw, ok, err := s.backend.GetItem(ctx, Key)
	if err != nil {
		log.Debug().Err(err).Msg("favorites: load failed, using empty set")
		return Set{}
	}
	if !ok {
		return Set{}
	}
	return Decode(raw)
}

// Save overwrites the persisted set. Errors are logged and dropped.
func (s *Store) Save(ctx context.Context, set Set) {
	if s == nil || s.backend == nil {
		return
	}
	if err := s.backend.SetItem(ctx, Key, Encode(set)); err != nil {
		log.Debug().Err(err).Msg("favorites: save failed")
	}
}

// Toggle loads, toggles id, saves, and returns the new set.
func (s *Store) Toggle(ctx context.Context, id string) Set {
	next := Toggle(s.Load(ctx), id)
	s.Save(ctx, next)
	return next
}
