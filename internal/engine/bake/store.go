package bake

import (
	"github.com/DragonQuiz/mcedit2/internal/blocks"
)

// Store owns all baked quad storage: a dense (block-id, metadata)
// table for render-time lookup plus a name+state keyed map for
// introspection and reload. Each slot is populated at most once, and
// the whole store becomes read-only when baking finishes. Concurrent
// readers are safe once cooked; re-baking must be serialized against
// them externally.
type Store struct {
	byID   [][blocks.MaxMetadata][]CookedQuad
	byName map[string][]CookedQuad
	cooked bool
}

// NewStore creates a store sized for block ids up to maxID.
func NewStore(maxID int) *Store {
	return &Store{
		byID:   make([][blocks.MaxMetadata][]CookedQuad, maxID+1),
		byName: make(map[string][]CookedQuad),
	}
}

// put registers a baked quad list under both keys. A slot already
// populated is left untouched.
func (s *Store) put(nameState string, id, meta int, quads []CookedQuad) {
	if s.cooked {
		return
	}
	if _, exists := s.byName[nameState]; exists {
		return
	}
	s.byName[nameState] = quads

	if id >= 0 && id < len(s.byID) && meta >= 0 && meta < blocks.MaxMetadata {
		if s.byID[id][meta] == nil {
			s.byID[id][meta] = quads
		}
	}
}

// markCooked seals the store. Further puts are no-ops.
func (s *Store) markCooked() {
	s.cooked = true
}

// Cooked reports whether baking has completed.
func (s *Store) Cooked() bool {
	return s.cooked
}

// QuadsByID returns the baked quads for a (block-id, metadata) pair,
// or nil when the slot is empty or out of range.
func (s *Store) QuadsByID(id, meta int) []CookedQuad {
	if id < 0 || id >= len(s.byID) || meta < 0 || meta >= blocks.MaxMetadata {
		return nil
	}
	return s.byID[id][meta]
}

// Quads returns the baked quads for a block name and state suffix.
func (s *Store) Quads(name, state string) []CookedQuad {
	return s.byName[name+state]
}

// Len returns the number of name+state entries.
func (s *Store) Len() int {
	return len(s.byName)
}
