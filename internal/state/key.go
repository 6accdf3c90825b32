// Package state defines the canonical, order-dependent key the search
// uses to detect already-visited boards.
package state

import "go-wolfrun/internal/board"

// Cell is the projection of one tile used by the search: position plus
// unit type. Spans and directions are excluded because they never
// change during play.
type Cell struct {
	Col  int
	Row  int
	Unit board.UnitType
}

// State is the ordered sequence of (col,row,unit) triples for a board,
// in the board's own tile order.
type State []Cell

// Of projects a board into its state key.
func Of(b board.Board) State {
	s := make(State, len(b.Tiles))
	for i, t := range b.Tiles {
		s[i] = Cell{Col: t.Col, Row: t.Row, Unit: t.Unit}
	}
	return s
}

// Equal reports whether two states have the same length and agree
// field-by-field at every index.
func Equal(a, b State) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// boostMix is the combine constant lifted from boost::hash_combine
// (also used verbatim by the reference GameState::hash), chosen for its
// established avalanche quality rather than invented ad hoc.
const boostMix = 0x9e3779b9

// combine folds v into the running hash h with a boost::hash_combine
// style mix: h ^= v + boostMix + (h<<6) + (h>>2).
func combine(h uint64, v uint64) uint64 {
	return h ^ (v + boostMix + (h << 6) + (h >> 2))
}

// Hash returns a mixing-quality hash of the state that depends on every
// tile's position and unit, and on their order. Two states with a
// different tile order, position, or unit will (with overwhelming
// probability) hash differently.
func (s State) Hash() uint64 {
	var h uint64
	for _, c := range s {
		h = combine(h, uint64(uint32(c.Col)))
		h = combine(h, uint64(uint32(c.Row)))
		h = combine(h, uint64(c.Unit))
	}
	return h
}

// Key returns the hash as a comparable map key for a visited set, since
// State itself (a slice) is not comparable.
func (s State) Key() uint64 {
	return s.Hash()
}
