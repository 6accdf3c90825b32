// Package move implements the slide-until-blocked-or-off-grid operator
// and move enumeration over a board.
package move

import "go-wolfrun/internal/board"

// Move repositions tile TileIndex to (NewCol,NewRow), or marks
// Disappeared, in which case the tile is removed from the board when
// the move is applied.
type Move struct {
	TileIndex   int
	NewCol      int
	NewRow      int
	Disappeared bool
}

// slide translates tile i's footprint one step at a time along dir
// until it either collides with another tile (stopping at the last
// non-colliding position) or goes out of grid bounds (disappearing from
// the position just before the step). Mirrors the reference solver's
// canSlideTile loop field-for-field. The tile's own Direction field is
// not consulted: every tile can be probed along any of the four
// diagonals, matching the reference getPossibleMoves.
func slide(b board.Board, i int, dir board.Direction) (newCol, newRow int, willDisappear bool) {
	t := b.Tiles[i]
	dc, dr := dir.Vector()
	grid := b.GridSize
	if grid == 0 {
		grid = board.DefaultGridSize
	}

	col, row := t.Col, t.Row
	for {
		nextCol, nextRow := col+dc, row+dr
		if !board.InBounds(grid, nextCol, nextRow, t.ColSpan, t.RowSpan) {
			return col, row, true
		}
		if collides(b, i, nextCol, nextRow, t.ColSpan, t.RowSpan) {
			return col, row, false
		}
		col, row = nextCol, nextRow
	}
}

// collides reports whether a footprint at (col,row) would overlap any
// tile in b other than tile excludeIndex.
func collides(b board.Board, excludeIndex, col, row, colSpan, rowSpan int) bool {
	candidate := board.NewTile("", col, row, colSpan, rowSpan, board.Wolf, board.UpRight)
	for j, other := range b.Tiles {
		if j == excludeIndex {
			continue
		}
		if candidate.Overlaps(other) {
			return true
		}
	}
	return false
}

// Slide computes the result of sliding tile i along dir as far as it is
// allowed to go. ok is false when the tile would neither move nor
// disappear (the slide is a no-op).
func Slide(b board.Board, i int, dir board.Direction) (m Move, ok bool) {
	t := b.Tiles[i]
	col, row, disappear := slide(b, i, dir)
	if !disappear && col == t.Col && row == t.Row {
		return Move{}, false
	}
	return Move{TileIndex: i, NewCol: col, NewRow: row, Disappeared: disappear}, true
}

// Enumerate returns every legal move from the board's current state, in
// the contracted order: tiles in board order, directions in {UL, UR,
// DL, DR} order within each tile. This order is an observable contract
// — DFS exploration order and BFS tie-breaks both depend on it.
func Enumerate(b board.Board) []Move {
	moves := make([]Move, 0, len(b.Tiles)*4)
	for i := range b.Tiles {
		for _, dir := range board.Directions {
			if m, ok := Slide(b, i, dir); ok {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// Apply returns a new board with move m applied: the tile is either
// repositioned, or — when m.Disappeared — removed from the tile slice
// entirely, per the removed-at-move-apply convention. b is never
// mutated.
func Apply(b board.Board, m Move) board.Board {
	out := b.Clone()
	if m.Disappeared {
		out.Tiles = append(out.Tiles[:m.TileIndex], out.Tiles[m.TileIndex+1:]...)
		return out
	}
	out.Tiles[m.TileIndex].Col = m.NewCol
	out.Tiles[m.TileIndex].Row = m.NewRow
	return out
}
