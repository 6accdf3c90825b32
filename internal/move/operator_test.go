package move

import (
	"testing"

	"go-wolfrun/internal/board"
)

func TestSlideDisappearsOffGrid(t *testing.T) {
	b := board.Board{
		GridSize: 14,
		Tiles:    []board.Tile{board.NewTile("dog", 8, 8, 1, 1, board.Dog, board.UpRight)},
	}
	m, ok := Slide(b, 0, board.UpRight)
	if !ok {
		t.Fatal("expected a legal slide")
	}
	if !m.Disappeared {
		t.Error("expected the tile to slide off the grid and disappear")
	}
}

func TestSlideStopsAtCollision(t *testing.T) {
	b := board.Board{
		GridSize: 14,
		Tiles: []board.Tile{
			board.NewTile("dog", 8, 8, 1, 1, board.Dog, board.UpRight),
			board.NewTile("wolf", 10, 6, 1, 1, board.Wolf, board.UpRight),
		},
	}
	m, ok := Slide(b, 0, board.UpRight)
	if !ok {
		t.Fatal("expected a legal slide")
	}
	if m.Disappeared {
		t.Error("expected the dog to stop one step short of the wolf, not disappear")
	}
	if m.NewCol != 9 || m.NewRow != 7 {
		t.Errorf("expected the dog to stop at (9,7), one step before the wolf at (10,6), got (%d,%d)", m.NewCol, m.NewRow)
	}
}

func TestSlideNoOpWhenImmediatelyBlocked(t *testing.T) {
	b := board.Board{
		GridSize: 14,
		Tiles: []board.Tile{
			board.NewTile("dog", 8, 8, 1, 1, board.Dog, board.DownLeft),
			board.NewTile("wolf", 7, 9, 1, 1, board.Wolf, board.UpRight),
		},
	}
	if _, ok := Slide(b, 0, board.DownLeft); ok {
		t.Error("a same-position non-disappearing slide must be rejected by Slide's ok return")
	}
}

func TestEnumerateOrderIsTileThenDirection(t *testing.T) {
	b := board.Board{
		GridSize: 14,
		Tiles: []board.Tile{
			board.NewTile("dog", 8, 8, 1, 1, board.Dog, board.UpRight),
			board.NewTile("wolf", 3, 3, 1, 1, board.Wolf, board.UpRight),
		},
	}
	moves := Enumerate(b)
	if len(moves) == 0 {
		t.Fatal("expected at least one legal move")
	}
	lastTile := -1
	for _, m := range moves {
		if m.TileIndex < lastTile {
			t.Fatalf("moves out of tile order: saw tile %d after tile %d", m.TileIndex, lastTile)
		}
		lastTile = m.TileIndex
	}
}

func TestApplyDisappearedRemovesTile(t *testing.T) {
	b := board.Board{
		GridSize: 14,
		Tiles: []board.Tile{
			board.NewTile("dog", 8, 8, 1, 1, board.Dog, board.UpRight),
			board.NewTile("wolf", 3, 3, 1, 1, board.Wolf, board.UpRight),
		},
	}
	out := Apply(b, Move{TileIndex: 0, Disappeared: true})
	if len(out.Tiles) != 1 {
		t.Fatalf("expected 1 tile remaining, got %d", len(out.Tiles))
	}
	if out.Tiles[0].ID != "wolf" {
		t.Errorf("expected the wolf tile to remain, got %q", out.Tiles[0].ID)
	}
	if len(b.Tiles) != 2 {
		t.Error("Apply must not mutate its input board")
	}
}

func TestApplyRepositionsWithoutMutatingInput(t *testing.T) {
	b := board.Board{
		GridSize: 14,
		Tiles:    []board.Tile{board.NewTile("dog", 8, 8, 1, 1, board.Dog, board.UpRight)},
	}
	out := Apply(b, Move{TileIndex: 0, NewCol: 9, NewRow: 7})
	if out.Tiles[0].Col != 9 || out.Tiles[0].Row != 7 {
		t.Errorf("expected repositioned tile at (9,7), got (%d,%d)", out.Tiles[0].Col, out.Tiles[0].Row)
	}
	if b.Tiles[0].Col != 8 || b.Tiles[0].Row != 8 {
		t.Error("Apply must not mutate its input board")
	}
}
