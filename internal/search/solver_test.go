package search

import (
	"context"
	"testing"

	"go-wolfrun/internal/board"
	"go-wolfrun/internal/move"
)

func applyAll(b board.Board, path []move.Move) board.Board {
	cur := b
	for _, m := range path {
		cur = move.Apply(cur, m)
	}
	return cur
}

func TestBFSTrivialEscape(t *testing.T) {
	b := board.Board{
		GridSize: 14,
		Tiles:    []board.Tile{board.NewTile("dog", 8, 8, 1, 1, board.Dog, board.UpRight)},
	}
	result := BFS(context.Background(), b, DefaultSolverOptions())
	if result.Verdict != Solvable {
		t.Fatalf("verdict = %v, want Solvable", result.Verdict)
	}
	if len(result.Path) != 1 {
		t.Fatalf("path length = %d, want 1", len(result.Path))
	}
	if !result.Path[0].Disappeared {
		t.Error("expected the sole move to be a disappearing escape")
	}
}

// boxedDogBoard pens the dog in on all four diagonals. Since sliding tries
// every direction regardless of a tile's own facing, the dog has zero legal
// moves until one of the four corner wolves steps aside, so the shortest
// escape is exactly two moves: a wolf clears, then the dog slides through
// the opened diagonal and off the grid.
func boxedDogBoard() board.Board {
	return board.Board{
		GridSize: 14,
		Tiles: []board.Tile{
			board.NewTile("dog", 8, 8, 1, 1, board.Dog, board.UpRight),
			board.NewTile("ul", 7, 7, 1, 1, board.Wolf, board.UpRight),
			board.NewTile("ur", 9, 7, 1, 1, board.Wolf, board.UpRight),
			board.NewTile("dl", 7, 9, 1, 1, board.Wolf, board.UpRight),
			board.NewTile("dr", 9, 9, 1, 1, board.Wolf, board.UpRight),
		},
	}
}

func TestBFSBlockedThenClearedOptimalLength(t *testing.T) {
	b := boxedDogBoard()
	result := BFS(context.Background(), b, DefaultSolverOptions())
	if result.Verdict != Solvable {
		t.Fatalf("verdict = %v, want Solvable", result.Verdict)
	}
	if len(result.Path) != 2 {
		t.Fatalf("path length = %d, want 2 (a corner wolf clears, then the dog escapes)", len(result.Path))
	}
	last := result.Path[len(result.Path)-1]
	if !last.Disappeared {
		t.Error("expected the final move of the solution to be the dog's disappearing escape")
	}
}

func TestBFSOptimalNeverLongerThanDFS(t *testing.T) {
	b := boxedDogBoard()
	bfs := BFS(context.Background(), b, DefaultSolverOptions())
	dfs := DFS(context.Background(), b, DefaultSolverOptions())
	if bfs.Verdict != Solvable || dfs.Verdict != Solvable {
		t.Fatalf("expected both solvers to find a solution, got bfs=%v dfs=%v", bfs.Verdict, dfs.Verdict)
	}
	if len(bfs.Path) > len(dfs.Path) {
		t.Errorf("BFS path (%d) longer than DFS path (%d); BFS must be optimal", len(bfs.Path), len(dfs.Path))
	}
}

func TestBFSDoesNotMutateInputBoard(t *testing.T) {
	b := boxedDogBoard()
	snapshot := b.Clone()
	BFS(context.Background(), b, DefaultSolverOptions())
	if len(b.Tiles) != len(snapshot.Tiles) {
		t.Fatal("BFS mutated the input board's tile count")
	}
	for i := range b.Tiles {
		if b.Tiles[i] != snapshot.Tiles[i] {
			t.Errorf("BFS mutated tile %d", i)
		}
	}
}

func TestSolutionMovesApplyToValidEscapingBoard(t *testing.T) {
	b := boxedDogBoard()
	result := BFS(context.Background(), b, DefaultSolverOptions())
	if result.Verdict != Solvable {
		t.Fatal("expected a solvable board")
	}
	cur := b
	for i, m := range result.Path {
		cur = move.Apply(cur, m)
		if i < len(result.Path)-1 && !board.ValidBoard(boardWithDefaultGrid(cur)) {
			t.Fatalf("board invalid after move %d", i)
		}
	}
	if !board.DogEscaped(cur) {
		t.Error("expected the dog to have escaped after applying the full solution")
	}
}

func boardWithDefaultGrid(b board.Board) board.Board {
	if b.GridSize == 0 {
		b.GridSize = board.DefaultGridSize
	}
	return b
}

func TestDFSBudgetedNotTreatedAsUnsolvable(t *testing.T) {
	b := boxedDogBoard()
	result := DFS(context.Background(), b, Options{MaxDepth: 0, MaxStates: 0, TimeoutSeconds: 5})
	if result.Verdict == Exhausted {
		t.Error("a depth-0 DFS run must report Budgeted, not Exhausted, since it never explored")
	}
}

func TestDogBlockedOnAllFourDiagonalsHasNoMoves(t *testing.T) {
	b := board.Board{
		GridSize: 4,
		Tiles: []board.Tile{
			board.NewTile("dog", 2, 2, 1, 1, board.Dog, board.UpRight),
			board.NewTile("ul", 1, 1, 1, 1, board.Wolf, board.UpRight),
			board.NewTile("ur", 3, 1, 1, 1, board.Wolf, board.UpRight),
			board.NewTile("dl", 1, 3, 1, 1, board.Wolf, board.UpRight),
			board.NewTile("dr", 3, 3, 1, 1, board.Wolf, board.UpRight),
		},
	}
	dogMoves := 0
	for _, m := range move.Enumerate(b) {
		if m.TileIndex == 0 {
			dogMoves++
		}
	}
	if dogMoves != 0 {
		t.Errorf("expected 0 legal dog moves when boxed in on all four diagonals, got %d", dogMoves)
	}
}

func TestGridSizeOneDogAloneEscapesInOneMove(t *testing.T) {
	b := board.Board{
		GridSize: 1,
		Tiles:    []board.Tile{board.NewTile("dog", 1, 1, 1, 1, board.Dog, board.DownRight)},
	}
	result := BFS(context.Background(), b, DefaultSolverOptions())
	if result.Verdict != Solvable || len(result.Path) != 1 {
		t.Fatalf("expected a lone dog on a 1x1 grid to escape in one move, got verdict=%v path=%d", result.Verdict, len(result.Path))
	}
}
