package metrics

import (
	"context"
	"math"
	"testing"

	"go-wolfrun/internal/board"
	"go-wolfrun/internal/search"
)

func trivialEscapeBoard() board.Board {
	return board.Board{
		GridSize: 14,
		Tiles: []board.Tile{
			board.NewTile("dog", 8, 8, 1, 1, board.Dog, board.UpRight),
		},
	}
}

func TestComputeTrivialEscapeSnapshot(t *testing.T) {
	b := trivialEscapeBoard()
	m := Compute(context.Background(), b, search.DefaultSolverOptions())

	// Enumeration probes all four diagonals, and a lone dog slides off the
	// grid along each of them.
	if m.BranchingFactor != 4 {
		t.Errorf("BranchingFactor = %d, want 4", m.BranchingFactor)
	}
	if math.Abs(m.AverageMoveOptions-4.0) > 1e-9 {
		t.Errorf("AverageMoveOptions = %v, want ~4.0", m.AverageMoveOptions)
	}
	if m.WolfDensity != 0 {
		t.Errorf("WolfDensity = %v, want 0", m.WolfDensity)
	}
	if m.DogDistanceToEdge != 6 {
		t.Errorf("DogDistanceToEdge = %d, want 6", m.DogDistanceToEdge)
	}
	if m.OptimalMoves != 1 {
		t.Errorf("OptimalMoves = %d, want 1", m.OptimalMoves)
	}
	if m.PathComplexity <= 0 {
		t.Errorf("PathComplexity = %v, want > 0", m.PathComplexity)
	}
}

// boxedDogBoard pens the dog in on all four diagonals. The dog has zero
// legal moves until one of the four corner wolves steps aside, so the
// shortest escape is exactly two moves: a wolf clears, then the dog slides
// through the opened diagonal and off the grid.
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

func TestComputeBlockedThenClearedOptimalMoves(t *testing.T) {
	b := boxedDogBoard()
	m := Compute(context.Background(), b, search.DefaultSolverOptions())
	if m.OptimalMoves != 2 {
		t.Errorf("OptimalMoves = %d, want 2", m.OptimalMoves)
	}
}

func TestComputeBudgetedReportsMinusOneAndZeroWidth(t *testing.T) {
	b := trivialEscapeBoard()
	m := Compute(context.Background(), b, search.Options{MaxDepth: 0, MaxStates: 0, TimeoutSeconds: 5})
	if m.OptimalMoves != -1 {
		t.Errorf("OptimalMoves = %d, want -1 when the solver is budgeted out", m.OptimalMoves)
	}
	if m.PathComplexity != 0 {
		t.Errorf("PathComplexity = %v, want 0", m.PathComplexity)
	}
	if m.SolutionWidth != 0 {
		t.Errorf("SolutionWidth = %d, want 0", m.SolutionWidth)
	}
}
