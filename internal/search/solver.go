// Package search implements bounded BFS (optimal) and DFS (existence)
// solvers over the puzzle's state graph.
package search

import (
	"context"
	"time"

	"go-wolfrun/internal/board"
	"go-wolfrun/internal/move"
	"go-wolfrun/internal/state"
)

type bfsEntry struct {
	b    board.Board
	path []move.Move
}

// Deadline derives a context carrying opts.TimeoutSeconds as a wall-clock
// deadline on top of ctx, so every search entry point enforces its own
// time budget regardless of what the caller passed in. A non-positive
// TimeoutSeconds leaves ctx untouched (no deadline).
func Deadline(ctx context.Context, opts Options) (context.Context, context.CancelFunc) {
	if opts.TimeoutSeconds <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, time.Duration(opts.TimeoutSeconds)*time.Second)
}

// BFS runs a bounded breadth-first search from b's initial state and
// returns the shortest move sequence to the dog's escape, if one exists
// within the given budgets. b is never mutated. The clock is polled at
// least every 1000 dequeues, per the budget's ctx deadline.
func BFS(ctx context.Context, b board.Board, opts Options) Result {
	ctx, cancel := Deadline(ctx, opts)
	defer cancel()

	visited := map[uint64]bool{visitedKey(b): true}
	queue := []bfsEntry{{b: b.Clone(), path: nil}}

	iterations := 0
	for len(queue) > 0 {
		if iterations%1000 == 0 && ctxDone(ctx) {
			return Result{Verdict: Budgeted, StatesExplored: iterations}
		}
		iterations++
		if iterations > opts.MaxStates {
			return Result{Verdict: Budgeted, StatesExplored: iterations}
		}

		cur := queue[0]
		queue = queue[1:]

		for _, m := range move.Enumerate(cur.b) {
			if ctxDone(ctx) {
				return Result{Verdict: Budgeted, StatesExplored: iterations}
			}

			nextBoard := move.Apply(cur.b, m)
			nextPath := appendMove(cur.path, m)

			if board.DogEscaped(nextBoard) {
				return Result{Verdict: Solvable, Path: nextPath, StatesExplored: iterations}
			}

			key := visitedKey(nextBoard)
			if !visited[key] {
				visited[key] = true
				queue = append(queue, bfsEntry{b: nextBoard, path: nextPath})
			}
		}
	}
	return Result{Verdict: Exhausted, StatesExplored: iterations}
}

// DFS runs a bounded depth-first search, exploring dog moves before
// other moves at every node (the dog's own escape is usually the
// fastest path to a verdict). Returns on the first escape found. b is
// never mutated.
func DFS(ctx context.Context, b board.Board, opts Options) Result {
	ctx, cancel := Deadline(ctx, opts)
	defer cancel()

	visited := map[uint64]bool{}
	path, verdict, explored := dfsStep(ctx, b, 0, visited, opts)
	return Result{Verdict: verdict, Path: path, StatesExplored: explored}
}

func dfsStep(ctx context.Context, b board.Board, depth int, visited map[uint64]bool, opts Options) ([]move.Move, Verdict, int) {
	if depth%100 == 0 && ctxDone(ctx) {
		return nil, Budgeted, len(visited)
	}
	if depth > opts.MaxDepth {
		return nil, Budgeted, len(visited)
	}
	if len(visited) > opts.MaxStates {
		return nil, Budgeted, len(visited)
	}

	key := visitedKey(b)
	if visited[key] {
		return nil, Exhausted, len(visited)
	}
	visited[key] = true

	if board.DogEscaped(b) {
		return nil, Solvable, len(visited)
	}

	moves := move.Enumerate(b)
	dogIdx := b.DogIndex()
	var dogMoves, otherMoves []move.Move
	for _, m := range moves {
		if m.TileIndex == dogIdx {
			dogMoves = append(dogMoves, m)
		} else {
			otherMoves = append(otherMoves, m)
		}
	}

	for _, ordered := range [][]move.Move{dogMoves, otherMoves} {
		for _, m := range ordered {
			if ctxDone(ctx) {
				return nil, Budgeted, len(visited)
			}

			next := move.Apply(b, m)
			if board.DogEscaped(next) {
				return []move.Move{m}, Solvable, len(visited)
			}

			childPath, verdict, explored := dfsStep(ctx, next, depth+1, visited, opts)
			if verdict == Solvable {
				return append([]move.Move{m}, childPath...), Solvable, explored
			}
			if verdict == Budgeted {
				return nil, Budgeted, explored
			}
		}
	}

	return nil, Exhausted, len(visited)
}

func visitedKey(b board.Board) uint64 {
	return state.Of(b).Hash()
}

func ctxDone(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func appendMove(path []move.Move, m move.Move) []move.Move {
	out := make([]move.Move, len(path)+1)
	copy(out, path)
	out[len(path)] = m
	return out
}
