// Package metrics computes deterministic difficulty metrics for a board:
// branching factor, mobility, density, dog edge-distance, the optimal
// solution's length and shape, the DFS dead-end proxy and the BFS width
// proxy.
package metrics

import (
	"context"
	"math"

	"go-wolfrun/internal/board"
	"go-wolfrun/internal/move"
	"go-wolfrun/internal/search"
	"go-wolfrun/internal/state"
)

// Metrics is the numeric snapshot computed for one board, grounded on
// DifficultyAnalyzer's field set. It carries no difficulty score or
// bucket: that weighted formula lives in internal/scoring, one layer up.
type Metrics struct {
	BranchingFactor    int
	AverageMoveOptions float64
	WolfDensity        float64
	DogDistanceToEdge  int
	OptimalMoves       int
	PathComplexity     float64
	DeadEndStates      int
	SolutionWidth      int
}

func gridOf(b board.Board) int {
	if b.GridSize == 0 {
		return board.DefaultGridSize
	}
	return b.GridSize
}

// BranchingFactor is the count of legal moves from b's current state.
func BranchingFactor(b board.Board) int {
	return len(move.Enumerate(b))
}

// AverageMoveOptions is the mean, over tiles, of the per-tile count of
// legal directions (0..4).
func AverageMoveOptions(b board.Board) float64 {
	if len(b.Tiles) == 0 {
		return 0
	}
	total := 0
	for i := range b.Tiles {
		for _, dir := range board.Directions {
			if _, ok := move.Slide(b, i, dir); ok {
				total++
			}
		}
	}
	return float64(total) / float64(len(b.Tiles))
}

// WolfDensity is the proportion of in-diamond cells occupied by a wolf
// tile's origin cell count — here taken as wolf-tile count over
// in-diamond-cell count, per the reference's per-tile (not per-cell)
// counting.
func WolfDensity(b board.Board) float64 {
	wolves := 0
	for _, t := range b.Tiles {
		if t.Unit == board.Wolf {
			wolves++
		}
	}
	cells := len(board.DiamondCells(gridOf(b)))
	if cells == 0 {
		return 0
	}
	return float64(wolves) / float64(cells)
}

// DogDistanceToEdge is the minimum distance from the dog's footprint to
// any of the four grid edges, or 0 if there is no dog.
func DogDistanceToEdge(b board.Board) int {
	i := b.DogIndex()
	if i < 0 {
		return 0
	}
	grid := gridOf(b)
	dog := b.Tiles[i]
	dists := []int{
		dog.Col - 1,
		grid - dog.Right(),
		dog.Row - 1,
		grid - dog.Bottom(),
	}
	min := dists[0]
	for _, d := range dists[1:] {
		if d < min {
			min = d
		}
	}
	return min
}

// pathComplexity is the mean Euclidean distance per move along a BFS
// solution, 0 if the solution is empty.
func pathComplexity(b board.Board, path []move.Move) float64 {
	if len(path) == 0 {
		return 0
	}
	cur := b.Clone()
	var total float64
	for _, m := range path {
		t := cur.Tiles[m.TileIndex]
		dc := float64(t.Col - m.NewCol)
		dr := float64(t.Row - m.NewRow)
		total += math.Sqrt(dc*dc + dr*dr)
		cur = move.Apply(cur, m)
	}
	return total / float64(len(path))
}

// countDeadEnds runs a DFS with no state-count bound (matching
// DifficultyAnalyzer::countDeadEndStates), bounded by depth and by ctx's
// deadline, and counts recursive leaves: nodes that are
// either already-visited repeats or have no move leading to a solution.
// Once ctx is seen done, every remaining call returns at once.
func countDeadEnds(ctx context.Context, b board.Board, maxDepth int) int {
	visited := map[uint64]bool{}
	deadEnds := 0
	steps := 0
	stopped := false
	var step func(cur board.Board, depth int) bool
	step = func(cur board.Board, depth int) bool {
		if stopped || depth > maxDepth {
			return false
		}
		steps++
		if steps%1000 == 0 {
			select {
			case <-ctx.Done():
				stopped = true
				return false
			default:
			}
		}
		key := state.Of(cur).Hash()
		if visited[key] {
			deadEnds++
			return false
		}
		visited[key] = true

		if board.DogEscaped(cur) {
			return true
		}

		moves := move.Enumerate(cur)
		dogIdx := cur.DogIndex()
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
				next := move.Apply(cur, m)
				if m.Disappeared && m.TileIndex == dogIdx {
					return true
				}
				if step(next, depth+1) {
					return true
				}
			}
		}

		deadEnds++
		return false
	}
	step(b, 0)
	return deadEnds
}

// Compute runs the BFS solver once and derives every metric from its
// result plus a dedicated dead-end-counting DFS pass. b is never
// mutated.
func Compute(ctx context.Context, b board.Board, opts search.Options) Metrics {
	bfs := search.BFS(ctx, b, opts)

	deadEndCtx, cancel := search.Deadline(ctx, opts)
	defer cancel()

	m := Metrics{
		BranchingFactor:    BranchingFactor(b),
		AverageMoveOptions: AverageMoveOptions(b),
		WolfDensity:        WolfDensity(b),
		DogDistanceToEdge:  DogDistanceToEdge(b),
		DeadEndStates:      countDeadEnds(deadEndCtx, b, opts.MaxDepth),
	}

	if bfs.Verdict == search.Solvable {
		m.OptimalMoves = len(bfs.Path)
		m.PathComplexity = pathComplexity(b, bfs.Path)
		m.SolutionWidth = bfs.StatesExplored
	} else {
		m.OptimalMoves = -1
		m.PathComplexity = 0
		m.SolutionWidth = 0
	}

	return m
}
