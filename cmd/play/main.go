// Command play is an interactive REPL for driving a single board
// through slides by hand, or handing it to the solver, adapted from
// the teacher's turn-based Klotski console loop to this domain's
// diamond grid and dog-escape win condition.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"lukechampine.com/frand"

	"go-wolfrun/internal/board"
	"go-wolfrun/internal/generate"
	"go-wolfrun/internal/metrics"
	"go-wolfrun/internal/move"
	"go-wolfrun/internal/persist"
	"go-wolfrun/internal/search"
)

func loadBoard(path string, levelID int) board.Board {
	if path == "" {
		rng := frand.NewCustom([]byte("play-session-seed"), 1024, 20)
		b, _ := generate.GenerateSolvableLevel(rng, levelID, 25)
		b.ID = levelID
		return b
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		os.Exit(1)
	}
	b, err := persist.DecodeBoard(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse %s: %v\n", path, err)
		os.Exit(1)
	}
	return b
}

func display(b board.Board) {
	grid := b.GridSize
	if grid == 0 {
		grid = board.DefaultGridSize
	}
	cell := func(col, row int) rune {
		for i, t := range b.Tiles {
			if t.Contains(col, row) {
				if t.Unit == board.Dog {
					return 'D'
				}
				return rune('a' + i%26)
			}
		}
		if board.InDiamond(grid, col, row) {
			return '.'
		}
		return ' '
	}
	for row := 1; row <= grid; row++ {
		var sb strings.Builder
		for col := 1; col <= grid; col++ {
			sb.WriteRune(cell(col, row))
			sb.WriteByte(' ')
		}
		fmt.Println(sb.String())
	}
	fmt.Println()
}

func showTiles(b board.Board) {
	for i, t := range b.Tiles {
		fmt.Printf("  [%d] %s %s at (%d,%d) %dx%d facing %s\n",
			i, t.Unit, t.Shape(), t.Col, t.Row, t.ColSpan, t.RowSpan, t.Direction)
	}
}

func parseDirection(s string) (board.Direction, bool) {
	switch strings.ToLower(s) {
	case "ul", "up_left", "upleft":
		return board.UpLeft, true
	case "ur", "up_right", "upright":
		return board.UpRight, true
	case "dl", "down_left", "downleft":
		return board.DownLeft, true
	case "dr", "down_right", "downright":
		return board.DownRight, true
	}
	return 0, false
}

func main() {
	path := flag.String("f", "", "board file to load (generates a fresh level if empty)")
	levelID := flag.Int("level", 1, "level id to generate when no file is given")
	flag.Parse()

	b := loadBoard(*path, *levelID)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("=== Wolf Run ===")
	fmt.Println("GOAL: slide the dog tile off the grid.")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  show                  - display the board")
	fmt.Println("  tiles                 - list tiles and indices")
	fmt.Println("  moves                 - list legal moves")
	fmt.Println("  move <index> <dir>    - slide a tile (dir: ul/ur/dl/dr)")
	fmt.Println("  solve                 - run BFS and print the optimal solution")
	fmt.Println("  analyze               - print difficulty metrics")
	fmt.Println("  quit                  - exit")
	fmt.Println()

	for {
		display(b)

		if board.DogEscaped(b) {
			fmt.Println("The dog escaped. Puzzle solved!")
			return
		}

		fmt.Print("Enter command: ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		parts := strings.Fields(input)
		command := strings.ToLower(parts[0])

		switch command {
		case "quit", "exit", "q":
			return
		case "show", "s":
			continue
		case "tiles", "t":
			showTiles(b)
		case "moves":
			for _, m := range move.Enumerate(b) {
				fmt.Printf("  tile %d -> (%d,%d) disappeared=%v\n", m.TileIndex, m.NewCol, m.NewRow, m.Disappeared)
			}
		case "move", "m":
			if len(parts) != 3 {
				fmt.Println("Usage: move <index> <ul|ur|dl|dr>")
				continue
			}
			idx, err := strconv.Atoi(parts[1])
			if err != nil || idx < 0 || idx >= len(b.Tiles) {
				fmt.Printf("Invalid tile index %q\n", parts[1])
				continue
			}
			dir, ok := parseDirection(parts[2])
			if !ok {
				fmt.Printf("Invalid direction %q\n", parts[2])
				continue
			}
			m, ok := move.Slide(b, idx, dir)
			if !ok {
				fmt.Println("That tile cannot slide in that direction.")
				continue
			}
			b = move.Apply(b, m)
		case "solve":
			result := search.BFS(context.Background(), b, search.DefaultSolverOptions())
			switch result.Verdict {
			case search.Solvable:
				fmt.Printf("Solvable in %d moves:\n", len(result.Path))
				for _, m := range result.Path {
					fmt.Printf("  tile %d -> (%d,%d) disappeared=%v\n", m.TileIndex, m.NewCol, m.NewRow, m.Disappeared)
				}
			case search.Budgeted:
				fmt.Println("Solver budgeted out before reaching a verdict.")
			default:
				fmt.Println("Exhausted the state space: no solution exists within budget.")
			}
		case "analyze":
			m := metrics.Compute(context.Background(), b, search.DefaultSolverOptions())
			fmt.Printf("branchingFactor=%d averageMoveOptions=%.2f wolfDensity=%.3f dogDistanceToEdge=%d\n",
				m.BranchingFactor, m.AverageMoveOptions, m.WolfDensity, m.DogDistanceToEdge)
			fmt.Printf("optimalMoves=%d pathComplexity=%.2f deadEndStates=%d solutionWidth=%d\n",
				m.OptimalMoves, m.PathComplexity, m.DeadEndStates, m.SolutionWidth)
		default:
			fmt.Println("Unknown command. Try 'show', 'tiles', 'moves', 'move', 'solve', 'analyze', or 'quit'")
		}
	}
}
