// Command analyze computes difficulty metrics for every persisted
// level in a directory and prints a report, including the external
// weighted difficulty score and bucket.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"go-wolfrun/internal/logx"
	"go-wolfrun/internal/metrics"
	"go-wolfrun/internal/persist"
	"go-wolfrun/internal/scoring"
	"go-wolfrun/internal/search"
)

var levelFileRe = regexp.MustCompile(`^level_(\d+)\.json$`)

func levelFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	var ids []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := levelFileRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		id, _ := strconv.Atoi(m[1])
		ids = append(ids, id)
		files = append(files, e.Name())
	}
	sort.Slice(files, func(i, j int) bool { return ids[i] < ids[j] })
	for i, f := range files {
		files[i] = filepath.Join(dir, f)
	}
	return files, nil
}

func main() {
	dir := flag.String("d", "simulation_json", "directory of per-level files to analyze")
	flag.Parse()

	log := logx.New("info")

	files, err := levelFiles(*dir)
	if err != nil {
		log.Error().Err(err).Str("dir", *dir).Msg("failed to list level files")
		os.Exit(1)
	}

	opts := search.DefaultSolverOptions()
	anyFailed := false

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("could not read level file, skipping")
			anyFailed = true
			continue
		}
		b, err := persist.DecodeBoard(data)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("malformed level file, skipping")
			anyFailed = true
			continue
		}

		m := metrics.Compute(context.Background(), b, opts)
		score := scoring.Score(m)
		level := scoring.Classify(score)

		fmt.Printf("=== Level %d (%s) ===\n", b.ID, path)
		fmt.Printf("Difficulty Level:     %s\n", level)
		fmt.Printf("Difficulty Score:     %.2f\n", score)
		fmt.Printf("Optimal Moves:        %d\n", m.OptimalMoves)
		fmt.Printf("Branching Factor:     %d\n", m.BranchingFactor)
		fmt.Printf("Average Move Options: %.2f\n", m.AverageMoveOptions)
		fmt.Printf("Wolf Density:         %.2f%%\n", m.WolfDensity*100)
		fmt.Printf("Dog Distance To Edge: %d\n", m.DogDistanceToEdge)
		fmt.Printf("Path Complexity:      %.2f\n", m.PathComplexity)
		fmt.Printf("Dead End States:      %d\n", m.DeadEndStates)
		fmt.Printf("Solution Width:       %d\n", m.SolutionWidth)
		fmt.Println()

		if m.OptimalMoves == -1 {
			anyFailed = true
		}
	}

	if len(files) == 0 {
		anyFailed = true
	}

	if anyFailed {
		os.Exit(1)
	}
}
