// Command validate checks every persisted level in a directory for
// board validity and DFS solvability within the generator's default
// budgets (depth 500, 50,000 states, 10 seconds).
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"go-wolfrun/internal/board"
	"go-wolfrun/internal/logx"
	"go-wolfrun/internal/persist"
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
	dir := flag.String("d", "simulation_json", "directory of per-level files to validate")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	levelName := "info"
	if *verbose {
		levelName = "debug"
	}
	log := logx.New(levelName)

	files, err := levelFiles(*dir)
	if err != nil {
		log.Error().Err(err).Str("dir", *dir).Msg("failed to list level files")
		os.Exit(1)
	}
	log.Info().Int("count", len(files)).Str("dir", *dir).Msg("found level files")

	opts := search.Options{MaxDepth: 500, MaxStates: 50000, TimeoutSeconds: 10}
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

		entry := log.With().Int("levelID", b.ID).Str("path", path).Logger()

		if !board.ValidBoard(b) {
			entry.Error().Msg("level failed board validation")
			anyFailed = true
			continue
		}

		result := search.DFS(context.Background(), b, opts)
		switch result.Verdict {
		case search.Solvable:
			entry.Info().Int("moveLength", len(result.Path)).Msg("solvable")
		case search.Budgeted:
			entry.Warn().Msg("solvability check budgeted out (not provably unsolvable)")
		default:
			entry.Error().Msg("not solvable within default budgets")
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
