// Command generate produces solvable puzzle levels and writes them to
// disk in both the combined levels.json sequence and per-level files.
package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"go-wolfrun/internal/board"
	"go-wolfrun/internal/generate"
	"go-wolfrun/internal/logx"
	"go-wolfrun/internal/persist"
)

type levelResult struct {
	board board.Board
	ok    bool
}

func seedBytes(seed int64, levelID int) []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf[:8], uint64(seed))
	binary.LittleEndian.PutUint64(buf[8:], uint64(levelID))
	return buf
}

func main() {
	count := flag.Int("n", 1, "number of levels to generate")
	startID := flag.Int("start-id", 1, "starting level id")
	outFile := flag.String("o", persist.CombinedFilename, "combined output filename")
	outDir := flag.String("d", "simulation_json", "output directory")
	maxRetries := flag.Int("r", 10, "max retries per level")
	skipSolvability := flag.Bool("s", false, "skip solvability check (faster generation)")
	verbose := flag.Bool("v", false, "verbose output")
	seed := flag.Int64("seed", 1, "RNG seed (fixed for reproducible runs)")
	flag.Parse()

	levelName := "info"
	if *verbose {
		levelName = "debug"
	}
	log := logx.New(levelName)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Error().Err(err).Msg("failed to create output directory")
		os.Exit(1)
	}

	results := make([]levelResult, *count)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.NumCPU())

	for i := 0; i < *count; i++ {
		i := i
		levelID := *startID + i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			rng := frand.NewCustom(seedBytes(*seed, levelID), 1024, 20)

			var res levelResult
			if *skipSolvability {
				res.board = generate.GenerateUnchecked(rng, levelID)
				res.ok = true
			} else {
				b, report := generate.GenerateSolvableLevel(rng, levelID, *maxRetries)
				res.board = b
				res.ok = !report.Fallback
				log.Debug().
					Int("levelID", levelID).
					Int("attempts", report.Attempts).
					Bool("degraded", report.Degraded).
					Bool("fallback", report.Fallback).
					Msg("generated level")
			}
			res.board.ID = levelID
			res.board.Name = fmt.Sprintf("Level %d", levelID)
			res.board.Type = "normal"
			res.board.Unlocked = levelID == 1

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("generation failed")
		os.Exit(1)
	}

	failed := false
	boards := make([]board.Board, len(results))
	for i, r := range results {
		if !r.ok {
			failed = true
			log.Warn().Int("levelID", r.board.ID).Msg("level accepted only as a fallback board")
		}
		boards[i] = r.board
	}

	combined, err := persist.EncodeBoards(boards)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode combined levels file")
		os.Exit(1)
	}
	if err := os.WriteFile(filepath.Join(*outDir, *outFile), combined, 0o644); err != nil {
		log.Error().Err(err).Msg("failed to write combined levels file")
		os.Exit(1)
	}

	for _, b := range boards {
		data, err := persist.EncodeBoardAsSequence(b)
		if err != nil {
			log.Error().Err(err).Int("levelID", b.ID).Msg("failed to encode level file")
			failed = true
			continue
		}
		path := filepath.Join(*outDir, persist.PerBoardFilename(b.ID))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			log.Error().Err(err).Str("path", path).Msg("failed to write level file")
			failed = true
		}
	}

	log.Info().Int("levels", len(boards)).Str("dir", *outDir).Msg("generation complete")

	if failed {
		os.Exit(1)
	}
}
