// Package logx builds the zerolog logger shared by the host CLIs, a
// console writer by default with a level parsed from its caller.
package logx

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console-formatted logger at the given level. An empty
// or unrecognized level name falls back to info rather than
// propagating a parse error for a cosmetic flag.
func New(levelName string) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil || levelName == "" {
		level = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
