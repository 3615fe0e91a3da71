package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the logger the evaluation suites run with. Output goes to
// stderr in console form so it interleaves readably with `go test` output,
// which owns stdout.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
