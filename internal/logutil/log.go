// internal/logutil/log.go
package logutil

import (
	"io"

	"github.com/rs/zerolog"
)

// New builds the console logger the tools report progress with. Warnings
// and errors survive --quiet; informational progress does not.
func New(w io.Writer, quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if quiet {
		level = zerolog.WarnLevel
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
