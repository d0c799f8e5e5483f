// Package logging builds the zerolog logger used for warnings and debug tracing.
//
// Warnings (repeated bookmarks, stub collisions) and --debug tracing go
// through this logger on stderr. Fatal errors are reported separately by the
// output.Printer so the two streams stay distinguishable.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the logger behavior.
type Config struct {
	// Debug lowers the level from info to debug.
	Debug bool

	// JSON forces structured JSON lines instead of the console writer.
	JSON bool

	// NoColor disables ANSI colors in console mode.
	NoColor bool
}

// ConfigFromEnv returns a Config seeded from LOG_FORMAT and NO_COLOR.
func ConfigFromEnv(debug bool) Config {
	return Config{
		Debug:   debug,
		JSON:    os.Getenv("LOG_FORMAT") == "json",
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// New creates a logger writing to w.
func New(w io.Writer, cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	if !cfg.JSON {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.DateTime,
			NoColor:    cfg.NoColor,
		}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
