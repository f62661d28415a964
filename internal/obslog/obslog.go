// Package obslog configures structured logging for the lexsleuth binary.
//
// This is the teacher's util.InitSlog, unchanged in shape: slog.TextHandler
// on stderr, level sourced from LOG_LEVEL. lexsleuth additionally accepts a
// CLI verbosity flag that takes precedence over the environment, since the
// classify and train subcommands both want -v without requiring callers to
// export an environment variable first.
package obslog

import (
	"log/slog"
	"os"
	"strings"
)

// Init configures slog based on the LOG_LEVEL environment variable.
// Supported levels: debug, info, warn, error.
func Init() {
	level := slog.LevelInfo
	if logLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		level = parseLevel(logLevel)
	}
	install(level)
}

// InitVerbosity configures slog from the -v/--verbose flag: debug level
// when verbose is true, overriding LOG_LEVEL so `--verbose` always wins
// over the ambient environment; otherwise the same as Init.
func InitVerbosity(verbose bool) {
	if !verbose {
		Init()
		return
	}
	install(slog.LevelDebug)
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func install(level slog.Level) {
	opts := &slog.HandlerOptions{Level: level}
	handler := slog.NewTextHandler(os.Stderr, opts)
	slog.SetDefault(slog.New(handler))
}
