package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

// Init sets up the JSON logger. Level defaults to Info; LOG_DEBUG=true
// enables debug output for local development.
func Init() {
	level := slog.LevelInfo
	if os.Getenv("LOG_DEBUG") == "true" {
		level = slog.LevelDebug
	}
	Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
