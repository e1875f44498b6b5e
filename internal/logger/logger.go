package logger

import (
	"log/slog"
	"os"
)

// New builds the service-wide JSON slog.Logger writing to stdout.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler)
}
