package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// SetupLogger builds the application logger for the given environment.
// Local gets human-readable text on stdout with debug enabled; dev and
// prod write JSON to a log file, falling back to stdout when the file
// cannot be opened.
func SetupLogger(env, logDir string) *slog.Logger {
	switch env {
	case envDev:
		return slog.New(slog.NewJSONHandler(logWriter(logDir), &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(logWriter(logDir), &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func logWriter(logDir string) io.Writer {
	path := filepath.Join(logDir, "hotelos.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return os.Stdout
	}
	return file
}
