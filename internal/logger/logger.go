package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/christophbittig/network-subnet-assignment/internal/config"
)

// Logger — тонкая обёртка над slog с уровнем и приёмником из конфигурации.
type Logger struct {
	*slog.Logger
}

// New пишет в stderr, чтобы не мешаться в stdout с результатом работы.
func New(cfg *config.Logger) *Logger {
	return NewWithWriter(os.Stderr, cfg)
}

func NewWithWriter(w io.Writer, cfg *config.Logger) *Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(cfg.Level)})
	return &Logger{Logger: slog.New(h)}
}

// parseLevel разбирает уровень из конфигурации; неизвестное значение — info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
