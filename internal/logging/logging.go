// Package logging builds the process-wide structured logger. Output must be
// stderr when serving MCP, since stdout carries the protocol stream.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/kmilner/schoology-mcp/internal/version"
)

func New(output io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level: parseLevel(level),
	})

	return slog.New(handler).With("service", "schoology-mcp", "version", version.Version)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
