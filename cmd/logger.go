package cmd

import (
	"io"
	"log/slog"
	"strings"

	"github.com/labstack/gommon/log"
)

// NewLogger creates the application logger. level is one of debug, info,
// warn or error; anything else means info. The second result is the matching
// level for echo's own logger.
func NewLogger(w io.Writer, level string) (*slog.Logger, log.Lvl) {
	slogLevel, echoLevel := slog.LevelInfo, log.INFO

	switch strings.ToUpper(level) {
	case "DEBUG":
		slogLevel, echoLevel = slog.LevelDebug, log.DEBUG
	case "WARN":
		slogLevel, echoLevel = slog.LevelWarn, log.WARN
	case "ERROR":
		slogLevel, echoLevel = slog.LevelError, log.ERROR
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slogLevel,
	})

	return slog.New(handler), echoLevel
}
