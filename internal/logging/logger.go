package logging

import (
	"log/slog"
	"os"
	"strings"

	"github.com/groupbuy-labs/groupbuy-cli/internal/config"
)

// NewLogger creates the process logger. Level comes from GROUPBUY_LOG_LEVEL;
// the debug flag forces debug level regardless.
func NewLogger(cfg *config.RuntimeConfig) *slog.Logger {
	level := slog.LevelInfo

	if val := strings.ToLower(os.Getenv("GROUPBUY_LOG_LEVEL")); val != "" {
		switch val {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn", "warning":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			// unknown value, keep default
		}
	}
	if cfg.Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time for cleaner interactive output
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
