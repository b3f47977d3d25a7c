package triangle

import (
	"log/slog"
	"os"
)

// logLevel controls the level for renderer logging.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for the renderer.
// Call this from main() before New.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// defaultLogger is used when no logger is supplied with WithLogger.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return defaultLogger
	}
	return l
}
