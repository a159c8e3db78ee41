package util

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// InitLogger installs the default slog logger. Records go to w and, when
// logPath is set, are appended to that file as well. The returned function
// closes the log file.
func InitLogger(w io.Writer, logPath string, logLevel string) (func() error, error) {
	closer := func() error { return nil }
	out := w

	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o666)
		if err != nil {
			return closer, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(w, logFile)
		closer = logFile.Close
	}

	level, levelErr := ParseLogLevel(logLevel)

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	if levelErr != nil {
		slog.Warn(levelErr.Error())
	}

	slog.Debug("logger configured", "level", level.String(), "file", logPath)
	return closer, nil
}

// ParseLogLevel maps DEBUG, INFO, WARN and ERROR to slog levels. Anything
// else yields INFO and an error.
func ParseLogLevel(levelStr string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO", "":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q, using INFO", levelStr)
	}
}
