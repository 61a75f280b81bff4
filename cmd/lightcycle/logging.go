package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logFileName = "lightcycle.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging opens dir/lightcycle.log for the session logger
// The terminal owns stdout and stderr while a round is drawn, so logs only ever go to the file.
// Disabled logging returns a no-op logger and a nil file.
func setupLogging(enabled bool, dir, level string) (zerolog.Logger, *os.File) {
	if !enabled {
		return zerolog.Nop(), nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		return zerolog.Nop(), nil
	}

	logPath := filepath.Join(dir, logFileName)
	rotateLog(logPath)

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return zerolog.Nop(), nil
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	logger := zerolog.New(file).Level(lvl).With().Timestamp().Logger()
	logger.Info().Str("path", logPath).Str("level", lvl.String()).Msg("logging started")
	return logger, file
}

// rotateLog moves an oversized log aside under a timestamped name
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	ext := filepath.Ext(logPath)
	rotated := fmt.Sprintf("%s.%s%s", logPath[:len(logPath)-len(ext)], time.Now().Format("20060102_150405"), ext)
	if err := os.Rename(logPath, rotated); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
	}
}
