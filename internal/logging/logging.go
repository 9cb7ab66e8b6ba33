// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/ytget/video-player/internal/platform"
)

// DefaultLevel is used when the configured level cannot be parsed
const DefaultLevel = log.InfoLevel

const logFilePermissions = 0644

// Setup applies level and output to the standard logger. An empty file keeps
// stderr. The returned closer releases the log file and is never nil.
func Setup(level, file string) (io.Closer, error) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(ParseLevel(level))

	if file == "" {
		log.SetOutput(os.Stderr)
		return io.NopCloser(nil), nil
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(file)); err != nil {
		return io.NopCloser(nil), fmt.Errorf("create log directory: %w", err)
	}
	f, err := platform.API().OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_APPEND, logFilePermissions)
	if err != nil {
		return io.NopCloser(nil), fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

// ParseLevel parses a logrus level name, falling back to DefaultLevel
func ParseLevel(level string) log.Level {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		return DefaultLevel
	}
	return parsed
}
