package rlog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var Zero = NewZeroLogger("")

// NewZeroLogger creates a console logger writing to filepath,
// or to stderr when filepath is empty.
func NewZeroLogger(filepath string) *zerolog.Logger {
	writer, err := newWriter(filepath)
	if err != nil {
		writer = os.Stderr
	}
	output := zerolog.ConsoleWriter{Out: writer, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger().Level(zerolog.InfoLevel)

	return &logger
}

// ReloadLogger points Zero at a new destination, keeping the current level.
func ReloadLogger(filepath string) {
	if filepath == "" {
		return
	}
	level := Zero.GetLevel()
	logger := NewZeroLogger(filepath).Level(level)
	Zero = &logger
}

func UpdateZeroLogLevel(logLevel string) error {
	level := parseLevel(logLevel)
	zeroLogger := Zero.With().Logger().Level(level)
	Zero = &zeroLogger
	return nil
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// newWriter opens filepath in append mode, or returns stderr for an empty path.
func newWriter(filepath string) (io.Writer, error) {
	if filepath == "" {
		return os.Stderr, nil
	}
	return os.OpenFile(filepath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}
