// Package internal contains the gesture plumbing shared by the tabswipe
// packages: logging, animation primitives and velocity estimation.
// Types and functions in this package are not part of the public API.
package internal

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logFile *os.File
	logPath string

	setupOnce sync.Once
	output    io.Writer

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   = &slog.LevelVar{}

	internalLoggerOnce sync.Once
	internalLogger     *slog.Logger
	internalLevelVar   = &slog.LevelVar{}
)

// SetLogPath sets the full path for the log file, including filename.
// Parent directories are created on first use. Without a path, logs go to stdout only.
func SetLogPath(path string) {
	logPath = path
}

// SetLogOutput replaces the log destination. It must be called before the
// first logger is requested.
func SetLogOutput(w io.Writer) {
	output = w
}

func setup() {
	setupOnce.Do(func() {
		if output != nil {
			return
		}
		output = os.Stdout

		if logPath == "" {
			return
		}
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			// console only
			return
		}
		logFile = f
		output = io.MultiWriter(os.Stdout, logFile)
	})
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		setup()
		logger = slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{
			Level: levelVar,
		}))
	})
	return logger
}

// GetInternalLogger returns the logger used by the gesture controller itself.
// It defaults to error level so hosts only see controller chatter when they ask for it.
func GetInternalLogger() *slog.Logger {
	internalLoggerOnce.Do(func() {
		setup()
		internalLevelVar.Set(slog.LevelError)
		internalLogger = slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{
			Level: internalLevelVar,
		})).With("component", "tabswipe")
	})
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	GetInternalLogger()
	internalLevelVar.Set(level)
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(rawLevel)) {
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

func SetRawLogLevel(rawLevel string) {
	SetLogLevel(ParseLevel(rawLevel))
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}
