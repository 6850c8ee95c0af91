// Package tabswipe turns a continuous drag signal into discrete "switch to
// the adjacent tab" commands.
//
// A Controller receives gesture callbacks from a platform input layer,
// locks each drag to the horizontal or vertical axis, rubber-bands drags
// against the first and last tab, decides at release whether to commit or
// cancel, and publishes a FeedbackState for the view layer to render. The
// actual route switch goes through a NavigationBridge, and only after the
// exit animation has finished.
//
// Everything runs on one UI loop:
//
//	ctrl, err := tabswipe.New(tabs, tabswipe.Options{ViewportWidth: 390})
//	...
//	for running {
//	    // platform events -> ctrl.OnGestureStart / OnGestureUpdate / OnGestureEnd
//	    ctrl.Advance(frameTime)
//	    render(ctrl.State())
//	}
package tabswipe

import (
	"io"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/internal"
)

// LogOptions configures logging for the tabswipe packages.
type LogOptions struct {
	LogPath string    // Full path for a log file; empty logs to stdout only
	Output  io.Writer // Replaces stdout (and the log file) when set, mainly for tests
	Level   string    // Application log level; falls back to TABSWIPE_LOG_LEVEL
	Debug   bool      // Enable debug output from the controller internals
}

// InitLogging sets up the application and internal loggers. Call it before
// creating a Controller to take effect.
func InitLogging(opts LogOptions) {
	if opts.Output != nil {
		internal.SetLogOutput(opts.Output)
	} else if opts.LogPath != "" {
		internal.SetLogPath(opts.LogPath)
	}

	level := opts.Level
	if level == "" {
		level = os.Getenv(constants.LogLevelEnvVar)
	}
	internal.SetRawLogLevel(level)

	if opts.Debug || internal.ParseLevel(level) == slog.LevelDebug {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLogging closes the log file, if one was opened.
func CloseLogging() {
	internal.CloseLogger()
}
