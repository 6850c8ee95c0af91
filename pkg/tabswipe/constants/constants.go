// Package constants defines shared constants, types, and default values
// used throughout the tabswipe gesture controller.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by tabswipe and its commands.
const (
	LogLevelEnvVar     = "TABSWIPE_LOG_LEVEL" // debug, info, warn, error
	ConfigPathEnvVar   = "TABSWIPE_CONFIG"    // path to a TOML config file
	WindowWidthEnvVar  = "WINDOW_WIDTH"       // dev mode window width
	WindowHeightEnvVar = "WINDOW_HEIGHT"      // dev mode window height
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Direction is the horizontal direction the content is being dragged.
// Dragging content Left moves towards the next route, Right towards the previous one.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

// Opposite returns the mirrored direction. DirectionNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	default:
		return DirectionNone
	}
}

// Sign returns -1 for Left, +1 for Right and 0 for None.
func (d Direction) Sign() float64 {
	switch d {
	case DirectionLeft:
		return -1
	case DirectionRight:
		return 1
	default:
		return 0
	}
}

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// DirectionOf returns the direction matching the sign of a horizontal translation.
func DirectionOf(translationX float64) Direction {
	switch {
	case translationX < 0:
		return DirectionLeft
	case translationX > 0:
		return DirectionRight
	default:
		return DirectionNone
	}
}

// Default gesture tuning. These match the values the mobile app shipped with.
const (
	DefaultActivationThresholdPx     = 15.0  // horizontal travel before the axis locks
	DefaultDistanceThresholdPx       = 80.0  // release distance that commits
	DefaultVelocityThresholdPxPerSec = 800.0 // release velocity that commits
	DefaultMaxTranslateFraction      = 0.3   // of the viewport width
	DefaultResistanceFactor          = 0.2   // damping past a boundary
	DefaultResistanceCapPx           = 40.0  // absolute rubber-band limit
	DefaultVerticalDominanceRatio    = 1.5   // |ty| > |tx| * ratio is vertical
	DefaultVerticalFailThresholdPx   = 20.0  // vertical travel before the axis locks vertical
	DefaultSpringTension             = 50.0
	DefaultSpringFriction            = 9.0
	DefaultSpringVelocityScale       = 0.001 // release velocity reaches the spring in px/ms
)

// Default animation timing.
const (
	DefaultCommitAnimationDuration = 250 * time.Millisecond
	DefaultIndicatorFadeIn         = 200 * time.Millisecond
	DefaultCancelFadeDuration      = 200 * time.Millisecond
)

// Spring rest thresholds. A spring closer than this to its target and slower
// than the rest speed is considered settled and snaps to the target.
const (
	SpringRestDisplacementPx = 0.5
	SpringRestSpeedPxPerSec  = 5.0
)

// MinContentOpacity is the content opacity at full displacement.
const MinContentOpacity = 0.85
