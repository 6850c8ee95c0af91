// Package replay drives a Controller from recorded gesture traces.
//
// A trace is a TOML file with one [[gesture]] table per drag:
//
//	width = 390
//
//	[[gesture]]
//	name = "next tab"
//	points = [[0, 0], [-30, 2], [-70, 3], [-100, 3]]  # tx, ty per frame
//	release_velocity = -600                           # optional, px/s
//	pause = "100ms"                                   # optional, else settle
package replay

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrEmptyTrace indicates a trace without gestures.
var ErrEmptyTrace = errors.New("replay: trace has no gestures")

// Trace is a sequence of recorded gestures.
type Trace struct {
	Width    float64   `toml:"width"` // Viewport width the trace was recorded at; 0 leaves it to the caller
	Gestures []Gesture `toml:"gesture"`
}

// Gesture is one drag sampled once per frame.
type Gesture struct {
	Name            string        `toml:"name"`
	Points          [][]float64   `toml:"points"`           // [tx, ty] translations, one per frame
	ReleaseVelocity *float64      `toml:"release_velocity"` // Overrides the velocity estimated from Points
	Pause           time.Duration `toml:"pause"`            // Time to animate after release; 0 settles fully
}

// LoadTrace reads and validates a trace file.
func LoadTrace(path string) (Trace, error) {
	var t Trace
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return Trace{}, fmt.Errorf("replay: failed to decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Trace{}, fmt.Errorf("replay: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := t.Validate(); err != nil {
		return Trace{}, err
	}
	return t, nil
}

// Validate checks that every gesture has well-formed points.
func (t Trace) Validate() error {
	if len(t.Gestures) == 0 {
		return ErrEmptyTrace
	}
	if t.Width < 0 {
		return fmt.Errorf("replay: negative width %v", t.Width)
	}
	for i, g := range t.Gestures {
		if len(g.Points) == 0 {
			return fmt.Errorf("replay: gesture %d (%s) has no points", i, g.Label(i))
		}
		for j, p := range g.Points {
			if len(p) != 2 {
				return fmt.Errorf("replay: gesture %d (%s) point %d has %d values, want 2", i, g.Label(i), j, len(p))
			}
		}
		if g.Pause < 0 {
			return fmt.Errorf("replay: gesture %d (%s) has a negative pause", i, g.Label(i))
		}
	}
	return nil
}

// Label returns the gesture name, or its position when unnamed.
func (g Gesture) Label(i int) string {
	if g.Name != "" {
		return g.Name
	}
	return fmt.Sprintf("#%d", i+1)
}
