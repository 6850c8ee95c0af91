package tabswipe

import (
	"math"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
)

// Phase is the feedback state of the controller.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTracking
	PhaseCommitting
	PhaseCancelling
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTracking:
		return "tracking"
	case PhaseCommitting:
		return "committing"
	case PhaseCancelling:
		return "cancelling"
	default:
		return "unknown"
	}
}

// Axis is the axis a drag has locked onto.
type Axis int

const (
	AxisUndetermined Axis = iota
	AxisHorizontal
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "undetermined"
	}
}

// GestureSession is the bookkeeping for one drag, from touch-down until its
// feedback settles. Direction and LockedAxis are written only by the
// classifier; Displacement only by the boundary policy.
type GestureSession struct {
	ID           uint64
	Phase        Phase
	Direction    constants.Direction
	LockedAxis   Axis
	Displacement float64

	Last       GestureSample
	MaxAbsX    float64
	MaxAbsY    float64
	Updates    int
	StartIndex int
	Viewport   float64 // viewport width when the gesture started
}

func newSession(id uint64, startIndex int, viewport float64) *GestureSession {
	return &GestureSession{
		ID:         id,
		Phase:      PhaseTracking,
		StartIndex: startIndex,
		Viewport:   viewport,
	}
}

func (s *GestureSession) record(sample GestureSample) {
	s.Last = sample
	s.Updates++
	s.MaxAbsX = math.Max(s.MaxAbsX, math.Abs(sample.TranslationX))
	s.MaxAbsY = math.Max(s.MaxAbsY, math.Abs(sample.TranslationY))
}
