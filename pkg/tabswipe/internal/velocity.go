package internal

import "time"

const (
	defaultVelocityWindow = 100 * time.Millisecond
	maxVelocitySamples    = 20
)

type positionSample struct {
	x, y float64
	at   time.Duration
}

// VelocityTracker estimates pointer velocity from timestamped positions.
// Platform input layers that only report positions use it to fill
// GestureSample.VelocityX. Only samples inside the window are considered,
// so a pointer that stops before release reports a velocity near zero.
type VelocityTracker struct {
	samples []positionSample
	window  time.Duration
}

func NewVelocityTracker() *VelocityTracker {
	return NewVelocityTrackerWithWindow(defaultVelocityWindow)
}

func NewVelocityTrackerWithWindow(window time.Duration) *VelocityTracker {
	return &VelocityTracker{
		samples: make([]positionSample, 0, maxVelocitySamples),
		window:  window,
	}
}

// Add records a position at a monotonic timestamp.
func (v *VelocityTracker) Add(x, y float64, at time.Duration) {
	if n := len(v.samples); n > 0 && at < v.samples[n-1].at {
		// clock went backwards, start over
		v.samples = v.samples[:0]
	}
	if len(v.samples) == maxVelocitySamples {
		copy(v.samples, v.samples[1:])
		v.samples = v.samples[:len(v.samples)-1]
	}
	v.samples = append(v.samples, positionSample{x: x, y: y, at: at})
}

// Velocity returns the (x, y) velocity in units per second.
func (v *VelocityTracker) Velocity() (float64, float64) {
	n := len(v.samples)
	if n < 2 {
		return 0, 0
	}

	last := v.samples[n-1]
	first := last
	for i := n - 2; i >= 0; i-- {
		if last.at-v.samples[i].at > v.window {
			break
		}
		first = v.samples[i]
	}

	dt := (last.at - first.at).Seconds()
	if dt <= 0 {
		return 0, 0
	}
	return (last.x - first.x) / dt, (last.y - first.y) / dt
}

func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}
