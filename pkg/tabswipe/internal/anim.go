package internal

import (
	"math"
	"time"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
	"github.com/charmbracelet/harmonica"
)

// EaseFunc maps linear progress in [0,1] to eased progress in [0,1].
type EaseFunc func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInOut is a cubic ease-in-out curve.
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Tween moves a value from one point to another over a fixed duration.
type Tween struct {
	from, to float64
	duration time.Duration
	elapsed  time.Duration
	ease     EaseFunc
}

func NewTween(from, to float64, duration time.Duration, ease EaseFunc) Tween {
	if ease == nil {
		ease = Linear
	}
	return Tween{from: from, to: to, duration: duration, ease: ease}
}

// Advance moves the tween forward by dt and returns the new value and
// whether the tween has reached its end.
func (t *Tween) Advance(dt time.Duration) (float64, bool) {
	if dt > 0 {
		t.elapsed += dt
	}
	if t.elapsed > t.duration {
		t.elapsed = t.duration
	}
	return t.Value(), t.Done()
}

func (t *Tween) Value() float64 {
	if t.duration <= 0 || t.elapsed >= t.duration {
		return t.to
	}
	p := float64(t.elapsed) / float64(t.duration)
	return t.from + (t.to-t.from)*t.ease(p)
}

func (t *Tween) Done() bool {
	return t.elapsed >= t.duration
}

// Target returns the value the tween ends at.
func (t *Tween) Target() float64 {
	return t.to
}

// Spring is a damped harmonic oscillator pulling a value towards a target.
// Tension and friction follow the Origami convention used by mobile
// animation libraries and are converted to stiffness and damping once.
type Spring struct {
	angularFrequency float64
	dampingRatio     float64

	position float64
	velocity float64
	target   float64
	settled  bool
}

// NewSpring creates a spring at position moving with velocity (units/sec)
// towards target.
func NewSpring(tension, friction, position, velocity, target float64) Spring {
	stiffness := (tension-30)*3.62 + 194
	damping := (friction-8)*3 + 25
	if stiffness <= 0 {
		stiffness = 1
	}

	s := Spring{
		angularFrequency: math.Sqrt(stiffness),
		dampingRatio:     damping / (2 * math.Sqrt(stiffness)),
		position:         position,
		velocity:         velocity,
		target:           target,
	}
	s.checkRest()
	return s
}

// Advance integrates the spring by dt and returns the new position and
// whether it has come to rest. A settled spring sits exactly on its target.
func (s *Spring) Advance(dt time.Duration) (float64, bool) {
	if s.settled || dt <= 0 {
		return s.position, s.settled
	}

	step := harmonica.NewSpring(dt.Seconds(), s.angularFrequency, s.dampingRatio)
	s.position, s.velocity = step.Update(s.position, s.velocity, s.target)
	s.checkRest()

	return s.position, s.settled
}

func (s *Spring) checkRest() {
	if math.Abs(s.position-s.target) < constants.SpringRestDisplacementPx &&
		math.Abs(s.velocity) < constants.SpringRestSpeedPxPerSec {
		s.position = s.target
		s.velocity = 0
		s.settled = true
	}
}

func (s *Spring) Position() float64 { return s.position }
func (s *Spring) Velocity() float64 { return s.velocity }
func (s *Spring) Settled() bool     { return s.settled }
