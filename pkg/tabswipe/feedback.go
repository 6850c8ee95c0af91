package tabswipe

import (
	"math"
	"time"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/internal"
)

// FeedbackState is the observable visual state for the view layer.
//
// Displacement is the horizontal offset to render. While tracking it stays
// within ±maxTranslate; during a commit it runs out to the full viewport width.
// IndicatorDirection is the screen edge the indicator sits on, which is the
// opposite of the swipe direction: dragging content left reveals the next
// route on the right edge.
type FeedbackState struct {
	Phase              Phase
	Displacement       float64
	IndicatorVisible   bool
	IndicatorDirection constants.Direction
	IndicatorTarget    RouteID
	IndicatorOpacity   float64 // 0..1
	IndicatorProgress  float64 // 0..1, |displacement| / maxTranslate
	ContentOpacity     float64 // 1 at rest, MinContentOpacity at full travel
}

// IdleFeedback is the state before any gesture and after every settle.
func IdleFeedback() FeedbackState {
	return FeedbackState{Phase: PhaseIdle, ContentOpacity: 1}
}

// FeedbackController drives displacement and indicator through
// Idle → Tracking → Committing | Cancelling → Idle. It does not know which
// route is committed to; the continuation passed to Commit does.
type FeedbackController struct {
	cfg          Config
	viewport     float64
	maxTranslate float64

	state FeedbackState

	opacity      internal.Tween
	exit         internal.Tween
	spring       internal.Spring
	continuation func()
}

func NewFeedbackController(cfg Config, viewportWidth float64) *FeedbackController {
	f := &FeedbackController{cfg: cfg, state: IdleFeedback()}
	f.setViewport(viewportWidth)
	return f
}

func (f *FeedbackController) setViewport(width float64) {
	f.viewport = width
	f.maxTranslate = width * f.cfg.MaxTranslateFraction
}

// State returns the current visual state.
func (f *FeedbackController) State() FeedbackState {
	return f.state
}

// Phase returns the current phase.
func (f *FeedbackController) Phase() Phase {
	return f.state.Phase
}

// Begin enters Tracking from a clean slate and starts fading the indicator in.
// Callers preempt any running animation first.
func (f *FeedbackController) Begin() {
	f.reset()
	f.state.Phase = PhaseTracking
	f.opacity = internal.NewTween(0, 1, f.cfg.IndicatorFadeIn, internal.Linear)
}

// Track mirrors the boundary policy's output while Tracking. A zero edge or
// an empty target hides the indicator.
func (f *FeedbackController) Track(displacement float64, edge constants.Direction, target RouteID) {
	if f.state.Phase != PhaseTracking {
		return
	}
	f.state.Displacement = displacement
	f.state.IndicatorDirection = edge
	f.state.IndicatorTarget = target
	f.state.IndicatorVisible = edge != constants.DirectionNone && target != ""
	f.updateDerived()
}

// Commit animates the content off screen in dir and fades the indicator out.
// When the animation completes the displacement resets, then runs, and the
// phase returns to Idle.
func (f *FeedbackController) Commit(dir constants.Direction, then func()) {
	f.state.Phase = PhaseCommitting
	f.continuation = then
	duration := f.cfg.CommitAnimationDuration
	f.exit = internal.NewTween(f.state.Displacement, dir.Sign()*f.viewport, duration, internal.EaseInOut)
	f.opacity = internal.NewTween(f.state.IndicatorOpacity, 0, duration, internal.EaseInOut)
}

// Cancel springs the content back to rest, seeded with the release velocity
// scaled by SpringVelocityScale, and fades the indicator out. then runs once
// both have settled.
func (f *FeedbackController) Cancel(releaseVelocity float64, then func()) {
	f.state.Phase = PhaseCancelling
	f.continuation = then
	velocity := releaseVelocity * f.cfg.SpringVelocityScale
	f.spring = internal.NewSpring(f.cfg.SpringTension, f.cfg.SpringFriction, f.state.Displacement, velocity, 0)
	f.opacity = internal.NewTween(f.state.IndicatorOpacity, 0, f.cfg.CancelFadeDuration, internal.Linear)
}

// Preempt abandons any running animation, snaps back to Idle, and hands the
// pending continuation (if any) to the caller to run or drop.
func (f *FeedbackController) Preempt() (Phase, func()) {
	phase := f.state.Phase
	then := f.continuation
	f.reset()
	return phase, then
}

// Advance moves the running animations forward by dt. Completion
// continuations run inside Advance, after the state has returned to Idle.
func (f *FeedbackController) Advance(dt time.Duration) {
	switch f.state.Phase {
	case PhaseTracking:
		f.state.IndicatorOpacity, _ = f.opacity.Advance(dt)

	case PhaseCommitting:
		f.state.Displacement, _ = f.exit.Advance(dt)
		f.state.IndicatorOpacity, _ = f.opacity.Advance(dt)
		f.updateDerived()
		if f.exit.Done() && f.opacity.Done() {
			f.settle()
		}

	case PhaseCancelling:
		position, rested := f.spring.Advance(dt)
		f.state.Displacement = position
		f.state.IndicatorOpacity, _ = f.opacity.Advance(dt)
		f.updateDerived()
		if rested && f.opacity.Done() {
			f.settle()
		}
	}
}

func (f *FeedbackController) settle() {
	then := f.continuation
	f.reset()
	if then != nil {
		then()
	}
}

func (f *FeedbackController) reset() {
	f.state = IdleFeedback()
	f.continuation = nil
	f.opacity = internal.Tween{}
	f.exit = internal.Tween{}
	f.spring = internal.Spring{}
}

func (f *FeedbackController) updateDerived() {
	progress := 0.0
	if f.maxTranslate > 0 {
		progress = math.Min(1, math.Abs(f.state.Displacement)/f.maxTranslate)
	}
	f.state.IndicatorProgress = progress
	f.state.ContentOpacity = 1 - (1-constants.MinContentOpacity)*progress
}
