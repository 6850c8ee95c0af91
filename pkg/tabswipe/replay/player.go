package replay

import (
	"time"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/internal"
)

// maxSettle bounds how long Play animates a gesture that never settles.
const maxSettle = 10 * time.Second

// Result is what one replayed gesture did.
type Result struct {
	Name     string
	Decision tabswipe.Decision
	From     tabswipe.RouteID // Active route when the gesture started
	To       tabswipe.RouteID // Active route once the gesture was resolved
	Frames   int              // Frames advanced, tracking and animation
}

// Player feeds traces into a Controller one frame at a time.
type Player struct {
	ctrl   *tabswipe.Controller
	bridge tabswipe.NavigationBridge
	frame  time.Duration
}

// NewPlayer creates a Player advancing ctrl by frame between samples.
func NewPlayer(ctrl *tabswipe.Controller, bridge tabswipe.NavigationBridge, frame time.Duration) *Player {
	if frame <= 0 {
		frame = time.Second / 60
	}
	return &Player{ctrl: ctrl, bridge: bridge, frame: frame}
}

// Play replays every gesture in order. A gesture with a pause shorter than
// its animation is preempted by the next one, and its To is the route
// active once that next gesture has started.
func (p *Player) Play(t Trace) []Result {
	results := make([]Result, 0, len(t.Gestures))

	for i, g := range t.Gestures {
		p.ctrl.OnGestureStart()
		if i > 0 {
			results[i-1].To = p.current()
		}

		r := Result{Name: g.Label(i), From: p.current()}
		r.Frames = p.drag(g)
		r.Decision = p.ctrl.LastDecision()
		r.Frames += p.animate(g.Pause)
		results = append(results, r)
	}

	if n := len(results); n > 0 {
		results[n-1].Frames += p.animate(0)
		results[n-1].To = p.current()
	}
	return results
}

func (p *Player) drag(g Gesture) int {
	tracker := internal.NewVelocityTracker()
	var sample tabswipe.GestureSample

	for i, pt := range g.Points {
		at := time.Duration(i) * p.frame
		tracker.Add(pt[0], pt[1], at)
		vx, _ := tracker.Velocity()
		sample = tabswipe.GestureSample{TranslationX: pt[0], TranslationY: pt[1], VelocityX: vx}

		if i == len(g.Points)-1 {
			break
		}
		p.ctrl.OnGestureUpdate(sample)
		p.ctrl.Advance(p.frame)
	}

	if g.ReleaseVelocity != nil {
		sample.VelocityX = *g.ReleaseVelocity
	}
	p.ctrl.OnGestureEnd(sample)
	return len(g.Points) - 1
}

// animate advances until the controller is idle, or for pause when set.
func (p *Player) animate(pause time.Duration) int {
	limit := pause
	if limit <= 0 {
		limit = maxSettle
	}

	frames := 0
	for elapsed := time.Duration(0); elapsed < limit; elapsed += p.frame {
		if pause <= 0 && p.ctrl.State().Phase == tabswipe.PhaseIdle {
			break
		}
		p.ctrl.Advance(p.frame)
		frames++
	}
	return frames
}

func (p *Player) current() tabswipe.RouteID {
	order := p.ctrl.RouteOrder()
	i := p.bridge.CurrentIndex()
	if i < 0 || i >= len(order) {
		return ""
	}
	return order[i]
}
