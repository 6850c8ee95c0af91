// Package sdlinput turns SDL mouse and touch events into gesture callbacks.
//
// Call Handle for every polled event on the UI loop. The first button or
// finger down starts a gesture; other pointers are ignored until it ends.
package sdlinput

import (
	"time"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/internal"
	"github.com/veandco/go-sdl2/sdl"
)

type source int

const (
	sourceNone source = iota
	sourceMouse
	sourceFinger
)

// Translator tracks one pointer and reports its drag to a GestureHandler.
type Translator struct {
	handler tabswipe.GestureHandler
	width   float64
	height  float64

	tracker     *internal.VelocityTracker
	ignoreTouch bool
	active      source
	finger      sdl.FingerID
	startX      float64
	startY      float64
}

// New creates a Translator. Touch coordinates arrive normalized to 0..1 and
// are scaled by the viewport size.
func New(handler tabswipe.GestureHandler, width, height float64) *Translator {
	return &Translator{
		handler: handler,
		width:   width,
		height:  height,
		tracker: internal.NewVelocityTracker(),
	}
}

// SetViewport updates the size used to scale touch coordinates.
func (t *Translator) SetViewport(width, height float64) {
	t.width, t.height = width, height
}

// IgnoreTouch makes Handle skip finger events, for when another reader
// such as evdevinput already follows the touchscreen.
func (t *Translator) IgnoreTouch(ignore bool) {
	t.ignoreTouch = ignore
}

// Active reports whether a gesture is in progress.
func (t *Translator) Active() bool {
	return t.active != sourceNone
}

// Handle consumes pointer events and reports whether the event was used.
func (t *Translator) Handle(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Which == sdl.TOUCH_MOUSEID || e.Button != sdl.BUTTON_LEFT {
			return false
		}
		x, y, at := float64(e.X), float64(e.Y), stamp(e.Timestamp)
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return t.begin(sourceMouse, 0, x, y, at)
		}
		return t.end(sourceMouse, 0, x, y, at)

	case *sdl.MouseMotionEvent:
		if e.Which == sdl.TOUCH_MOUSEID {
			return false
		}
		return t.move(sourceMouse, 0, float64(e.X), float64(e.Y), stamp(e.Timestamp))

	case *sdl.TouchFingerEvent:
		if t.ignoreTouch {
			return false
		}
		x, y, at := float64(e.X)*t.width, float64(e.Y)*t.height, stamp(e.Timestamp)
		switch e.Type {
		case sdl.FINGERDOWN:
			return t.begin(sourceFinger, e.FingerID, x, y, at)
		case sdl.FINGERMOTION:
			return t.move(sourceFinger, e.FingerID, x, y, at)
		case sdl.FINGERUP:
			return t.end(sourceFinger, e.FingerID, x, y, at)
		}
	}
	return false
}

// Cancel ends an in-progress gesture at its last position, for example when
// the window loses focus.
func (t *Translator) Cancel() {
	if t.active == sourceNone {
		return
	}
	t.active = sourceNone
	t.tracker.Reset()
	t.handler.OnGestureEnd(tabswipe.GestureSample{})
}

func (t *Translator) begin(src source, finger sdl.FingerID, x, y float64, at time.Duration) bool {
	if t.active != sourceNone {
		return false
	}
	t.active, t.finger = src, finger
	t.startX, t.startY = x, y
	t.tracker.Reset()
	t.tracker.Add(x, y, at)
	t.handler.OnGestureStart()
	return true
}

func (t *Translator) move(src source, finger sdl.FingerID, x, y float64, at time.Duration) bool {
	if !t.owns(src, finger) {
		return false
	}
	t.handler.OnGestureUpdate(t.sample(x, y, at))
	return true
}

func (t *Translator) end(src source, finger sdl.FingerID, x, y float64, at time.Duration) bool {
	if !t.owns(src, finger) {
		return false
	}
	sample := t.sample(x, y, at)
	t.active = sourceNone
	t.tracker.Reset()
	t.handler.OnGestureEnd(sample)
	return true
}

func (t *Translator) owns(src source, finger sdl.FingerID) bool {
	return t.active == src && (src != sourceFinger || t.finger == finger)
}

func (t *Translator) sample(x, y float64, at time.Duration) tabswipe.GestureSample {
	t.tracker.Add(x, y, at)
	vx, _ := t.tracker.Velocity()
	return tabswipe.GestureSample{
		TranslationX: x - t.startX,
		TranslationY: y - t.startY,
		VelocityX:    vx,
	}
}

func stamp(ms uint32) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
