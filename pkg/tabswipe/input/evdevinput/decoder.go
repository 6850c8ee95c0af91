// Package evdevinput reads single-finger drags from a Linux touchscreen.
//
// Decoder is a pure state machine over evdev events and can be fed from
// anywhere. Reader owns the device and feeds a Decoder from its own
// goroutine, so its handler should come from Dispatcher.Handler.
package evdevinput

import (
	"syscall"
	"time"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/internal"
	evdev "github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// Range is the raw span an absolute axis reports.
type Range struct {
	Min int32
	Max int32
}

// scale maps raw into [0, size]. A degenerate range passes raw through.
func (r Range) scale(raw int32, size float64) float64 {
	if r.Max <= r.Min {
		return float64(raw)
	}
	return float64(raw-r.Min) / float64(r.Max-r.Min) * size
}

// Decoder assembles evdev frames into gesture callbacks. Only the first
// multitouch slot is followed.
type Decoder struct {
	handler tabswipe.GestureHandler
	width   atomic.Float64
	height  atomic.Float64
	xRange  Range
	yRange  Range

	tracker *internal.VelocityTracker

	slot     int32
	rawX     int32
	rawY     int32
	haveX    bool
	haveY    bool
	touching bool
	dirty    bool
	moved    bool

	started bool
	startX  float64
	startY  float64
	last    tabswipe.GestureSample
}

func NewDecoder(handler tabswipe.GestureHandler, width, height float64, xRange, yRange Range) *Decoder {
	d := &Decoder{
		handler: handler,
		xRange:  xRange,
		yRange:  yRange,
		tracker: internal.NewVelocityTracker(),
	}
	d.SetViewport(width, height)
	return d
}

// SetViewport changes the size raw coordinates are scaled to. It may be
// called from another goroutine than the one feeding events.
func (d *Decoder) SetViewport(width, height float64) {
	d.width.Store(width)
	d.height.Store(height)
}

// Feed consumes one event. Callbacks fire on SYN_REPORT.
func (d *Decoder) Feed(ev evdev.InputEvent) {
	switch ev.Type {
	case evdev.EV_ABS:
		d.feedAbs(ev.Code, ev.Value)
	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			d.touching = ev.Value != 0
			d.dirty = true
		}
	case evdev.EV_SYN:
		if ev.Code == evdev.SYN_REPORT {
			d.report(timestamp(ev.Time))
		}
	}
}

func (d *Decoder) feedAbs(code evdev.EvCode, value int32) {
	switch code {
	case evdev.ABS_MT_SLOT:
		d.slot = value
	case evdev.ABS_MT_TRACKING_ID:
		if d.slot == 0 {
			d.touching = value >= 0
			d.dirty = true
		}
	case evdev.ABS_MT_POSITION_X:
		if d.slot == 0 {
			d.setX(value)
		}
	case evdev.ABS_MT_POSITION_Y:
		if d.slot == 0 {
			d.setY(value)
		}
	case evdev.ABS_X:
		d.setX(value)
	case evdev.ABS_Y:
		d.setY(value)
	}
}

func (d *Decoder) setX(value int32) {
	d.rawX, d.haveX, d.dirty, d.moved = value, true, true, true
}

func (d *Decoder) setY(value int32) {
	d.rawY, d.haveY, d.dirty, d.moved = value, true, true, true
}

func (d *Decoder) report(at time.Duration) {
	if !d.dirty {
		return
	}
	moved := d.moved
	d.dirty, d.moved = false, false

	x := d.xRange.scale(d.rawX, d.width.Load())
	y := d.yRange.scale(d.rawY, d.height.Load())

	switch {
	case d.touching && !d.started:
		if !d.haveX || !d.haveY {
			return
		}
		d.started = true
		d.startX, d.startY = x, y
		d.last = tabswipe.GestureSample{}
		d.tracker.Reset()
		d.tracker.Add(x, y, at)
		d.handler.OnGestureStart()

	case d.touching:
		d.last = d.sample(x, y, at)
		d.handler.OnGestureUpdate(d.last)

	case d.started:
		d.started = false
		// a lift without movement keeps the velocity of the last move
		end := d.last
		if moved && d.haveX && d.haveY {
			end = d.sample(x, y, at)
		}
		d.tracker.Reset()
		d.handler.OnGestureEnd(end)
	}
}

func (d *Decoder) sample(x, y float64, at time.Duration) tabswipe.GestureSample {
	d.tracker.Add(x, y, at)
	vx, _ := d.tracker.Velocity()
	return tabswipe.GestureSample{
		TranslationX: x - d.startX,
		TranslationY: y - d.startY,
		VelocityX:    vx,
	}
}

// Touching reports whether a finger is down as of the last frame.
func (d *Decoder) Touching() bool {
	return d.started
}

func timestamp(tv syscall.Timeval) time.Duration {
	return time.Duration(tv.Sec)*time.Second + time.Duration(tv.Usec)*time.Microsecond
}
