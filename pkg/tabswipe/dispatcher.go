package tabswipe

import (
	"go.uber.org/atomic"
)

const defaultDispatchQueueSize = 256

// Dispatcher moves callbacks produced on other goroutines onto the UI loop.
// Input readers Post; the UI loop calls Drain once per frame.
type Dispatcher struct {
	queue chan func()
	done  chan struct{}

	closed   atomic.Bool
	pending  atomic.Int64
	executed atomic.Uint64
}

// NewDispatcher creates a Dispatcher with room for size queued callbacks.
func NewDispatcher(size int) *Dispatcher {
	if size <= 0 {
		size = defaultDispatchQueueSize
	}
	return &Dispatcher{
		queue: make(chan func(), size),
		done:  make(chan struct{}),
	}
}

// Post queues fn for the UI loop. It blocks while the queue is full and
// returns false once the Dispatcher is closed.
func (d *Dispatcher) Post(fn func()) bool {
	if d.closed.Load() {
		return false
	}
	select {
	case d.queue <- fn:
		d.pending.Inc()
		return true
	case <-d.done:
		return false
	}
}

// Drain runs every queued callback on the calling goroutine and returns how
// many ran.
func (d *Dispatcher) Drain() int {
	n := 0
	for {
		select {
		case fn := <-d.queue:
			d.pending.Dec()
			fn()
			d.executed.Inc()
			n++
		default:
			return n
		}
	}
}

// Pending returns the number of queued callbacks.
func (d *Dispatcher) Pending() int64 {
	return d.pending.Load()
}

// Executed returns the number of callbacks run so far.
func (d *Dispatcher) Executed() uint64 {
	return d.executed.Load()
}

// Close stops accepting callbacks. Queued callbacks can still be drained.
func (d *Dispatcher) Close() {
	if d.closed.Swap(true) {
		return
	}
	close(d.done)
}

// Handler wraps h so each callback is posted to the UI loop instead of
// running on the caller's goroutine.
func (d *Dispatcher) Handler(h GestureHandler) GestureHandler {
	return dispatchedHandler{d: d, h: h}
}

type dispatchedHandler struct {
	d *Dispatcher
	h GestureHandler
}

func (p dispatchedHandler) OnGestureStart() {
	p.d.Post(p.h.OnGestureStart)
}

func (p dispatchedHandler) OnGestureUpdate(sample GestureSample) {
	p.d.Post(func() { p.h.OnGestureUpdate(sample) })
}

func (p dispatchedHandler) OnGestureEnd(sample GestureSample) {
	p.d.Post(func() { p.h.OnGestureEnd(sample) })
}
