package evdevinput

import (
	"context"
	"errors"
	"log/slog"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/internal"
	evdev "github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// Reader feeds a Decoder from an evdev device.
type Reader struct {
	dev     *evdev.InputDevice
	decoder *Decoder
	logger  *slog.Logger
	closed  atomic.Bool
}

// Open opens the touchscreen at path and sizes its axes to width×height.
// Multitouch position axes are preferred over the single-touch ones.
func Open(path string, handler tabswipe.GestureHandler, width, height float64) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, tabswipe.NewInfrastructureError("open "+path, err)
	}

	infos, err := dev.AbsInfos()
	if err != nil {
		dev.Close()
		return nil, tabswipe.NewInfrastructureError("read axes of "+path, err)
	}

	xRange, okX := axisRange(infos, evdev.ABS_MT_POSITION_X, evdev.ABS_X)
	yRange, okY := axisRange(infos, evdev.ABS_MT_POSITION_Y, evdev.ABS_Y)
	if !okX || !okY {
		dev.Close()
		return nil, tabswipe.NewInfrastructureError("open "+path, errors.New("device reports no absolute position axes"))
	}

	logger := internal.GetInternalLogger()
	name, _ := dev.Name()
	logger.Debug("Opened touch device", "path", path, "name", name,
		"x_min", xRange.Min, "x_max", xRange.Max, "y_min", yRange.Min, "y_max", yRange.Max)

	return &Reader{
		dev:     dev,
		decoder: NewDecoder(handler, width, height, xRange, yRange),
		logger:  logger,
	}, nil
}

func axisRange(infos map[evdev.EvCode]evdev.AbsInfo, codes ...evdev.EvCode) (Range, bool) {
	for _, code := range codes {
		if info, ok := infos[code]; ok {
			return Range{Min: info.Minimum, Max: info.Maximum}, true
		}
	}
	return Range{}, false
}

// Run reads events until ctx is done or the device fails. Cancelling ctx
// closes the device to unblock the pending read.
func (r *Reader) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() { r.Close() })
	defer stop()

	for {
		ev, err := r.dev.ReadOne()
		if err != nil {
			if r.closed.Load() {
				return ctx.Err()
			}
			r.logger.Error("Touch device read failed", "error", err)
			return tabswipe.NewInfrastructureError("read touch event", err)
		}
		r.decoder.Feed(*ev)
	}
}

// SetViewport rescales touch coordinates, e.g. after a window resize. It is
// safe to call while Run is reading.
func (r *Reader) SetViewport(width, height float64) {
	r.decoder.SetViewport(width, height)
}

// Close releases the device. It is safe to call more than once.
func (r *Reader) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	return r.dev.Close()
}
