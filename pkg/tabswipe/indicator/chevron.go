package indicator

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// ErrNoEdge indicates a chevron was requested for DirectionNone.
var ErrNoEdge = errors.New("indicator: chevron needs a left or right edge")

// DefaultAccent is the indicator blue used by the mobile app.
var DefaultAccent = color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}

// Chevron paths on a 24x24 canvas. The left edge points back, the right
// edge points forward.
const (
	chevronBackPath    = "M14.5 6.5 L9 12 L14.5 17.5"
	chevronForwardPath = "M9.5 6.5 L15 12 L9.5 17.5"
)

const chevronTemplate = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">
<circle cx="12" cy="12" r="11" fill="%s"/>
<path d="%s" fill="none" stroke="#ffffff" stroke-width="2.5" stroke-linecap="round" stroke-linejoin="round"/>
</svg>`

type chevronKey struct {
	edge   constants.Direction
	size   int
	accent color.RGBA
}

var (
	chevronMu    sync.Mutex
	chevronCache = map[chevronKey]*image.RGBA{}
)

// Chevron returns a size×size circular chevron for the indicator on edge.
// Images are cached; callers must not modify the returned image.
func Chevron(edge constants.Direction, size int, accent color.RGBA) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("indicator: invalid chevron size %d", size)
	}

	var p string
	switch edge {
	case constants.DirectionLeft:
		p = chevronBackPath
	case constants.DirectionRight:
		p = chevronForwardPath
	default:
		return nil, ErrNoEdge
	}

	key := chevronKey{edge: edge, size: size, accent: accent}

	chevronMu.Lock()
	defer chevronMu.Unlock()

	if img, ok := chevronCache[key]; ok {
		return img, nil
	}

	img, err := rasterize(fmt.Sprintf(chevronTemplate, hexColor(accent), p), size)
	if err != nil {
		return nil, err
	}
	chevronCache[key] = img
	return img, nil
}

func rasterize(svg string, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("indicator: failed to parse chevron svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return img, nil
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
