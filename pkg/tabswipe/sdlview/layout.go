package sdlview

import (
	"math"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Layout is where one FeedbackState lands on screen.
type Layout struct {
	Panel      sdl.Rect
	PanelAlpha uint8

	ShowIndicator  bool
	IndicatorEdge  constants.Direction
	Indicator      sdl.Rect
	IndicatorAlpha uint8
}

// ComputeLayout places the content panel and the edge indicator for a
// window of width×height. The panel follows the displacement. The
// indicator slides in from its edge as the progress grows.
func ComputeLayout(st tabswipe.FeedbackState, width, height int32, theme Theme) Layout {
	l := Layout{
		Panel:      sdl.Rect{X: int32(math.Round(st.Displacement)), Y: 0, W: width, H: height},
		PanelAlpha: alpha(st.ContentOpacity),
	}

	if !st.IndicatorVisible || st.IndicatorDirection == constants.DirectionNone {
		return l
	}

	size := theme.IndicatorSize
	margin := theme.IndicatorMargin
	hidden := float64(size + margin)
	offset := int32(math.Round(hidden * (1 - clamp01(st.IndicatorProgress))))

	l.ShowIndicator = true
	l.IndicatorEdge = st.IndicatorDirection
	l.IndicatorAlpha = alpha(st.IndicatorOpacity)
	l.Indicator = sdl.Rect{Y: (height - size) / 2, W: size, H: size}

	if st.IndicatorDirection == constants.DirectionRight {
		l.Indicator.X = width - margin - size + offset
	} else {
		l.Indicator.X = margin - offset
	}
	return l
}

func alpha(opacity float64) uint8 {
	return uint8(math.Round(clamp01(opacity) * 255))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
