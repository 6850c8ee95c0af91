package tabswipe

import (
	"math"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
)

// DirectionClassifier decides whether a drag is a horizontal navigation
// candidate or a vertical scroll that should pass through, and which way a
// horizontal drag is heading.
type DirectionClassifier struct {
	activationThreshold   float64
	verticalFailThreshold float64
	dominanceRatio        float64
}

func NewDirectionClassifier(cfg Config) DirectionClassifier {
	return DirectionClassifier{
		activationThreshold:   cfg.ActivationThresholdPx,
		verticalFailThreshold: cfg.VerticalFailThresholdPx,
		dominanceRatio:        cfg.VerticalDominanceRatio,
	}
}

// Classify updates the session's locked axis and direction from the latest
// sample. It returns true when the sample should drive displacement.
//
// A session locks at most once. Vertical sessions stay vertical and never
// drive displacement. Horizontal sessions ignore samples that turn vertical
// dominant, holding the last displacement.
func (c DirectionClassifier) Classify(s *GestureSession, sample GestureSample) bool {
	tx, ty := sample.TranslationX, sample.TranslationY
	dominant := verticalDominant(tx, ty, c.dominanceRatio)

	switch s.LockedAxis {
	case AxisVertical:
		return false
	case AxisUndetermined:
		if dominant && math.Abs(ty) >= c.verticalFailThreshold {
			s.LockedAxis = AxisVertical
			s.Direction = constants.DirectionNone
			return false
		}
		if dominant || math.Abs(tx) < c.activationThreshold {
			return false
		}
		s.LockedAxis = AxisHorizontal
	case AxisHorizontal:
		if dominant {
			return false
		}
	}

	if math.Abs(tx) >= c.activationThreshold {
		s.Direction = constants.DirectionOf(tx)
	} else {
		s.Direction = constants.DirectionNone
	}
	return true
}
