package tabswipe

import "math"

// GestureSample is one input-layer reading of an in-progress drag. Translations
// are relative to the touch-down point; VelocityX is in pixels per second.
type GestureSample struct {
	TranslationX float64
	TranslationY float64
	VelocityX    float64
}

// sanitized returns the sample with NaN and infinite components replaced by 0.
func (s GestureSample) sanitized() GestureSample {
	return GestureSample{
		TranslationX: finiteOrZero(s.TranslationX),
		TranslationY: finiteOrZero(s.TranslationY),
		VelocityX:    finiteOrZero(s.VelocityX),
	}
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// verticalDominant reports whether the vertical travel outweighs the
// horizontal travel by more than ratio.
func verticalDominant(tx, ty, ratio float64) bool {
	return math.Abs(ty) > math.Abs(tx)*ratio
}
