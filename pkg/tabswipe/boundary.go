package tabswipe

import (
	"math"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
)

// BoundaryPolicy answers whether a direction leads to another route and how
// far the content may move. It is a value computed from the route order,
// the current index and the viewport, with no side effects.
type BoundaryPolicy struct {
	routes        []RouteID
	index         int
	maxTranslate  float64
	resistance    float64
	resistanceCap float64
}

func NewBoundaryPolicy(routes []RouteID, index int, maxTranslate float64, cfg Config) BoundaryPolicy {
	return BoundaryPolicy{
		routes:        routes,
		index:         index,
		maxTranslate:  maxTranslate,
		resistance:    cfg.ResistanceFactor,
		resistanceCap: cfg.ResistanceCapPx,
	}
}

// IsNavigable reports whether dragging in dir leads to an adjacent route.
// Left moves to the next route, Right to the previous one.
func (b BoundaryPolicy) IsNavigable(dir constants.Direction) bool {
	_, ok := b.Target(dir)
	return ok
}

// Target returns the route reached by dragging in dir.
func (b BoundaryPolicy) Target(dir constants.Direction) (RouteID, bool) {
	if b.index < 0 || b.index >= len(b.routes) {
		return "", false
	}

	switch dir {
	case constants.DirectionLeft:
		if b.index < len(b.routes)-1 {
			return b.routes[b.index+1], true
		}
	case constants.DirectionRight:
		if b.index > 0 {
			return b.routes[b.index-1], true
		}
	}
	return "", false
}

// ComputeDisplacement maps a raw horizontal translation to the displacement
// to render. Navigable drags are clamped to ±maxTranslate; drags against a
// boundary are damped and capped so the content rubber-bands. With
// DirectionNone the sign of rawX picks the direction.
func (b BoundaryPolicy) ComputeDisplacement(rawX float64, dir constants.Direction) float64 {
	if dir == constants.DirectionNone {
		dir = constants.DirectionOf(rawX)
	}
	if dir == constants.DirectionNone {
		return 0
	}

	limit := b.maxTranslate
	value := rawX
	if !b.IsNavigable(dir) {
		value = rawX * b.resistance
		limit = math.Min(limit, b.resistanceCap)
	}
	return clamp(value, -limit, limit)
}

// MaxTranslate returns the displacement bound.
func (b BoundaryPolicy) MaxTranslate() float64 {
	return b.maxTranslate
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
