package tabswipe

import (
	"math"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
)

// Outcome is the terminal result of a gesture session.
type Outcome int

const (
	OutcomeCancel Outcome = iota // visuals revert, no navigation
	OutcomeCommit                // exit animation, then navigation
	OutcomeIgnore                // the drag was never a horizontal swipe
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCommit:
		return "commit"
	case OutcomeIgnore:
		return "ignore"
	default:
		return "cancel"
	}
}

// Decision is what CommitDecision chose for a released gesture.
type Decision struct {
	Outcome   Outcome
	Direction constants.Direction
	Target    RouteID // set only for OutcomeCommit
}

// CommitDecision evaluates a gesture at release time.
type CommitDecision struct {
	distanceThreshold float64
	velocityThreshold float64
	dominanceRatio    float64
}

func NewCommitDecision(cfg Config) CommitDecision {
	return CommitDecision{
		distanceThreshold: cfg.DistanceThresholdPx,
		velocityThreshold: cfg.VelocityThresholdPxPerSec,
		dominanceRatio:    cfg.VerticalDominanceRatio,
	}
}

// Decide returns Commit when the release travelled far enough or fast enough
// towards a navigable direction, and Cancel otherwise. Vertical-dominant
// releases always cancel.
func (d CommitDecision) Decide(final GestureSample, policy BoundaryPolicy) Decision {
	tx := final.TranslationX

	if verticalDominant(tx, final.TranslationY, d.dominanceRatio) {
		return Decision{Outcome: OutcomeCancel}
	}

	if math.Abs(tx) <= d.distanceThreshold && math.Abs(final.VelocityX) <= d.velocityThreshold {
		return Decision{Outcome: OutcomeCancel, Direction: constants.DirectionOf(tx)}
	}

	// A pure flick with no travel has no sign to follow.
	dir := constants.DirectionOf(tx)
	target, ok := policy.Target(dir)
	if !ok {
		return Decision{Outcome: OutcomeCancel, Direction: dir}
	}
	return Decision{Outcome: OutcomeCommit, Direction: dir, Target: target}
}
