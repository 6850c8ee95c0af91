package tabswipe

import (
	"testing"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
	"github.com/stretchr/testify/assert"
)

func TestCommitDecision_Decide(t *testing.T) {
	d := NewCommitDecision(DefaultConfig())
	middle := NewBoundaryPolicy(testRoutes, 1, 120, DefaultConfig())

	tests := []struct {
		name   string
		sample GestureSample
		want   Decision
	}{
		{
			name:   "distance only",
			sample: GestureSample{TranslationX: 100},
			want:   Decision{Outcome: OutcomeCommit, Direction: constants.DirectionRight, Target: "Monitoring"},
		},
		{
			name:   "velocity only",
			sample: GestureSample{TranslationX: 30, VelocityX: 900},
			want:   Decision{Outcome: OutcomeCommit, Direction: constants.DirectionRight, Target: "Monitoring"},
		},
		{
			name:   "leftward distance",
			sample: GestureSample{TranslationX: -81},
			want:   Decision{Outcome: OutcomeCommit, Direction: constants.DirectionLeft, Target: "Profile"},
		},
		{
			name:   "velocity sign is ignored, translation decides",
			sample: GestureSample{TranslationX: -20, VelocityX: 1200},
			want:   Decision{Outcome: OutcomeCommit, Direction: constants.DirectionLeft, Target: "Profile"},
		},
		{
			name:   "vertical dominant",
			sample: GestureSample{TranslationX: 50, TranslationY: 100, VelocityX: 5000},
			want:   Decision{Outcome: OutcomeCancel},
		},
		{
			name:   "below both thresholds",
			sample: GestureSample{TranslationX: 80, VelocityX: 800},
			want:   Decision{Outcome: OutcomeCancel, Direction: constants.DirectionRight},
		},
		{
			name:   "flick without travel",
			sample: GestureSample{VelocityX: 2000},
			want:   Decision{Outcome: OutcomeCancel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Decide(tt.sample, middle))
		})
	}
}

func TestCommitDecision_Boundaries(t *testing.T) {
	d := NewCommitDecision(DefaultConfig())
	first := NewBoundaryPolicy(testRoutes, 0, 120, DefaultConfig())
	last := NewBoundaryPolicy(testRoutes, 2, 120, DefaultConfig())

	for _, tx := range []float64{1, 81, 500, 10000} {
		for _, vx := range []float64{-5000, 0, 801, 5000} {
			got := d.Decide(GestureSample{TranslationX: tx, VelocityX: vx}, first)
			assert.NotEqual(t, OutcomeCommit, got.Outcome, "rightward at first index tx=%v vx=%v", tx, vx)

			got = d.Decide(GestureSample{TranslationX: -tx, VelocityX: vx}, last)
			assert.NotEqual(t, OutcomeCommit, got.Outcome, "leftward at last index tx=%v vx=%v", -tx, vx)
		}
	}
}
