package tabswipe

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedback_IndicatorFadesIn(t *testing.T) {
	f := NewFeedbackController(DefaultConfig(), 400)
	f.Begin()
	assert.Equal(t, PhaseTracking, f.Phase())
	assert.Equal(t, 0.0, f.State().IndicatorOpacity)

	f.Advance(100 * time.Millisecond)
	assert.InDelta(t, 0.5, f.State().IndicatorOpacity, 1e-9)

	f.Advance(time.Second)
	assert.Equal(t, 1.0, f.State().IndicatorOpacity)
}

func TestFeedback_TrackDerivesProgressAndContentOpacity(t *testing.T) {
	f := NewFeedbackController(DefaultConfig(), 400)
	f.Begin()

	f.Track(-60, constants.DirectionRight, "Profile")
	st := f.State()
	assert.True(t, st.IndicatorVisible)
	assert.Equal(t, constants.DirectionRight, st.IndicatorDirection)
	assert.Equal(t, RouteID("Profile"), st.IndicatorTarget)
	assert.InDelta(t, 0.5, st.IndicatorProgress, 1e-9)
	assert.InDelta(t, 0.925, st.ContentOpacity, 1e-9)

	f.Track(10, constants.DirectionNone, "")
	assert.False(t, f.State().IndicatorVisible)
}

func TestFeedback_CommitRunsContinuationAfterExit(t *testing.T) {
	f := NewFeedbackController(DefaultConfig(), 400)
	f.Begin()
	f.Track(-100, constants.DirectionRight, "Profile")

	calls := 0
	f.Commit(constants.DirectionLeft, func() {
		calls++
		assert.Equal(t, PhaseIdle, f.Phase(), "continuation runs after the reset")
		assert.Equal(t, 0.0, f.State().Displacement)
	})

	f.Advance(125 * time.Millisecond)
	assert.Equal(t, PhaseCommitting, f.Phase())
	assert.Equal(t, 0, calls)
	assert.Less(t, f.State().Displacement, -100.0)
	assert.Greater(t, f.State().Displacement, -400.0)

	f.Advance(125 * time.Millisecond)
	assert.Equal(t, 1, calls)
	assert.Equal(t, IdleFeedback(), f.State())
}

func TestFeedback_CancelSpringsBackToRest(t *testing.T) {
	f := NewFeedbackController(DefaultConfig(), 400)
	f.Begin()
	f.Advance(time.Second)
	f.Track(60, constants.DirectionLeft, "Monitoring")

	done := false
	f.Cancel(-1500, func() { done = true })

	for i := 0; i < 500 && !done; i++ {
		f.Advance(frame)
		assert.LessOrEqual(t, f.State().IndicatorOpacity, 1.0)
	}
	require.True(t, done)
	assert.Equal(t, IdleFeedback(), f.State())
}

func TestFeedback_PreemptReturnsPendingContinuation(t *testing.T) {
	f := NewFeedbackController(DefaultConfig(), 400)
	f.Begin()
	f.Track(-100, constants.DirectionRight, "Profile")

	ran := false
	f.Commit(constants.DirectionLeft, func() { ran = true })
	f.Advance(frame)

	phase, pending := f.Preempt()
	assert.Equal(t, PhaseCommitting, phase)
	require.NotNil(t, pending)
	assert.False(t, ran)
	assert.Equal(t, IdleFeedback(), f.State())

	// nothing left to run
	f.Advance(time.Second)
	assert.False(t, ran)
}
