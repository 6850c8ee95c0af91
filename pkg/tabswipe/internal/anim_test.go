package internal

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEaseInOut(t *testing.T) {
	assert.Equal(t, 0.0, EaseInOut(0))
	assert.Equal(t, 0.5, EaseInOut(0.5))
	assert.Equal(t, 1.0, EaseInOut(1))
	assert.Less(t, EaseInOut(0.25), 0.25)
	assert.Greater(t, EaseInOut(0.75), 0.75)
}

func TestTween_Advance(t *testing.T) {
	tw := NewTween(0, 100, 200*time.Millisecond, nil)

	v, done := tw.Advance(50 * time.Millisecond)
	assert.InDelta(t, 25.0, v, 1e-9)
	assert.False(t, done)

	v, done = tw.Advance(time.Second)
	assert.Equal(t, 100.0, v)
	assert.True(t, done)
	assert.Equal(t, 100.0, tw.Target())
}

func TestTween_ZeroDurationEndsImmediately(t *testing.T) {
	tw := NewTween(10, 0, 0, EaseInOut)
	assert.True(t, tw.Done())
	assert.Equal(t, 0.0, tw.Value())
}

func TestSpring_SettlesExactlyOnTarget(t *testing.T) {
	s := NewSpring(50, 9, 120, 0, 0)
	assert.False(t, s.Settled())

	for i := 0; i < 300 && !s.Settled(); i++ {
		s.Advance(16 * time.Millisecond)
	}
	assert.True(t, s.Settled())
	assert.Equal(t, 0.0, s.Position())
	assert.Equal(t, 0.0, s.Velocity())
}

func TestSpring_VelocityCarriesPastTarget(t *testing.T) {
	s := NewSpring(50, 9, 0, -2000, 0)

	minPos := 0.0
	for i := 0; i < 300 && !s.Settled(); i++ {
		pos, _ := s.Advance(16 * time.Millisecond)
		minPos = math.Min(minPos, pos)
	}
	assert.Less(t, minPos, -10.0)
	assert.True(t, s.Settled())
}

func TestSpring_AtRestIsSettled(t *testing.T) {
	s := NewSpring(50, 9, 0, 0, 0)
	assert.True(t, s.Settled())

	pos, rested := s.Advance(0)
	assert.Equal(t, 0.0, pos)
	assert.True(t, rested)
}
