package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVelocityTracker_ConstantMotion(t *testing.T) {
	v := NewVelocityTracker()
	for i := 0; i <= 10; i++ {
		at := time.Duration(i) * 10 * time.Millisecond
		v.Add(float64(i)*5, float64(i)*-2, at)
	}

	vx, vy := v.Velocity()
	assert.InDelta(t, 500.0, vx, 1e-6)
	assert.InDelta(t, -200.0, vy, 1e-6)
}

func TestVelocityTracker_OnlyRecentSamplesCount(t *testing.T) {
	v := NewVelocityTracker()
	v.Add(0, 0, 0)
	v.Add(300, 0, 50*time.Millisecond)
	// pointer rests for a while before release
	v.Add(300, 0, 400*time.Millisecond)
	v.Add(300, 0, 450*time.Millisecond)

	vx, _ := v.Velocity()
	assert.Equal(t, 0.0, vx)
}

func TestVelocityTracker_NotEnoughSamples(t *testing.T) {
	v := NewVelocityTracker()
	vx, vy := v.Velocity()
	assert.Zero(t, vx)
	assert.Zero(t, vy)

	v.Add(10, 10, time.Millisecond)
	vx, _ = v.Velocity()
	assert.Zero(t, vx)
}

func TestVelocityTracker_ClockGoingBackwardsResets(t *testing.T) {
	v := NewVelocityTracker()
	v.Add(0, 0, 100*time.Millisecond)
	v.Add(50, 0, 110*time.Millisecond)
	v.Add(60, 0, 5*time.Millisecond)

	vx, _ := v.Velocity()
	assert.Zero(t, vx)

	v.Reset()
	v.Add(0, 0, 0)
	v.Add(10, 0, 20*time.Millisecond)
	vx, _ = v.Velocity()
	assert.InDelta(t, 500.0, vx, 1e-6)
}
