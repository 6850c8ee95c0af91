package tabswipe

import (
	"testing"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
	"github.com/stretchr/testify/assert"
)

func TestBoundaryPolicy_IsNavigable(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		index int
		dir   constants.Direction
		want  bool
	}{
		{0, constants.DirectionRight, false},
		{0, constants.DirectionLeft, true},
		{1, constants.DirectionRight, true},
		{1, constants.DirectionLeft, true},
		{2, constants.DirectionLeft, false},
		{2, constants.DirectionRight, true},
		{1, constants.DirectionNone, false},
		{7, constants.DirectionRight, false},
	}

	for _, tt := range tests {
		p := NewBoundaryPolicy(testRoutes, tt.index, 120, cfg)
		assert.Equal(t, tt.want, p.IsNavigable(tt.dir), "index %d dir %s", tt.index, tt.dir)
	}
}

func TestBoundaryPolicy_Target(t *testing.T) {
	p := NewBoundaryPolicy(testRoutes, 1, 120, DefaultConfig())

	next, ok := p.Target(constants.DirectionLeft)
	assert.True(t, ok)
	assert.Equal(t, RouteID("Profile"), next)

	prev, ok := p.Target(constants.DirectionRight)
	assert.True(t, ok)
	assert.Equal(t, RouteID("Monitoring"), prev)
}

func TestBoundaryPolicy_ComputeDisplacement(t *testing.T) {
	cfg := DefaultConfig()

	middle := NewBoundaryPolicy(testRoutes, 1, 120, cfg)
	assert.Equal(t, -50.0, middle.ComputeDisplacement(-50, constants.DirectionLeft))
	assert.Equal(t, -120.0, middle.ComputeDisplacement(-300, constants.DirectionLeft))
	assert.Equal(t, 120.0, middle.ComputeDisplacement(300, constants.DirectionRight))

	first := NewBoundaryPolicy(testRoutes, 0, 120, cfg)
	assert.InDelta(t, 20.0, first.ComputeDisplacement(100, constants.DirectionRight), 1e-9)
	assert.Equal(t, 40.0, first.ComputeDisplacement(1000, constants.DirectionRight))
	assert.InDelta(t, 2.0, first.ComputeDisplacement(10, constants.DirectionNone), 1e-9, "none falls back to the sign of the drag")

	last := NewBoundaryPolicy(testRoutes, 2, 120, cfg)
	assert.Equal(t, -40.0, last.ComputeDisplacement(-1000, constants.DirectionLeft))
	assert.Equal(t, 0.0, last.ComputeDisplacement(0, constants.DirectionNone))
}

func TestBoundaryPolicy_ResistanceNeverExceedsMaxTranslate(t *testing.T) {
	p := NewBoundaryPolicy(testRoutes, 0, 30, DefaultConfig())
	assert.Equal(t, 30.0, p.ComputeDisplacement(1000, constants.DirectionRight))
}
