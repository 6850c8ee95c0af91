package tabswipe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const frame = 16 * time.Millisecond

var testRoutes = []RouteID{"Monitoring", "Control", "Profile"}

// fakeBridge records navigations. With follow set it also moves its index,
// like a real router would.
type fakeBridge struct {
	routes    []RouteID
	index     int
	follow    bool
	navigated []RouteID
}

func newFakeBridge(index int) *fakeBridge {
	return &fakeBridge{routes: testRoutes, index: index, follow: true}
}

func (b *fakeBridge) RouteOrder() []RouteID { return b.routes }
func (b *fakeBridge) CurrentIndex() int     { return b.index }

func (b *fakeBridge) Navigate(route RouteID) {
	b.navigated = append(b.navigated, route)
	if !b.follow {
		return
	}
	for i, r := range b.routes {
		if r == route {
			b.index = i
		}
	}
}

func newTestController(t *testing.T, bridge NavigationBridge, mutate ...func(*Options)) *Controller {
	t.Helper()
	opts := Options{Config: DefaultConfig(), ViewportWidth: 400}
	for _, m := range mutate {
		m(&opts)
	}
	c, err := New(bridge, opts)
	require.NoError(t, err)
	return c
}

// settle advances frame by frame until the controller is idle again.
func settle(t *testing.T, c *Controller) int {
	t.Helper()
	for i := 1; i <= 1000; i++ {
		c.Advance(frame)
		if c.State().Phase == PhaseIdle {
			return i
		}
	}
	t.Fatalf("controller did not settle, phase %s", c.State().Phase)
	return 0
}

func drag(c *Controller, samples ...GestureSample) {
	c.OnGestureStart()
	for _, s := range samples[:len(samples)-1] {
		c.OnGestureUpdate(s)
	}
	c.OnGestureEnd(samples[len(samples)-1])
}

func sx(tx float64) GestureSample {
	return GestureSample{TranslationX: tx}
}
