package replay

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTabs(t *testing.T) *router.Tabs {
	t.Helper()
	tabs, err := router.NewTabs(
		router.Route{ID: "Monitoring", Icon: "analytics"},
		router.Route{ID: "Control", Icon: "options"},
		router.Route{ID: "Profile", Icon: "person"},
	)
	require.NoError(t, err)
	return tabs
}

func TestLoadTrace(t *testing.T) {
	trace, err := LoadTrace(filepath.Join("testdata", "swipes.toml"))
	require.NoError(t, err)

	assert.Equal(t, 390.0, trace.Width)
	require.Len(t, trace.Gestures, 6)
	assert.Equal(t, "next tab", trace.Gestures[0].Name)
	assert.Equal(t, []float64{-100, 3}, trace.Gestures[0].Points[5])
	assert.Nil(t, trace.Gestures[0].ReleaseVelocity)
	require.NotNil(t, trace.Gestures[2].ReleaseVelocity)
	assert.Equal(t, 900.0, *trace.Gestures[2].ReleaseVelocity)
	assert.Equal(t, 48*time.Millisecond, trace.Gestures[4].Pause)
}

func TestLoadTrace_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":       "width = 390\n",
		"bad point":   "[[gesture]]\npoints = [[1, 2, 3]]\n",
		"no points":   "[[gesture]]\nname = \"x\"\n",
		"unknown key": "[[gesture]]\npoints = [[0, 0]]\nspeed = 3\n",
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "trace.toml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

			_, err := LoadTrace(path)
			assert.Error(t, err)
		})
	}
}

func TestPlay(t *testing.T) {
	trace, err := LoadTrace(filepath.Join("testdata", "swipes.toml"))
	require.NoError(t, err)

	tabs := newTabs(t)
	ctrl, err := tabswipe.New(tabs, tabswipe.Options{ViewportWidth: trace.Width})
	require.NoError(t, err)

	results := NewPlayer(ctrl, tabs, 16*time.Millisecond).Play(trace)
	require.Len(t, results, 6)

	type want struct {
		outcome  tabswipe.Outcome
		from, to tabswipe.RouteID
	}
	expected := []want{
		{tabswipe.OutcomeCommit, "Monitoring", "Control"},
		{tabswipe.OutcomeIgnore, "Control", "Control"},
		{tabswipe.OutcomeCommit, "Control", "Monitoring"},
		{tabswipe.OutcomeCancel, "Monitoring", "Monitoring"},
		{tabswipe.OutcomeCommit, "Monitoring", "Control"},
		{tabswipe.OutcomeIgnore, "Control", "Control"},
	}

	for i, w := range expected {
		r := results[i]
		assert.Equal(t, w.outcome, r.Decision.Outcome, r.Name)
		assert.Equal(t, w.from, r.From, r.Name)
		assert.Equal(t, w.to, r.To, r.Name)
		assert.Positive(t, r.Frames, r.Name)
	}

	assert.Equal(t, tabswipe.PhaseIdle, ctrl.State().Phase)
	assert.Equal(t, tabswipe.IdleFeedback(), ctrl.State())
}
