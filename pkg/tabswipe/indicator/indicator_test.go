package indicator

import (
	"image/color"
	"testing"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visibleState(edge constants.Direction, target tabswipe.RouteID) tabswipe.FeedbackState {
	return tabswipe.FeedbackState{
		Phase:              tabswipe.PhaseTracking,
		IndicatorVisible:   true,
		IndicatorDirection: edge,
		IndicatorTarget:    target,
	}
}

func TestLabels_English(t *testing.T) {
	labels, err := NewLabels("en")
	require.NoError(t, err)

	assert.Equal(t, "Next: Profile", labels.Caption(visibleState(constants.DirectionRight, "Profile"), ""))
	assert.Equal(t, "Previous: Monitoring", labels.Caption(visibleState(constants.DirectionLeft, "Monitoring"), ""))
	assert.Equal(t, "Control", labels.RouteTitle("Control", ""))
}

func TestLabels_Indonesian(t *testing.T) {
	labels, err := NewLabels("id-ID", "en")
	require.NoError(t, err)

	assert.Equal(t, "Berikutnya: Profil", labels.Caption(visibleState(constants.DirectionRight, "Profile"), ""))
	assert.Equal(t, "Pemantauan", labels.RouteTitle("Monitoring", ""))
}

func TestLabels_UnknownRouteUsesFallback(t *testing.T) {
	labels, err := NewLabels("en")
	require.NoError(t, err)

	assert.Equal(t, "Settings", labels.RouteTitle("settings", "Settings"))
	assert.Equal(t, "Next: Settings", labels.Caption(visibleState(constants.DirectionRight, "settings"), "Settings"))
}

func TestLabels_HiddenIndicatorHasNoCaption(t *testing.T) {
	labels, err := NewLabels()
	require.NoError(t, err)

	assert.Empty(t, labels.Caption(tabswipe.IdleFeedback(), "Profile"))
}

func TestChevron(t *testing.T) {
	left, err := Chevron(constants.DirectionLeft, 32, DefaultAccent)
	require.NoError(t, err)
	assert.Equal(t, 32, left.Bounds().Dx())
	assert.Equal(t, 32, left.Bounds().Dy())

	// the corner is outside the circle, the rim is inside it
	assert.Equal(t, uint8(0), left.RGBAAt(0, 0).A)
	rim := left.RGBAAt(16, 2)
	assert.Equal(t, uint8(0xff), rim.A)
	assert.Equal(t, DefaultAccent.B, rim.B)

	right, err := Chevron(constants.DirectionRight, 32, DefaultAccent)
	require.NoError(t, err)
	assert.NotEqual(t, left.Pix, right.Pix)

	again, err := Chevron(constants.DirectionLeft, 32, DefaultAccent)
	require.NoError(t, err)
	assert.Same(t, left, again)
}

func TestChevron_Invalid(t *testing.T) {
	_, err := Chevron(constants.DirectionNone, 32, DefaultAccent)
	assert.ErrorIs(t, err, ErrNoEdge)

	_, err = Chevron(constants.DirectionLeft, 0, color.RGBA{})
	assert.Error(t, err)
}
