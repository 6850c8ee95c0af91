package tabswipe

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 15.0, cfg.ActivationThresholdPx)
	assert.Equal(t, 80.0, cfg.DistanceThresholdPx)
	assert.Equal(t, 800.0, cfg.VelocityThresholdPxPerSec)
	assert.Equal(t, 0.3, cfg.MaxTranslateFraction)
	assert.Equal(t, 250*time.Millisecond, cfg.CommitAnimationDuration)
	assert.True(t, cfg.CommitOnPreempt)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero distance", func(c *Config) { c.DistanceThresholdPx = 0 }, "DistanceThresholdPx"},
		{"NaN velocity", func(c *Config) { c.VelocityThresholdPxPerSec = math.NaN() }, "VelocityThresholdPxPerSec"},
		{"fraction above one", func(c *Config) { c.MaxTranslateFraction = 1.5 }, "MaxTranslateFraction"},
		{"negative resistance", func(c *Config) { c.ResistanceFactor = -0.1 }, "ResistanceFactor"},
		{"activation past distance", func(c *Config) { c.ActivationThresholdPx = 100 }, "ActivationThresholdPx"},
		{"negative duration", func(c *Config) { c.CommitAnimationDuration = -time.Millisecond }, "CommitAnimationDuration"},
		{"infinite ratio", func(c *Config) { c.VerticalDominanceRatio = math.Inf(1) }, "VerticalDominanceRatio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, IsConfigError(err))

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gesture.toml")
	content := `
distance_threshold_px = 100.0
velocity_threshold_px_per_sec = 650.0
commit_animation_duration = "300ms"
commit_on_preempt = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 100.0, cfg.DistanceThresholdPx)
	assert.Equal(t, 650.0, cfg.VelocityThresholdPxPerSec)
	assert.Equal(t, 300*time.Millisecond, cfg.CommitAnimationDuration)
	assert.False(t, cfg.CommitOnPreempt)
	// untouched keys keep defaults
	assert.Equal(t, 15.0, cfg.ActivationThresholdPx)
	assert.Equal(t, 200*time.Millisecond, cfg.IndicatorFadeIn)
}

func TestLoadConfig_RejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gesture.toml")
	require.NoError(t, os.WriteFile(path, []byte("swipe_threshold = 3\n"), 0600))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "swipe_threshold")
}

func TestLoadConfig_ValidatesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gesture.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_translate_fraction = 2.0\n"), 0600))

	_, err := LoadConfig(path)
	assert.True(t, IsConfigError(err))
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
