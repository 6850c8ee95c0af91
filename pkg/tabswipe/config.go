package tabswipe

import (
	"fmt"
	"math"
	"time"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
	"github.com/BurntSushi/toml"
)

// Config holds the gesture tuning. It is validated once when a Controller is
// built and never changes afterwards.
type Config struct {
	ActivationThresholdPx     float64       `toml:"activation_threshold_px"`
	DistanceThresholdPx       float64       `toml:"distance_threshold_px"`
	VelocityThresholdPxPerSec float64       `toml:"velocity_threshold_px_per_sec"`
	MaxTranslateFraction      float64       `toml:"max_translate_fraction"` // of the viewport width
	ResistanceFactor          float64       `toml:"resistance_factor"`
	ResistanceCapPx           float64       `toml:"resistance_cap_px"`
	VerticalDominanceRatio    float64       `toml:"vertical_dominance_ratio"`
	VerticalFailThresholdPx   float64       `toml:"vertical_fail_threshold_px"`
	CommitAnimationDuration   time.Duration `toml:"commit_animation_duration"`
	IndicatorFadeIn           time.Duration `toml:"indicator_fade_in"`
	CancelFadeDuration        time.Duration `toml:"cancel_fade_duration"`
	SpringTension             float64       `toml:"spring_tension"`
	SpringFriction            float64       `toml:"spring_friction"`
	SpringVelocityScale       float64       `toml:"spring_velocity_scale"` // release px/s to spring units/s
	CommitOnPreempt           bool          `toml:"commit_on_preempt"`     // finish a commit when a new gesture interrupts it
}

// DefaultConfig returns the tuning the mobile app shipped with.
func DefaultConfig() Config {
	return Config{
		ActivationThresholdPx:     constants.DefaultActivationThresholdPx,
		DistanceThresholdPx:       constants.DefaultDistanceThresholdPx,
		VelocityThresholdPxPerSec: constants.DefaultVelocityThresholdPxPerSec,
		MaxTranslateFraction:      constants.DefaultMaxTranslateFraction,
		ResistanceFactor:          constants.DefaultResistanceFactor,
		ResistanceCapPx:           constants.DefaultResistanceCapPx,
		VerticalDominanceRatio:    constants.DefaultVerticalDominanceRatio,
		VerticalFailThresholdPx:   constants.DefaultVerticalFailThresholdPx,
		CommitAnimationDuration:   constants.DefaultCommitAnimationDuration,
		IndicatorFadeIn:           constants.DefaultIndicatorFadeIn,
		CancelFadeDuration:        constants.DefaultCancelFadeDuration,
		SpringTension:             constants.DefaultSpringTension,
		SpringFriction:            constants.DefaultSpringFriction,
		SpringVelocityScale:       constants.DefaultSpringVelocityScale,
		CommitOnPreempt:           true,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig and validates the result.
// Keys missing from the file keep their defaults. Durations are written as
// strings, e.g. commit_animation_duration = "250ms".
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config file %s: unknown keys %v", path, undecoded)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field and returns the first violation as a *ConfigError.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"ActivationThresholdPx", c.ActivationThresholdPx},
		{"DistanceThresholdPx", c.DistanceThresholdPx},
		{"VelocityThresholdPxPerSec", c.VelocityThresholdPxPerSec},
		{"ResistanceCapPx", c.ResistanceCapPx},
		{"VerticalDominanceRatio", c.VerticalDominanceRatio},
		{"SpringTension", c.SpringTension},
		{"SpringFriction", c.SpringFriction},
	}
	for _, f := range positive {
		if !isFinite(f.value) || f.value <= 0 {
			return &ConfigError{Field: f.name, Value: f.value, Reason: "must be a positive number"}
		}
	}

	if c.VerticalFailThresholdPx < 0 || !isFinite(c.VerticalFailThresholdPx) {
		return &ConfigError{Field: "VerticalFailThresholdPx", Value: c.VerticalFailThresholdPx, Reason: "must be zero or positive"}
	}
	if c.SpringVelocityScale < 0 || !isFinite(c.SpringVelocityScale) {
		return &ConfigError{Field: "SpringVelocityScale", Value: c.SpringVelocityScale, Reason: "must be zero or positive"}
	}
	if !isFinite(c.MaxTranslateFraction) || c.MaxTranslateFraction <= 0 || c.MaxTranslateFraction > 1 {
		return &ConfigError{Field: "MaxTranslateFraction", Value: c.MaxTranslateFraction, Reason: "must be in (0, 1]"}
	}
	if !isFinite(c.ResistanceFactor) || c.ResistanceFactor < 0 || c.ResistanceFactor > 1 {
		return &ConfigError{Field: "ResistanceFactor", Value: c.ResistanceFactor, Reason: "must be in [0, 1]"}
	}
	if c.ActivationThresholdPx > c.DistanceThresholdPx {
		return &ConfigError{Field: "ActivationThresholdPx", Value: c.ActivationThresholdPx, Reason: "must not exceed DistanceThresholdPx"}
	}

	durations := []struct {
		name  string
		value time.Duration
	}{
		{"CommitAnimationDuration", c.CommitAnimationDuration},
		{"IndicatorFadeIn", c.IndicatorFadeIn},
		{"CancelFadeDuration", c.CancelFadeDuration},
	}
	for _, d := range durations {
		if d.value < 0 {
			return &ConfigError{Field: d.name, Value: d.value, Reason: "must not be negative"}
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
