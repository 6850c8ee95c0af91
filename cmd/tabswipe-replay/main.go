// Package main implements tabswipe-replay, which runs recorded gesture
// traces through the controller without a display.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/replay"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/router"
	"github.com/spf13/cobra"
)

var (
	tracePath  string
	configPath string
	width      float64
	fps        int
	logLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tabswipe-replay",
	Short: "Replay gesture traces through the tab swipe controller",
	Long: `tabswipe-replay feeds recorded drags from a TOML trace file into the
gesture controller, one sample per frame, and logs what each drag did.

Examples:
  # Replay a trace with the default gesture tuning
  tabswipe-replay --trace swipes.toml

  # Use custom tuning and a tablet-sized viewport
  tabswipe-replay --trace swipes.toml --config tuning.toml --width 820`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runReplay,
}

func init() {
	rootCmd.Flags().StringVar(&tracePath, "trace", "", "gesture trace file (TOML)")
	rootCmd.Flags().StringVar(&configPath, "config", os.Getenv(constants.ConfigPathEnvVar), "gesture tuning file (TOML)")
	rootCmd.Flags().Float64Var(&width, "width", 0, "viewport width in pixels; overrides the trace")
	rootCmd.Flags().IntVar(&fps, "fps", 60, "frames per second to simulate")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	_ = rootCmd.MarkFlagRequired("trace")
}

func runReplay(cmd *cobra.Command, args []string) error {
	if logLevel == "" {
		logLevel = "info"
	}
	tabswipe.InitLogging(tabswipe.LogOptions{Output: cmd.OutOrStdout(), Level: logLevel})
	defer tabswipe.CloseLogging()
	logger := tabswipe.GetLogger()

	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}

	cfg := tabswipe.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = tabswipe.LoadConfig(configPath); err != nil {
			logger.Error("Failed to load config", "path", configPath, "error", err)
			return err
		}
	}

	trace, err := replay.LoadTrace(tracePath)
	if err != nil {
		logger.Error("Failed to load trace", "path", tracePath, "error", err)
		return err
	}

	viewport := width
	if viewport == 0 {
		viewport = trace.Width
	}
	if viewport == 0 {
		return errors.New("viewport width unknown: set width in the trace or pass --width")
	}

	tabs, err := router.NewTabs(
		router.Route{ID: "Monitoring", Icon: "analytics"},
		router.Route{ID: "Control", Icon: "options"},
		router.Route{ID: "Profile", Icon: "person"},
	)
	if err != nil {
		return err
	}

	ctrl, err := tabswipe.New(tabs, tabswipe.Options{Config: cfg, ViewportWidth: viewport})
	if err != nil {
		logger.Error("Failed to create controller", "error", err)
		return err
	}

	frame := time.Second / time.Duration(fps)
	results := replay.NewPlayer(ctrl, tabs, frame).Play(trace)

	commits := 0
	for _, r := range results {
		if r.Decision.Outcome == tabswipe.OutcomeCommit {
			commits++
		}
		logger.Info("Gesture replayed",
			"gesture", r.Name,
			"outcome", r.Decision.Outcome.String(),
			"direction", r.Decision.Direction.String(),
			"from", string(r.From),
			"to", string(r.To),
			"frames", r.Frames,
		)
	}

	logger.Info("Replay finished",
		"gestures", len(results),
		"commits", commits,
		"final_route", string(tabs.Current().ID),
		"history", tabs.Stack().Len(),
	)
	return nil
}
