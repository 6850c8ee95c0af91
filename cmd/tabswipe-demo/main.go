// Package main implements tabswipe-demo, an SDL window with three tabs that
// can be switched by dragging with the mouse or a finger.
package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/indicator"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/input/evdevinput"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/input/sdlinput"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/router"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/sdlview"
	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	configPath  string
	fontPath    string
	touchDevice string
	lang        string
	logPath     string
	fullscreen  bool
	debug       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tabswipe-demo",
	Short: "Swipe between three tabs in an SDL window",
	Long: `tabswipe-demo opens a window with the Monitoring, Control and Profile tabs.
Drag left or right with the mouse or a finger to switch tabs, Backspace goes
back through the history and Escape quits.

Examples:
  # Windowed, sized by WINDOW_WIDTH and WINDOW_HEIGHT
  ENVIRONMENT=DEV tabswipe-demo --font /usr/share/fonts/TTF/DejaVuSans.ttf

  # Read the touchscreen directly on a device without a window manager
  tabswipe-demo --fullscreen --touch-device /dev/input/event1`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runDemo,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", os.Getenv(constants.ConfigPathEnvVar), "gesture tuning file (TOML)")
	rootCmd.Flags().StringVar(&fontPath, "font", "", "TTF font for titles and captions")
	rootCmd.Flags().StringVar(&touchDevice, "touch-device", "", "evdev touchscreen to read instead of SDL touch events")
	rootCmd.Flags().StringVar(&lang, "lang", localeFromEnv(), "caption language, e.g. en or id")
	rootCmd.Flags().StringVar(&logPath, "log-file", "", "also write logs to this file")
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "open a fullscreen window")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log controller internals")
}

// localeFromEnv turns LANG=id_ID.UTF-8 into id-ID.
func localeFromEnv() string {
	v := os.Getenv("LANG")
	if i := strings.IndexByte(v, '.'); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return "en"
	}
	return strings.ReplaceAll(v, "_", "-")
}

func runDemo(cmd *cobra.Command, args []string) error {
	tabswipe.InitLogging(tabswipe.LogOptions{LogPath: logPath, Debug: debug})
	defer tabswipe.CloseLogging()
	logger := tabswipe.GetLogger()

	cfg := tabswipe.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = tabswipe.LoadConfig(configPath); err != nil {
			logger.Error("Failed to load config", "path", configPath, "error", err)
			return err
		}
	}

	labels, err := indicator.NewLabels(lang, "en")
	if err != nil {
		return err
	}

	tabs, err := router.NewTabs(
		router.Route{ID: "Monitoring", Icon: "analytics"},
		router.Route{ID: "Control", Icon: "options"},
		router.Route{ID: "Profile", Icon: "person"},
	)
	if err != nil {
		return err
	}
	tabs.OnTransition(func(from, to tabswipe.RouteID, stack *router.Stack) {
		logger.Info("Switched tab", "from", string(from), "to", string(to), "history", stack.Len())
	})

	win, err := sdlview.Open("tabswipe", sdlview.WindowOptions{Fullscreen: fullscreen, Resizable: !fullscreen})
	if err != nil {
		logger.Error("Failed to open window", "error", err)
		return err
	}
	defer win.Close()

	width, height := win.GetWidth(), win.GetHeight()

	ctrl, err := tabswipe.New(tabs, tabswipe.Options{
		Config:        cfg,
		ViewportWidth: float64(width),
		OnDecision: func(d tabswipe.Decision) {
			logger.Debug("Gesture released", "outcome", d.Outcome.String(), "target", string(d.Target))
		},
	})
	if err != nil {
		logger.Error("Failed to create controller", "error", err)
		return err
	}

	translator := sdlinput.New(ctrl, float64(width), float64(height))
	dispatcher := tabswipe.NewDispatcher(0)
	defer dispatcher.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var reader *evdevinput.Reader
	if touchDevice != "" {
		reader, err = evdevinput.Open(touchDevice, dispatcher.Handler(ctrl), float64(width), float64(height))
		if err != nil {
			logger.Error("Failed to open touch device", "path", touchDevice, "error", err)
			return err
		}
		defer reader.Close()

		// SDL may read the same touchscreen; only one source may drive the controller
		translator.IgnoreTouch(true)

		go func() {
			if err := reader.Run(ctx); err != nil && ctx.Err() == nil {
				logger.Error("Touch device stopped", "error", err)
			}
		}()
	}

	theme := sdlview.DefaultTheme()
	theme.FontPath = fontPath
	renderer := sdlview.NewRenderer(win, theme)
	defer renderer.Close()

	last := time.Now()
	for running := true; running; {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					break
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					running = false
				case sdl.K_BACKSPACE:
					if ctrl.State().Phase == tabswipe.PhaseIdle {
						if err := tabs.Back(); err != nil {
							logger.Debug("Nothing to go back to", "error", err)
						}
					}
				}
			case *sdl.WindowEvent:
				switch e.Event {
				case sdl.WINDOWEVENT_SIZE_CHANGED:
					win.Resize(e.Data1, e.Data2)
					translator.SetViewport(float64(e.Data1), float64(e.Data2))
					if reader != nil {
						reader.SetViewport(float64(e.Data1), float64(e.Data2))
					}
					if err := ctrl.SetViewportWidth(float64(e.Data1)); err != nil {
						logger.Warn("Ignoring window size", "width", e.Data1, "error", err)
					}
				case sdl.WINDOWEVENT_FOCUS_LOST:
					translator.Cancel()
				}
			default:
				translator.Handle(event)
			}
		}

		dispatcher.Drain()

		now := time.Now()
		ctrl.Advance(now.Sub(last))
		last = now

		renderer.Draw(ctrl.State(), scene(tabs, labels, ctrl.State()))
	}

	logger.Info("Demo closed", "route", string(tabs.Current().ID))
	return nil
}

func scene(tabs *router.Tabs, labels *indicator.Labels, st tabswipe.FeedbackState) sdlview.Scene {
	current := tabs.Current()
	s := sdlview.Scene{Title: labels.RouteTitle(current.ID, current.Title)}

	if st.IndicatorVisible {
		fallback := string(st.IndicatorTarget)
		if r, ok := tabs.Route(st.IndicatorTarget); ok {
			fallback = r.Title
		}
		s.Caption = labels.Caption(st, fallback)
	}
	return s
}

