package sdlview

import (
	"os"
	"strconv"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const (
	devWindowWidth  = 1024
	devWindowHeight = 768
	frameMillis     = 16
)

// Window wraps the SDL window and renderer the demo draws into.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	hasVSync        bool
	lastPresentTime uint64
}

// Open initializes SDL video and TTF and creates a window with an
// accelerated renderer. Close releases everything Open acquired.
func Open(title string, opts WindowOptions) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, tabswipe.NewInfrastructureError("sdl init", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, tabswipe.NewInfrastructureError("ttf init", err)
	}

	width, height := opts.Width, opts.Height
	if width == 0 || height == 0 {
		displayMode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to get display mode!", "error", err)
			width, height = devWindowWidth, devWindowHeight
		} else {
			width, height = displayMode.W, displayMode.H
		}
	}

	win, err := openWithSize(title, width, height, opts)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, err
	}
	return win, nil
}

func openWithSize(title string, width, height int32, opts WindowOptions) (*Window, error) {
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if constants.IsDevMode() {
		opts.Borderless = false
		opts.Fullscreen = false

		x, y = int32(50), int32(50)
		width = envDimension(constants.WindowWidthEnvVar, devWindowWidth)
		height = envDimension(constants.WindowHeightEnvVar, devWindowHeight)
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, opts.ToSDLFlags())
	if err != nil {
		return nil, tabswipe.NewInfrastructureError("create window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		internal.GetInternalLogger().Warn("Accelerated renderer unavailable, using software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		window.Destroy()
		return nil, tabswipe.NewInfrastructureError("create renderer", err)
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.GetInternalLogger().Warn("Invalid window dimension; using default", "env", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func (w *Window) GetWidth() int32 {
	width, _ := w.Window.GetSize()
	return width
}

func (w *Window) GetHeight() int32 {
	_, height := w.Window.GetSize()
	return height
}

// Resize matches the renderer's logical size to a new window size.
func (w *Window) Resize(width, height int32) {
	w.Renderer.SetLogicalSize(width, height)
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < frameMillis {
			sdl.Delay(uint32(frameMillis - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

// Close destroys the renderer and window and shuts SDL down.
func (w *Window) Close() {
	w.Renderer.Destroy()
	w.Window.Destroy()
	ttf.Quit()
	sdl.Quit()
}
