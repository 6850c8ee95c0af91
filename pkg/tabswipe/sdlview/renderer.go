package sdlview

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"unsafe"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/indicator"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Scene is the text drawn alongside a FeedbackState.
type Scene struct {
	Title   string // Title of the current route, drawn on the panel
	Caption string // Indicator caption, empty when hidden
}

// Renderer draws controller feedback into a Window.
type Renderer struct {
	window      *Window
	theme       Theme
	textures    *TextureCache
	titleFont   *ttf.Font
	captionFont *ttf.Font
	logger      *slog.Logger
}

// NewRenderer prepares fonts for theme. A missing font is logged and the
// renderer draws shapes only.
func NewRenderer(window *Window, theme Theme) *Renderer {
	r := &Renderer{
		window:   window,
		theme:    theme,
		textures: NewTextureCache(),
		logger:   internal.GetInternalLogger(),
	}

	if theme.FontPath != "" {
		var err error
		if r.titleFont, err = ttf.OpenFont(theme.FontPath, theme.FontSize); err != nil {
			r.logger.Warn("Failed to open title font", "path", theme.FontPath, "error", err)
		}
		if r.captionFont, err = ttf.OpenFont(theme.FontPath, theme.CaptionFontSize); err != nil {
			r.logger.Warn("Failed to open caption font", "path", theme.FontPath, "error", err)
		}
	}
	return r
}

// Draw renders one frame and presents it.
func (r *Renderer) Draw(st tabswipe.FeedbackState, scene Scene) {
	renderer := r.window.Renderer
	width, height := r.window.GetWidth(), r.window.GetHeight()
	l := ComputeLayout(st, width, height, r.theme)

	bg := r.theme.BackgroundColor
	renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	renderer.Clear()

	panel := r.theme.PanelColor
	renderer.SetDrawColor(panel.R, panel.G, panel.B, l.PanelAlpha)
	renderer.FillRect(&l.Panel)

	if scene.Title != "" {
		r.drawText(r.titleFont, scene.Title, r.theme.TextColor, l.PanelAlpha, func(w, h int32) sdl.Rect {
			return sdl.Rect{X: l.Panel.X + (l.Panel.W-w)/2, Y: (l.Panel.H - h) / 2, W: w, H: h}
		})
	}

	if l.ShowIndicator {
		r.drawIndicator(l, scene.Caption)
	}

	r.window.Present()
}

func (r *Renderer) drawIndicator(l Layout, caption string) {
	tex, err := r.chevronTexture(l)
	if err != nil {
		r.logger.Error("Failed to build indicator chevron", "error", err)
		return
	}
	tex.SetAlphaMod(l.IndicatorAlpha)
	r.window.Renderer.Copy(tex, nil, &l.Indicator)

	if caption == "" {
		return
	}
	r.drawText(r.captionFont, caption, r.theme.CaptionColor, l.IndicatorAlpha, func(w, h int32) sdl.Rect {
		x := l.Indicator.X + l.Indicator.W + r.theme.IndicatorMargin/2
		if l.IndicatorEdge == constants.DirectionRight {
			x = l.Indicator.X - w - r.theme.IndicatorMargin/2
		}
		return sdl.Rect{X: x, Y: l.Indicator.Y + (l.Indicator.H-h)/2, W: w, H: h}
	})
}

func (r *Renderer) chevronTexture(l Layout) (*sdl.Texture, error) {
	key := fmt.Sprintf("chevron:%s:%d", l.IndicatorEdge, l.Indicator.W)
	if tex, ok := r.textures.Get(key); ok {
		return tex, nil
	}

	accent := r.theme.AccentColor
	img, err := indicator.Chevron(l.IndicatorEdge, int(l.Indicator.W), color.RGBA{R: accent.R, G: accent.G, B: accent.B, A: accent.A})
	if err != nil {
		return nil, err
	}

	tex, err := textureFromImage(r.window.Renderer, img)
	if err != nil {
		return nil, err
	}
	r.textures.Set(key, tex)
	return tex, nil
}

// textureFromImage uploads an RGBA image. image.RGBA stores bytes in R, G,
// B, A order, which SDL names ABGR8888 on little-endian machines.
func textureFromImage(renderer *sdl.Renderer, img *image.RGBA) (*sdl.Texture, error) {
	b := img.Bounds()
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&img.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(img.Stride), uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	tex, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)
	return tex, nil
}

func (r *Renderer) drawText(font *ttf.Font, text string, c sdl.Color, a uint8, place func(w, h int32) sdl.Rect) {
	if font == nil {
		return
	}

	key := fmt.Sprintf("text:%p:%s:%d%d%d", font, text, c.R, c.G, c.B)
	tex, ok := r.textures.Get(key)
	if !ok {
		surface, err := font.RenderUTF8Blended(text, c)
		if err != nil {
			r.logger.Error("Failed to render text", "text", text, "error", err)
			return
		}
		defer surface.Free()

		tex, err = r.window.Renderer.CreateTextureFromSurface(surface)
		if err != nil {
			r.logger.Error("Failed to create text texture", "text", text, "error", err)
			return
		}
		r.textures.Set(key, tex)
	}

	_, _, w, h, err := tex.Query()
	if err != nil {
		return
	}
	dst := place(w, h)
	tex.SetAlphaMod(a)
	r.window.Renderer.Copy(tex, nil, &dst)
}

// Close releases cached textures and fonts.
func (r *Renderer) Close() {
	r.textures.Destroy()
	if r.titleFont != nil {
		r.titleFont.Close()
	}
	if r.captionFont != nil {
		r.captionFont.Close()
	}
}
