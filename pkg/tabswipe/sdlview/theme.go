package sdlview

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the demo view.
type Theme struct {
	BackgroundColor sdl.Color // Behind the panel, visible while it is dragged
	PanelColor      sdl.Color // Route content panel
	AccentColor     sdl.Color // Indicator chevron
	TextColor       sdl.Color // Route title on the panel
	CaptionColor    sdl.Color // Indicator caption
	FontPath        string    // TTF font; text is skipped when empty
	FontSize        int
	CaptionFontSize int
	IndicatorSize   int32 // Chevron diameter in pixels
	IndicatorMargin int32 // Gap between the chevron and the window edge
}

// DefaultTheme is a light theme with the blue accent of the mobile app.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor: sdl.Color{R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff},
		PanelColor:      sdl.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		AccentColor:     sdl.Color{R: 0x25, G: 0x63, B: 0xeb, A: 0xff},
		TextColor:       sdl.Color{R: 0x11, G: 0x18, B: 0x27, A: 0xff},
		CaptionColor:    sdl.Color{R: 0x37, G: 0x41, B: 0x51, A: 0xff},
		FontSize:        36,
		CaptionFontSize: 18,
		IndicatorSize:   48,
		IndicatorMargin: 16,
	}
}
