// Package indicator produces the content of the swipe indicator: localized
// captions naming the route a swipe would reveal, and chevron icons
// rasterized from SVG.
package indicator

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe"
	"github.com/BrandonKowalski/tabswipe/pkg/tabswipe/constants"
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Labels localizes route titles and indicator captions.
type Labels struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
}

// NewLabels loads the bundled message files and returns Labels for the
// preferred languages, e.g. "id" or "en-US". English is the fallback.
func NewLabels(langs ...string) (*Labels, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, path.Join("locales", e.Name())); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", e.Name(), err)
		}
	}

	return &Labels{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, langs...),
	}, nil
}

// LoadMessageFile adds an application message file, e.g. "active.fr.toml"
// with Route<ID> entries for the app's own routes.
func (l *Labels) LoadMessageFile(file string) error {
	if _, err := l.bundle.LoadMessageFile(file); err != nil {
		return fmt.Errorf("failed to load message file %s: %w", file, err)
	}
	return nil
}

// RouteTitle returns the localized title of route, or fallback when no
// message exists for it.
func (l *Labels) RouteTitle(route tabswipe.RouteID, fallback string) string {
	if fallback == "" {
		fallback = string(route)
	}
	return l.localize("Route"+string(route), fallback, nil)
}

// Caption returns the indicator caption for a feedback state, e.g.
// "Next: Profile". It returns "" when the indicator is hidden.
func (l *Labels) Caption(st tabswipe.FeedbackState, title string) string {
	if !st.IndicatorVisible {
		return ""
	}

	routeTitle := l.RouteTitle(st.IndicatorTarget, title)
	data := map[string]string{"Route": routeTitle}

	switch st.IndicatorDirection {
	case constants.DirectionRight:
		return l.localize("IndicatorNext", "Next: {{.Route}}", data)
	case constants.DirectionLeft:
		return l.localize("IndicatorPrevious", "Previous: {{.Route}}", data)
	default:
		return routeTitle
	}
}

func (l *Labels) localize(id, fallback string, data any) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
		TemplateData:   data,
	})
	if err != nil && msg == "" {
		return fallback
	}
	return msg
}
