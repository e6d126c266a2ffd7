package page

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-pagegen/pkg/page/template"
)

// Option configures the builder.
type Option func(*config)

type config struct {
	theme      *theme.RendererConfig
	chrome     ChromeClasses
	templates  template.TemplateRenderer
	dateFormat func(any) string
}

// WithTheme applies a resolved go-theme renderer configuration: CSS variables
// become a style block in head and the theme name joins the body class list.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// WithChromeClasses overrides the semantic chrome classes. Empty fields keep
// their defaults.
func WithChromeClasses(classes ChromeClasses) Option {
	return func(c *config) {
		c.chrome = classes
	}
}

// WithTemplateRenderer routes the outer page shell through a custom template
// ("page.tmpl") instead of the built-in programmatic assembly. The normalized
// fragments are passed as template context.
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(c *config) {
		if renderer != nil {
			c.templates = renderer
		}
	}
}

// WithDateFormatter replaces the default footer date formatter.
func WithDateFormatter(format func(any) string) Option {
	return func(c *config) {
		if format != nil {
			c.dateFormat = format
		}
	}
}
