// Package page assembles full HTML documents from a structural Page model.
// Every fragment flows through the textnorm engine, so callers and templates
// can be written with whatever indentation reads best in source while the
// output stays consistent.
package page

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-pagegen/pkg/markup"
	"github.com/goliatone/go-pagegen/pkg/page/template"
	"github.com/goliatone/go-pagegen/pkg/textnorm"
)

const shellTemplate = "page"

// Builder turns Page values into normalized HTML documents. The zero-config
// builder from New is ready to use and safe for concurrent calls.
type Builder struct {
	theme      pageTheme
	chrome     ChromeClasses
	templates  template.TemplateRenderer
	dateFormat func(any) string
}

// New constructs a builder applying any provided options.
func New(options ...Option) *Builder {
	cfg := config{
		chrome:     DefaultChromeClasses(),
		dateFormat: markup.FormatDate,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	return &Builder{
		theme:      buildThemeContext(cfg.theme),
		chrome:     cfg.chrome.withDefaults(),
		templates:  cfg.templates,
		dateFormat: cfg.dateFormat,
	}
}

// Build renders the page. With a template renderer configured the outer shell
// comes from the "page" template; otherwise the built-in shell is used. The
// returned document never has trailing whitespace, boundary blank lines, or
// runs of blank lines, per the normalizer's contract.
func (b *Builder) Build(ctx context.Context, p Page) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	lang := strings.TrimSpace(p.Lang)
	if lang == "" {
		lang = "en"
	}

	head := b.head(p)
	header := b.header(p)
	nav := b.nav(p.Nav)
	main := b.main(p.Sections)
	footer := b.footer(p)
	bodyClass := b.theme.bodyClasses(b.chrome.Body)

	if b.templates != nil {
		rendered, err := b.templates.RenderTemplate(shellTemplate, map[string]any{
			"lang":       lang,
			"body_class": bodyClass,
			"head":       head,
			"header":     header,
			"nav":        nav,
			"main":       main,
			"footer":     footer,
			"theme":      b.theme.Name,
		})
		if err != nil {
			return "", fmt.Errorf("page: render shell template: %w", err)
		}
		return textnorm.Dedent(rendered), nil
	}

	body := joinFragments(header, nav, main, footer)
	return textnorm.Normalize([]string{
		"<!DOCTYPE html>\n<html lang=\"" + markup.Escape(lang) + "\">\n  ",
		"\n  <body class=\"" + markup.Escape(bodyClass) + "\">\n    ",
		"\n  </body>\n</html>",
	}, head, body), nil
}

func (b *Builder) head(p Page) string {
	parts := []string{
		`<meta charset="utf-8">`,
		`<meta name="viewport" content="width=device-width, initial-scale=1">`,
		"<title>" + markup.Escape(strings.TrimSpace(p.Title)) + "</title>",
	}
	if desc := strings.TrimSpace(p.Description); desc != "" {
		parts = append(parts, `<meta name="description" content="`+markup.Escape(desc)+`">`)
	}
	if b.theme.CSSVarsStyle != "" {
		parts = append(parts, "<style>\n"+b.theme.CSSVarsStyle+"\n</style>")
	}

	return textnorm.Normalize([]string{
		"<head>\n  ",
		"\n</head>",
	}, joinFragments(parts...))
}

func (b *Builder) header(p Page) string {
	inner := markup.Sanitize(p.Header)
	if inner == "" {
		title := strings.TrimSpace(p.Title)
		if title == "" {
			return ""
		}
		inner = "<h1>" + markup.Escape(title) + "</h1>"
	}
	return textnorm.Normalize([]string{
		`<header class="` + markup.Escape(b.chrome.Header) + "\">\n  ",
		"\n</header>",
	}, inner)
}

func (b *Builder) nav(items []NavItem) string {
	if len(items) == 0 {
		return ""
	}

	entries := make([]string, 0, len(items))
	for _, item := range items {
		label := markup.Escape(strings.TrimSpace(item.Label))
		if label == "" {
			continue
		}
		inner := label
		if icon := markup.Sanitize(item.Icon); icon != "" {
			inner = icon + " " + label
		}
		entries = append(entries, `<li><a href="`+markup.Escape(item.Href)+`">`+inner+"</a></li>")
	}
	if len(entries) == 0 {
		return ""
	}

	return textnorm.Normalize([]string{
		`<nav class="` + markup.Escape(b.chrome.Nav) + "\">\n  <ul>\n    ",
		"\n  </ul>\n</nav>",
	}, strings.Join(entries, "\n"))
}

func (b *Builder) main(sections []Section) string {
	if len(sections) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(sections))
	for _, section := range sections {
		if block := b.section(section); block != "" {
			blocks = append(blocks, block)
		}
	}
	if len(blocks) == 0 {
		return ""
	}

	return textnorm.Normalize([]string{
		`<main class="` + markup.Escape(b.chrome.Main) + "\">\n  ",
		"\n</main>",
	}, strings.Join(blocks, "\n"))
}

func (b *Builder) section(s Section) string {
	body := s.Body
	if s.Raw {
		body = markup.Sanitize(body)
	} else {
		body = markup.Escape(strings.TrimSpace(body))
	}
	heading := strings.TrimSpace(s.Heading)
	if body == "" && heading == "" {
		return ""
	}

	open := "<section" + attr("id", s.ID) + attr("class", b.chrome.Section) + ">"
	if heading != "" {
		open += "\n  <h2>" + markup.Escape(heading) + "</h2>"
	}
	return textnorm.Normalize([]string{
		open + "\n  ",
		"\n</section>",
	}, body)
}

func (b *Builder) footer(p Page) string {
	parts := make([]string, 0, 2)
	if inner := markup.Sanitize(p.Footer); inner != "" {
		parts = append(parts, inner)
	}
	if p.GeneratedAt != nil && b.dateFormat != nil {
		if date := b.dateFormat(p.GeneratedAt); date != "" {
			parts = append(parts, `<p class="`+markup.Escape(b.chrome.Meta)+`">Generated on `+markup.Escape(date)+"</p>")
		}
	}
	if len(parts) == 0 {
		return ""
	}

	return textnorm.Normalize([]string{
		`<footer class="` + markup.Escape(b.chrome.Footer) + "\">\n  ",
		"\n</footer>",
	}, joinFragments(parts...))
}

// joinFragments joins non-empty fragments with a newline.
func joinFragments(fragments ...string) string {
	keep := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if fragment == "" {
			continue
		}
		keep = append(keep, fragment)
	}
	return strings.Join(keep, "\n")
}

func attr(name, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return " " + name + `="` + markup.Escape(value) + `"`
}
