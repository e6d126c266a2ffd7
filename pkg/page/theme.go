package page

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

type pageTheme struct {
	Name         string
	Variant      string
	CSSVarsStyle string
}

func buildThemeContext(cfg *theme.RendererConfig) pageTheme {
	if cfg == nil {
		return pageTheme{}
	}
	return pageTheme{
		Name:         strings.TrimSpace(cfg.Theme),
		Variant:      strings.TrimSpace(cfg.Variant),
		CSSVarsStyle: cssVarsStyle(cfg.CSSVars),
	}
}

// bodyClasses joins the chrome body class with theme-derived classes.
func (t pageTheme) bodyClasses(base string) string {
	classes := []string{base}
	if t.Name != "" {
		classes = append(classes, "theme-"+t.Name)
		if t.Variant != "" {
			classes = append(classes, "theme-"+t.Name+"--"+t.Variant)
		}
	}
	return strings.Join(classes, " ")
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
