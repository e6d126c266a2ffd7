// Package markup holds the value-side helpers that feed the normalizer:
// entity escaping, fragment sanitization, and date formatting. Escaping is a
// caller responsibility; the normalizer itself never touches markup.
package markup

import (
	"fmt"
	"strings"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape neutralizes the markup-significant characters & < > " ' in s. It is
// applied to values before they are interpolated into a template, never to the
// template literals themselves.
func Escape(s string) string {
	return escaper.Replace(s)
}

// EscapeValue stringifies v the same way the normalizer would and escapes the
// result. A nil value yields the empty string.
func EscapeValue(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return Escape(s)
	}
	return Escape(fmt.Sprint(v))
}
