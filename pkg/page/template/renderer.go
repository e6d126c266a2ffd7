// Package template defines the engine-agnostic seam the page builder renders
// custom chrome through. The gotemplate subpackage provides the default
// implementation.
package template

import "io"

// TemplateRenderer mirrors the github.com/goliatone/go-template engine
// contract so alternative engines can be dropped in without touching the
// builder.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	GlobalContext(data any) error
}
