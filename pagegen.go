// Package pagegen generates normalized HTML pages from structured documents.
// The heavy lifting lives in pkg/textnorm (the template normalizer) and
// pkg/page (the structural builder); this package re-exports the common entry
// points so most callers only need a single import.
package pagegen

import (
	"context"

	"github.com/goliatone/go-pagegen/pkg/document"
	"github.com/goliatone/go-pagegen/pkg/page"
	"github.com/goliatone/go-pagegen/pkg/textnorm"
)

// Option aliases page.Option for callers configuring the builder through this
// package.
type Option = page.Option

// WithTheme re-exports page.WithTheme.
var WithTheme = page.WithTheme

// WithChromeClasses re-exports page.WithChromeClasses.
var WithChromeClasses = page.WithChromeClasses

// WithTemplateRenderer re-exports page.WithTemplateRenderer.
var WithTemplateRenderer = page.WithTemplateRenderer

// Normalize exposes the core template normalizer.
func Normalize(segments []string, values ...any) string {
	return textnorm.Normalize(segments, values...)
}

// Dedent normalizes a single block of text.
func Dedent(s string) string {
	return textnorm.Dedent(s)
}

// Generate builds the HTML page described by a loaded document.
func Generate(ctx context.Context, doc document.Document, options ...Option) (string, error) {
	return page.New(options...).Build(ctx, doc.Page())
}

// GenerateFromFile loads a page document from disk and builds it.
func GenerateFromFile(ctx context.Context, path string, options ...Option) (string, error) {
	doc, err := document.LoadFile(path)
	if err != nil {
		return "", err
	}
	return Generate(ctx, doc, options...)
}
