// Package document loads page definitions from JSON or YAML files and turns
// them into page models. It follows the permissive parse-then-validate shape
// used elsewhere in the module: either syntax is accepted, structural problems
// are reported with the source path.
package document

import (
	"strings"

	"github.com/goliatone/go-pagegen/pkg/page"
)

// Document is the on-disk page definition.
type Document struct {
	Lang        string         `json:"lang" yaml:"lang"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	Header      string         `json:"header" yaml:"header"`
	Nav         []NavEntry     `json:"nav" yaml:"nav"`
	Sections    []SectionEntry `json:"sections" yaml:"sections"`
	Footer      string         `json:"footer" yaml:"footer"`
	Date        string         `json:"date" yaml:"date"`

	// Source records where the document was loaded from; informational only.
	Source string `json:"-" yaml:"-"`
}

// NavEntry mirrors page.NavItem.
type NavEntry struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
	Icon  string `json:"icon" yaml:"icon"`
}

// SectionEntry mirrors page.Section.
type SectionEntry struct {
	ID      string `json:"id" yaml:"id"`
	Heading string `json:"heading" yaml:"heading"`
	Body    string `json:"body" yaml:"body"`
	Raw     bool   `json:"raw" yaml:"raw"`
}

// Page converts the document into the builder's model.
func (d Document) Page() page.Page {
	p := page.Page{
		Lang:        strings.TrimSpace(d.Lang),
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Header:      d.Header,
		Footer:      d.Footer,
	}
	if date := strings.TrimSpace(d.Date); date != "" {
		p.GeneratedAt = date
	}
	for _, entry := range d.Nav {
		p.Nav = append(p.Nav, page.NavItem{
			Label: entry.Label,
			Href:  entry.Href,
			Icon:  entry.Icon,
		})
	}
	for _, entry := range d.Sections {
		p.Sections = append(p.Sections, page.Section{
			ID:      entry.ID,
			Heading: entry.Heading,
			Body:    entry.Body,
			Raw:     entry.Raw,
		})
	}
	return p
}
