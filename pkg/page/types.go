package page

// Page is the document skeleton the builder assembles: header, navigation,
// main content sections, footer. Fields left empty are omitted from the
// output rather than rendered blank.
type Page struct {
	// Lang sets the html lang attribute; defaults to "en".
	Lang string
	// Title feeds the head title and, when Header is empty, the page h1.
	Title string
	// Description becomes the head description meta tag when present.
	Description string
	// Header is an optional trusted markup fragment replacing the derived
	// title heading. It is sanitized, not escaped.
	Header string
	// Nav renders as a list of links when non-empty.
	Nav []NavItem
	// Sections make up the main element in order.
	Sections []Section
	// Footer is an optional trusted markup fragment. Sanitized.
	Footer string
	// GeneratedAt feeds the footer timestamp through the configured date
	// formatter. Accepts whatever the formatter accepts; nil omits it.
	GeneratedAt any
}

// NavItem is a single navigation link. Icon is an optional trusted inline
// fragment (typically SVG) rendered before the label.
type NavItem struct {
	Label string
	Href  string
	Icon  string
}

// Section is one block of main content. Body is escaped text unless Raw is
// set, in which case it is sanitized markup.
type Section struct {
	ID      string
	Heading string
	Body    string
	Raw     bool
}
