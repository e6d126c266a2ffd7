package page

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassBody    ChromeClass = "pagegen-body"
	ClassHeader  ChromeClass = "pagegen-header"
	ClassNav     ChromeClass = "pagegen-nav"
	ClassMain    ChromeClass = "pagegen-main"
	ClassSection ChromeClass = "pagegen-section"
	ClassFooter  ChromeClass = "pagegen-footer"
	ClassMeta    ChromeClass = "pagegen-meta"
)

// ChromeClasses overrides the default chrome classes per element. Empty
// fields fall back to the defaults.
type ChromeClasses struct {
	Body    string
	Header  string
	Nav     string
	Main    string
	Section string
	Footer  string
	Meta    string
}

// DefaultChromeClasses returns the stock class set.
func DefaultChromeClasses() ChromeClasses {
	return ChromeClasses{
		Body:    string(ClassBody),
		Header:  string(ClassHeader),
		Nav:     string(ClassNav),
		Main:    string(ClassMain),
		Section: string(ClassSection),
		Footer:  string(ClassFooter),
		Meta:    string(ClassMeta),
	}
}

func (c ChromeClasses) withDefaults() ChromeClasses {
	defaults := DefaultChromeClasses()
	if c.Body == "" {
		c.Body = defaults.Body
	}
	if c.Header == "" {
		c.Header = defaults.Header
	}
	if c.Nav == "" {
		c.Nav = defaults.Nav
	}
	if c.Main == "" {
		c.Main = defaults.Main
	}
	if c.Section == "" {
		c.Section = defaults.Section
	}
	if c.Footer == "" {
		c.Footer = defaults.Footer
	}
	if c.Meta == "" {
		c.Meta = defaults.Meta
	}
	return c
}
