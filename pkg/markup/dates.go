package markup

import (
	"strings"
	"time"
)

const displayDateLayout = "January 2, 2006"

// FormatDate renders a date value for page output. time.Time values format
// directly; strings are accepted in RFC 3339 or 2006-01-02 form. Anything
// else, including zero times and unparseable strings, yields the empty string
// so the surrounding template simply omits the date.
func FormatDate(v any) string {
	switch d := v.(type) {
	case time.Time:
		return formatTime(d)
	case *time.Time:
		if d == nil {
			return ""
		}
		return formatTime(*d)
	case string:
		trimmed := strings.TrimSpace(d)
		if trimmed == "" {
			return ""
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if parsed, err := time.Parse(layout, trimmed); err == nil {
				return formatTime(parsed)
			}
		}
		return ""
	default:
		return ""
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(displayDateLayout)
}
