package textnorm

import (
	"fmt"
	"strings"
)

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Normalize interleaves literal segments with stringified values and returns
// the normalized block. Values sit positionally in the gaps between segments,
// so a well-formed call passes len(segments)-1 values; missing tail values are
// treated as absent and extras are ignored rather than failing.
//
// A multi-line value picks up the indentation of its insertion point: every
// line after its first is prefixed with the trailing space/tab run of the
// preceding segment's last line, so pre-indented nested fragments land at the
// column the template put them without double-indentation artifacts.
//
// The concatenated text then has \r\n and \r coerced to \n, boundary blank
// lines removed, the common leading space/tab margin of its non-blank lines
// stripped, trailing horizontal whitespace trimmed per line, and runs of more
// than one blank line collapsed to a single blank line. When nothing but blank
// lines remain the result is the empty string.
func Normalize(segments []string, values ...any) string {
	var b strings.Builder
	for i, segment := range segments {
		b.WriteString(segment)
		if i >= len(segments)-1 || i >= len(values) {
			continue
		}
		value := newlines.Replace(stringify(values[i]))
		if strings.Contains(value, "\n") {
			value = reindent(value, localIndent(segment))
		}
		b.WriteString(value)
	}
	return format(b.String())
}

// Dedent normalizes a single block of text with no interpolations. It is the
// conventional way to write readable multi-line literals in source:
//
//	body := textnorm.Dedent(`
//	    <p>
//	      hello
//	    </p>
//	`)
func Dedent(s string) string {
	return Normalize([]string{s})
}

// stringify converts an interpolated value to text. Absent values become the
// empty string by explicit rule; everything else goes through the standard
// conversion.
func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// localIndent returns the indentation context of an insertion point: the last
// line of the preceding segment when that line consists solely of spaces and
// tabs, and the empty string otherwise. A segment without a newline counts as
// a single line, so non-whitespace text before the gap yields no indent.
func localIndent(segment string) string {
	line := segment
	if idx := strings.LastIndexByte(segment, '\n'); idx >= 0 {
		line = segment[idx+1:]
	}
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return ""
		}
	}
	return line
}

// reindent inserts indent after the internal newlines of value. The first
// line stays where the template put it, and a trailing newline stays bare so
// the following segment keeps its own column.
func reindent(value, indent string) string {
	if indent == "" {
		return value
	}
	if strings.HasSuffix(value, "\n") {
		return strings.ReplaceAll(value[:len(value)-1], "\n", "\n"+indent) + "\n"
	}
	return strings.ReplaceAll(value, "\n", "\n"+indent)
}

// format runs the post-processing passes over the concatenated text.
func format(s string) string {
	s = newlines.Replace(s)
	lines := trimBlankEdges(strings.Split(s, "\n"))
	if len(lines) == 0 {
		return ""
	}

	margin := commonMargin(lines)
	for i, line := range lines {
		lines[i] = strings.TrimRight(dropMargin(line, margin), " \t")
	}
	return collapseBlankRuns(strings.Join(lines, "\n"))
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}
	end := len(lines)
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	return lines[start:end]
}

// commonMargin is the minimum count of leading space/tab characters over the
// non-blank lines. Blank lines never participate, so they cannot force the
// margin to zero.
func commonMargin(lines []string) int {
	margin := -1
	for _, line := range lines {
		if isBlank(line) {
			continue
		}
		width := 0
		for width < len(line) && (line[width] == ' ' || line[width] == '\t') {
			width++
		}
		if margin < 0 || width < margin {
			margin = width
		}
	}
	if margin < 0 {
		return 0
	}
	return margin
}

// dropMargin removes up to margin leading space/tab characters, fewer when the
// line is shorter. Short and blank lines are safe by construction.
func dropMargin(line string, margin int) string {
	i := 0
	for i < margin && i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[i:]
}

// collapseBlankRuns rewrites any run of three or more newlines to exactly two,
// leaving at most one blank line between content blocks.
func collapseBlankRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	run := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			run++
			if run <= 2 {
				b.WriteByte('\n')
			}
			continue
		}
		run = 0
		b.WriteByte(s[i])
	}
	return b.String()
}
