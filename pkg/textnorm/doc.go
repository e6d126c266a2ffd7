// Package textnorm normalizes interleaved template text. Callers hand it the
// literal segments of a template and the values computed for the gaps between
// them; it returns a single block of text with consistent indentation no
// matter how the template was laid out in source or how deeply indented the
// interpolated values were. It operates purely on characters and lines and
// never interprets markup.
package textnorm
