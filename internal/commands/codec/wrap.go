package codec

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Wrap will break the text into lines of at most width characters. A width of zero or less leaves the text as is.
func Wrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(text)/width)
	for len(text) > width {
		sb.WriteString(text[:width])
		sb.WriteByte('\n')
		text = text[width:]
	}
	sb.WriteString(text)
	return sb.String()
}

// Unwrap removes all whitespace (e.g. line breaks added by Wrap) from the text
func Unwrap(text string) string {
	return whitespaceRegex.ReplaceAllString(text, "")
}
