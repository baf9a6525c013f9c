package plot

import (
	"strconv"
	"strings"
)

// ftoa formats a coordinate for SVG output. Trailing zeros are
// trimmed so common integer positions stay compact.
func ftoa(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escapeText escapes label text for embedding in SVG markup.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// classAttr joins a base class with user classes into one attribute
// value.
func classAttr(base string, classes []string) string {
	if len(classes) == 0 {
		return base
	}
	return base + " " + strings.Join(classes, " ")
}
