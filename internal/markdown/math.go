package markdown

import (
	"regexp"
	"strings"
)

// superscripts rewrites caret exponents (x^2) into superscript digits.
var superscripts = strings.NewReplacer(
	"^0", "⁰",
	"^1", "¹",
	"^2", "²",
	"^3", "³",
	"^4", "⁴",
	"^5", "⁵",
	"^6", "⁶",
	"^7", "⁷",
	"^8", "⁸",
	"^9", "⁹",
)

// fraction matches simple alphanumeric fractions like 2x/3, a/b, or 15/7.
var fraction = regexp.MustCompile(`([a-zA-Z0-9]+)/([a-zA-Z0-9]+)`)

// FormatMath rewrites plain-ASCII math notation into its Unicode form for
// display. Caret exponents become superscript digits and simple fractions
// get a fraction slash. Display-only; stored text is never rewritten.
func FormatMath(text string) string {
	if text == "" {
		return text
	}
	text = superscripts.Replace(text)
	return fraction.ReplaceAllString(text, "$1⁄$2")
}
