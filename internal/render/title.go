package render

import (
	"strings"
	"unicode"
)

// TitleLimit is the maximum page-title length in code points.
const TitleLimit = 70

// ClampTitle returns title unchanged when it fits in max code points.
// Otherwise it keeps the first max-1 code points, trims trailing
// whitespace, and appends a single ellipsis. Counting is by rune, not by
// byte or grapheme.
func ClampTitle(title string, max int) string {
	runes := []rune(title)
	if len(runes) <= max {
		return title
	}
	clipped := strings.TrimRightFunc(string(runes[:max-1]), unicode.IsSpace)
	return clipped + "…"
}
