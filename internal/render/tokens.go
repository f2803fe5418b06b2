package render

import (
	"html/template"
	"regexp"
	"strconv"
	"strings"
)

// The prose in content tables carries a small placeholder grammar: a closed
// set of named tokens plus a generic fallback. Any bracketed text that is
// not a recognized name renders as an internal link to the site root with
// the bracketed text as its label.
const (
	TokenCityState = "City, State"
	TokenCostLo    = "cost_lo"
	TokenCostHi    = "cost_hi"
)

var tokenPattern = regexp.MustCompile(`\{([^}]+)\}`)

// CityTokens builds the named-token values for one city.
func CityTokens(city, state string, low, high int, multiplier float64) map[string]string {
	return map[string]string{
		TokenCityState: city + ", " + state,
		TokenCostLo:    DollarBound(low, multiplier),
		TokenCostHi:    DollarBound(high, multiplier),
	}
}

// DollarBound scales a base dollar amount by a multiplier, truncating to a
// whole dollar. Truncation, not rounding: $300 at 1.333 is $399.
func DollarBound(base int, multiplier float64) string {
	return "$" + strconv.Itoa(int(float64(base)*multiplier))
}

// Expand applies the token grammar to text and escapes everything else,
// segment by segment, preserving order and position. Named tokens found in
// vars substitute as escaped text; every other bracketed token becomes a
// homepage link; text that never matches the bracket pattern stays literal.
// Expand never fails.
func Expand(text string, vars map[string]string) template.HTML {
	var b strings.Builder
	last := 0

	for _, m := range tokenPattern.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(template.HTMLEscapeString(text[last:m[0]]))

		name := text[m[2]:m[3]]
		if val, ok := vars[name]; ok {
			b.WriteString(template.HTMLEscapeString(val))
		} else {
			b.WriteString(`<a href="/">`)
			b.WriteString(template.HTMLEscapeString(name))
			b.WriteString(`</a>`)
		}

		last = m[1]
	}

	b.WriteString(template.HTMLEscapeString(text[last:]))
	return template.HTML(b.String())
}
