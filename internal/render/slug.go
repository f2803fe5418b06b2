package render

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a name into a lowercase, hyphen-joined, URL-safe
// identifier. The fold is intentionally lossy: every run of characters
// outside [a-z0-9] becomes a single hyphen, including non-ASCII letters.
// Total for any input; degenerate all-symbol input yields "".
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "&", " and ")
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// CityStateSlug joins the city and state slugs with a hyphen. This is the
// path segment for a city page.
func CityStateSlug(city, state string) string {
	return Slugify(city) + "-" + Slugify(state)
}
