package model

import "html/template"

// NavKey identifies which primary navigation entry a page belongs to.
type NavKey string

const (
	NavHome  NavKey = "home"
	NavCost  NavKey = "cost"
	NavHowTo NavKey = "howto"
)

// CityRecord is one row of the city table. Records are immutable once loaded.
type CityRecord struct {
	City           string
	State          string  // upper-case abbreviation
	CostMultiplier float64 // scalar applied to the base price bounds
}

// ContentBlock is one (heading, paragraph) section of a page body. The text
// may contain placeholder tokens that are expanded at render time.
type ContentBlock struct {
	Heading string
	Body    string
}

// PageSpec describes a single page to render. The document <title> is always
// the H1 text, clamped to the title length limit.
type PageSpec struct {
	H1            string
	Subheading    string
	CanonicalPath string
	NavKey        NavKey
	BodyHTML      template.HTML
}
