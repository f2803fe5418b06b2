package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pedraamn/poison-ivy-removal/internal/model"
)

//go:embed default.yaml
var defaultYAML []byte

// Section is a parallel heading/paragraph table. Order is meaningful and is
// preserved all the way into the rendered page.
type Section struct {
	Headings   []string `yaml:"headings"`
	Paragraphs []string `yaml:"paragraphs"`
}

// Blocks pairs headings with paragraphs in order.
func (s Section) Blocks() []model.ContentBlock {
	blocks := make([]model.ContentBlock, len(s.Headings))
	for i := range s.Headings {
		blocks[i] = model.ContentBlock{Heading: s.Headings[i], Body: s.Paragraphs[i]}
	}
	return blocks
}

// City is an inline city-table entry, an alternative to the CSV file.
type City struct {
	City  string  `yaml:"city"`
	State string  `yaml:"state"`
	Col   float64 `yaml:"col"`
}

// Content is the full set of site copy and pricing for one build. It replaces
// what used to be ambient module-level tables: load it once, pass it around,
// never mutate it.
type Content struct {
	BrandName string `yaml:"brand_name"`
	CTAText   string `yaml:"cta_text"`
	CTAHref   string `yaml:"cta_href"`

	// Base price bounds in whole dollars; city pages scale them by the
	// per-city cost multiplier.
	CostLow  int `yaml:"cost_low"`
	CostHigh int `yaml:"cost_high"`

	HomeTitle      string `yaml:"home_title"`
	HomeShortTitle string `yaml:"home_short_title"`
	HomeSub        string `yaml:"home_sub"`

	CostTitle string `yaml:"cost_title"`
	CostSub   string `yaml:"cost_sub"`

	HowToTitle string `yaml:"howto_title"`
	HowToSub   string `yaml:"howto_sub"`

	Home  Section `yaml:"home"`
	Cost  Section `yaml:"cost"`
	HowTo Section `yaml:"howto"`

	// City-localized cost section; both fields may contain named tokens.
	CityCostHeading string `yaml:"city_cost_heading"`
	CityCostBody    string `yaml:"city_cost_body"`

	// CostCallout renders the price-range badge at the top of city pages.
	CostCallout bool `yaml:"cost_callout"`

	// Cities, when non-empty, takes the place of the CSV city file.
	Cities []City `yaml:"cities"`
}

// Load reads content from the YAML file at path. An empty path loads the
// embedded default content.
func Load(path string) (*Content, error) {
	data := defaultYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content file %s: %w", path, err)
		}
		data = b
	}

	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Content) validate() error {
	sections := map[string]Section{"home": c.Home, "cost": c.Cost, "howto": c.HowTo}
	for name, s := range sections {
		if len(s.Headings) != len(s.Paragraphs) {
			return fmt.Errorf("content section %q: %d headings but %d paragraphs", name, len(s.Headings), len(s.Paragraphs))
		}
	}
	if c.CostLow <= 0 || c.CostHigh < c.CostLow {
		return fmt.Errorf("content: invalid cost bounds %d-%d", c.CostLow, c.CostHigh)
	}
	return nil
}
