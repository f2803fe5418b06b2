package site

import (
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/pedraamn/poison-ivy-removal/internal/cities"
	"github.com/pedraamn/poison-ivy-removal/internal/config"
	"github.com/pedraamn/poison-ivy-removal/internal/content"
	"github.com/pedraamn/poison-ivy-removal/internal/model"
	"github.com/pedraamn/poison-ivy-removal/internal/render"
)

// Builder generates the whole site in one shot: the fixed pages, one page
// per city, optional markdown pages, robots.txt, and the sitemap.
type Builder struct {
	cfg     config.Config
	content *content.Content
	source  cities.Source
	log     *slog.Logger
}

func New(cfg config.Config, c *content.Content, src cities.Source, logger *slog.Logger) *Builder {
	return &Builder{cfg: cfg, content: c, source: src, log: logger}
}

// Build validates the inputs, resets the output directory, and writes every
// output file. Input failures (a bad city row, a missing site image) are
// reported before the output directory is touched. A failure partway through
// rendering can leave partial output behind; each individual file write is
// atomic, so no file is ever left truncated.
func (b *Builder) Build() error {
	records, err := b.source.Cities()
	if err != nil {
		return fmt.Errorf("load cities: %w", err)
	}

	if _, err := os.Stat(b.cfg.ImageFile); err != nil {
		return fmt.Errorf("site image %s: %w", b.cfg.ImageFile, err)
	}

	imageName := filepath.Base(b.cfg.ImageFile)
	renderer, err := render.New(b.content.BrandName, b.content.CTAText, b.content.CTAHref, "/"+imageName)
	if err != nil {
		return err
	}

	pages := []model.PageSpec{
		b.homePage(records),
		b.costPage(),
		b.howToPage(),
	}
	for _, rec := range records {
		pages = append(pages, b.cityPage(rec))
	}

	extra, err := b.extraPages()
	if err != nil {
		return fmt.Errorf("collect extra pages: %w", err)
	}
	pages = append(pages, extra...)
	pages = b.dedupe(pages)

	if err := resetOutputDir(b.cfg.OutputDir); err != nil {
		return err
	}
	if err := copyFile(b.cfg.ImageFile, filepath.Join(b.cfg.OutputDir, imageName)); err != nil {
		return fmt.Errorf("copy site image: %w", err)
	}

	for _, spec := range pages {
		doc, err := renderer.Page(spec)
		if err != nil {
			return err
		}
		if err := b.writePage(spec.CanonicalPath, doc); err != nil {
			return err
		}
		b.log.Info("generated page", "path", spec.CanonicalPath)
	}

	if err := b.writeFile("robots.txt", robotsTxt(b.cfg.BaseURL)); err != nil {
		return err
	}
	if err := b.writeFile("sitemap.xml", sitemapXML(b.cfg.BaseURL, pages)); err != nil {
		return err
	}

	b.log.Info("site build complete", "pages", len(pages), "cities", len(records), "output", b.cfg.OutputDir)
	return nil
}

func (b *Builder) homePage(records []model.CityRecord) model.PageSpec {
	c := b.content

	var body strings.Builder
	body.WriteString(string(render.Section(c.Home.Blocks(), nil)))
	body.WriteString("<hr />\n<h2>Choose your city</h2>\n")
	body.WriteString("<p class=\"muted\">We provide services nationwide, including in the following cities:</p>\n")
	body.WriteString("<ul class=\"city-grid\">\n")
	for _, rec := range records {
		href := "/" + render.CityStateSlug(rec.City, rec.State) + "/"
		fmt.Fprintf(&body, "<li><a href=\"%s\">%s</a></li>\n",
			href, template.HTMLEscapeString(rec.City+", "+rec.State))
	}
	body.WriteString("</ul>\n<hr />\n")
	fmt.Fprintf(&body, "<p class=\"muted\">Also available: <a href=\"/cost/\">%s</a> and <a href=\"/how-to/\">%s</a>.</p>\n",
		template.HTMLEscapeString(c.CostTitle), template.HTMLEscapeString(c.HowToTitle))

	return model.PageSpec{
		H1:            c.HomeTitle,
		Subheading:    c.HomeSub,
		CanonicalPath: "/",
		NavKey:        model.NavHome,
		BodyHTML:      template.HTML(body.String()),
	}
}

func (b *Builder) costPage() model.PageSpec {
	c := b.content
	return model.PageSpec{
		H1:            c.CostTitle,
		Subheading:    c.CostSub,
		CanonicalPath: "/cost/",
		NavKey:        model.NavCost,
		BodyHTML:      render.Section(c.Cost.Blocks(), nil),
	}
}

func (b *Builder) howToPage() model.PageSpec {
	c := b.content
	return model.PageSpec{
		H1:            c.HowToTitle,
		Subheading:    c.HowToSub,
		CanonicalPath: "/how-to/",
		NavKey:        model.NavHowTo,
		BodyHTML:      render.Section(c.HowTo.Blocks(), nil),
	}
}

// cityPage assembles a city landing page: the localized cost section first,
// then the shared guide blocks in their fixed order.
func (b *Builder) cityPage(rec model.CityRecord) model.PageSpec {
	c := b.content
	vars := render.CityTokens(rec.City, rec.State, c.CostLow, c.CostHigh, rec.CostMultiplier)

	var body strings.Builder
	if c.CostCallout {
		body.WriteString(string(costCallout(rec, c.CostLow, c.CostHigh)))
	}
	costBlock := []model.ContentBlock{{Heading: c.CityCostHeading, Body: c.CityCostBody}}
	body.WriteString(string(render.Section(costBlock, vars)))
	body.WriteString(string(render.Section(c.Home.Blocks(), nil)))

	return model.PageSpec{
		H1:            fmt.Sprintf("%s in %s, %s", c.HomeShortTitle, rec.City, rec.State),
		Subheading:    c.HomeSub,
		CanonicalPath: "/" + render.CityStateSlug(rec.City, rec.State) + "/",
		NavKey:        model.NavHome,
		BodyHTML:      template.HTML(body.String()),
	}
}

func costCallout(rec model.CityRecord, low, high int) template.HTML {
	var b strings.Builder
	b.WriteString("<div class=\"callout\" role=\"note\" aria-label=\"Typical cost range\">\n")
	b.WriteString("<div class=\"callout-title\">\n")
	fmt.Fprintf(&b, "<span class=\"badge\">Typical range in %s</span>\n",
		template.HTMLEscapeString(rec.City+", "+rec.State))
	fmt.Fprintf(&b, "<span>$%d–$%d</span>\n", low, high)
	b.WriteString("</div>\n</div>\n")
	return template.HTML(b.String())
}

// dedupe drops pages whose canonical path was already claimed, keeping the
// first occurrence. Page order is preserved.
func (b *Builder) dedupe(pages []model.PageSpec) []model.PageSpec {
	seen := make(map[string]struct{}, len(pages))
	out := pages[:0]
	for _, p := range pages {
		if _, dup := seen[p.CanonicalPath]; dup {
			b.log.Warn("skipping duplicate page", "path", p.CanonicalPath)
			continue
		}
		seen[p.CanonicalPath] = struct{}{}
		out = append(out, p)
	}
	return out
}

func (b *Builder) writePage(canonicalPath, doc string) error {
	dir := filepath.Join(b.cfg.OutputDir, filepath.FromSlash(strings.Trim(canonicalPath, "/")))
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("create page directory %s: %w", dir, err)
	}
	out := filepath.Join(dir, "index.html")
	if err := atomic.WriteFile(out, strings.NewReader(doc)); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}

func (b *Builder) writeFile(name, data string) error {
	out := filepath.Join(b.cfg.OutputDir, name)
	if err := atomic.WriteFile(out, strings.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}

func robotsTxt(baseURL string) string {
	return "User-agent: *\nAllow: /\nSitemap: " + baseURL + "/sitemap.xml\n"
}

func sitemapXML(baseURL string, pages []model.PageSpec) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n")
	for _, p := range pages {
		fmt.Fprintf(&b, "  <url><loc>%s%s</loc></url>\n", baseURL, p.CanonicalPath)
	}
	b.WriteString("</urlset>\n")
	return b.String()
}

func resetOutputDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove output directory %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer f.Close()
	if err := atomic.WriteFile(dst, f); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}
