package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/pedraamn/poison-ivy-removal/internal/model"
)

//go:embed templates/base.html
var templateFS embed.FS

//go:embed templates/style.css
var siteCSS string

// Renderer executes the base page layout for PageSpecs. Every page shares
// one layout: topbar, hero header, a main card with the site image, footer.
type Renderer struct {
	tpl      *template.Template
	brand    string
	ctaText  string
	ctaHref  string
	imageSrc string
}

// New parses the embedded base layout.
func New(brand, ctaText, ctaHref, imageSrc string) (*Renderer, error) {
	tpl, err := template.ParseFS(templateFS, "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("parse base layout: %w", err)
	}
	return &Renderer{
		tpl:      tpl,
		brand:    brand,
		ctaText:  ctaText,
		ctaHref:  ctaHref,
		imageSrc: imageSrc,
	}, nil
}

type pageContext struct {
	Title     string
	Canonical string
	CSS       template.CSS
	Brand     string
	CTAText   string
	CTAHref   string
	NavKey    string
	H1        string
	Sub       string
	Image     string
	Body      template.HTML
}

// Page renders one complete HTML document. The H1 is clamped to TitleLimit
// and the document title is the H1 text, character for character.
func (r *Renderer) Page(spec model.PageSpec) (string, error) {
	h1 := ClampTitle(spec.H1, TitleLimit)

	var buf bytes.Buffer
	err := r.tpl.Execute(&buf, pageContext{
		Title:     h1,
		Canonical: spec.CanonicalPath,
		CSS:       template.CSS(siteCSS),
		Brand:     r.brand,
		CTAText:   r.ctaText,
		CTAHref:   r.ctaHref,
		NavKey:    string(spec.NavKey),
		H1:        h1,
		Sub:       spec.Subheading,
		Image:     r.imageSrc,
		Body:      spec.BodyHTML,
	})
	if err != nil {
		return "", fmt.Errorf("render page %s: %w", spec.CanonicalPath, err)
	}
	return buf.String(), nil
}

// Section renders content blocks as alternating h2/p elements, preserving
// the supplied order exactly. Headings and bodies both go through the token
// grammar.
func Section(blocks []model.ContentBlock, vars map[string]string) template.HTML {
	var b strings.Builder
	for _, blk := range blocks {
		b.WriteString("<h2>")
		b.WriteString(string(Expand(blk.Heading, vars)))
		b.WriteString("</h2>\n<p>")
		b.WriteString(string(Expand(blk.Body, vars)))
		b.WriteString("</p>\n")
	}
	return template.HTML(b.String())
}
