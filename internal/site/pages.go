package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pedraamn/poison-ivy-removal/internal/model"
)

type pageFrontmatter struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
}

// extraPages collects optional Markdown pages from the configured pages
// directory and renders them through the shared layout. A missing directory
// is not an error; the feature is opt-in.
func (b *Builder) extraPages() ([]model.PageSpec, error) {
	dir := b.cfg.PagesDir
	if dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)

	var specs []model.PageSpec
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read page %s: %w", path, err)
		}

		var fm pageFrontmatter
		body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
		if err != nil {
			// no frontmatter; treat the whole file as markdown
			body = raw
		}

		var htmlBuf bytes.Buffer
		if err := md.Convert(body, &htmlBuf); err != nil {
			return fmt.Errorf("convert page %s: %w", path, err)
		}

		title := fm.Title
		if title == "" {
			base := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
			base = strings.ReplaceAll(strings.ReplaceAll(base, "-", " "), "_", " ")
			title = cases.Title(language.English).String(base)
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		permalink := "/" + filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel))) + "/"

		specs = append(specs, model.PageSpec{
			H1:            title,
			Subheading:    fm.Summary,
			CanonicalPath: permalink,
			NavKey:        model.NavHome,
			BodyHTML:      template.HTML(htmlBuf.String()),
		})
		b.log.Info("collected markdown page", "source", path, "path", permalink)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return specs, nil
}
