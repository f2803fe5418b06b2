package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pedraamn/poison-ivy-removal/internal/model"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New("Poison Ivy Removal Company", "Get Free Estimate", "mailto:hello@example.com", "/picture.png")
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	return r
}

func extract(t *testing.T, doc, openTag, closeTag string) string {
	t.Helper()
	start := strings.Index(doc, openTag)
	if start < 0 {
		t.Fatalf("document missing %q", openTag)
	}
	rest := doc[start+len(openTag):]
	end := strings.Index(rest, closeTag)
	if end < 0 {
		t.Fatalf("document missing %q", closeTag)
	}
	return rest[:end]
}

func TestPageTitleMatchesH1(t *testing.T) {
	r := newTestRenderer(t)
	doc, err := r.Page(model.PageSpec{
		H1:            "Poison Ivy Removal Cost",
		Subheading:    "Typical pricing ranges.",
		CanonicalPath: "/cost/",
		NavKey:        model.NavCost,
	})
	if err != nil {
		t.Fatalf("Page() unexpected error: %v", err)
	}

	title := extract(t, doc, "<title>", "</title>")
	h1 := extract(t, doc, "<h1>", "</h1>")
	if title != h1 {
		t.Errorf("title %q != h1 %q", title, h1)
	}
	if strings.Count(doc, "<h1>") != 1 {
		t.Errorf("expected exactly one h1, found %d", strings.Count(doc, "<h1>"))
	}
}

func TestPageClampsLongH1(t *testing.T) {
	r := newTestRenderer(t)
	doc, err := r.Page(model.PageSpec{
		H1:            strings.Repeat("Very Long Title ", 10),
		CanonicalPath: "/",
		NavKey:        model.NavHome,
	})
	if err != nil {
		t.Fatalf("Page() unexpected error: %v", err)
	}

	title := extract(t, doc, "<title>", "</title>")
	h1 := extract(t, doc, "<h1>", "</h1>")
	if title != h1 {
		t.Errorf("title %q != h1 %q", title, h1)
	}
	if n := utf8.RuneCountInString(title); n > TitleLimit {
		t.Errorf("title has %d code points, limit is %d", n, TitleLimit)
	}
}

func TestPageNavCurrent(t *testing.T) {
	r := newTestRenderer(t)
	tests := []struct {
		nav  model.NavKey
		want string
	}{
		{model.NavHome, `<a href="/" aria-current="page">Home</a>`},
		{model.NavCost, `<a href="/cost/" aria-current="page">Cost</a>`},
		{model.NavHowTo, `<a href="/how-to/" aria-current="page">How-To</a>`},
	}
	for _, tt := range tests {
		doc, err := r.Page(model.PageSpec{H1: "Test", CanonicalPath: "/", NavKey: tt.nav})
		if err != nil {
			t.Fatalf("Page() unexpected error: %v", err)
		}
		if !strings.Contains(doc, tt.want) {
			t.Errorf("nav %q: document missing %q", tt.nav, tt.want)
		}
		if strings.Count(doc, `aria-current="page"`) != 1 {
			t.Errorf("nav %q: expected exactly one current nav entry", tt.nav)
		}
	}
}

func TestPageCarriesBodyAndChrome(t *testing.T) {
	r := newTestRenderer(t)
	doc, err := r.Page(model.PageSpec{
		H1:            "Test",
		CanonicalPath: "/austin-tx/",
		NavKey:        model.NavHome,
		BodyHTML:      "<h2>Heading</h2>\n<p>Body</p>\n",
	})
	if err != nil {
		t.Fatalf("Page() unexpected error: %v", err)
	}

	for _, want := range []string{
		"<h2>Heading</h2>",
		`<link rel="canonical" href="/austin-tx/" />`,
		`<img src="/picture.png"`,
		"Poison Ivy Removal Company",
		"Get Free Estimate",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestSectionPreservesOrder(t *testing.T) {
	blocks := []model.ContentBlock{
		{Heading: "First", Body: "one"},
		{Heading: "Second", Body: "two with a {link}"},
		{Heading: "Third", Body: "three"},
	}
	got := string(Section(blocks, nil))

	first := strings.Index(got, "<h2>First</h2>")
	second := strings.Index(got, "<h2>Second</h2>")
	third := strings.Index(got, "<h2>Third</h2>")
	if first < 0 || second < 0 || third < 0 || !(first < second && second < third) {
		t.Fatalf("section order not preserved: %q", got)
	}
	if !strings.Contains(got, `<p>two with a <a href="/">link</a></p>`) {
		t.Errorf("body token not expanded: %q", got)
	}
}

func TestSectionEmpty(t *testing.T) {
	if got := string(Section(nil, nil)); got != "" {
		t.Errorf("Section(nil) = %q, want empty", got)
	}
}
