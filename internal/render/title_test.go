package render

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestClampTitleUnderLimit(t *testing.T) {
	title := "Poison Ivy Removal Cost"
	if got := ClampTitle(title, 70); got != title {
		t.Errorf("ClampTitle(%q) = %q, want unchanged", title, got)
	}

	exact := strings.Repeat("x", 70)
	if got := ClampTitle(exact, 70); got != exact {
		t.Errorf("ClampTitle() changed a title of exactly the limit")
	}
}

func TestClampTitleTruncates(t *testing.T) {
	long := strings.Repeat("abcdefghij", 10) // 100 chars
	got := ClampTitle(long, 70)

	if n := utf8.RuneCountInString(got); n > 70 {
		t.Errorf("ClampTitle() produced %d code points, limit is 70", n)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("ClampTitle() = %q, expected trailing ellipsis", got)
	}
	if want := long[:69] + "…"; got != want {
		t.Errorf("ClampTitle() = %q, want %q", got, want)
	}
}

func TestClampTitleStripsTrailingSpace(t *testing.T) {
	// code point 69 (the cut point) lands right after a space
	title := strings.Repeat("x", 68) + " y z"
	got := ClampTitle(title, 70)
	if got != strings.Repeat("x", 68)+"…" {
		t.Errorf("ClampTitle() = %q, trailing whitespace not stripped before ellipsis", got)
	}
}

func TestClampTitleIdempotent(t *testing.T) {
	inputs := []string{
		"short",
		strings.Repeat("x", 70),
		strings.Repeat("long title ", 20),
	}
	for _, input := range inputs {
		once := ClampTitle(input, 70)
		if twice := ClampTitle(once, 70); twice != once {
			t.Errorf("ClampTitle(ClampTitle(%q)) = %q, want %q", input, twice, once)
		}
	}
}

func TestClampTitleCountsCodePoints(t *testing.T) {
	// multi-byte runes must count as one character each
	title := strings.Repeat("é", 80)
	got := ClampTitle(title, 70)
	if want := strings.Repeat("é", 69) + "…"; got != want {
		t.Errorf("ClampTitle() = %q, want 69 é runes plus ellipsis", got)
	}
}
