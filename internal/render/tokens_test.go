package render

import (
	"strings"
	"testing"
)

func TestExpandGenericLink(t *testing.T) {
	got := string(Expand("Call {poison ivy removal services} today", nil))
	want := `Call <a href="/">poison ivy removal services</a> today`
	if got != want {
		t.Errorf("Expand() = %q, want %q", got, want)
	}
}

func TestExpandNamedTokens(t *testing.T) {
	vars := CityTokens("Austin", "TX", 300, 1200, 1.0)
	got := string(Expand("In {City, State}, projects range from {cost_lo} to {cost_hi}.", vars))
	want := "In Austin, TX, projects range from $300 to $1200."
	if got != want {
		t.Errorf("Expand() = %q, want %q", got, want)
	}
}

func TestExpandUnknownNamedTokenFallsBackToLink(t *testing.T) {
	vars := CityTokens("Austin", "TX", 300, 1200, 1.0)
	got := string(Expand("See {cost_mid} for details", vars))
	if !strings.Contains(got, `<a href="/">cost_mid</a>`) {
		t.Errorf("unknown token did not fall back to a homepage link: %q", got)
	}
}

func TestExpandEscapesLiteralText(t *testing.T) {
	got := string(Expand("Tools & <tips> around {safe gear}", nil))
	want := `Tools &amp; &lt;tips&gt; around <a href="/">safe gear</a>`
	if got != want {
		t.Errorf("Expand() = %q, want %q", got, want)
	}
}

func TestExpandEscapesLinkText(t *testing.T) {
	got := string(Expand("{a <b> c}", nil))
	want := `<a href="/">a &lt;b&gt; c</a>`
	if got != want {
		t.Errorf("Expand() = %q, want %q", got, want)
	}
}

func TestExpandLeavesUnclosedBraces(t *testing.T) {
	got := string(Expand("an {unclosed brace", nil))
	if got != "an {unclosed brace" {
		t.Errorf("Expand() = %q, unmatched brace should stay literal", got)
	}
}

func TestExpandEmptyInput(t *testing.T) {
	if got := string(Expand("", nil)); got != "" {
		t.Errorf("Expand(\"\") = %q, want empty", got)
	}
}

func TestDollarBound(t *testing.T) {
	tests := []struct {
		base       int
		multiplier float64
		want       string
	}{
		{300, 1.0, "$300"},
		{1200, 1.0, "$1200"},
		{300, 1.5, "$450"},
		{1200, 1.5, "$1800"},
		// truncation, not rounding
		{300, 1.333, "$399"},
		{1200, 0.999, "$1198"},
	}
	for _, tt := range tests {
		if got := DollarBound(tt.base, tt.multiplier); got != tt.want {
			t.Errorf("DollarBound(%d, %v) = %q, want %q", tt.base, tt.multiplier, got, tt.want)
		}
	}
}
