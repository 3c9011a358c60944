package outline

import (
	"testing"

	"github.com/dgallion1/outliner/internal/layout"
)

func TestMatchNumbering(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  layout.Level
		rest  string
		match bool
	}{
		{"one group", "1. Introduction", layout.H1, "Introduction", true},
		{"one group no trailing content", "1.", "", "", false},
		{"two groups", "2.1 Overview", layout.H2, "Overview", true},
		{"two groups with trailing dot", "2.1. Overview", layout.H2, "Overview", true},
		{"three groups", "3.2.1 Details", layout.H3, "Details", true},
		{"four groups clamp to H3", "1.2.3.4 Deep Section", layout.H3, "Deep Section", true},
		{"multi-digit groups", "10.20 Budget", layout.H2, "Budget", true},
		{"bare version number", "1.1.1", "", "", false},
		{"plain text", "Introduction", "", "", false},
		{"number without dot", "1 Introduction", "", "", false},
		{"mid-text numbering", "see 1.2 below", "", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := matchNumbering(layout.Span{Text: tc.text, FontSize: 12, Page: 2, Y0: 40})
			if ok != tc.match {
				t.Fatalf("expected match=%v for %q, got %v", tc.match, tc.text, ok)
			}
			if !ok {
				return
			}
			if c.Level != tc.want {
				t.Errorf("expected level %s, got %s", tc.want, c.Level)
			}
			if c.Text != tc.rest {
				t.Errorf("expected text %q, got %q", tc.rest, c.Text)
			}
			if c.Origin != layout.OriginPattern {
				t.Errorf("expected pattern origin, got %s", c.Origin)
			}
			if c.Page != 2 || c.Y0 != 40 {
				t.Errorf("expected position carried over, got page=%d y0=%v", c.Page, c.Y0)
			}
		})
	}
}

func TestClassifyByPattern_IgnoresFontSize(t *testing.T) {
	// Uniform small fonts: the pattern path must still fire.
	d := newDocument([]layout.Span{
		{Text: "1. Scope", FontSize: 10, Page: 0, Y0: 10},
		{Text: "plain body", FontSize: 10, Page: 0, Y0: 20},
		{Text: "1.1 Terms", FontSize: 10, Page: 0, Y0: 30},
	})
	cands := classifyByPattern(d)
	if len(cands) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(cands))
	}
	if cands[0].Level != layout.H1 || cands[0].Text != "Scope" {
		t.Errorf("expected H1 %q, got %s %q", "Scope", cands[0].Level, cands[0].Text)
	}
	if cands[1].Level != layout.H2 || cands[1].Text != "Terms" {
		t.Errorf("expected H2 %q, got %s %q", "Terms", cands[1].Level, cands[1].Text)
	}
}
