package outline

import (
	"testing"

	"github.com/dgallion1/outliner/internal/layout"
)

func TestIsNoise(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		noise bool
	}{
		{"plain heading", "Introduction", false},
		{"heading with punctuation", "Marseille: The Oldest City in France", false},
		{"spelled date", "21 MARCH 2003", true},
		{"spelled date with comma", "3 June, 2021", true},
		{"iso date", "2024-01-15", true},
		{"iso datetime", "2024-01-15T09:30:00Z", true},
		{"url with scheme", "https://example.com/path", true},
		{"bare www", "www.example.org", true},
		{"dot com mention", "Visit topjump.com today", true},
		{"version number", "3.2.1", true},
		{"single number with dot", "4.", true},
		{"copyright line", "Copyright 2020 Acme Corp", true},
		{"too short", "ab", true},
		{"exactly min length", "abc", false},
		{"year alone", "2024", true},
		{"rsvp line", "RSVP by Friday to reserve", true},
		{"decorative venue term", "SEE YOU AT TOPJUMP!", true},
		{"version mention", "Software Version History", true},
		{"revision is not version", "Revision History", false},
		{"mission statement", "Our Mission Statement", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isNoise(tc.text, 3); got != tc.noise {
				t.Errorf("isNoise(%q) = %v, expected %v", tc.text, got, tc.noise)
			}
		})
	}
}

func TestValidate_DropsNoiseCandidates(t *testing.T) {
	d := newDocument([]layout.Span{
		{Text: "body", FontSize: 12, Page: 0, Y0: 100},
	})
	cands := []layout.HeadingCandidate{
		{Text: "Introduction", Level: layout.H1, Page: 0, Y0: 10, Origin: layout.OriginFont},
		{Text: "https://example.com", Level: layout.H2, Page: 0, Y0: 20, Origin: layout.OriginFont},
		{Text: "21 MARCH 2003", Level: layout.H2, Page: 0, Y0: 30, Origin: layout.OriginFont},
	}
	got := validate(d, cands, DefaultConfig())
	if len(got) != 1 {
		t.Fatalf("expected 1 surviving candidate, got %d", len(got))
	}
	if got[0].Text != "Introduction" {
		t.Errorf("expected %q to survive, got %q", "Introduction", got[0].Text)
	}
}

func TestFurnitureKeys_RunningHeader(t *testing.T) {
	// Same text at the same position on every page is furniture.
	spans := []layout.Span{
		{Text: "Confidential Draft", FontSize: 12, Page: 0, Y0: 20},
		{Text: "Chapter One", FontSize: 18, Page: 0, Y0: 100},
		{Text: "Confidential Draft", FontSize: 12, Page: 1, Y0: 21},
		{Text: "Chapter Two", FontSize: 18, Page: 1, Y0: 100},
		{Text: "Confidential Draft", FontSize: 12, Page: 2, Y0: 19},
	}
	d := newDocument(spans)
	keys := furnitureKeys(d)
	if !keys[furnitureKey{"confidential draft", 20}] {
		t.Error("expected running header to be marked as furniture")
	}
	// "Chapter One" appears on a single page.
	if keys[furnitureKey{"chapter one", 100}] {
		t.Error("did not expect per-page heading to be furniture")
	}
}

func TestFurnitureKeys_SinglePageNeverFurniture(t *testing.T) {
	d := newDocument([]layout.Span{
		{Text: "Poster Title", FontSize: 30, Page: 0, Y0: 10},
	})
	if keys := furnitureKeys(d); len(keys) != 0 {
		t.Errorf("expected no furniture on a single-page document, got %d keys", len(keys))
	}
}

func TestValidate_DropsRunningHeaderCandidate(t *testing.T) {
	spans := []layout.Span{
		{Text: "ACME Report", FontSize: 16, Page: 0, Y0: 15},
		{Text: "Findings", FontSize: 16, Page: 0, Y0: 200},
		{Text: "ACME Report", FontSize: 16, Page: 1, Y0: 15},
		{Text: "body", FontSize: 12, Page: 1, Y0: 300},
	}
	d := newDocument(spans)
	cands := []layout.HeadingCandidate{
		{Text: "ACME Report", Level: layout.H1, Page: 0, Y0: 15, Origin: layout.OriginFont},
		{Text: "Findings", Level: layout.H1, Page: 0, Y0: 200, Origin: layout.OriginFont},
	}
	got := validate(d, cands, DefaultConfig())
	if len(got) != 1 || got[0].Text != "Findings" {
		t.Fatalf("expected only %q to survive, got %+v", "Findings", got)
	}
}
