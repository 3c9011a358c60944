package outline

import (
	"testing"

	"github.com/dgallion1/outliner/internal/layout"
)

func TestNormalize_TrimsAndDrops(t *testing.T) {
	spans := []layout.Span{
		{Text: "  Introduction  ", FontSize: 12, Page: 0, Y0: 10},
		{Text: "   ", FontSize: 12, Page: 0, Y0: 20},
		{Text: "", FontSize: 12, Page: 0, Y0: 30},
		{Text: "Body", FontSize: 12, Page: 1, Y0: 40},
	}
	got := Normalize(spans)
	if len(got) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(got))
	}
	if got[0].Text != "Introduction" {
		t.Errorf("expected trimmed text %q, got %q", "Introduction", got[0].Text)
	}
	if got[1].Text != "Body" {
		t.Errorf("expected %q, got %q", "Body", got[1].Text)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	if got := Normalize(nil); len(got) != 0 {
		t.Errorf("expected no spans, got %d", len(got))
	}
}

func TestMedianFontSize(t *testing.T) {
	tests := []struct {
		name  string
		sizes []float64
		want  float64
	}{
		{"odd count", []float64{24, 12, 12}, 12},
		{"even count averages middle pair", []float64{10, 12, 14, 24}, 13},
		{"single span", []float64{18}, 18},
		{"uniform", []float64{12, 12, 12, 12}, 12},
		{"unsorted input", []float64{30, 8, 12}, 12},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spans := make([]layout.Span, len(tc.sizes))
			for i, sz := range tc.sizes {
				spans[i] = layout.Span{Text: "x", FontSize: sz}
			}
			if got := medianFontSize(spans); got != tc.want {
				t.Errorf("expected median %v, got %v", tc.want, got)
			}
		})
	}
}

func TestMedianFontSize_Empty(t *testing.T) {
	if got := medianFontSize(nil); got != 0 {
		t.Errorf("expected 0 for empty input, got %v", got)
	}
}

func TestNewDocument_PageCount(t *testing.T) {
	doc := newDocument([]layout.Span{
		{Text: "a", FontSize: 12, Page: 0},
		{Text: "b", FontSize: 12, Page: 3},
	})
	if doc.pages != 4 {
		t.Errorf("expected 4 pages, got %d", doc.pages)
	}
}

func TestFirstPage_SortedByY0(t *testing.T) {
	doc := newDocument([]layout.Span{
		{Text: "lower", FontSize: 12, Page: 0, Y0: 300},
		{Text: "other page", FontSize: 12, Page: 1, Y0: 10},
		{Text: "upper", FontSize: 12, Page: 0, Y0: 50},
	})
	first := doc.firstPage()
	if len(first) != 2 {
		t.Fatalf("expected 2 page-0 spans, got %d", len(first))
	}
	if first[0].Text != "upper" || first[1].Text != "lower" {
		t.Errorf("expected [upper lower], got [%s %s]", first[0].Text, first[1].Text)
	}
}
