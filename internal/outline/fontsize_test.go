package outline

import (
	"testing"

	"github.com/dgallion1/outliner/internal/layout"
)

func fontDoc(sizes ...float64) *document {
	spans := make([]layout.Span, 0, len(sizes)+5)
	for i, sz := range sizes {
		spans = append(spans, layout.Span{Text: "Heading text", FontSize: sz, Page: 0, Y0: float64(i) * 50})
	}
	// Enough body text to pin the median at 12.
	for i := range 5 {
		spans = append(spans, layout.Span{Text: "body", FontSize: 12, Page: 0, Y0: 500 + float64(i)*20})
	}
	return newDocument(spans)
}

func TestClassifyByFont_DistinctSizeRanking(t *testing.T) {
	d := fontDoc(24, 18, 15)
	cands := classifyByFont(d, DefaultConfig())
	if len(cands) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(cands))
	}
	want := []layout.Level{layout.H1, layout.H2, layout.H3}
	for i, c := range cands {
		if c.Level != want[i] {
			t.Errorf("candidate %d: expected level %s, got %s", i, want[i], c.Level)
		}
		if c.Origin != layout.OriginFont {
			t.Errorf("candidate %d: expected font origin, got %s", i, c.Origin)
		}
	}
}

func TestClassifyByFont_ClampsBeyondThirdSize(t *testing.T) {
	d := fontDoc(30, 25, 20, 16)
	cands := classifyByFont(d, DefaultConfig())
	if len(cands) != 4 {
		t.Fatalf("expected 4 candidates, got %d", len(cands))
	}
	if cands[3].Level != layout.H3 {
		t.Errorf("expected fourth distinct size clamped to H3, got %s", cands[3].Level)
	}
}

func TestClassifyByFont_SharedSizeSharedLevel(t *testing.T) {
	d := fontDoc(20, 20, 16)
	cands := classifyByFont(d, DefaultConfig())
	if cands[0].Level != cands[1].Level {
		t.Errorf("spans sharing a size must share a level: %s vs %s", cands[0].Level, cands[1].Level)
	}
}

func TestClassifyByFont_MonotonicWithSize(t *testing.T) {
	d := fontDoc(30, 25, 20, 16, 14.5)
	cands := classifyByFont(d, DefaultConfig())

	// All five sizes qualify, so candidates align with the heading spans.
	// Compare every pair directly against the monotonicity property.
	for i, a := range cands {
		for j, b := range cands {
			fa := d.spans[i].FontSize
			fb := d.spans[j].FontSize
			if fa > fb && a.Level.Depth() > b.Level.Depth() {
				t.Errorf("size %v got deeper level %s than size %v at %s", fa, a.Level, fb, b.Level)
			}
		}
	}
}

func TestClassifyByFont_BelowThresholdExcluded(t *testing.T) {
	// 13 is only 1 point above the baseline of 12.
	d := fontDoc(13)
	if cands := classifyByFont(d, DefaultConfig()); len(cands) != 0 {
		t.Errorf("expected no candidates below threshold, got %d", len(cands))
	}
}

func TestClassifyByFont_ThresholdBoundary(t *testing.T) {
	// Exactly baseline+delta qualifies.
	d := fontDoc(14)
	cands := classifyByFont(d, DefaultConfig())
	if len(cands) != 1 {
		t.Fatalf("expected span at exactly baseline+delta to qualify, got %d candidates", len(cands))
	}
	if cands[0].Level != layout.H1 {
		t.Errorf("expected sole candidate to be H1, got %s", cands[0].Level)
	}
}
