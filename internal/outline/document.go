package outline

import (
	"sort"
	"strings"

	"github.com/dgallion1/outliner/internal/layout"
)

// Normalize trims each span's text and drops spans left empty. It is the
// only mutation applied to ingested spans; everything downstream treats
// them as immutable.
func Normalize(spans []layout.Span) []layout.Span {
	out := make([]layout.Span, 0, len(spans))
	for _, s := range spans {
		s.Text = strings.TrimSpace(s.Text)
		if s.Text == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// document bundles one document's normalized spans with the statistics
// every stage needs. It is built fresh per Extract call; the baseline is
// carried here as a value, never as package state.
type document struct {
	spans    []layout.Span
	baseline float64
	pages    int
}

func newDocument(spans []layout.Span) *document {
	maxPage := 0
	for _, s := range spans {
		if s.Page > maxPage {
			maxPage = s.Page
		}
	}
	return &document{
		spans:    spans,
		baseline: medianFontSize(spans),
		pages:    maxPage + 1,
	}
}

// firstPage returns the page-0 spans sorted by y0 ascending.
func (d *document) firstPage() []layout.Span {
	var out []layout.Span
	for _, s := range d.spans {
		if s.Page == 0 {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Y0 < out[j].Y0 })
	return out
}

// anyText reports whether any span's case-folded text contains needle.
// An optional page restricts the search.
func (d *document) anyText(needle string, page int) bool {
	for _, s := range d.spans {
		if page >= 0 && s.Page != page {
			continue
		}
		if strings.Contains(strings.ToLower(s.Text), needle) {
			return true
		}
	}
	return false
}

// medianFontSize computes the body-text baseline: the median font size
// across all spans. The median, not the mean, because body text forms
// the largest cluster by count and a handful of oversized heading
// fragments must not skew the reference point.
func medianFontSize(spans []layout.Span) float64 {
	if len(spans) == 0 {
		return 0
	}
	sizes := make([]float64, len(spans))
	for i, s := range spans {
		sizes[i] = s.FontSize
	}
	sort.Float64s(sizes)
	mid := len(sizes) / 2
	if len(sizes)%2 == 0 {
		return (sizes[mid-1] + sizes[mid]) / 2
	}
	return sizes[mid]
}
