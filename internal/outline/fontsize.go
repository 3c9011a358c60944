package outline

import (
	"sort"

	"github.com/dgallion1/outliner/internal/layout"
)

// classifyByFont flags spans whose font size sits at least HeadingDelta
// points above the body baseline, then ranks the distinct candidate
// sizes descending: largest is H1, second H2, third and beyond H3. Two
// spans sharing a size always receive the same level, so level is
// monotonic with size.
func classifyByFont(d *document, cfg Config) []layout.HeadingCandidate {
	var hits []layout.Span
	seen := make(map[float64]bool)
	for _, s := range d.spans {
		if s.FontSize-d.baseline >= cfg.HeadingDelta {
			hits = append(hits, s)
			seen[s.FontSize] = true
		}
	}
	if len(hits) == 0 {
		return nil
	}

	sizes := make([]float64, 0, len(seen))
	for sz := range seen {
		sizes = append(sizes, sz)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	levels := make(map[float64]layout.Level, len(sizes))
	for i, sz := range sizes {
		switch i {
		case 0:
			levels[sz] = layout.H1
		case 1:
			levels[sz] = layout.H2
		default:
			// Depths past the third distinct size clamp to H3.
			levels[sz] = layout.H3
		}
	}

	cands := make([]layout.HeadingCandidate, 0, len(hits))
	for _, s := range hits {
		cands = append(cands, layout.HeadingCandidate{
			Text:   s.Text,
			Level:  levels[s.FontSize],
			Page:   s.Page,
			Y0:     s.Y0,
			Origin: layout.OriginFont,
		})
	}
	return cands
}
