package outline

import (
	"math"
	"sort"
	"strings"

	"github.com/dgallion1/outliner/internal/layout"
)

// roundY rounds a vertical offset to the nearest 10 units. Candidate
// identity tolerates sub-point jitter from layout parsers this way.
func roundY(y float64) float64 {
	return math.Round(y/10) * 10
}

// assemble sorts surviving candidates into reading order, removes
// duplicates sharing (case-folded text, page, rounded y0) keeping the
// first occurrence, and produces the final Outline.
func assemble(title string, cands []layout.HeadingCandidate) layout.Outline {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Page != cands[j].Page {
			return cands[i].Page < cands[j].Page
		}
		return cands[i].Y0 < cands[j].Y0
	})

	type key struct {
		text string
		page int
		y0   float64
	}
	seen := make(map[key]bool, len(cands))
	entries := make([]layout.Entry, 0, len(cands))
	for _, c := range cands {
		k := key{strings.ToLower(c.Text), c.Page, roundY(c.Y0)}
		if seen[k] {
			continue
		}
		seen[k] = true
		entries = append(entries, layout.Entry{
			Level: c.Level,
			Text:  c.Text,
			Page:  c.Page,
		})
	}

	return layout.Outline{
		Title:   strings.TrimSpace(title),
		Entries: entries,
	}
}
