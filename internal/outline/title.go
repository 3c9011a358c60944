package outline

import (
	"regexp"
	"strings"

	"github.com/dgallion1/outliner/internal/layout"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// extractTitle selects the document title. Primary strategy: the
// highest-ranked font-origin candidate on page 0 (shallowest level, then
// smallest y0) is promoted to title and removed from the candidate list,
// since a title is not also an outline entry. When no such candidate
// exists the fallback concatenation of page-0 top lines is used instead
// and the candidate list is returned unchanged.
func extractTitle(d *document, cands []layout.HeadingCandidate, cfg Config) (string, []layout.HeadingCandidate) {
	best := -1
	for i, c := range cands {
		if c.Page != 0 || c.Origin != layout.OriginFont {
			continue
		}
		if isNoise(c.Text, cfg.MinHeadingLen) {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		b := cands[best]
		if c.Level.Depth() < b.Level.Depth() ||
			(c.Level.Depth() == b.Level.Depth() && c.Y0 < b.Y0) {
			best = i
		}
	}
	if best == -1 {
		return fallbackTitle(d, cfg), cands
	}

	title := cands[best].Text
	out := make([]layout.HeadingCandidate, 0, len(cands)-1)
	out = append(out, cands[:best]...)
	out = append(out, cands[best+1:]...)
	return title, out
}

// fallbackTitle concatenates the top-most page-0 lines in ascending y0
// order, stopping at the line cap or when the font size drops
// TitleFontDrop points below the first line. Repeated line text is
// counted and emitted once, so doubled running titles collapse.
func fallbackTitle(d *document, cfg Config) string {
	first := d.firstPage()
	if len(first) == 0 {
		return ""
	}

	ref := first[0].FontSize
	seen := make(map[string]int)
	var lines []string
	for _, s := range first {
		if len(lines) >= cfg.TitleLineCap {
			break
		}
		if s.FontSize < ref-cfg.TitleFontDrop {
			break
		}
		if isNoise(s.Text, cfg.MinHeadingLen) {
			continue
		}
		folded := strings.ToLower(s.Text)
		seen[folded]++
		if seen[folded] > 1 {
			continue
		}
		lines = append(lines, s.Text)
	}

	title := strings.Join(lines, " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(title, " "))
}

// topLine returns the text of the highest page-0 span, used by form
// archetypes whose title is always the form's first line.
func topLine(d *document) string {
	first := d.firstPage()
	if len(first) == 0 {
		return ""
	}
	return first[0].Text
}

// mostFrequentLargeText returns the most common page-0 span text among
// spans larger than the baseline, used by poster archetypes whose title
// is the repeated display text. Titles only ever come from page 0.
// Frequency ties break toward the first seen in y0 order so the choice
// is deterministic.
func mostFrequentLargeText(d *document) string {
	counts := make(map[string]int)
	var best string
	bestCount := 0
	for _, s := range d.firstPage() {
		if s.FontSize <= d.baseline {
			continue
		}
		counts[s.Text]++
		if counts[s.Text] > bestCount {
			best = s.Text
			bestCount = counts[s.Text]
		}
	}
	return strings.TrimSpace(best)
}
