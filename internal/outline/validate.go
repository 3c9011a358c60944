package outline

import (
	"regexp"
	"strings"

	"github.com/dgallion1/outliner/internal/layout"
)

// Rejection patterns for text that is heading-shaped but semantically
// noise.
var (
	spelledDateRe = regexp.MustCompile(`^\d{1,2} [A-Za-z]{3,9},? \d{4}$`)
	isoDateRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([T ]\d{2}:\d{2}(:\d{2})?(Z|[+-]\d{2}:\d{2})?)?$`)
	urlRe         = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.-]*://\S+$`)
	urlHintRe     = regexp.MustCompile(`(?i)(www\.|https?://|\.com\b)`)
	versionNumRe  = regexp.MustCompile(`^\d+(\.\d+)*$`)
	listNumberRe  = regexp.MustCompile(`^\d+\.$`)
	decorTermRe   = regexp.MustCompile(`(?i)(rsvp|topjump)`)
)

// isNoise reports whether text should never appear as a heading or a
// title line: dates, URLs, bare version or list numbers, version and
// mission-statement mentions, decorative event-flyer terms, copyright
// boilerplate, or anything shorter than minLen.
func isNoise(text string, minLen int) bool {
	text = strings.TrimSpace(text)
	if len(text) < minLen {
		return true
	}
	if spelledDateRe.MatchString(text) || isoDateRe.MatchString(text) {
		return true
	}
	if urlRe.MatchString(text) || urlHintRe.MatchString(text) || decorTermRe.MatchString(text) {
		return true
	}
	if versionNumRe.MatchString(text) || listNumberRe.MatchString(text) {
		return true
	}
	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "copyright") {
		return true
	}
	if strings.Contains(lower, "version") || strings.Contains(lower, "mission statement") {
		return true
	}
	return false
}

// furnitureKey identifies a line by its case-folded text and rounded
// vertical position.
type furnitureKey struct {
	text string
	y0   float64
}

// furnitureKeys finds running headers and footers: lines that recur with
// identical text at the same rounded position on every page of a
// multi-page document.
func furnitureKeys(d *document) map[furnitureKey]bool {
	if d.pages < 2 {
		return nil
	}
	pagesSeen := make(map[furnitureKey]map[int]bool)
	for _, s := range d.spans {
		k := furnitureKey{strings.ToLower(s.Text), roundY(s.Y0)}
		if pagesSeen[k] == nil {
			pagesSeen[k] = make(map[int]bool)
		}
		pagesSeen[k][s.Page] = true
	}
	keys := make(map[furnitureKey]bool)
	for k, pages := range pagesSeen {
		if len(pages) == d.pages {
			keys[k] = true
		}
	}
	return keys
}

// validate drops candidates whose text is noise or page furniture.
// Rejection is a pure filter: candidates are dropped, never downgraded.
func validate(d *document, cands []layout.HeadingCandidate, cfg Config) []layout.HeadingCandidate {
	furniture := furnitureKeys(d)
	out := make([]layout.HeadingCandidate, 0, len(cands))
	for _, c := range cands {
		if isNoise(c.Text, cfg.MinHeadingLen) {
			continue
		}
		if furniture[furnitureKey{strings.ToLower(c.Text), roundY(c.Y0)}] {
			continue
		}
		out = append(out, c)
	}
	return out
}
