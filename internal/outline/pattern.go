package outline

import (
	"regexp"
	"strings"

	"github.com/dgallion1/outliner/internal/layout"
)

// Numbering rules, most specific first. Each anchors at the start of the
// trimmed text and captures the remainder after the numbering prefix.
// Depth follows the number of numeric groups; prefixes deeper than three
// groups clamp to H3.
var numberingRules = []struct {
	re    *regexp.Regexp
	level layout.Level
}{
	{regexp.MustCompile(`^\d+(?:\.\d+){3,}\.?\s+(\S.*)$`), layout.H3},
	{regexp.MustCompile(`^\d+\.\d+\.\d+\.?\s+(\S.*)$`), layout.H3},
	{regexp.MustCompile(`^\d+\.\d+\.?\s+(\S.*)$`), layout.H2},
	{regexp.MustCompile(`^\d+\.\s+(\S.*)$`), layout.H1},
}

// classifyByPattern flags spans whose text starts with a structured
// numbering prefix, independent of font size. Many documents express
// depth through numbering convention rather than visually distinct
// sizes, and font classification alone under-detects them.
func classifyByPattern(d *document) []layout.HeadingCandidate {
	var cands []layout.HeadingCandidate
	for _, s := range d.spans {
		if c, ok := matchNumbering(s); ok {
			cands = append(cands, c)
		}
	}
	return cands
}

func matchNumbering(s layout.Span) (layout.HeadingCandidate, bool) {
	for _, rule := range numberingRules {
		m := rule.re.FindStringSubmatch(s.Text)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[1])
		if text == "" {
			continue
		}
		return layout.HeadingCandidate{
			Text:   text,
			Level:  rule.level,
			Page:   s.Page,
			Y0:     s.Y0,
			Origin: layout.OriginPattern,
		}, true
	}
	return layout.HeadingCandidate{}, false
}
