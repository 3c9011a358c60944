package outline

import (
	"github.com/dgallion1/outliner/internal/layout"
)

// Config holds the tunable heuristic constants of the outline engine.
type Config struct {
	// HeadingDelta is how many points above the body baseline a span's
	// font must sit to count as a font-origin heading candidate.
	HeadingDelta float64
	// MinHeadingLen is the shortest text the validator accepts.
	MinHeadingLen int
	// TitleLineCap bounds how many page-0 lines the fallback title
	// concatenation may consume.
	TitleLineCap int
	// TitleFontDrop stops the fallback concatenation when a line's font
	// drops this many points below the first line's.
	TitleFontDrop float64
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		HeadingDelta:  2.0,
		MinHeadingLen: 3,
		TitleLineCap:  3,
		TitleFontDrop: 2.0,
	}
}

// Extractor converts one document's span list into an Outline. It holds
// no per-document state; Extract may be called concurrently for
// independent documents.
type Extractor struct {
	cfg Config
}

func New(cfg Config) *Extractor {
	def := DefaultConfig()
	if cfg.HeadingDelta <= 0 {
		cfg.HeadingDelta = def.HeadingDelta
	}
	if cfg.MinHeadingLen <= 0 {
		cfg.MinHeadingLen = def.MinHeadingLen
	}
	if cfg.TitleLineCap <= 0 {
		cfg.TitleLineCap = def.TitleLineCap
	}
	if cfg.TitleFontDrop <= 0 {
		cfg.TitleFontDrop = def.TitleFontDrop
	}
	return &Extractor{cfg: cfg}
}

// Extract runs the full pipeline: normalize, estimate the body baseline,
// classify by font and by numbering pattern, apply any archetype
// override, pick the title, validate, dedup, and assemble. Degenerate
// input never fails: zero spans yield an empty outline.
func (e *Extractor) Extract(spans []layout.Span) layout.Outline {
	spans = Normalize(spans)
	if len(spans) == 0 {
		return layout.Outline{Entries: []layout.Entry{}}
	}

	doc := newDocument(spans)
	arch := detectArchetype(doc)

	var cands []layout.HeadingCandidate
	if arch != nil && arch.candidates != nil {
		cands = arch.candidates(doc, e.cfg)
	} else {
		cands = mergeCandidates(classifyByFont(doc, e.cfg), classifyByPattern(doc))
	}

	var title string
	if arch != nil && arch.title != nil {
		title = arch.title(doc, e.cfg)
	} else {
		title, cands = extractTitle(doc, cands, e.cfg)
	}

	if arch != nil && arch.refine != nil {
		cands = arch.refine(doc, cands)
	}

	cands = validate(doc, cands, e.cfg)
	return assemble(title, cands)
}

// mergeCandidates combines the two classifier outputs. A span matched by
// both contributes one candidate; the pattern result wins because
// numbering is a stronger structural signal than size alone.
func mergeCandidates(font, pattern []layout.HeadingCandidate) []layout.HeadingCandidate {
	type key struct {
		page int
		y0   float64
	}
	overridden := make(map[key]bool, len(pattern))
	for _, c := range pattern {
		overridden[key{c.Page, roundY(c.Y0)}] = true
	}

	merged := make([]layout.HeadingCandidate, 0, len(font)+len(pattern))
	for _, c := range font {
		if !overridden[key{c.Page, roundY(c.Y0)}] {
			merged = append(merged, c)
		}
	}
	return append(merged, pattern...)
}
