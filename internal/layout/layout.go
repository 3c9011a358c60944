package layout

// Level is the depth of a heading in the document hierarchy.
type Level string

const (
	H1 Level = "H1"
	H2 Level = "H2"
	H3 Level = "H3"
)

// Depth returns the numeric depth of a level (H1=1 ... H3=3).
func (l Level) Depth() int {
	switch l {
	case H1:
		return 1
	case H2:
		return 2
	case H3:
		return 3
	}
	return 0
}

// Origin identifies which classifier produced a heading candidate.
type Origin string

const (
	OriginFont    Origin = "font"
	OriginPattern Origin = "pattern"
	OriginSpecial Origin = "special-case"
)

// Span is a single positioned text fragment produced by a layout parser.
// Page is zero-based; Y0 grows downward, so a smaller Y0 sits higher on
// the page. Spans are immutable once ingested.
type Span struct {
	Text     string  `json:"text"`
	FontSize float64 `json:"font_size"`
	Page     int     `json:"page"`
	Y0       float64 `json:"y0"`
}

// HeadingCandidate is a span hypothesized to be a structural heading.
// Candidates are created by the classifiers and may be discarded by the
// validator before assembly.
type HeadingCandidate struct {
	Text   string
	Level  Level
	Page   int
	Y0     float64
	Origin Origin
}

// Entry is one row of the final outline.
type Entry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Outline is the final artifact for one document: a title plus the
// ordered heading hierarchy. Entries are sorted by (page, y0) ascending
// and never nil, so an empty outline marshals as [] rather than null.
type Outline struct {
	Title   string  `json:"title"`
	Entries []Entry `json:"outline"`
}
