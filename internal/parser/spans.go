package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dgallion1/outliner/internal/layout"
)

// SpanParser reads a pre-extracted span dump: the handoff format for an
// external layout parser that has already done the page decomposition.
// The shape is {"spans":[{"text","font_size","page","y0"}]}.
type SpanParser struct{}

func (p *SpanParser) Parse(r io.Reader, filename string) ([]layout.Span, error) {
	var doc struct {
		Spans []layout.Span `json:"spans"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode span dump: %w", err)
	}

	out := make([]layout.Span, 0, len(doc.Spans))
	for _, s := range doc.Spans {
		if s.FontSize <= 0 || s.Page < 0 {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
