package parser

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/dgallion1/outliner/internal/layout"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser extracts positioned text lines from PDF files. This is the
// one format carrying real font sizes and coordinates, so the engine's
// baseline statistics come straight from the page layout.
type PDFParser struct{}

// Text runs whose baselines sit within this many points are treated as
// one visual line.
const lineTolerance = 2.0

// Default page height when the media box is missing, in points (US
// Letter).
const defaultPageHeight = 792.0

func (p *PDFParser) Parse(r io.Reader, filename string) ([]layout.Span, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "outliner-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var spans []layout.Span
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		spans = append(spans, pageSpans(page, i-1)...)
	}
	return spans, nil
}

// pageSpans merges a page's text runs into lines: runs sharing a
// baseline become one span whose font size is the largest run size, with
// y0 converted to grow downward from the top of the page.
func pageSpans(page pdflib.Page, pageIdx int) []layout.Span {
	content := page.Content()
	if len(content.Text) == 0 {
		return nil
	}
	height := pageHeight(page)

	runs := make([]pdflib.Text, len(content.Text))
	copy(runs, content.Text)
	sort.SliceStable(runs, func(i, j int) bool {
		if math.Abs(runs[i].Y-runs[j].Y) > lineTolerance {
			return runs[i].Y > runs[j].Y // larger PDF Y = higher on page
		}
		return runs[i].X < runs[j].X
	})

	var spans []layout.Span
	var line strings.Builder
	var lineY, lineSize, prevEnd float64
	flush := func() {
		text := strings.TrimSpace(line.String())
		if text != "" {
			spans = append(spans, layout.Span{
				Text:     text,
				FontSize: lineSize,
				Page:     pageIdx,
				Y0:       height - lineY,
			})
		}
		line.Reset()
		lineSize = 0
	}

	for i, t := range runs {
		if i == 0 || math.Abs(t.Y-lineY) > lineTolerance {
			flush()
			lineY = t.Y
			prevEnd = t.X
		}
		// Insert a space across visible horizontal gaps between runs.
		if line.Len() > 0 && t.X-prevEnd > 0.5 && !strings.HasSuffix(line.String(), " ") {
			line.WriteByte(' ')
		}
		line.WriteString(t.S)
		prevEnd = t.X + t.W
		if t.FontSize > lineSize {
			lineSize = t.FontSize
		}
	}
	flush()
	return spans
}

// pageHeight resolves the page's media box height, following Parent
// links for inherited boxes.
func pageHeight(page pdflib.Page) float64 {
	v := page.V
	for !v.IsNull() {
		mb := v.Key("MediaBox")
		if !mb.IsNull() && mb.Len() == 4 {
			h := mb.Index(3).Float64() - mb.Index(1).Float64()
			if h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return defaultPageHeight
}
