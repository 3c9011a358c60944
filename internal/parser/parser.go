package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/outliner/internal/layout"
)

// Parser converts raw document bytes into positioned spans for the
// outline engine. Formats without physical layout (markdown, HTML, docx)
// synthesize font sizes from their markup levels so every format feeds
// the same span model.
type Parser interface {
	Parse(r io.Reader, filename string) ([]layout.Span, error)
}

// Synthetic font-size ladder for markup formats. Body text anchors the
// median; heading sizes sit far enough above it to clear any sane
// heading delta, with h4+ collapsing onto the deepest rung.
const (
	bodyFontSize = 12
	h3FontSize   = 15
	h2FontSize   = 18
	h1FontSize   = 24
)

func headingFontSize(level int) float64 {
	switch level {
	case 1:
		return h1FontSize
	case 2:
		return h2FontSize
	default:
		return h3FontSize
	}
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
	".json":     true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	case ".json":
		return &SpanParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
