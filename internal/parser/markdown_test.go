package parser

import (
	"strings"
	"testing"
)

const sampleMarkdown = `# User Guide

Welcome to the guide.
It has several parts.

## Getting Started

Install the binary first.

### Configuration

Set the environment variables.

#### Advanced Flags

Rarely needed.
`

func TestMarkdownParser(t *testing.T) {
	p := &MarkdownParser{}
	spans, err := p.Parse(strings.NewReader(sampleMarkdown), "guide.md")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	sizeByText := make(map[string]float64, len(spans))
	for _, s := range spans {
		if s.Page != 0 {
			t.Errorf("markdown is single-page, got page %d for %q", s.Page, s.Text)
		}
		sizeByText[s.Text] = s.FontSize
	}

	if sizeByText["User Guide"] != h1FontSize {
		t.Errorf("expected h1 size for title, got %v", sizeByText["User Guide"])
	}
	if sizeByText["Getting Started"] != h2FontSize {
		t.Errorf("expected h2 size, got %v", sizeByText["Getting Started"])
	}
	if sizeByText["Configuration"] != h3FontSize {
		t.Errorf("expected h3 size, got %v", sizeByText["Configuration"])
	}
	if sizeByText["Advanced Flags"] != h3FontSize {
		t.Errorf("expected h4 collapsed onto h3 size, got %v", sizeByText["Advanced Flags"])
	}
	if sizeByText["Install the binary first."] != bodyFontSize {
		t.Errorf("expected body size for paragraph, got %v", sizeByText["Install the binary first."])
	}
}

func TestMarkdownParser_ParagraphLinesSplit(t *testing.T) {
	p := &MarkdownParser{}
	spans, err := p.Parse(strings.NewReader("line one\nline two\nline three\n"), "x.md")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(spans) != 3 {
		t.Fatalf("expected one span per wrapped line, got %d: %+v", len(spans), spans)
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].Y0 <= spans[i-1].Y0 {
			t.Errorf("expected strictly increasing y0, got %v then %v", spans[i-1].Y0, spans[i].Y0)
		}
	}
}

func TestMarkdownParser_Empty(t *testing.T) {
	p := &MarkdownParser{}
	spans, err := p.Parse(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(spans) != 0 {
		t.Errorf("expected no spans, got %d", len(spans))
	}
}
