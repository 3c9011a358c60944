package parser

import (
	"strings"
	"testing"
)

func TestSpanParser(t *testing.T) {
	in := `{"spans":[
		{"text":"Title","font_size":24,"page":0,"y0":40},
		{"text":"Body","font_size":12,"page":0,"y0":100},
		{"text":"bad size","font_size":0,"page":0,"y0":120},
		{"text":"bad page","font_size":12,"page":-1,"y0":130}
	]}`
	p := &SpanParser{}
	spans, err := p.Parse(strings.NewReader(in), "dump.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(spans) != 2 {
		t.Fatalf("expected invalid spans dropped, got %d: %+v", len(spans), spans)
	}
	if spans[0].Text != "Title" || spans[0].FontSize != 24 {
		t.Errorf("unexpected first span %+v", spans[0])
	}
}

func TestSpanParser_MalformedJSON(t *testing.T) {
	p := &SpanParser{}
	if _, err := p.Parse(strings.NewReader(`{"spans":`), "dump.json"); err == nil {
		t.Error("expected error for truncated JSON")
	}
}

func TestSpanParser_MissingSpansField(t *testing.T) {
	p := &SpanParser{}
	spans, err := p.Parse(strings.NewReader(`{}`), "dump.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(spans) != 0 {
		t.Errorf("expected no spans, got %d", len(spans))
	}
}
