package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/dgallion1/outliner/internal/layout"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser turns a markdown document into spans using goldmark.
// Headings map onto the synthetic font-size ladder; everything else
// becomes body-sized line spans that anchor the baseline median. The
// whole document is one page, with the block order as vertical position.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) ([]layout.Span, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var spans []layout.Span
	y := 0.0
	emit := func(t string, size float64) {
		t = strings.TrimSpace(t)
		if t == "" {
			return
		}
		spans = append(spans, layout.Span{Text: t, FontSize: size, Page: 0, Y0: y})
		y += bodyFontSize
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			emit(string(node.Text(src)), headingFontSize(node.Level))
		default:
			// Each source line of a body block becomes its own span so
			// body text dominates the size distribution the way wrapped
			// lines do in a rendered page.
			for _, line := range strings.Split(blockText(n, src), "\n") {
				emit(line, bodyFontSize)
			}
		}
	}
	return spans, nil
}

// blockText gets the text content of a goldmark AST node.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(blockText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
