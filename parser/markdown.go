package parser

import (
	"bytes"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser extracts the text of Markdown files using goldmark.
// Heading markers, list bullets and fence delimiters are dropped; the raw
// lines of every block (including code fences) are kept, one source line
// per output line.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader) (string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var buf bytes.Buffer
	writeBlockLines(&buf, doc, src)
	return buf.String(), nil
}

// writeBlockLines walks the AST and writes the raw lines of every block
// node. Container blocks (lists, quotes) carry no lines themselves; their
// nested blocks do.
func writeBlockLines(buf *bytes.Buffer, n ast.Node, src []byte) {
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			line := seg.Value(src)
			buf.Write(line)
			if len(line) == 0 || line[len(line)-1] != '\n' {
				buf.WriteByte('\n')
			}
		}
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		writeBlockLines(buf, c, src)
	}
}
