package parser

import (
	"io"
	"path/filepath"
	"strings"
)

// Parser extracts the analyzable plain text from raw document bytes.
type Parser interface {
	Parse(r io.Reader) (string, error)
}

// ForFile returns the parser matching a filename extension. Unknown
// extensions (and stdin, which has no filename) fall back to passthrough.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown":
		return &MarkdownParser{}
	case ".html", ".htm":
		return &HTMLParser{}
	default:
		return &TextParser{}
	}
}
