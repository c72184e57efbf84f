package parser

import "io"

// TextParser passes the input through untouched.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
