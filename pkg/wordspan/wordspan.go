// Package wordspan provides a public API for computing word occurrence
// statistics over source code text.
//
// This package provides functions to:
//   - Convert between character encodings (CP437, CP850, ISO-8859-1, UTF-8)
//   - Tokenize text into words, whole or split on camelCase boundaries
//   - Aggregate per-word statistics (count, line span, proportion)
//   - Rank words by occurrence count
//
// Example usage:
//
//	import "wordspan/pkg/wordspan"
//
//	data, _ := os.ReadFile("yourCode.txt")
//	utf8Data, _ := wordspan.ConvertToUTF8(data, "utf8")
//	entries := wordspan.GetWordCount(string(utf8Data), wordspan.WordsInCamelCase)
package wordspan

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"wordspan/counter"
	"wordspan/tokenizer"
)

// Type aliases for public API
type (
	// Occurrence is one tokenized word at a specific 0-based line
	Occurrence = tokenizer.Occurrence

	// Mode selects the word boundary policy
	Mode = tokenizer.Mode

	// Tokenizer scans text into occurrences
	Tokenizer = tokenizer.Tokenizer

	// WordStats holds the finalized statistics of one distinct word
	WordStats = counter.WordStats

	// RankedEntry is one word with its statistics, in ranking order
	RankedEntry = counter.RankedEntry
)

// Word boundary modes
const (
	EntireWords      = tokenizer.EntireWords
	WordsInCamelCase = tokenizer.WordsInCamelCase
)

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripUTF8BOM removes the UTF-8 BOM if present at the beginning of the data
func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1"
// The UTF-8 BOM (Byte Order Mark) is automatically stripped if present.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	if sourceEncoding == "utf8" {
		return stripUTF8BOM(data), nil
	}

	var decoder *encoding.Decoder

	switch sourceEncoding {
	case "cp437":
		decoder = charmap.CodePage437.NewDecoder()
	case "cp850":
		decoder = charmap.CodePage850.NewDecoder()
	case "iso-8859-1":
		decoder = charmap.ISO8859_1.NewDecoder()
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", sourceEncoding)
	}

	reader := transform.NewReader(bytes.NewReader(data), decoder)
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	// Strip BOM if present after conversion
	return stripUTF8BOM(utf8Data), nil
}

// NewTokenizer creates a new tokenizer for the given text and mode.
func NewTokenizer(input []byte, mode Mode) *Tokenizer {
	return tokenizer.NewTokenizer(input, mode)
}

// CountLines returns the total line count of a text (newlines plus one).
func CountLines(code string) int {
	return counter.CountLines(code)
}

// GetWordCount runs the whole pipeline on a UTF-8 text: tokenize with the
// given mode, aggregate per-word statistics, rank by occurrence count
// descending (ties in ascending word order).
func GetWordCount(code string, mode Mode) []RankedEntry {
	occurrences := tokenizer.NewTokenizer([]byte(code), mode).Tokenize()
	stats := counter.Aggregate(occurrences, counter.CountLines(code))
	return counter.Rank(stats)
}
