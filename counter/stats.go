package counter

import "strings"

// WordStats accumulates occurrence data for one distinct word.
// The zero value is ready to use; bounds are undefined until the first
// occurrence is recorded.
type WordStats struct {
	totalLines  int
	occurrences int
	lowestLine  int
	highestLine int
}

// SetTotalLines injects the total number of lines of the source text.
// The same value is supplied for every occurrence of a run.
func (s *WordStats) SetTotalLines(n int) {
	s.totalLines = n
}

// AddOccurrence records one occurrence at the given 0-based line.
func (s *WordStats) AddOccurrence(line int) {
	s.occurrences++

	if s.occurrences == 1 {
		s.lowestLine = line
		s.highestLine = line
		return
	}

	if line < s.lowestLine {
		s.lowestLine = line
	}
	if line > s.highestLine {
		s.highestLine = line
	}
}

func (s WordStats) Occurrences() int {
	return s.occurrences
}

// Span is the number of lines between the first and last occurrence,
// inclusive.
func (s WordStats) Span() int {
	if s.occurrences == 0 {
		return 0
	}
	return s.highestLine - s.lowestLine + 1
}

// Proportion is the span divided by the total line count, in [0, 1].
func (s WordStats) Proportion() float64 {
	if s.totalLines == 0 {
		return 0
	}
	return float64(s.Span()) / float64(s.totalLines)
}

// Compare orders two stats by occurrence count alone. Span and proportion
// do not participate in ordering.
func (s WordStats) Compare(other WordStats) int {
	switch {
	case s.occurrences < other.occurrences:
		return -1
	case s.occurrences > other.occurrences:
		return 1
	default:
		return 0
	}
}

// CountLines counts the lines of a text: newlines plus one, so a text
// without newlines has 1 line and a trailing newline ends a line.
func CountLines(code string) int {
	return strings.Count(code, "\n") + 1
}
