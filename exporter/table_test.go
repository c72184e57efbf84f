package exporter

import (
	"bytes"
	"testing"

	"wordspan/counter"
	"wordspan/tokenizer"
)

func rankedEntries(t *testing.T, code string) []counter.RankedEntry {
	t.Helper()
	occurrences := tokenizer.NewTokenizer([]byte(code), tokenizer.WordsInCamelCase).Tokenize()
	return counter.Rank(counter.Aggregate(occurrences, counter.CountLines(code)))
}

func TestExportWordsToTableEmpty(t *testing.T) {
	var buf bytes.Buffer

	if err := ExportWordsToTable(nil, &buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("Expected no output for empty result set, got %q", buf.String())
	}
}

func TestExportWordsToTable(t *testing.T) {
	var buf bytes.Buffer
	entries := rankedEntries(t, "cat\ndog\ncat\n")

	if err := ExportWordsToTable(entries, &buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "Word|   #|span| proportion\n" +
		"--------------\n" +
		"cat |   2|   3|        75%\n" +
		"dog |   1|   1|        25%\n"

	if buf.String() != expected {
		t.Fatalf("expected %q, got %q", expected, buf.String())
	}
}

func TestExportWordsToTableColumnWidthFollowsLongestWord(t *testing.T) {
	var buf bytes.Buffer
	entries := rankedEntries(t, "verylongword a verylongword")

	if err := ExportWordsToTable(entries, &buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "Word         |   #|span| proportion\n" +
		"-----------------------\n" +
		"verylongword |   2|   1|       100%\n" +
		"a            |   1|   1|       100%\n"

	if buf.String() != expected {
		t.Fatalf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		name       string
		proportion float64
		expected   string
	}{
		{"Zero", 0, "0"},
		{"ThreeQuarters", 0.75, "75"},
		{"Full", 1, "100"},
		{"Third", 1.0 / 3.0, "33.33"},
		{"TwoThirds", 2.0 / 3.0, "66.67"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatPercent(tt.proportion); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}
