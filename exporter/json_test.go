package exporter

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestExportWordsToJSON(t *testing.T) {
	var buf bytes.Buffer
	entries := rankedEntries(t, "cat\ndog\ncat\n")

	if err := ExportWordsToJSON(entries, 3, 4, &buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var output WordCountJSONOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}

	if output.TotalWords != 3 {
		t.Errorf("Expected 3 total words, got %d", output.TotalWords)
	}
	if output.TotalLines != 4 {
		t.Errorf("Expected 4 total lines, got %d", output.TotalLines)
	}
	if len(output.Words) != 2 {
		t.Fatalf("Expected 2 words, got %d", len(output.Words))
	}

	cat := output.Words[0]
	if cat.Word != "cat" || cat.Occurrences != 2 || cat.Span != 3 || cat.Proportion != 0.75 {
		t.Errorf("Expected {cat 2 3 0.75}, got %+v", cat)
	}
}

func TestExportWordsToJSONEmpty(t *testing.T) {
	var buf bytes.Buffer

	if err := ExportWordsToJSON(nil, 0, 1, &buf); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var output WordCountJSONOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v", err)
	}
	if len(output.Words) != 0 {
		t.Errorf("Expected no words, got %d", len(output.Words))
	}
}
