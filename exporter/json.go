package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"wordspan/counter"
)

type WordJSON struct {
	Word        string  `json:"word"`
	Occurrences int     `json:"occurrences"`
	Span        int     `json:"span"`
	Proportion  float64 `json:"proportion"`
}

type WordCountJSONOutput struct {
	TotalWords int        `json:"total_words"`
	TotalLines int        `json:"total_lines"`
	Words      []WordJSON `json:"words"`
}

// ExportWordsToJSON writes the ranked entries as indented JSON. totalWords
// and totalLines describe the whole file, independent of any limit applied
// to entries.
func ExportWordsToJSON(entries []counter.RankedEntry, totalWords, totalLines int, writer io.Writer) error {
	output := WordCountJSONOutput{
		TotalWords: totalWords,
		TotalLines: totalLines,
		Words:      make([]WordJSON, 0, len(entries)),
	}

	for _, entry := range entries {
		output.Words = append(output.Words, WordJSON{
			Word:        entry.Word,
			Occurrences: entry.Stats.Occurrences(),
			Span:        entry.Stats.Span(),
			Proportion:  entry.Stats.Proportion(),
		})
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}
	return nil
}
