package exporter

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"wordspan/counter"
)

// ExportWordsToTable writes the ranked entries as a fixed-width table:
//
//	Word |   #|span| proportion
//
// The word column width follows the longest word. An empty result set
// writes nothing.
func ExportWordsToTable(entries []counter.RankedEntry, writer io.Writer) error {
	if len(entries) == 0 {
		return nil
	}

	longestWordSize := 0
	for _, entry := range entries {
		if len(entry.Word) > longestWordSize {
			longestWordSize = len(entry.Word)
		}
	}

	if _, err := fmt.Fprintf(writer, "%-*s|%4s|%4s|%11s\n",
		longestWordSize+1, "Word", "#", "span", "proportion"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(writer, strings.Repeat("-", longestWordSize+1+1+4+1+4)); err != nil {
		return err
	}

	for _, entry := range entries {
		if _, err := fmt.Fprintf(writer, "%-*s|%4d|%4d|%10s%%\n",
			longestWordSize+1, entry.Word,
			entry.Stats.Occurrences(), entry.Stats.Span(),
			formatPercent(entry.Stats.Proportion())); err != nil {
			return err
		}
	}

	return nil
}

// formatPercent renders a proportion as a percentage rounded to 2 decimal
// places, with trailing zeros trimmed (0.75 -> "75", 1/3 -> "33.33").
func formatPercent(proportion float64) string {
	percent := math.Round(proportion*100*100) / 100
	return strconv.FormatFloat(percent, 'f', -1, 64)
}
