package counter

import (
	"sort"

	"wordspan/tokenizer"
)

// Aggregate folds an occurrence sequence, in scan order, into per-word
// statistics. totalLines is the line count of the whole source text.
func Aggregate(occurrences []tokenizer.Occurrence, totalLines int) map[string]*WordStats {
	stats := make(map[string]*WordStats)

	for _, occurrence := range occurrences {
		wordStats, ok := stats[occurrence.Word]
		if !ok {
			wordStats = &WordStats{}
			stats[occurrence.Word] = wordStats
		}
		wordStats.SetTotalLines(totalLines)
		wordStats.AddOccurrence(occurrence.Line)
	}

	return stats
}

// RankedEntry is one word with its finalized statistics.
type RankedEntry struct {
	Word  string
	Stats *WordStats
}

// Rank orders the aggregated statistics by occurrence count descending.
// Entries with equal counts keep ascending lexicographic word order: the
// keys are sorted first, then a stable sort applies the count comparator
// only.
func Rank(stats map[string]*WordStats) []RankedEntry {
	words := make([]string, 0, len(stats))
	for word := range stats {
		words = append(words, word)
	}
	sort.Strings(words)

	entries := make([]RankedEntry, 0, len(words))
	for _, word := range words {
		entries = append(entries, RankedEntry{Word: word, Stats: stats[word]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Stats.Compare(*entries[j].Stats) > 0
	})

	return entries
}
