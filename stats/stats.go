// Package stats computes corpus-level token statistics: Zipf rank-frequency
// tables and a Heaps'-law fit of vocabulary growth.
package stats

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Kamal578/CSCI-6515-Project1/vocab"
)

// ZipfEntry is one row of the rank-frequency table.
type ZipfEntry struct {
	Rank     int
	Word     string
	Count    int
	RelFreq  float64 // Count / total tokens
	RankFreq float64 // Rank * Count, roughly constant under Zipf's law
}

// Zipf returns the rank-frequency table of the given frequency table,
// ordered by count descending (ties by word ascending, so the ranking is
// deterministic).
func Zipf(t vocab.Table) []ZipfEntry {
	entries := t.Sorted()
	total := t.Tokens()
	out := make([]ZipfEntry, len(entries))
	for i, e := range entries {
		rel := 0.0
		if total > 0 {
			rel = float64(e.Count) / float64(total)
		}
		out[i] = ZipfEntry{
			Rank:     i + 1,
			Word:     e.Word,
			Count:    e.Count,
			RelFreq:  rel,
			RankFreq: float64(i+1) * float64(e.Count),
		}
	}
	return out
}

// WriteZipfCSV emits the rank-frequency table as CSV with a header row.
func WriteZipfCSV(w io.Writer, entries []ZipfEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"rank", "word", "count", "rel_freq", "rank_x_freq"}); err != nil {
		return err
	}
	for _, e := range entries {
		rec := []string{
			strconv.Itoa(e.Rank),
			e.Word,
			strconv.Itoa(e.Count),
			strconv.FormatFloat(e.RelFreq, 'f', 8, 64),
			strconv.FormatFloat(e.RankFreq, 'f', 2, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Summary captures the headline numbers of one corpus pass.
type Summary struct {
	Tokens         int     `json:"tokens"`
	Types          int     `json:"types"`
	TypeTokenRatio float64 `json:"type_token_ratio"`
	HapaxCount     int     `json:"hapax_count"` // tokens occurring exactly once
}

// Summarize computes the headline statistics of a frequency table.
func Summarize(t vocab.Table) Summary {
	tokens := t.Tokens()
	hapax := 0
	for _, c := range t {
		if c == 1 {
			hapax++
		}
	}
	ttr := 0.0
	if tokens > 0 {
		ttr = float64(t.Types()) / float64(tokens)
	}
	return Summary{
		Tokens:         tokens,
		Types:          t.Types(),
		TypeTokenRatio: ttr,
		HapaxCount:     hapax,
	}
}

// String renders the summary in a single log-friendly line.
func (s Summary) String() string {
	return fmt.Sprintf("tokens=%d types=%d ttr=%.4f hapax=%d",
		s.Tokens, s.Types, s.TypeTokenRatio, s.HapaxCount)
}
