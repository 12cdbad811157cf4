// Package vocab builds, filters, and persists the corpus frequency table.
//
// The table maps a normalized token to its occurrence count over one corpus
// pass. It is built once per run and read-only afterwards: the BPE trainer,
// the statistics stage, and the spell-check engine all consume the same
// table. Persistence uses one "word count" pair per line, sorted by count
// descending then word ascending, so a reload reproduces the exact table.
package vocab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Table maps token to occurrence count. Counts are non-negative.
type Table map[string]int

// Build counts every token produced by the tokenize function over docs.
func Build(docs []string, tokenize func(string) []string) Table {
	t := make(Table)
	for _, doc := range docs {
		for _, tok := range tokenize(doc) {
			t[tok]++
		}
	}
	return t
}

// Add merges the tokens of one more document into the table.
func (t Table) Add(tokens []string) {
	for _, tok := range tokens {
		t[tok]++
	}
}

// Tokens returns the total token count (sum of all frequencies).
func (t Table) Tokens() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

// Types returns the number of distinct tokens.
func (t Table) Types() int { return len(t) }

// FilterOptions controls which entries survive Filter.
type FilterOptions struct {
	MinFreq   int  // drop tokens with count < MinFreq (0 or 1 keeps all)
	MaxFreq   int  // drop tokens with count > MaxFreq when > 0
	MinLen    int  // drop tokens shorter than MinLen runes
	AlphaOnly bool // keep only tokens made entirely of letters
}

// Filter returns a new table with entries failing the options removed.
// The receiver is not modified.
func (t Table) Filter(opts FilterOptions) Table {
	out := make(Table, len(t))
	for w, c := range t {
		if opts.MinFreq > 0 && c < opts.MinFreq {
			continue
		}
		if opts.MaxFreq > 0 && c > opts.MaxFreq {
			continue
		}
		if opts.MinLen > 0 && utf8.RuneCountInString(w) < opts.MinLen {
			continue
		}
		if opts.AlphaOnly && !isAlpha(w) {
			continue
		}
		out[w] = c
	}
	return out
}

// Entry is a (word, count) pair used for ordered views of the table.
type Entry struct {
	Word  string
	Count int
}

// Sorted returns the table entries ordered by count descending, ties broken
// by word ascending. The order is deterministic for a given table.
func (t Table) Sorted() []Entry {
	entries := make([]Entry, 0, len(t))
	for w, c := range t {
		entries = append(entries, Entry{Word: w, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
	return entries
}

// Write emits the table to w, one "word count" pair per line in Sorted order.
func (t Table) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range t.Sorted() {
		if _, err := fmt.Fprintf(bw, "%s %d\n", e.Word, e.Count); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes the table to path, creating or truncating the file.
func (t Table) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("vocab: create %s: %w", path, err)
	}
	if err := t.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("vocab: write %s: %w", path, err)
	}
	return f.Close()
}

// Read parses a table from r. Each non-empty line must be "word count";
// the last space on the line separates the two, so words may themselves
// contain spaces (they do not in practice, but the parse is forgiving).
func Read(r io.Reader) (Table, error) {
	t := make(Table)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1<<20), 1<<20)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		sp := strings.LastIndexByte(line, ' ')
		if sp <= 0 {
			return nil, fmt.Errorf("vocab: line %d: missing count field", lineNo)
		}
		count, err := strconv.Atoi(line[sp+1:])
		if err != nil || count < 0 {
			return nil, fmt.Errorf("vocab: line %d: bad count %q", lineNo, line[sp+1:])
		}
		t[line[:sp]] = count
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("vocab: read: %w", err)
	}
	return t, nil
}

// Load reads a table from the file at path.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Words returns the key set in Sorted order.
func (t Table) Words() []string {
	entries := t.Sorted()
	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.Word
	}
	return words
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
