// Package bpe implements byte-pair-style subword merge learning.
//
// Training consumes a word-frequency table and greedily learns an ordered
// sequence of merge rules: at every step the adjacent symbol pair with the
// highest corpus-weighted count is fused into a new symbol. Encoding replays
// a learned rule sequence over any word, strictly in rank order, so the
// segmentation of a word is a pure function of the word and the rules.
//
// Words are represented as symbol sequences ending in the EndOfWord marker,
// which lets merges distinguish word-final from word-internal contexts.
// Concatenating the symbols of an encoded word (minus the marker) always
// reconstructs the word exactly, whatever the rule set.
//
// Determinism: ties in pair selection are broken toward the
// lexicographically smaller (left, right) pair, and candidate ranking during
// encoding follows rule rank only. Two runs over the same table produce
// byte-identical rule sequences.
package bpe

import (
	"errors"
	"fmt"
	"sort"
)

// EndOfWord is the boundary marker appended to every word before merging.
// It never collides with real symbols because the tokenizer emits no
// whitespace or angle brackets inside tokens.
const EndOfWord = "</w>"

// MergeRule is a single learned pair merge. Rules are total-ordered by their
// position in the slice returned by Train; that position is the rank.
type MergeRule struct {
	Left  string
	Right string
}

// ErrInvalidArgument reports a caller error (negative merge count, empty or
// malformed frequency table). The input must be fixed; retrying is useless.
var ErrInvalidArgument = errors.New("bpe: invalid argument")

type pair struct {
	left  string
	right string
}

// word is one training unit: a mutable symbol sequence and its corpus count.
type word struct {
	symbols []string
	freq    int
}

// Train learns up to numMerges merge rules from the frequency table.
// Words with a count below minWordFreq are excluded from pair counting.
// Training stops early when no adjacent pair occurs at least twice.
// The input table is not modified.
func Train(wordFreqs map[string]int, numMerges, minWordFreq int) ([]MergeRule, error) {
	if numMerges < 0 {
		return nil, fmt.Errorf("%w: numMerges = %d", ErrInvalidArgument, numMerges)
	}
	if len(wordFreqs) == 0 {
		return nil, fmt.Errorf("%w: empty frequency table", ErrInvalidArgument)
	}
	for w, c := range wordFreqs {
		if c < 0 {
			return nil, fmt.Errorf("%w: negative count %d for %q", ErrInvalidArgument, c, w)
		}
	}

	words, counts := buildWords(wordFreqs, minWordFreq)

	rules := make([]MergeRule, 0, numMerges)
	for len(rules) < numMerges {
		best, bestCount := selectPair(counts)
		if bestCount < 2 {
			break
		}
		mergeAll(words, best, counts)
		rules = append(rules, MergeRule{Left: best.left, Right: best.right})
	}
	return rules, nil
}

// buildWords splits qualifying words into symbol sequences (runes plus the
// boundary marker) and counts all adjacent pairs weighted by word frequency.
// Word order is sorted so the walk is reproducible, although the incremental
// counting below is order-independent anyway.
func buildWords(wordFreqs map[string]int, minWordFreq int) ([]*word, map[pair]int) {
	keys := make([]string, 0, len(wordFreqs))
	for w := range wordFreqs {
		keys = append(keys, w)
	}
	sort.Strings(keys)

	words := make([]*word, 0, len(keys))
	counts := make(map[pair]int)

	for _, w := range keys {
		freq := wordFreqs[w]
		if freq == 0 || freq < minWordFreq {
			continue
		}
		symbols := splitSymbols(w)
		words = append(words, &word{symbols: symbols, freq: freq})
		for i := 0; i+1 < len(symbols); i++ {
			counts[pair{symbols[i], symbols[i+1]}] += freq
		}
	}
	return words, counts
}

// splitSymbols breaks a word into single-rune symbols plus the boundary marker.
func splitSymbols(w string) []string {
	runes := []rune(w)
	symbols := make([]string, 0, len(runes)+1)
	for _, r := range runes {
		symbols = append(symbols, string(r))
	}
	return append(symbols, EndOfWord)
}

// selectPair returns the pair with the highest aggregate count. Ties break
// toward the lexicographically smaller (left, right) pair, which makes the
// choice independent of map iteration order.
func selectPair(counts map[pair]int) (pair, int) {
	var best pair
	bestCount := 0
	for p, c := range counts {
		switch {
		case c > bestCount:
			best, bestCount = p, c
		case c == bestCount && lessPair(p, best):
			best = p
		}
	}
	return best, bestCount
}

func lessPair(a, b pair) bool {
	if a.left != b.left {
		return a.left < b.left
	}
	return a.right < b.right
}

// mergeAll fuses every occurrence of p across all words, updating the pair
// counts incrementally: only the pairs adjacent to each merge site change,
// so a merge step costs O(occurrences), not O(corpus).
func mergeAll(words []*word, p pair, counts map[pair]int) {
	merged := p.left + p.right

	for _, w := range words {
		syms := w.symbols
		out := syms[:0]
		for i := 0; i < len(syms); {
			if i+1 < len(syms) && syms[i] == p.left && syms[i+1] == p.right {
				// Adjacent pairs around the merge site change; record the
				// neighbors before overwriting the slice in place.
				if len(out) > 0 {
					prev := out[len(out)-1]
					decCount(counts, pair{prev, p.left}, w.freq)
					counts[pair{prev, merged}] += w.freq
				}
				if i+2 < len(syms) {
					next := syms[i+2]
					decCount(counts, pair{p.right, next}, w.freq)
					counts[pair{merged, next}] += w.freq
				}
				decCount(counts, p, w.freq)
				out = append(out, merged)
				i += 2
				continue
			}
			out = append(out, syms[i])
			i++
		}
		w.symbols = out
	}

	// Any residue of the merged pair (from bookkeeping of overlapping runs)
	// must not win a later round.
	delete(counts, p)
}

func decCount(counts map[pair]int, p pair, by int) {
	c := counts[p] - by
	if c <= 0 {
		delete(counts, p)
		return
	}
	counts[p] = c
}

// SymbolVocab returns the set of distinct symbols produced by encoding every
// word of the table with the given rules. Its size is bounded by the base
// alphabet size plus len(rules).
func SymbolVocab(wordFreqs map[string]int, rules []MergeRule) map[string]struct{} {
	vocab := make(map[string]struct{})
	for w := range wordFreqs {
		for _, s := range Encode(w, rules) {
			vocab[s] = struct{}{}
		}
	}
	return vocab
}
