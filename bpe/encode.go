package bpe

import "strings"

// Encode segments word by replaying rules in rank order: the lowest-ranked
// rule still applicable is merged at every one of its occurrences before any
// higher-ranked rule is considered. Unseen words are not an error; symbols
// no rule matches stay at single-rune granularity.
//
// Encode is a pure function of (word, rules): identical input yields
// identical output. For a non-empty word the returned sequence ends with a
// symbol carrying the EndOfWord marker; the empty word encodes to nil.
func Encode(word string, rules []MergeRule) []string {
	if word == "" {
		return nil
	}

	symbols := splitSymbols(word)
	if len(rules) == 0 {
		return symbols
	}

	ranks := make(map[pair]int, len(rules))
	for i, r := range rules {
		p := pair{r.Left, r.Right}
		if _, dup := ranks[p]; !dup {
			ranks[p] = i
		}
	}

	for {
		bestRank := len(rules)
		for i := 0; i+1 < len(symbols); i++ {
			if r, ok := ranks[pair{symbols[i], symbols[i+1]}]; ok && r < bestRank {
				bestRank = r
			}
		}
		if bestRank == len(rules) {
			return symbols
		}
		symbols = mergeOnce(symbols, pair{rules[bestRank].Left, rules[bestRank].Right})
	}
}

// mergeOnce fuses every occurrence of p in symbols, scanning left to right.
func mergeOnce(symbols []string, p pair) []string {
	out := make([]string, 0, len(symbols))
	for i := 0; i < len(symbols); {
		if i+1 < len(symbols) && symbols[i] == p.left && symbols[i+1] == p.right {
			out = append(out, p.left+p.right)
			i += 2
			continue
		}
		out = append(out, symbols[i])
		i++
	}
	return out
}

// Reconstruct rebuilds the original word from an encoded symbol sequence by
// concatenating the symbols and stripping the boundary marker.
func Reconstruct(symbols []string) string {
	var sb strings.Builder
	for _, s := range symbols {
		sb.WriteString(s)
	}
	return strings.TrimSuffix(sb.String(), EndOfWord)
}
