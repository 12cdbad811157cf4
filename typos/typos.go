// Package typos models how Azerbaijani text gets mistyped on an English
// keyboard.
//
// Two generators live here. Variants expands an ASCII-degraded query into
// the proper-alphabet words it may stand for ("chay" covers "çay"), used to
// widen spell-check lookups. Corruptor runs the other direction: it degrades
// correct words into plausible misspellings, producing the (correct,
// corrupted) training pairs the confusion-matrix builder learns from.
package typos

import "sort"

// Default beam limits for variant generation.
const (
	DefaultMaxEdits      = 2
	DefaultMaxCandidates = 40
)

// azVariants maps a typed unit to the proper Azerbaijani letters it often
// stands for. Digraphs are matched before single letters.
var azVariants = map[string][]string{
	"ch": {"ç"},
	"sh": {"ş"},
	"gh": {"ğ"},
	"c":  {"ç"},
	"s":  {"ş"},
	"e":  {"ə"},
	"o":  {"ö"},
	"u":  {"ü"},
	"g":  {"ğ"},
	"i":  {"ı"},
	"w":  {"v"},
}

// Variant is one generated spelling with the number of unit replacements it
// took to produce.
type Variant struct {
	Word  string
	Edits int
}

// Variants generates proper-alphabet readings of word with a bounded beam
// search: units are consumed left to right (digraphs first), each unit
// either kept or replaced, and the beam is truncated to maxCandidates
// entries ordered by edits then word. Non-positive limits select the
// defaults. The result is deduplicated, keeping the minimum edit count per
// word, and sorted by (edits, word).
func Variants(word string, maxEdits, maxCandidates int) []Variant {
	if maxEdits <= 0 {
		maxEdits = DefaultMaxEdits
	}
	if maxCandidates <= 0 {
		maxCandidates = DefaultMaxCandidates
	}
	if word == "" {
		return []Variant{{Word: "", Edits: 0}}
	}

	beam := []Variant{{Word: "", Edits: 0}}
	for _, unit := range splitUnits(word) {
		options := append([]string{unit}, azVariants[unit]...)

		expanded := make([]Variant, 0, len(beam)*len(options))
		for _, v := range beam {
			for _, opt := range options {
				edits := v.Edits
				if opt != unit {
					edits++
				}
				if edits > maxEdits {
					continue
				}
				expanded = append(expanded, Variant{Word: v.Word + opt, Edits: edits})
			}
		}
		sortVariants(expanded)
		if len(expanded) > maxCandidates {
			expanded = expanded[:maxCandidates]
		}
		beam = expanded
		if len(beam) == 0 {
			break
		}
	}

	best := make(map[string]int, len(beam))
	for _, v := range beam {
		if e, ok := best[v.Word]; !ok || v.Edits < e {
			best[v.Word] = v.Edits
		}
	}
	out := make([]Variant, 0, len(best))
	for w, e := range best {
		out = append(out, Variant{Word: w, Edits: e})
	}
	sortVariants(out)
	return out
}

// Words is Variants reduced to the generated strings.
func Words(word string, maxEdits, maxCandidates int) []string {
	vs := Variants(word, maxEdits, maxCandidates)
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Word
	}
	return out
}

// splitUnits tokenizes word left to right, matching the ch/sh/gh digraphs
// before single runes.
func splitUnits(word string) []string {
	runes := []rune(word)
	units := make([]string, 0, len(runes))
	for i := 0; i < len(runes); {
		if i+1 < len(runes) {
			two := string(runes[i : i+2])
			if two == "ch" || two == "sh" || two == "gh" {
				units = append(units, two)
				i += 2
				continue
			}
		}
		units = append(units, string(runes[i]))
		i++
	}
	return units
}

func sortVariants(vs []Variant) {
	sort.Slice(vs, func(i, j int) bool {
		if vs[i].Edits != vs[j].Edits {
			return vs[i].Edits < vs[j].Edits
		}
		return vs[i].Word < vs[j].Word
	})
}
